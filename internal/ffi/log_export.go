package ffi

// #include <stdlib.h>
import "C"

//export moonfireGoLog
func moonfireGoLog(level C.int, line *C.char) {
	dispatchLog(int(level), C.GoString(line))
}
