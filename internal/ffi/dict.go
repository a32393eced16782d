package ffi

/*
#include <stdlib.h>
#include "moonfire_ffmpeg.h"
*/
import "C"

import "unsafe"

// DictSet calls av_dict_set, allocating *d on first use.
func DictSet(d *Dictionary, key, value string, flags int) int {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	return int(C.av_dict_set((**C.AVDictionary)(unsafe.Pointer(d)), ckey, cvalue, C.int(flags)))
}

// DictCount calls av_dict_count; a nil dictionary has no entries.
func DictCount(d Dictionary) int {
	return int(C.av_dict_count((*C.AVDictionary)(d)))
}

// DictEntries walks every entry in insertion order by matching the empty key
// with DictIgnoreSuffix.
func DictEntries(d Dictionary, fn func(key, value string)) {
	empty := C.CString("")
	defer C.free(unsafe.Pointer(empty))
	var ent *C.AVDictionaryEntry
	for {
		ent = C.av_dict_get((*C.AVDictionary)(d), empty, ent, C.int(DictIgnoreSuffix))
		if ent == nil {
			return
		}
		fn(C.GoString(ent.key), C.GoString(ent.value))
	}
}

// DictFree calls av_dict_free and clears *d.
func DictFree(d *Dictionary) {
	C.av_dict_free((**C.AVDictionary)(unsafe.Pointer(d)))
}
