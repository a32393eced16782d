package ffi

/*
#include <libavutil/log.h>

void moonfire_go_log_bridge_install(int enable);
*/
import "C"

import "sync/atomic"

// FFmpeg log levels (AV_LOG_*).
const (
	LogQuiet   = int(C.AV_LOG_QUIET)
	LogPanic   = int(C.AV_LOG_PANIC)
	LogFatal   = int(C.AV_LOG_FATAL)
	LogError   = int(C.AV_LOG_ERROR)
	LogWarning = int(C.AV_LOG_WARNING)
	LogInfo    = int(C.AV_LOG_INFO)
	LogVerbose = int(C.AV_LOG_VERBOSE)
	LogDebug   = int(C.AV_LOG_DEBUG)
	LogTrace   = int(C.AV_LOG_TRACE)
)

// LogFunc receives one formatted FFmpeg log line, possibly from an FFmpeg
// worker thread.
type LogFunc func(level int, line string)

var logFunc atomic.Pointer[LogFunc]

// SetLogLevel calls av_log_set_level.
func SetLogLevel(level int) {
	C.av_log_set_level(C.int(level))
}

// LogLevel calls av_log_get_level.
func LogLevel() int {
	return int(C.av_log_get_level())
}

// SetLogCallback routes FFmpeg's log output to fn. Lines above the current
// LogLevel are dropped before formatting. A nil fn restores FFmpeg's default
// callback.
func SetLogCallback(fn LogFunc) {
	if fn == nil {
		C.moonfire_go_log_bridge_install(0)
		logFunc.Store(nil)
		return
	}
	logFunc.Store(&fn)
	C.moonfire_go_log_bridge_install(1)
}

func dispatchLog(level int, line string) {
	if fn := logFunc.Load(); fn != nil {
		(*fn)(level, line)
	}
}
