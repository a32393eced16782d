// Package ffi binds the moonfire_ffmpeg C shim.
//
// The shim (moonfire_ffmpeg.c) is compiled against whichever FFmpeg headers
// pkg-config finds and exposes a flat C ABI whose layouts do not move between
// FFmpeg releases. Every function here is a one-to-one call into that ABI;
// safe wrappers live in pkg/ffmpeg.
package ffi

/*
// libswscale is linked in both variants; only the codecpar variant includes
// its header.
#cgo pkg-config: libavcodec libavformat libavutil libswscale
#cgo LDFLAGS: -lpthread

#include "moonfire_ffmpeg.h"

static int moonfire_go_running_libswscale_version(void) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return swscale_version();
#else
	return 0;
#endif
}

static void moonfire_go_register_all(void) {
#if LIBAVFORMAT_VERSION_INT < AV_VERSION_INT(58, 9, 100)
	av_register_all();
#endif
}
*/
import "C"

import "sync"

var initOnce sync.Once

// Init runs moonfire_ffmpeg_init exactly once per process. On releases that
// need it, this registers the pthread lock manager; a registration failure
// aborts the process.
func Init() {
	initOnce.Do(func() {
		C.moonfire_ffmpeg_init()
	})
}

// UsesLockManager reports whether the shim was compiled with the lock manager.
func UsesLockManager() bool {
	return C.moonfire_ffmpeg_uses_lockmgr != 0
}

// HasCodecParameters reports whether the shim was compiled against headers
// with per-stream AVCodecParameters.
func HasCodecParameters() bool {
	return C.moonfire_ffmpeg_has_codecpar != 0
}

// RegisterAll calls av_register_all on releases that still require it.
func RegisterAll() {
	C.moonfire_go_register_all()
}

// NetworkInit calls avformat_network_init.
func NetworkInit() int {
	return int(C.avformat_network_init())
}

// Packed versions of the libraries the process is actually running with.
// These are compared against the Compiled* constants.

func RunningLibavcodecVersion() int  { return int(C.avcodec_version()) }
func RunningLibavformatVersion() int { return int(C.avformat_version()) }
func RunningLibavutilVersion() int   { return int(C.avutil_version()) }

// RunningLibswscaleVersion returns 0 when swscale is not part of the build.
func RunningLibswscaleVersion() int { return int(C.moonfire_go_running_libswscale_version()) }

// Strerror formats an AVERROR code. av_strerror always NUL-terminates.
func Strerror(code int) string {
	var buf [64]C.char
	C.av_strerror(C.int(code), &buf[0], C.size_t(len(buf)))
	return C.GoString(&buf[0])
}

// PixFmtName returns FFmpeg's name for a pixel format, or "" if unknown.
func PixFmtName(pixFmt int) string {
	name := C.av_get_pix_fmt_name(C.enum_AVPixelFormat(pixFmt))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

