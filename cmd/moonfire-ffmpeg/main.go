package main

import "C"

import (
	"github.com/sirupsen/logrus"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
	"github.com/moonfire-nvr/moonfire-ffmpeg/pkg/ffmpeg"
)

func main() {} // Required for c-archive and c-shared build modes

// moonfire_ffmpeg_check_versions returns 0 if every running FFmpeg library is
// ABI-compatible with the headers the shim was compiled against, else -1.
// Incompatible libraries are logged.
//
//export moonfire_ffmpeg_check_versions
func moonfire_ffmpeg_check_versions() C.int {
	return C.int(checkVersions(logrus.StandardLogger()))
}

// moonfire_ffmpeg_uses_lock_manager returns 1 if moonfire_ffmpeg_init
// registers a lock manager with this FFmpeg build.
//
//export moonfire_ffmpeg_uses_lock_manager
func moonfire_ffmpeg_uses_lock_manager() C.int {
	if ffi.UsesLockManager() {
		return 1
	}
	return 0
}

func checkVersions(logger *logrus.Logger) int {
	if err := ffmpeg.CheckVersions(); err != nil {
		logger.WithFields(logrus.Fields{
			"function": "moonfire_ffmpeg_check_versions",
			"error":    err.Error(),
		}).Error("FFmpeg libraries are not ABI-compatible")
		return -1
	}
	return 0
}
