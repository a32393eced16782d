package ffi

// #include "moonfire_ffmpeg.h"
import "C"

import "unsafe"

// LockOp selects a lock-manager operation. Values equal FFmpeg's AVLockOp.
type LockOp int

const (
	LockCreate  LockOp = C.MOONFIRE_FFMPEG_LOCK_CREATE
	LockObtain  LockOp = C.MOONFIRE_FFMPEG_LOCK_OBTAIN
	LockRelease LockOp = C.MOONFIRE_FFMPEG_LOCK_RELEASE
	LockDestroy LockOp = C.MOONFIRE_FFMPEG_LOCK_DESTROY
)

func (op LockOp) String() string {
	switch op {
	case LockCreate:
		return "create"
	case LockObtain:
		return "obtain"
	case LockRelease:
		return "release"
	case LockDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Lock performs op on the pthread mutex stored in *mutex, exactly as the
// registered lock-manager callback does. LockCreate stores a new mutex in
// *mutex and LockDestroy clears it. Returns 0, or -1 on any failure.
func Lock(mutex *unsafe.Pointer, op LockOp) int {
	return int(C.moonfire_ffmpeg_lock(mutex, C.int(op)))
}
