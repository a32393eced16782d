package ffmpeg

import (
	"errors"
	"fmt"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// Error is a negative FFmpeg (AVERROR) return code.
type Error int

// Common errors. The codes depend on the FFmpeg headers, so these are
// variables.
var (
	ErrEOF             = Error(ffi.AVErrorEOF)
	ErrNoMemory        = Error(ffi.AVErrorENOMEM)
	ErrDecoderNotFound = Error(ffi.AVErrorDecoderNotFound)
	ErrUnknown         = Error(ffi.AVErrorUnknown)

	ErrIncompatibleVersion = errors.New("incompatible ffmpeg versions")
)

// Error formats the code with av_strerror.
func (e Error) Error() string {
	return ffi.Strerror(int(e))
}

// Code returns the raw AVERROR value.
func (e Error) Code() int {
	return int(e)
}

// GoString keeps %#v readable.
func (e Error) GoString() string {
	return fmt.Sprintf("ffmpeg.Error(%d)", int(e))
}

// wrap turns a negative return into an Error and passes anything else
// through as nil.
func wrap(ret int) error {
	if ret < 0 {
		return Error(ret)
	}
	return nil
}
