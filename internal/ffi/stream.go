package ffi

/*
#include "moonfire_ffmpeg.h"

static void *moonfire_go_stream_codecpar(AVStream *s) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_stream_codecpar(s);
#else
	return moonfire_ffmpeg_stream_codec(s);
#endif
}
*/
import "C"

import "unsafe"

func StreamTimeBase(s Stream) Rational {
	r := C.moonfire_ffmpeg_stream_time_base((*C.AVStream)(s))
	return *(*Rational)(unsafe.Pointer(&r))
}

func StreamDuration(s Stream) int64 {
	return int64(C.moonfire_ffmpeg_stream_duration((*C.AVStream)(s)))
}

// StreamCodecPar returns the stream's codec parameters: stream->codecpar, or
// stream->codec on releases without codecpar.
func StreamCodecPar(s Stream) CodecParameters {
	return CodecParameters(C.moonfire_go_stream_codecpar((*C.AVStream)(s)))
}
