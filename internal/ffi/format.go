package ffi

/*
#include <stdlib.h>
#include "moonfire_ffmpeg.h"
*/
import "C"

import "unsafe"

// FCtxStreams borrows the format context's stream array.
func FCtxStreams(ctx FormatContext) Streams {
	s := C.moonfire_ffmpeg_fctx_streams((*C.AVFormatContext)(ctx))
	return *(*Streams)(unsafe.Pointer(&s))
}

// FCtxOpenWrite opens url for writing into ctx->pb. Returns FFmpeg's code.
func FCtxOpenWrite(ctx FormatContext, url string) int {
	curl := C.CString(url)
	defer C.free(unsafe.Pointer(curl))
	return int(C.moonfire_ffmpeg_fctx_open_write((*C.AVFormatContext)(ctx), curl))
}

// FCtxCloseWrite closes and clears ctx->pb.
func FCtxCloseWrite(ctx FormatContext) int {
	return int(C.moonfire_ffmpeg_fctx_close_write((*C.AVFormatContext)(ctx)))
}

// AllocOutputContext calls avformat_alloc_output_context2. An empty
// formatName lets FFmpeg guess from filename.
func AllocOutputContext(formatName, filename string) (FormatContext, int) {
	var cformat *C.char
	if formatName != "" {
		cformat = C.CString(formatName)
		defer C.free(unsafe.Pointer(cformat))
	}
	cfilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cfilename))

	var ctx *C.AVFormatContext
	ret := C.avformat_alloc_output_context2(&ctx, nil, cformat, cfilename)
	return FormatContext(ctx), int(ret)
}

// NewStream calls avformat_new_stream with no codec. Returns nil on failure.
func NewStream(ctx FormatContext) Stream {
	return Stream(C.avformat_new_stream((*C.AVFormatContext)(ctx), nil))
}

// FreeFormatContext calls avformat_free_context.
func FreeFormatContext(ctx FormatContext) {
	C.avformat_free_context((*C.AVFormatContext)(ctx))
}
