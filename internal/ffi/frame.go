package ffi

/*
#include <stdlib.h>
#include <libavutil/imgutils.h>
#include <libavutil/pixdesc.h>
#include "moonfire_ffmpeg.h"

static void moonfire_go_frame_free_image(AVFrame *f) {
	av_freep(&f->data[0]);
	for (int i = 0; i < AV_NUM_DATA_POINTERS; i++) {
		f->data[i] = NULL;
		f->linesize[i] = 0;
	}
}

// Allocates the new image before releasing the old one, so a failure
// leaves the frame as it was.
static int moonfire_go_frame_replace_image(AVFrame *f,
		const struct moonfire_ffmpeg_image_dimensions *dims) {
	uint8_t *data[4];
	int linesize[4];
	int r = av_image_alloc(data, linesize, dims->width, dims->height, dims->pix_fmt, 32);
	if (r < 0)
		return r;
	moonfire_go_frame_free_image(f);
	for (int i = 0; i < 4; i++) {
		f->data[i] = data[i];
		f->linesize[i] = linesize[i];
	}
	f->width = dims->width;
	f->height = dims->height;
	f->format = dims->pix_fmt;
	return r;
}

static int moonfire_go_chroma_shift(int pix_fmt, int *w, int *h) {
	const AVPixFmtDescriptor *desc = av_pix_fmt_desc_get(pix_fmt);
	if (desc == NULL)
		return -1;
	*w = desc->log2_chroma_w;
	*h = desc->log2_chroma_h;
	return 0;
}
*/
import "C"

import "unsafe"

// FrameImageAlloc allocates image planes for dims with 32-byte alignment.
// On success the frame's width, height and format are set and the buffer
// size is returned; on failure the negative FFmpeg code is returned and the
// frame is untouched. The planes must be released with FrameFreeImage.
func FrameImageAlloc(f Frame, dims ImageDimensions) int {
	return int(C.moonfire_ffmpeg_frame_image_alloc((*C.AVFrame)(f),
		(*C.struct_moonfire_ffmpeg_image_dimensions)(unsafe.Pointer(&dims))))
}

// FrameStuff reads dimensions, plane pointers, line sizes and PTS.
func FrameStuff(f Frame) FrameSnapshot {
	var s FrameSnapshot
	C.moonfire_ffmpeg_frame_stuff((*C.AVFrame)(f),
		(*C.struct_moonfire_ffmpeg_frame_stuff)(unsafe.Pointer(&s)))
	return s
}

// FrameAlloc calls av_frame_alloc. Returns nil on allocation failure.
func FrameAlloc() Frame {
	return Frame(C.av_frame_alloc())
}

// FrameFree calls av_frame_free and clears *f.
func FrameFree(f *Frame) {
	C.av_frame_free((**C.AVFrame)(unsafe.Pointer(f)))
}

// FrameReplaceImage is FrameImageAlloc for a frame that may already hold an
// image from FrameImageAlloc. The old planes are released only once the new
// ones are allocated; on failure the frame, old image included, is untouched.
func FrameReplaceImage(f Frame, dims ImageDimensions) int {
	return int(C.moonfire_go_frame_replace_image((*C.AVFrame)(f),
		(*C.struct_moonfire_ffmpeg_image_dimensions)(unsafe.Pointer(&dims))))
}

// FrameFreeImage releases planes allocated by FrameImageAlloc and clears every
// plane pointer and line size. av_image_alloc places every plane in the single
// buffer starting at data[0].
func FrameFreeImage(f Frame) {
	C.moonfire_go_frame_free_image((*C.AVFrame)(f))
}

// PixFmtChromaShift returns log2 of the horizontal and vertical chroma
// subsampling of pixFmt. ok is false for unknown formats.
func PixFmtChromaShift(pixFmt int) (w, h int, ok bool) {
	var cw, ch C.int
	if C.moonfire_go_chroma_shift(C.int(pixFmt), &cw, &ch) != 0 {
		return 0, 0, false
	}
	return int(cw), int(ch), true
}

// PixFmtFromName calls av_get_pix_fmt. Returns -1 (AV_PIX_FMT_NONE) for
// unknown names.
func PixFmtFromName(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.av_get_pix_fmt(cname))
}
