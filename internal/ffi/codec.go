package ffi

/*
#include "moonfire_ffmpeg.h"

static struct moonfire_ffmpeg_data moonfire_go_codecpar_extradata(void *p) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_codecpar_extradata(p);
#else
	return moonfire_ffmpeg_cctx_extradata(p);
#endif
}

static int moonfire_go_codecpar_codec_id(void *p) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_codecpar_codec_id(p);
#else
	return moonfire_ffmpeg_cctx_codec_id(p);
#endif
}

static int moonfire_go_codecpar_codec_type(void *p) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_codecpar_codec_type(p);
#else
	return moonfire_ffmpeg_cctx_codec_type(p);
#endif
}

static struct moonfire_ffmpeg_image_dimensions moonfire_go_codecpar_dims(void *p) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_codecpar_dims(p);
#else
	struct moonfire_ffmpeg_image_dimensions d = {
		.width = moonfire_ffmpeg_cctx_width(p),
		.height = moonfire_ffmpeg_cctx_height(p),
		.pix_fmt = moonfire_ffmpeg_cctx_pix_fmt(p),
	};
	return d;
#endif
}
*/
import "C"

import "unsafe"

// CCtxParams reads width, height, sample aspect ratio, pixel format and time
// base as one bundle.
func CCtxParams(ctx CodecContext) VideoParameters {
	var p VideoParameters
	C.moonfire_ffmpeg_cctx_params((*C.AVCodecContext)(ctx),
		(*C.struct_moonfire_ffmpeg_video_parameters)(unsafe.Pointer(&p)))
	return p
}

// CCtxSetParams writes the bundle read by CCtxParams.
func CCtxSetParams(ctx CodecContext, p VideoParameters) {
	C.moonfire_ffmpeg_cctx_set_params((*C.AVCodecContext)(ctx),
		(*C.struct_moonfire_ffmpeg_video_parameters)(unsafe.Pointer(&p)))
}

func CCtxCodecID(ctx CodecContext) int {
	return int(C.moonfire_ffmpeg_cctx_codec_id((*C.AVCodecContext)(ctx)))
}

func CCtxCodecType(ctx CodecContext) int {
	return int(C.moonfire_ffmpeg_cctx_codec_type((*C.AVCodecContext)(ctx)))
}

func CCtxWidth(ctx CodecContext) int {
	return int(C.moonfire_ffmpeg_cctx_width((*C.AVCodecContext)(ctx)))
}

func CCtxHeight(ctx CodecContext) int {
	return int(C.moonfire_ffmpeg_cctx_height((*C.AVCodecContext)(ctx)))
}

func CCtxPixFmt(ctx CodecContext) int {
	return int(C.moonfire_ffmpeg_cctx_pix_fmt((*C.AVCodecContext)(ctx)))
}

// CCtxExtradata borrows the codec context's extradata.
func CCtxExtradata(ctx CodecContext) Data {
	d := C.moonfire_ffmpeg_cctx_extradata((*C.AVCodecContext)(ctx))
	return *(*Data)(unsafe.Pointer(&d))
}

// AllocCodecContext calls avcodec_alloc_context3 with no codec. Returns nil
// on allocation failure.
func AllocCodecContext() CodecContext {
	return CodecContext(C.avcodec_alloc_context3(nil))
}

// FreeCodecContext calls avcodec_free_context and clears *ctx.
func FreeCodecContext(ctx *CodecContext) {
	C.avcodec_free_context((**C.AVCodecContext)(unsafe.Pointer(ctx)))
}

func CodecParCodecID(p CodecParameters) int {
	return int(C.moonfire_go_codecpar_codec_id(unsafe.Pointer(p)))
}

func CodecParCodecType(p CodecParameters) int {
	return int(C.moonfire_go_codecpar_codec_type(unsafe.Pointer(p)))
}

// CodecParDims reads width, height and pixel format.
func CodecParDims(p CodecParameters) ImageDimensions {
	d := C.moonfire_go_codecpar_dims(unsafe.Pointer(p))
	return *(*ImageDimensions)(unsafe.Pointer(&d))
}

// CodecParExtradata borrows the parameters' extradata.
func CodecParExtradata(p CodecParameters) Data {
	d := C.moonfire_go_codecpar_extradata(unsafe.Pointer(p))
	return *(*Data)(unsafe.Pointer(&d))
}
