package ffi

/*
#include "moonfire_ffmpeg.h"

static int moonfire_go_sws_bilinear(void) {
#if MOONFIRE_FFMPEG_HAVE_CODECPAR
	return moonfire_ffmpeg_sws_bilinear;
#else
	return -1;
#endif
}
*/
import "C"

// Values exported by the shim. They depend on the FFmpeg headers the shim was
// compiled against, so they are only known at link time. Callers must use
// these rather than hardcoding FFmpeg's numbers.
var (
	CompiledLibavcodecVersion  = int(C.moonfire_ffmpeg_compiled_libavcodec_version)
	CompiledLibavformatVersion = int(C.moonfire_ffmpeg_compiled_libavformat_version)
	CompiledLibavutilVersion   = int(C.moonfire_ffmpeg_compiled_libavutil_version)
	CompiledLibswscaleVersion  = int(C.moonfire_ffmpeg_compiled_libswscale_version)

	DictIgnoreSuffix = int(C.moonfire_ffmpeg_av_dict_ignore_suffix)

	NoPTSValue = int64(C.moonfire_ffmpeg_av_nopts_value)

	MediaTypeVideo = int(C.moonfire_ffmpeg_avmedia_type_video)

	CodecIDH264 = int(C.moonfire_ffmpeg_av_codec_id_h264)

	AVErrorDecoderNotFound = int(C.moonfire_ffmpeg_averror_decoder_not_found)
	AVErrorEOF             = int(C.moonfire_ffmpeg_averror_eof)
	AVErrorENOMEM          = int(C.moonfire_ffmpeg_averror_enomem)
	AVErrorUnknown         = int(C.moonfire_ffmpeg_averror_unknown)

	PixFmtRGB24 = int(C.moonfire_ffmpeg_pix_fmt_rgb24)
	PixFmtBGR24 = int(C.moonfire_ffmpeg_pix_fmt_bgr24)

	// SwsBilinear is -1 when the shim was built without swscale.
	SwsBilinear = int(C.moonfire_go_sws_bilinear())
)

// NumDataPointers is AV_NUM_DATA_POINTERS, the length of AVFrame's data and
// linesize arrays. It has been 8 in every release the shim supports.
const NumDataPointers = C.AV_NUM_DATA_POINTERS
