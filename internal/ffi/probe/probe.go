// Package probe reads FFmpeg macros and struct fields directly, without going
// through the moonfire_ffmpeg shim. Tests use it as the reference the shim's
// exported values and accessors are compared against; go test does not allow
// cgo in _test.go files.
//
// The package deliberately does not import internal/ffi. Handles are passed
// as unsafe.Pointer.
package probe

/*
#cgo pkg-config: libavcodec libavformat libavutil libswscale

#include <errno.h>
#include <stdlib.h>
#include <string.h>
#include <libavcodec/avcodec.h>
#include <libavformat/avformat.h>
#include <libavutil/avutil.h>
#include <libavutil/dict.h>
#include <libavutil/frame.h>

#if LIBAVFORMAT_VERSION_INT >= AV_VERSION_INT(57, 33, 100)
#define PROBE_HAVE_CODECPAR 1
#include <libswscale/swscale.h>
#else
#define PROBE_HAVE_CODECPAR 0
#endif

#ifndef AV_INPUT_BUFFER_PADDING_SIZE
#define AV_INPUT_BUFFER_PADDING_SIZE FF_INPUT_BUFFER_PADDING_SIZE
#endif

static void probe_log(void *avcl, int level, const char *msg) {
	av_log(avcl, level, "%s", msg);
}

typedef struct {
	int libavcodec_version;
	int libavformat_version;
	int libavutil_version;
	int libswscale_version;
	int dict_ignore_suffix;
	int64_t nopts_value;
	int media_type_video;
	int codec_id_h264;
	int error_decoder_not_found;
	int error_eof;
	int error_enomem;
	int error_unknown;
	int pix_fmt_rgb24;
	int pix_fmt_bgr24;
	int pix_fmt_yuv420p;
	int sws_bilinear;
	int pkt_flag_key;
	int have_codecpar;
} probe_macros;

static probe_macros probe_read_macros(void) {
	probe_macros m = {
		.libavcodec_version = LIBAVCODEC_VERSION_INT,
		.libavformat_version = LIBAVFORMAT_VERSION_INT,
		.libavutil_version = LIBAVUTIL_VERSION_INT,
#if PROBE_HAVE_CODECPAR
		.libswscale_version = LIBSWSCALE_VERSION_INT,
		.sws_bilinear = SWS_BILINEAR,
#else
		.libswscale_version = 0,
		.sws_bilinear = -1,
#endif
		.dict_ignore_suffix = AV_DICT_IGNORE_SUFFIX,
		.nopts_value = AV_NOPTS_VALUE,
		.media_type_video = AVMEDIA_TYPE_VIDEO,
		.codec_id_h264 = AV_CODEC_ID_H264,
		.error_decoder_not_found = AVERROR_DECODER_NOT_FOUND,
		.error_eof = AVERROR_EOF,
		.error_enomem = AVERROR(ENOMEM),
		.error_unknown = AVERROR_UNKNOWN,
		.pix_fmt_rgb24 = AV_PIX_FMT_RGB24,
		.pix_fmt_bgr24 = AV_PIX_FMT_BGR24,
		.pix_fmt_yuv420p = AV_PIX_FMT_YUV420P,
		.pkt_flag_key = AV_PKT_FLAG_KEY,
		.have_codecpar = PROBE_HAVE_CODECPAR,
	};
	return m;
}

static void probe_set_packet_flags(void *p, int flags) { ((AVPacket *)p)->flags = flags; }
static int probe_packet_flags(void *p) { return ((AVPacket *)p)->flags; }
static void probe_set_packet_stream_index(void *p, int i) { ((AVPacket *)p)->stream_index = i; }
static int64_t probe_packet_pts(void *p) { return ((AVPacket *)p)->pts; }
static int64_t probe_packet_dts(void *p) { return ((AVPacket *)p)->dts; }
static int64_t probe_packet_duration(void *p) { return ((AVPacket *)p)->duration; }
static void *probe_packet_data(void *p) { return ((AVPacket *)p)->data; }
static int probe_packet_size(void *p) { return ((AVPacket *)p)->size; }
static int probe_packet_stream_index(void *p) { return ((AVPacket *)p)->stream_index; }

// av_new_packet resets timestamps and flags, so callers set the payload first.
static int probe_set_packet_payload(void *p, const void *src, int size) {
	AVPacket *pkt = p;
	int ret = av_new_packet(pkt, size);
	if (ret < 0)
		return ret;
	if (size > 0)
		memcpy(pkt->data, src, size);
	return 0;
}

static int probe_set_extradata(uint8_t **dst, int *dst_size, const void *src, int size) {
	av_freep(dst);
	*dst_size = 0;
	*dst = av_mallocz(size + AV_INPUT_BUFFER_PADDING_SIZE);
	if (*dst == NULL)
		return AVERROR(ENOMEM);
	if (size > 0)
		memcpy(*dst, src, size);
	*dst_size = size;
	return 0;
}

static int probe_set_cctx_extradata(void *p, const void *src, int size) {
	AVCodecContext *ctx = p;
	return probe_set_extradata(&ctx->extradata, &ctx->extradata_size, src, size);
}
static void *probe_cctx_extradata(void *p) { return ((AVCodecContext *)p)->extradata; }
static int probe_cctx_extradata_size(void *p) { return ((AVCodecContext *)p)->extradata_size; }

static void probe_set_cctx_codec(void *p, int codec_id, int codec_type) {
	AVCodecContext *ctx = p;
	ctx->codec_id = codec_id;
	ctx->codec_type = codec_type;
}

typedef struct {
	int width;
	int height;
	int pix_fmt;
	int sar_num;
	int sar_den;
	int tb_num;
	int tb_den;
} probe_video;

static probe_video probe_cctx_video(void *p) {
	AVCodecContext *ctx = p;
	probe_video v = {
		.width = ctx->width,
		.height = ctx->height,
		.pix_fmt = ctx->pix_fmt,
		.sar_num = ctx->sample_aspect_ratio.num,
		.sar_den = ctx->sample_aspect_ratio.den,
		.tb_num = ctx->time_base.num,
		.tb_den = ctx->time_base.den,
	};
	return v;
}

static void probe_set_cctx_video(void *p, probe_video v) {
	AVCodecContext *ctx = p;
	ctx->width = v.width;
	ctx->height = v.height;
	ctx->pix_fmt = v.pix_fmt;
	ctx->sample_aspect_ratio = (AVRational){v.sar_num, v.sar_den};
	ctx->time_base = (AVRational){v.tb_num, v.tb_den};
}

static void probe_set_stream_timing(void *p, int tb_num, int tb_den, int64_t duration) {
	AVStream *s = p;
	s->time_base = (AVRational){tb_num, tb_den};
	s->duration = duration;
}

// Writes the stream's codec description into codecpar, or into the per-stream
// codec context on releases without codecpar.
static int probe_set_stream_codec(void *p, int codec_id, int codec_type,
                                  int width, int height, int pix_fmt,
                                  const void *extradata, int extradata_size) {
	AVStream *s = p;
#if PROBE_HAVE_CODECPAR
	AVCodecParameters *par = s->codecpar;
	par->codec_id = codec_id;
	par->codec_type = codec_type;
	par->width = width;
	par->height = height;
	par->format = pix_fmt;
	return probe_set_extradata(&par->extradata, &par->extradata_size, extradata, extradata_size);
#else
	AVCodecContext *ctx = s->codec;
	ctx->codec_id = codec_id;
	ctx->codec_type = codec_type;
	ctx->width = width;
	ctx->height = height;
	ctx->pix_fmt = pix_fmt;
	return probe_set_extradata(&ctx->extradata, &ctx->extradata_size, extradata, extradata_size);
#endif
}

static int probe_fctx_has_pb(void *p) { return ((AVFormatContext *)p)->pb != NULL; }
static unsigned probe_fctx_nb_streams(void *p) { return ((AVFormatContext *)p)->nb_streams; }

typedef struct {
	int width;
	int height;
	int format;
	int64_t pts;
	uint8_t *data0;
	int linesize0;
} probe_frame;

static probe_frame probe_read_frame(void *p) {
	AVFrame *f = p;
	probe_frame r = {
		.width = f->width,
		.height = f->height,
		.format = f->format,
		.pts = f->pts,
		.data0 = f->data[0],
		.linesize0 = f->linesize[0],
	};
	return r;
}

static void probe_set_frame_pts(void *p, int64_t pts) { ((AVFrame *)p)->pts = pts; }
static void probe_set_frame_dims(void *p, int width, int height, int format) {
	AVFrame *f = p;
	f->width = width;
	f->height = height;
	f->format = format;
}
*/
import "C"

import "unsafe"

// Macros holds FFmpeg macro values as evaluated against the build host's
// headers.
type Macros struct {
	LibavcodecVersion  int
	LibavformatVersion int
	LibavutilVersion   int
	LibswscaleVersion  int

	DictIgnoreSuffix int
	NoPTSValue       int64
	MediaTypeVideo   int
	CodecIDH264      int

	ErrorDecoderNotFound int
	ErrorEOF             int
	ErrorENOMEM          int
	ErrorUnknown         int

	PixFmtRGB24   int
	PixFmtBGR24   int
	PixFmtYUV420P int

	// SwsBilinear is -1 without swscale.
	SwsBilinear int
	PktFlagKey  int

	HaveCodecPar bool
}

// ReadMacros evaluates the macros.
func ReadMacros() Macros {
	m := C.probe_read_macros()
	return Macros{
		LibavcodecVersion:    int(m.libavcodec_version),
		LibavformatVersion:   int(m.libavformat_version),
		LibavutilVersion:     int(m.libavutil_version),
		LibswscaleVersion:    int(m.libswscale_version),
		DictIgnoreSuffix:     int(m.dict_ignore_suffix),
		NoPTSValue:           int64(m.nopts_value),
		MediaTypeVideo:       int(m.media_type_video),
		CodecIDH264:          int(m.codec_id_h264),
		ErrorDecoderNotFound: int(m.error_decoder_not_found),
		ErrorEOF:             int(m.error_eof),
		ErrorENOMEM:          int(m.error_enomem),
		ErrorUnknown:         int(m.error_unknown),
		PixFmtRGB24:          int(m.pix_fmt_rgb24),
		PixFmtBGR24:          int(m.pix_fmt_bgr24),
		PixFmtYUV420P:        int(m.pix_fmt_yuv420p),
		SwsBilinear:          int(m.sws_bilinear),
		PktFlagKey:           int(m.pkt_flag_key),
		HaveCodecPar:         m.have_codecpar != 0,
	}
}

// PacketFields are an AVPacket's fields as stored.
type PacketFields struct {
	PTS         int64
	DTS         int64
	Duration    int64
	StreamIndex int
	Flags       int
	Data        unsafe.Pointer
	Size        int
}

func ReadPacket(pkt unsafe.Pointer) PacketFields {
	return PacketFields{
		PTS:         int64(C.probe_packet_pts(pkt)),
		DTS:         int64(C.probe_packet_dts(pkt)),
		Duration:    int64(C.probe_packet_duration(pkt)),
		StreamIndex: int(C.probe_packet_stream_index(pkt)),
		Flags:       int(C.probe_packet_flags(pkt)),
		Data:        C.probe_packet_data(pkt),
		Size:        int(C.probe_packet_size(pkt)),
	}
}

func SetPacketFlags(pkt unsafe.Pointer, flags int) {
	C.probe_set_packet_flags(pkt, C.int(flags))
}

func SetPacketStreamIndex(pkt unsafe.Pointer, i int) {
	C.probe_set_packet_stream_index(pkt, C.int(i))
}

// SetPacketPayload attaches a refcounted copy of b with av_new_packet. This
// resets the packet's timestamps and flags. Release it with av_packet_unref.
func SetPacketPayload(pkt unsafe.Pointer, b []byte) int {
	return int(C.probe_set_packet_payload(pkt, bytesPtr(b), C.int(len(b))))
}

// SetCodecContextExtradata replaces the codec context's extradata with a
// padded copy of b.
func SetCodecContextExtradata(ctx unsafe.Pointer, b []byte) int {
	return int(C.probe_set_cctx_extradata(ctx, bytesPtr(b), C.int(len(b))))
}

// CodecContextExtradata returns the extradata pointer and size as stored.
func CodecContextExtradata(ctx unsafe.Pointer) (unsafe.Pointer, int) {
	return unsafe.Pointer(C.probe_cctx_extradata(ctx)), int(C.probe_cctx_extradata_size(ctx))
}

func SetCodecContextCodec(ctx unsafe.Pointer, codecID, codecType int) {
	C.probe_set_cctx_codec(ctx, C.int(codecID), C.int(codecType))
}

// Video is the subset of AVCodecContext covered by the video-parameter
// bundle.
type Video struct {
	Width, Height  int
	PixFmt         int
	SARNum, SARDen int
	TBNum, TBDen   int
}

func ReadCodecContextVideo(ctx unsafe.Pointer) Video {
	v := C.probe_cctx_video(ctx)
	return Video{
		Width:  int(v.width),
		Height: int(v.height),
		PixFmt: int(v.pix_fmt),
		SARNum: int(v.sar_num),
		SARDen: int(v.sar_den),
		TBNum:  int(v.tb_num),
		TBDen:  int(v.tb_den),
	}
}

func SetCodecContextVideo(ctx unsafe.Pointer, v Video) {
	C.probe_set_cctx_video(ctx, C.probe_video{
		width:   C.int(v.Width),
		height:  C.int(v.Height),
		pix_fmt: C.int(v.PixFmt),
		sar_num: C.int(v.SARNum),
		sar_den: C.int(v.SARDen),
		tb_num:  C.int(v.TBNum),
		tb_den:  C.int(v.TBDen),
	})
}

func SetStreamTiming(stream unsafe.Pointer, tbNum, tbDen int, duration int64) {
	C.probe_set_stream_timing(stream, C.int(tbNum), C.int(tbDen), C.int64_t(duration))
}

// StreamCodec describes a stream's codec.
type StreamCodec struct {
	CodecID   int
	CodecType int
	Width     int
	Height    int
	PixFmt    int
	Extradata []byte
}

// SetStreamCodec writes c into the stream's codec parameters, or into its
// codec context on releases without codecpar.
func SetStreamCodec(stream unsafe.Pointer, c StreamCodec) int {
	return int(C.probe_set_stream_codec(stream, C.int(c.CodecID), C.int(c.CodecType),
		C.int(c.Width), C.int(c.Height), C.int(c.PixFmt),
		bytesPtr(c.Extradata), C.int(len(c.Extradata))))
}

func FormatContextHasPB(ctx unsafe.Pointer) bool {
	return C.probe_fctx_has_pb(ctx) != 0
}

func FormatContextNumStreams(ctx unsafe.Pointer) int {
	return int(C.probe_fctx_nb_streams(ctx))
}

// FrameFields are an AVFrame's fields as stored.
type FrameFields struct {
	Width     int
	Height    int
	Format    int
	PTS       int64
	Data0     unsafe.Pointer
	Linesize0 int
}

func ReadFrame(f unsafe.Pointer) FrameFields {
	r := C.probe_read_frame(f)
	return FrameFields{
		Width:     int(r.width),
		Height:    int(r.height),
		Format:    int(r.format),
		PTS:       int64(r.pts),
		Data0:     unsafe.Pointer(r.data0),
		Linesize0: int(r.linesize0),
	}
}

func SetFramePTS(f unsafe.Pointer, pts int64) {
	C.probe_set_frame_pts(f, C.int64_t(pts))
}

func SetFrameDims(f unsafe.Pointer, width, height, format int) {
	C.probe_set_frame_dims(f, C.int(width), C.int(height), C.int(format))
}

// Log writes msg through av_log as a single call. ctx may be nil or any
// FFmpeg object whose first member is an AVClass pointer.
func Log(ctx unsafe.Pointer, level int, msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.probe_log(ctx, C.int(level), cmsg)
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
