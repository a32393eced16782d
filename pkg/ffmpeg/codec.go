package ffmpeg

import "github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"

// CodecParameters is a stream's codec description, owned by the stream.
type CodecParameters struct {
	p ffi.CodecParameters
}

func (c *CodecParameters) CodecID() CodecID      { return CodecID(ffi.CodecParCodecID(c.p)) }
func (c *CodecParameters) MediaType() MediaType  { return MediaType(ffi.CodecParCodecType(c.p)) }
func (c *CodecParameters) Dims() ImageDimensions { return dimsFrom(ffi.CodecParDims(c.p)) }

// Extradata returns the codec's out-of-band setup data, such as an H.264
// AVCDecoderConfigurationRecord. The slice aliases FFmpeg memory.
func (c *CodecParameters) Extradata() []byte {
	return ffi.CodecParExtradata(c.p).Bytes()
}

// CodecContext is a standalone codec context.
type CodecContext struct {
	c ffi.CodecContext
}

// NewCodecContext allocates a codec context with FFmpeg's defaults.
func NewCodecContext() (*CodecContext, error) {
	c := ffi.AllocCodecContext()
	if c == nil {
		return nil, ErrNoMemory
	}
	return &CodecContext{c: c}, nil
}

// Free releases the context. Safe to call twice.
func (c *CodecContext) Free() {
	if c.c != nil {
		ffi.FreeCodecContext(&c.c)
	}
}

func (c *CodecContext) Params() VideoParameters {
	p := ffi.CCtxParams(c.c)
	return VideoParameters{
		Width:             int(p.Width),
		Height:            int(p.Height),
		SampleAspectRatio: rationalFrom(p.SampleAspectRatio),
		PixelFormat:       PixelFormat(p.PixFmt),
		TimeBase:          rationalFrom(p.TimeBase),
	}
}

func (c *CodecContext) SetParams(p VideoParameters) {
	ffi.CCtxSetParams(c.c, ffi.VideoParameters{
		Width:             int32(p.Width),
		Height:            int32(p.Height),
		SampleAspectRatio: p.SampleAspectRatio.toFFI(),
		PixFmt:            int32(p.PixelFormat),
		TimeBase:          p.TimeBase.toFFI(),
	})
}

func (c *CodecContext) CodecID() CodecID         { return CodecID(ffi.CCtxCodecID(c.c)) }
func (c *CodecContext) MediaType() MediaType     { return MediaType(ffi.CCtxCodecType(c.c)) }
func (c *CodecContext) Width() int               { return ffi.CCtxWidth(c.c) }
func (c *CodecContext) Height() int              { return ffi.CCtxHeight(c.c) }
func (c *CodecContext) PixelFormat() PixelFormat { return PixelFormat(ffi.CCtxPixFmt(c.c)) }

// Extradata aliases FFmpeg memory.
func (c *CodecContext) Extradata() []byte {
	return ffi.CCtxExtradata(c.c).Bytes()
}
