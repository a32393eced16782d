package ffmpeg

import (
	"fmt"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// PixelFormat is an AVPixelFormat value.
type PixelFormat int

var (
	PixelFormatRGB24 = PixelFormat(ffi.PixFmtRGB24)
	PixelFormatBGR24 = PixelFormat(ffi.PixFmtBGR24)
)

// ParsePixelFormat looks up a format by FFmpeg's name for it.
func ParsePixelFormat(name string) (PixelFormat, bool) {
	f := ffi.PixFmtFromName(name)
	if f < 0 {
		return 0, false
	}
	return PixelFormat(f), true
}

// String returns FFmpeg's name for the format, e.g. "rgb24".
func (f PixelFormat) String() string {
	if name := ffi.PixFmtName(int(f)); name != "" {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// MediaType is an AVMediaType value.
type MediaType int

func (t MediaType) IsVideo() bool { return int(t) == ffi.MediaTypeVideo }

// CodecID is an AVCodecID value.
type CodecID int

func (id CodecID) IsH264() bool { return int(id) == ffi.CodecIDH264 }

// Rational is a fraction such as a time base or aspect ratio.
type Rational struct {
	Num int
	Den int
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func rationalFrom(r ffi.Rational) Rational {
	return Rational{Num: int(r.Num), Den: int(r.Den)}
}

func (r Rational) toFFI() ffi.Rational {
	return ffi.Rational{Num: int32(r.Num), Den: int32(r.Den)}
}

// VideoParameters are the codec context fields copied as one bundle.
type VideoParameters struct {
	Width             int
	Height            int
	SampleAspectRatio Rational
	PixelFormat       PixelFormat
	TimeBase          Rational
}

// ImageDimensions describe a picture's size and format.
type ImageDimensions struct {
	Width       int
	Height      int
	PixelFormat PixelFormat
}

func dimsFrom(d ffi.ImageDimensions) ImageDimensions {
	return ImageDimensions{
		Width:       int(d.Width),
		Height:      int(d.Height),
		PixelFormat: PixelFormat(d.PixFmt),
	}
}
