package ffmpeg

import (
	"fmt"
	"unsafe"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// Frame is a decoded picture.
type Frame struct {
	f        ffi.Frame
	hasImage bool
}

// Plane is one plane of a frame's picture. Data aliases the frame's buffer.
type Plane struct {
	Data     []byte
	Linesize int
	Width    int
	Height   int
}

// FrameSnapshot is a frame's dimensions and timestamp at one point in time.
type FrameSnapshot struct {
	ImageDimensions
	PTS int64
}

// NewFrame allocates an empty frame.
func NewFrame() (*Frame, error) {
	f := ffi.FrameAlloc()
	if f == nil {
		return nil, ErrNoMemory
	}
	return &Frame{f: f}, nil
}

// AllocImage allocates 32-byte-aligned planes for dims and sets the frame's
// size and format, replacing any image allocated earlier. On failure the frame
// is unchanged and keeps its previous image.
func (f *Frame) AllocImage(dims ImageDimensions) error {
	d := ffi.ImageDimensions{
		Width:  int32(dims.Width),
		Height: int32(dims.Height),
		PixFmt: int32(dims.PixelFormat),
	}
	var ret int
	if f.hasImage {
		ret = ffi.FrameReplaceImage(f.f, d)
	} else {
		ret = ffi.FrameImageAlloc(f.f, d)
	}
	if err := wrap(ret); err != nil {
		return fmt.Errorf("alloc %dx%d %s image: %w", dims.Width, dims.Height, dims.PixelFormat, err)
	}
	f.hasImage = true
	return nil
}

func (f *Frame) Snapshot() FrameSnapshot {
	s := ffi.FrameStuff(f.f)
	return FrameSnapshot{ImageDimensions: dimsFrom(s.Dims), PTS: s.PTS}
}

// Plane returns plane i of the picture. Chroma planes account for the pixel
// format's subsampling. Plane panics if i is out of range or the plane is
// empty, or if the frame has no size.
func (f *Frame) Plane(i int) Plane {
	if i < 0 || i >= ffi.NumDataPointers {
		panic(fmt.Sprintf("ffmpeg: plane %d out of range", i))
	}
	s := ffi.FrameStuff(f.f)
	d := s.Planes()[i]
	l := int(s.LineSizes()[i])
	if d == nil || l <= 0 {
		panic(fmt.Sprintf("ffmpeg: plane %d is empty", i))
	}
	width, height := int(s.Dims.Width), int(s.Dims.Height)
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("ffmpeg: frame has no size (%dx%d)", width, height))
	}
	if i == 1 || i == 2 {
		if cw, ch, ok := ffi.PixFmtChromaShift(int(s.Dims.PixFmt)); ok {
			width = ceilShift(width, cw)
			height = ceilShift(height, ch)
		}
	}
	return Plane{
		Data:     unsafe.Slice(d, l*height),
		Linesize: l,
		Width:    width,
		Height:   height,
	}
}

// Free releases the image planes, if any, and the frame. Safe to call twice.
func (f *Frame) Free() {
	if f.f == nil {
		return
	}
	if f.hasImage {
		ffi.FrameFreeImage(f.f)
		f.hasImage = false
	}
	ffi.FrameFree(&f.f)
}

func ceilShift(v, shift int) int {
	return -((-v) >> shift)
}
