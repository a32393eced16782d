package ffi

import "unsafe"

// Opaque FFmpeg objects. Go code never dereferences these; fields are read
// and written only through the shim.
type (
	FormatContext unsafe.Pointer
	CodecContext  unsafe.Pointer
	Stream        unsafe.Pointer
	Packet        unsafe.Pointer
	Frame         unsafe.Pointer
	Dictionary    unsafe.Pointer

	// CodecParameters points at the stream's AVCodecParameters, or at its
	// AVCodecContext when the shim predates codecpar. The CodecPar*
	// functions dispatch accordingly.
	CodecParameters unsafe.Pointer
)

// Rational matches AVRational.
type Rational struct {
	Num int32
	Den int32
}

// Streams matches struct moonfire_ffmpeg_streams.
type Streams struct {
	Streams *Stream
	Len     uintptr
}

// Slice returns the stream pointers. The slice aliases the format context's
// array and is valid until streams are added or the context is freed.
func (s Streams) Slice() []Stream {
	if s.Streams == nil || s.Len == 0 {
		return nil
	}
	return unsafe.Slice(s.Streams, s.Len)
}

// Data matches struct moonfire_ffmpeg_data.
type Data struct {
	Data *byte
	Len  uintptr
}

// Bytes returns the span without copying, or nil if the pointer is NULL.
// The slice aliases FFmpeg-owned memory.
func (d Data) Bytes() []byte {
	if d.Data == nil {
		return nil
	}
	return unsafe.Slice(d.Data, d.Len)
}

// VideoParameters matches struct moonfire_ffmpeg_video_parameters.
type VideoParameters struct {
	Width             int32
	Height            int32
	SampleAspectRatio Rational
	PixFmt            int32
	TimeBase          Rational
}

// ImageDimensions matches struct moonfire_ffmpeg_image_dimensions.
type ImageDimensions struct {
	Width  int32
	Height int32
	PixFmt int32
}

// FrameSnapshot matches struct moonfire_ffmpeg_frame_stuff.
type FrameSnapshot struct {
	Dims      ImageDimensions
	Data      **byte
	Linesizes *int32
	PTS       int64
}

// Planes returns the frame's data pointers; unused entries are nil.
func (s FrameSnapshot) Planes() []*byte {
	if s.Data == nil {
		return nil
	}
	return unsafe.Slice(s.Data, NumDataPointers)
}

// LineSizes returns the frame's linesize array.
func (s FrameSnapshot) LineSizes() []int32 {
	if s.Linesizes == nil {
		return nil
	}
	return unsafe.Slice(s.Linesizes, NumDataPointers)
}
