package ffmpeg

import "github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"

// Stream is a stream owned by a format context.
type Stream struct {
	s ffi.Stream
}

func (s *Stream) TimeBase() Rational { return rationalFrom(ffi.StreamTimeBase(s.s)) }

// Duration is in TimeBase units.
func (s *Stream) Duration() int64 { return ffi.StreamDuration(s.s) }

// CodecInfo describes the stream's codec, whichever way the FFmpeg release
// stores it.
func (s *Stream) CodecInfo() *CodecParameters {
	return &CodecParameters{p: ffi.StreamCodecPar(s.s)}
}
