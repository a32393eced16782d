package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/testutil"
)

func TestPixelFormat_String(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		want string
	}{
		{PixelFormatRGB24, "rgb24"},
		{PixelFormatBGR24, "bgr24"},
		{PixelFormat(testutil.PixFmtYUV420P()), "yuv420p"},
		{PixelFormat(-1), "PixelFormat(-1)"},
		{PixelFormat(1 << 20), "PixelFormat(1048576)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.String())
	}
}

func TestParsePixelFormat(t *testing.T) {
	f, ok := ParsePixelFormat("bgr24")
	assert.True(t, ok)
	assert.Equal(t, PixelFormatBGR24, f)

	f, ok = ParsePixelFormat("yuv420p")
	assert.True(t, ok)
	assert.Equal(t, "yuv420p", f.String())

	_, ok = ParsePixelFormat("no-such-format")
	assert.False(t, ok)
}

func TestMediaType_IsVideo(t *testing.T) {
	assert.True(t, MediaType(ffi.MediaTypeVideo).IsVideo())
	assert.False(t, MediaType(ffi.MediaTypeVideo+1).IsVideo())
}

func TestCodecID_IsH264(t *testing.T) {
	assert.True(t, CodecID(ffi.CodecIDH264).IsH264())
	assert.False(t, CodecID(0).IsH264())
}

func TestRational(t *testing.T) {
	r := Rational{Num: 1, Den: 90000}
	assert.Equal(t, "1/90000", r.String())
	assert.Equal(t, r, rationalFrom(r.toFFI()))
}
