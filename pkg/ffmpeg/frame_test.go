package ffmpeg

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi/probe"
	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/testutil"
)

func newTestFrame(t *testing.T) *Frame {
	t.Helper()
	testutil.RequireFFmpeg(t)
	f, err := NewFrame()
	require.NoError(t, err)
	t.Cleanup(f.Free)
	return f
}

func TestFrame_PackedPlane(t *testing.T) {
	f := newTestFrame(t)
	dims := ImageDimensions{Width: 64, Height: 48, PixelFormat: PixelFormatRGB24}
	require.NoError(t, f.AllocImage(dims))

	assert.Equal(t, dims, f.Snapshot().ImageDimensions)

	p := f.Plane(0)
	assert.Equal(t, 64, p.Width)
	assert.Equal(t, 48, p.Height)
	assert.GreaterOrEqual(t, p.Linesize, 64*3)
	assert.Zero(t, p.Linesize%32)
	assert.Len(t, p.Data, p.Linesize*48)
	assert.Zero(t, uintptr(unsafe.Pointer(&p.Data[0]))%32)

	// Writes land in the frame's buffer.
	p.Data[0] = 0xab
	assert.Equal(t, byte(0xab), f.Plane(0).Data[0])

	assert.Panics(t, func() { f.Plane(1) })
}

func TestFrame_ChromaPlanes(t *testing.T) {
	f := newTestFrame(t)
	yuv420p := PixelFormat(testutil.PixFmtYUV420P())
	require.NoError(t, f.AllocImage(ImageDimensions{Width: 33, Height: 17, PixelFormat: yuv420p}))

	y := f.Plane(0)
	assert.Equal(t, 33, y.Width)
	assert.Equal(t, 17, y.Height)

	for _, i := range []int{1, 2} {
		c := f.Plane(i)
		assert.Equal(t, 17, c.Width, "plane %d", i)
		assert.Equal(t, 9, c.Height, "plane %d", i)
		assert.Len(t, c.Data, c.Linesize*9, "plane %d", i)
	}
}

func TestFrame_Snapshot_PTS(t *testing.T) {
	f := newTestFrame(t)
	probe.SetFramePTS(unsafe.Pointer(f.f), 3003)
	assert.EqualValues(t, 3003, f.Snapshot().PTS)
}

func TestFrame_AllocImageFailure(t *testing.T) {
	f := newTestFrame(t)

	err := f.AllocImage(ImageDimensions{Width: 0, Height: 0, PixelFormat: PixelFormatRGB24})
	require.Error(t, err)
	var ffErr Error
	assert.True(t, errors.As(err, &ffErr))

	assert.Equal(t, ImageDimensions{Width: 0, Height: 0, PixelFormat: -1}, f.Snapshot().ImageDimensions)
}

func TestFrame_Realloc(t *testing.T) {
	f := newTestFrame(t)
	require.NoError(t, f.AllocImage(ImageDimensions{Width: 16, Height: 16, PixelFormat: PixelFormatRGB24}))
	require.NoError(t, f.AllocImage(ImageDimensions{Width: 32, Height: 8, PixelFormat: PixelFormatBGR24}))

	s := f.Snapshot()
	assert.Equal(t, 32, s.Width)
	assert.Equal(t, 8, s.Height)
	assert.Equal(t, PixelFormatBGR24, s.PixelFormat)
}

func TestFrame_ReallocFailure(t *testing.T) {
	f := newTestFrame(t)
	yuv420p := PixelFormat(testutil.PixFmtYUV420P())
	dims := ImageDimensions{Width: 64, Height: 64, PixelFormat: yuv420p}
	require.NoError(t, f.AllocImage(dims))
	f.Plane(1).Data[0] = 0x5a

	require.Error(t, f.AllocImage(ImageDimensions{Width: 0, Height: 0, PixelFormat: PixelFormatRGB24}))

	assert.Equal(t, dims, f.Snapshot().ImageDimensions)
	c := f.Plane(1)
	assert.Equal(t, 32, c.Height)
	assert.Equal(t, byte(0x5a), c.Data[0])
	assert.Len(t, f.Plane(2).Data, f.Plane(2).Linesize*32)
}

func TestFrame_PlanePanics(t *testing.T) {
	f := newTestFrame(t)

	assert.Panics(t, func() { f.Plane(-1) })
	assert.Panics(t, func() { f.Plane(8) })
	// No image.
	assert.Panics(t, func() { f.Plane(0) })
}

func TestFrame_FreeTwice(t *testing.T) {
	testutil.RequireFFmpeg(t)
	f, err := NewFrame()
	require.NoError(t, err)
	require.NoError(t, f.AllocImage(ImageDimensions{Width: 8, Height: 8, PixelFormat: PixelFormatRGB24}))
	f.Free()
	f.Free()
}
