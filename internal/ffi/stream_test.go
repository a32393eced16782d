package ffi

import (
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi/probe"
)

func newOutputContext(t *testing.T, format, filename string) FormatContext {
	t.Helper()
	ctx, ret := AllocOutputContext(format, filename)
	require.GreaterOrEqual(t, ret, 0, Strerror(ret))
	require.NotNil(t, ctx)
	t.Cleanup(func() { FreeFormatContext(ctx) })
	return ctx
}

func TestFCtxStreams(t *testing.T) {
	ctx := newOutputContext(t, "mp4", "out.mp4")

	assert.Empty(t, FCtxStreams(ctx).Slice())

	s0 := NewStream(ctx)
	require.NotNil(t, s0)
	s1 := NewStream(ctx)
	require.NotNil(t, s1)

	streams := FCtxStreams(ctx)
	assert.EqualValues(t, probe.FormatContextNumStreams(unsafe.Pointer(ctx)), streams.Len)
	assert.Equal(t, []Stream{s0, s1}, streams.Slice())
}

func TestStream_Timing(t *testing.T) {
	ctx := newOutputContext(t, "mp4", "out.mp4")
	s := NewStream(ctx)
	require.NotNil(t, s)

	probe.SetStreamTiming(unsafe.Pointer(s), 1, 90000, 12345)
	assert.Equal(t, Rational{Num: 1, Den: 90000}, StreamTimeBase(s))
	assert.EqualValues(t, 12345, StreamDuration(s))
}

func TestStream_CodecPar(t *testing.T) {
	ctx := newOutputContext(t, "mp4", "out.mp4")
	s := NewStream(ctx)
	require.NotNil(t, s)

	yuv420p := probe.ReadMacros().PixFmtYUV420P
	extradata := []byte{0x01, 0x64, 0x00, 0x28, 0xff, 0xe1}
	require.Equal(t, 0, probe.SetStreamCodec(unsafe.Pointer(s), probe.StreamCodec{
		CodecID:   CodecIDH264,
		CodecType: MediaTypeVideo,
		Width:     1280,
		Height:    720,
		PixFmt:    yuv420p,
		Extradata: extradata,
	}))

	par := StreamCodecPar(s)
	require.NotNil(t, par)
	assert.Equal(t, CodecIDH264, CodecParCodecID(par))
	assert.Equal(t, MediaTypeVideo, CodecParCodecType(par))
	assert.Equal(t, ImageDimensions{Width: 1280, Height: 720, PixFmt: int32(yuv420p)}, CodecParDims(par))
	assert.Equal(t, extradata, CodecParExtradata(par).Bytes())
}

func TestFCtxOpenWrite(t *testing.T) {
	ctx := newOutputContext(t, "mp4", "out.mp4")
	url := filepath.Join(t.TempDir(), "out.mp4")

	require.Equal(t, 0, FCtxOpenWrite(ctx, url))
	assert.True(t, probe.FormatContextHasPB(unsafe.Pointer(ctx)))
	assert.FileExists(t, url)

	assert.Equal(t, 0, FCtxCloseWrite(ctx))
	assert.False(t, probe.FormatContextHasPB(unsafe.Pointer(ctx)))
}

func TestFCtxOpenWrite_Failure(t *testing.T) {
	ctx := newOutputContext(t, "mp4", "out.mp4")
	url := filepath.Join(t.TempDir(), "missing", "out.mp4")

	assert.Less(t, FCtxOpenWrite(ctx, url), 0)
	assert.False(t, probe.FormatContextHasPB(unsafe.Pointer(ctx)))
}

func TestAllocOutputContext_UnknownFormat(t *testing.T) {
	ctx, ret := AllocOutputContext("no-such-muxer", "out.bin")
	assert.Less(t, ret, 0)
	assert.Nil(t, ctx)
}
