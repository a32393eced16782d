// Package testutil provides shared test utilities for moonfire-ffmpeg tests.
package testutil

import (
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi/probe"
)

// H264Extradata is an AVCDecoderConfigurationRecord with one SPS and one
// PPS.
var H264Extradata = []byte{
	0x01, 0x64, 0x00, 0x1f, 0xff, 0xe1, 0x00, 0x0e,
	0x67, 0x64, 0x00, 0x1f, 0xac, 0xd9, 0x40, 0x50,
	0x05, 0xbb, 0x01, 0x6a, 0x02, 0x02, 0x01, 0x00,
	0x04, 0x68, 0xeb, 0xe3, 0xcb,
}

// H264Keyframe is a length-prefixed IDR slice header, enough to stand in for
// a packet payload.
var H264Keyframe = []byte{0x00, 0x00, 0x00, 0x05, 0x65, 0x88, 0x84, 0x00, 0x33}

// RequireFFmpeg initializes the shim and fails the test if the running FFmpeg
// libraries do not share a major version with the headers the shim was
// compiled against. Nothing else is meaningful in that case.
func RequireFFmpeg(tb testing.TB) {
	tb.Helper()
	ffi.Init()

	checks := []struct {
		name              string
		compiled, running int
	}{
		{"libavutil", ffi.CompiledLibavutilVersion, ffi.RunningLibavutilVersion()},
		{"libavcodec", ffi.CompiledLibavcodecVersion, ffi.RunningLibavcodecVersion()},
		{"libavformat", ffi.CompiledLibavformatVersion, ffi.RunningLibavformatVersion()},
	}
	for _, c := range checks {
		if c.compiled>>16 != c.running>>16 {
			tb.Fatalf("%s: compiled against major %d, running %d", c.name, c.compiled>>16, c.running>>16)
		}
	}
}

// PixFmtYUV420P returns AV_PIX_FMT_YUV420P for the installed headers.
func PixFmtYUV420P() int {
	return probe.ReadMacros().PixFmtYUV420P
}

// AttachPayload gives pkt a refcounted copy of b. This resets the packet's
// timestamps and flags.
func AttachPayload(tb testing.TB, pkt unsafe.Pointer, b []byte) {
	tb.Helper()
	require.Equal(tb, 0, probe.SetPacketPayload(pkt, b), "attach payload")
}

// SetStreamCodec describes stream as an H.264 video stream of the given size,
// with H264Extradata.
func SetStreamCodec(tb testing.TB, stream unsafe.Pointer, width, height int) {
	tb.Helper()
	ret := probe.SetStreamCodec(stream, probe.StreamCodec{
		CodecID:   ffi.CodecIDH264,
		CodecType: ffi.MediaTypeVideo,
		Width:     width,
		Height:    height,
		PixFmt:    PixFmtYUV420P(),
		Extradata: H264Extradata,
	})
	require.Equal(tb, 0, ret, "set stream codec")
}

// TempOutputURL returns a path for name inside a per-test directory that is
// removed when the test ends.
func TempOutputURL(tb testing.TB, name string) string {
	tb.Helper()
	return filepath.Join(tb.TempDir(), name)
}

// NewTestLogger returns a logger that discards output and records every
// entry at or above level.
func NewTestLogger(level logrus.Level) (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(level)
	return logger, hook
}
