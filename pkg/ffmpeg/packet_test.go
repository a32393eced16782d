package ffmpeg

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/testutil"
)

func newTestPacket(t *testing.T) *Packet {
	t.Helper()
	testutil.RequireFFmpeg(t)
	p, err := NewPacket()
	require.NoError(t, err)
	t.Cleanup(p.Free)
	return p
}

func TestPacket_Empty(t *testing.T) {
	p := newTestPacket(t)

	assert.False(t, p.IsKey())
	assert.Nil(t, p.Data())
	assert.Zero(t, p.StreamIndex())
}

func TestPacket_PTS(t *testing.T) {
	p := newTestPacket(t)

	p.SetPTS(1000)
	pts, ok := p.PTS()
	assert.True(t, ok)
	assert.EqualValues(t, 1000, pts)

	p.ClearPTS()
	_, ok = p.PTS()
	assert.False(t, ok)

	p.SetPTS(0)
	pts, ok = p.PTS()
	assert.True(t, ok)
	assert.Zero(t, pts)
}

func TestPacket_Timing(t *testing.T) {
	p := newTestPacket(t)

	p.SetDTS(900)
	p.SetDuration(33)
	assert.EqualValues(t, 900, p.DTS())
	assert.Equal(t, 33, p.Duration())
}

func TestPacket_Data(t *testing.T) {
	p := newTestPacket(t)
	testutil.AttachPayload(t, unsafe.Pointer(p.p), testutil.H264Keyframe)

	assert.Equal(t, testutil.H264Keyframe, p.Data())

	p.Unref()
	assert.Nil(t, p.Data())
}

func TestPacket_FreeTwice(t *testing.T) {
	testutil.RequireFFmpeg(t)
	p, err := NewPacket()
	require.NoError(t, err)
	p.Free()
	p.Free()
}
