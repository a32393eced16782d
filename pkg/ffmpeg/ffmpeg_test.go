package ffmpeg

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/testutil"
)

// This is the only test that calls Init; it runs at most once per process.
func TestInit(t *testing.T) {
	testutil.RequireFFmpeg(t)
	logger, hook := testutil.NewTestLogger(logrus.InfoLevel)

	require.NoError(t, Init(&Options{Logger: logger}))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Initialized ffmpeg", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	for _, l := range Libraries() {
		assert.Contains(t, entry.Data, l.Name)
	}
	assert.Contains(t, entry.Data, "lock_manager")

	// Later calls are no-ops.
	hook.Reset()
	assert.NoError(t, Init(nil))
	assert.NotPanics(t, func() { MustInit(nil) })
	assert.Empty(t, hook.AllEntries())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Same(t, logrus.StandardLogger(), opts.Logger)
	assert.True(t, opts.ForwardLogs)
	assert.False(t, opts.NetworkInit)
}
