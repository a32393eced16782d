package ffi

import (
	"runtime"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi/probe"
)

func TestSetLogCallback(t *testing.T) {
	prev := LogLevel()
	t.Cleanup(func() {
		SetLogCallback(nil)
		SetLogLevel(prev)
	})

	type entry struct {
		level int
		line  string
	}
	var (
		mu      sync.Mutex
		entries []entry
	)
	SetLogLevel(LogInfo)
	SetLogCallback(func(level int, line string) {
		mu.Lock()
		defer mu.Unlock()
		entries = append(entries, entry{level, line})
	})

	// avformat_alloc_output_context2 logs an error for unknown muxers.
	_, ret := AllocOutputContext("no-such-muxer", "out.bin")
	require.Less(t, ret, 0)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, entries)
	found := false
	for _, e := range entries {
		if e.level == LogError {
			assert.Contains(t, e.line, "no-such-muxer")
			found = true
		}
	}
	assert.True(t, found, "no error-level line in %v", entries)
}

func TestSetLogCallback_JoinsFragments(t *testing.T) {
	// Partial lines are held per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := LogLevel()
	t.Cleanup(func() {
		SetLogCallback(nil)
		SetLogLevel(prev)
	})

	ctx := newOutputContext(t, "mp4", "out.mp4")

	var lines []string
	SetLogLevel(LogInfo)
	SetLogCallback(func(_ int, line string) { lines = append(lines, line) })

	probe.Log(unsafe.Pointer(ctx), LogError, "moov atom ")
	probe.Log(unsafe.Pointer(ctx), LogError, "not found")
	assert.Empty(t, lines, "incomplete line forwarded")
	probe.Log(unsafe.Pointer(ctx), LogError, "\n")
	probe.Log(unsafe.Pointer(ctx), LogError, "second line\n")

	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "moov atom not found\n"), "%q", lines[0])
	assert.Equal(t, 1, strings.Count(lines[0], " @ "), "%q", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "second line\n"), "%q", lines[1])
	assert.Equal(t, 1, strings.Count(lines[1], " @ "), "%q", lines[1])
}

func TestSetLogCallback_RespectsLevel(t *testing.T) {
	prev := LogLevel()
	t.Cleanup(func() {
		SetLogCallback(nil)
		SetLogLevel(prev)
	})

	called := false
	SetLogLevel(LogQuiet)
	SetLogCallback(func(int, string) { called = true })

	AllocOutputContext("no-such-muxer", "out.bin")
	assert.False(t, called)
}

func TestSetLogLevel(t *testing.T) {
	prev := LogLevel()
	t.Cleanup(func() { SetLogLevel(prev) })

	SetLogLevel(LogDebug)
	assert.Equal(t, LogDebug, LogLevel())
}
