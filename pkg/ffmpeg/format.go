package ffmpeg

import (
	"fmt"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// OutputFormatContext is a muxer context.
type OutputFormatContext struct {
	ctx    ffi.FormatContext
	opened bool
}

// NewOutputFormatContext allocates a muxer context. An empty formatName
// lets FFmpeg pick the muxer from filename's extension.
func NewOutputFormatContext(formatName, filename string) (*OutputFormatContext, error) {
	ctx, ret := ffi.AllocOutputContext(formatName, filename)
	if err := wrap(ret); err != nil {
		return nil, fmt.Errorf("alloc output context %q: %w", formatName, err)
	}
	if ctx == nil {
		return nil, ErrNoMemory
	}
	return &OutputFormatContext{ctx: ctx}, nil
}

// Open opens url for writing as the context's I/O.
func (c *OutputFormatContext) Open(url string) error {
	if err := wrap(ffi.FCtxOpenWrite(c.ctx, url)); err != nil {
		return fmt.Errorf("open %q: %w", url, err)
	}
	c.opened = true
	return nil
}

// Close closes the I/O opened by Open, if any.
func (c *OutputFormatContext) Close() error {
	if !c.opened {
		return nil
	}
	c.opened = false
	return wrap(ffi.FCtxCloseWrite(c.ctx))
}

// AddStream appends a new stream with no codec set.
func (c *OutputFormatContext) AddStream() (*Stream, error) {
	s := ffi.NewStream(c.ctx)
	if s == nil {
		return nil, ErrNoMemory
	}
	return &Stream{s: s}, nil
}

// Streams returns the context's streams in index order. The streams are owned
// by the context.
func (c *OutputFormatContext) Streams() []*Stream {
	raw := ffi.FCtxStreams(c.ctx).Slice()
	streams := make([]*Stream, len(raw))
	for i, s := range raw {
		streams[i] = &Stream{s: s}
	}
	return streams
}

// Free closes any open I/O and releases the context and its streams.
func (c *OutputFormatContext) Free() {
	if c.ctx == nil {
		return
	}
	_ = c.Close()
	ffi.FreeFormatContext(c.ctx)
	c.ctx = nil
}
