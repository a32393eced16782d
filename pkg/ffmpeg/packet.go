package ffmpeg

import "github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"

// Packet is a compressed frame. The shell is allocated by the shim; any
// payload belongs to FFmpeg.
type Packet struct {
	p ffi.Packet
}

// NewPacket allocates an empty packet.
func NewPacket() (*Packet, error) {
	p := ffi.PacketAlloc()
	if p == nil {
		return nil, ErrNoMemory
	}
	return &Packet{p: p}, nil
}

// Free drops the payload and releases the packet. Safe to call twice.
func (p *Packet) Free() {
	if p.p == nil {
		return
	}
	ffi.PacketUnref(p.p)
	ffi.PacketFree(p.p)
	p.p = nil
}

// Unref drops the payload and resets the packet's fields, keeping the shell.
func (p *Packet) Unref() {
	ffi.PacketUnref(p.p)
}

func (p *Packet) IsKey() bool { return ffi.PacketIsKey(p.p) }

// PTS returns the presentation timestamp; ok is false if it is unset.
func (p *Packet) PTS() (pts int64, ok bool) {
	pts = ffi.PacketPTS(p.p)
	if pts == ffi.NoPTSValue {
		return 0, false
	}
	return pts, true
}

func (p *Packet) SetPTS(pts int64) { ffi.PacketSetPTS(p.p, pts) }

// ClearPTS marks the presentation timestamp as unset.
func (p *Packet) ClearPTS() { ffi.PacketSetPTS(p.p, ffi.NoPTSValue) }

func (p *Packet) DTS() int64       { return ffi.PacketDTS(p.p) }
func (p *Packet) SetDTS(dts int64) { ffi.PacketSetDTS(p.p, dts) }

// Duration is in the stream's time base.
func (p *Packet) Duration() int       { return ffi.PacketDuration(p.p) }
func (p *Packet) SetDuration(dur int) { ffi.PacketSetDuration(p.p, dur) }

func (p *Packet) StreamIndex() int { return ffi.PacketStreamIndex(p.p) }

// Data returns the payload, or nil if there is none. The slice aliases
// FFmpeg memory and is valid until the packet is unreferenced or freed.
func (p *Packet) Data() []byte {
	return ffi.PacketData(p.p).Bytes()
}
