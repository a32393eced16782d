package ffi

// #include "moonfire_ffmpeg.h"
import "C"

import "unsafe"

// PacketAlloc allocates a zeroed packet shell. Returns nil on allocation
// failure. The shell must be released with PacketFree.
func PacketAlloc() Packet {
	return Packet(C.moonfire_ffmpeg_packet_alloc())
}

// PacketFree releases a shell from PacketAlloc. It does not unreference the
// payload; call PacketUnref first if one is attached.
func PacketFree(pkt Packet) {
	C.moonfire_ffmpeg_packet_free((*C.AVPacket)(pkt))
}

// PacketUnref calls av_packet_unref.
func PacketUnref(pkt Packet) {
	C.av_packet_unref((*C.AVPacket)(pkt))
}

func PacketIsKey(pkt Packet) bool {
	return bool(C.moonfire_ffmpeg_packet_is_key((*C.AVPacket)(pkt)))
}

func PacketPTS(pkt Packet) int64 {
	return int64(C.moonfire_ffmpeg_packet_pts((*C.AVPacket)(pkt)))
}

func PacketDTS(pkt Packet) int64 {
	return int64(C.moonfire_ffmpeg_packet_dts((*C.AVPacket)(pkt)))
}

func PacketDuration(pkt Packet) int {
	return int(C.moonfire_ffmpeg_packet_duration((*C.AVPacket)(pkt)))
}

func PacketStreamIndex(pkt Packet) int {
	return int(C.moonfire_ffmpeg_packet_stream_index((*C.AVPacket)(pkt)))
}

// PacketData borrows the packet payload.
func PacketData(pkt Packet) Data {
	d := C.moonfire_ffmpeg_packet_data((*C.AVPacket)(pkt))
	return *(*Data)(unsafe.Pointer(&d))
}

func PacketSetPTS(pkt Packet, pts int64) {
	C.moonfire_ffmpeg_packet_set_pts((*C.AVPacket)(pkt), C.int64_t(pts))
}

func PacketSetDTS(pkt Packet, dts int64) {
	C.moonfire_ffmpeg_packet_set_dts((*C.AVPacket)(pkt), C.int64_t(dts))
}

func PacketSetDuration(pkt Packet, dur int) {
	C.moonfire_ffmpeg_packet_set_duration((*C.AVPacket)(pkt), C.int(dur))
}
