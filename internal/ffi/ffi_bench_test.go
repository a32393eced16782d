package ffi_test

import (
	"testing"
	"unsafe"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/testutil"
)

// Benchmark the cost of one accessor call through the shim.
// Run with: go test -bench=. -benchmem ./internal/ffi/

func BenchmarkPacketPTS(b *testing.B) {
	testutil.RequireFFmpeg(b)
	pkt := ffi.PacketAlloc()
	defer ffi.PacketFree(pkt)
	ffi.PacketSetPTS(pkt, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ffi.PacketPTS(pkt)
	}
}

func BenchmarkPacketData(b *testing.B) {
	testutil.RequireFFmpeg(b)
	pkt := ffi.PacketAlloc()
	defer ffi.PacketFree(pkt)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ffi.PacketData(pkt).Bytes()
	}
}

func BenchmarkCCtxParams(b *testing.B) {
	testutil.RequireFFmpeg(b)
	ctx := ffi.AllocCodecContext()
	defer ffi.FreeCodecContext(&ctx)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ffi.CCtxParams(ctx)
	}
}

func BenchmarkFrameStuff(b *testing.B) {
	testutil.RequireFFmpeg(b)
	f := ffi.FrameAlloc()
	defer ffi.FrameFree(&f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ffi.FrameStuff(f)
	}
}

func BenchmarkLockObtainRelease(b *testing.B) {
	var mu unsafe.Pointer
	if ffi.Lock(&mu, ffi.LockCreate) != 0 {
		b.Fatal("create mutex")
	}
	defer ffi.Lock(&mu, ffi.LockDestroy)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ffi.Lock(&mu, ffi.LockObtain)
		ffi.Lock(&mu, ffi.LockRelease)
	}
}
