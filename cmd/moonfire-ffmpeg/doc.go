// Package main builds the moonfire_ffmpeg shim as a C library for non-Go
// hosts.
//
// # Build Instructions
//
// To build a static archive:
//
//	go build -buildmode=c-archive -o libmoonfire_ffmpeg.a ./cmd/moonfire-ffmpeg/
//
// or a shared library:
//
//	go build -buildmode=c-shared -o libmoonfire_ffmpeg.so ./cmd/moonfire-ffmpeg/
//
// Either produces a header declaring the Go-implemented entry points. The
// shim's own symbols (moonfire_ffmpeg_init, the accessors and the version
// constants) are declared in internal/ffi/moonfire_ffmpeg.h and link from the
// same library.
//
// # C API Usage
//
//	#include "moonfire_ffmpeg.h"
//	#include "libmoonfire_ffmpeg.h"
//
//	if (moonfire_ffmpeg_check_versions() != 0) {
//	    fprintf(stderr, "FFmpeg libraries are not ABI-compatible\n");
//	    return 1;
//	}
//	moonfire_ffmpeg_init();
package main
