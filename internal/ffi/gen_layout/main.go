//go:build ignore

// Code generator for C/Go struct layout checks.
//
// Usage: go run main.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
)

type fieldSpec struct {
	CName  string
	GoName string
}

type structSpec struct {
	// CType is the cgo spelling, e.g. "struct_moonfire_ffmpeg_data".
	CType  string
	GoType string
	Fields []fieldSpec
}

var structSpecs = []structSpec{
	{
		CType:  "AVRational",
		GoType: "Rational",
		Fields: []fieldSpec{
			{CName: "num", GoName: "Num"},
			{CName: "den", GoName: "Den"},
		},
	},
	{
		CType:  "struct_moonfire_ffmpeg_streams",
		GoType: "Streams",
		Fields: []fieldSpec{
			{CName: "streams", GoName: "Streams"},
			{CName: "len", GoName: "Len"},
		},
	},
	{
		CType:  "struct_moonfire_ffmpeg_data",
		GoType: "Data",
		Fields: []fieldSpec{
			{CName: "data", GoName: "Data"},
			{CName: "len", GoName: "Len"},
		},
	},
	{
		CType:  "struct_moonfire_ffmpeg_video_parameters",
		GoType: "VideoParameters",
		Fields: []fieldSpec{
			{CName: "width", GoName: "Width"},
			{CName: "height", GoName: "Height"},
			{CName: "sample_aspect_ratio", GoName: "SampleAspectRatio"},
			{CName: "pix_fmt", GoName: "PixFmt"},
			{CName: "time_base", GoName: "TimeBase"},
		},
	},
	{
		CType:  "struct_moonfire_ffmpeg_image_dimensions",
		GoType: "ImageDimensions",
		Fields: []fieldSpec{
			{CName: "width", GoName: "Width"},
			{CName: "height", GoName: "Height"},
			{CName: "pix_fmt", GoName: "PixFmt"},
		},
	},
	{
		CType:  "struct_moonfire_ffmpeg_frame_stuff",
		GoType: "FrameSnapshot",
		Fields: []fieldSpec{
			{CName: "dims", GoName: "Dims"},
			{CName: "data", GoName: "Data"},
			{CName: "linesizes", GoName: "Linesizes"},
			{CName: "pts", GoName: "PTS"},
		},
	},
}

func main() {
	outDir := ".."
	if err := writeGoFile(filepath.Join(outDir, "struct_layout_cgo.go"), generateLayoutGo(structSpecs)); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating struct_layout_cgo.go: %v\n", err)
		os.Exit(1)
	}
	if err := writeGoFile(filepath.Join(outDir, "struct_layout_test.go"), generateLayoutTestGo(structSpecs)); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating struct_layout_test.go: %v\n", err)
		os.Exit(1)
	}
}

func generateLayoutGo(specs []structSpec) []byte {
	var buf bytes.Buffer

	buf.WriteString(`// Code generated by go generate; DO NOT EDIT.

package ffi

// #include "moonfire_ffmpeg.h"
import "C"

import "unsafe"

type cStructLayout struct {
	size    uintptr
	offsets map[string]uintptr
}

`)

	for _, spec := range specs {
		fmt.Fprintf(&buf, "func %s() cStructLayout {\n", layoutFuncName(spec.GoType))
		fmt.Fprintf(&buf, "\tvar c C.%s\n", spec.CType)
		buf.WriteString("\treturn cStructLayout{\n")
		buf.WriteString("\t\tsize: unsafe.Sizeof(c),\n")
		buf.WriteString("\t\toffsets: map[string]uintptr{\n")
		for _, field := range spec.Fields {
			fmt.Fprintf(&buf, "\t\t\t%q: unsafe.Offsetof(c.%s),\n", field.GoName, field.CName)
		}
		buf.WriteString("\t\t},\n")
		buf.WriteString("\t}\n")
		buf.WriteString("}\n\n")
	}

	return buf.Bytes()
}

func generateLayoutTestGo(specs []structSpec) []byte {
	var buf bytes.Buffer

	buf.WriteString(`// Code generated by go generate; DO NOT EDIT.

package ffi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

`)

	buf.WriteString("// TestStructLayout compares the Go mirrors against the shim's C structs.\n")
	buf.WriteString("func TestStructLayout(t *testing.T) {\n")
	for _, spec := range specs {
		fmt.Fprintf(&buf, "\tt.Run(%q, func(t *testing.T) {\n", spec.GoType)
		fmt.Fprintf(&buf, "\t\tvar g %s\n", spec.GoType)
		fmt.Fprintf(&buf, "\t\tlayout := %s()\n", layoutFuncName(spec.GoType))
		buf.WriteString("\t\tassert.Equal(t, layout.size, unsafe.Sizeof(g), \"size\")\n")
		for _, field := range spec.Fields {
			fmt.Fprintf(&buf, "\t\tassert.Equal(t, layout.offsets[%q], unsafe.Offsetof(g.%s), %q)\n",
				field.GoName, field.GoName, field.GoName)
		}
		buf.WriteString("\t})\n\n")
	}
	buf.WriteString("}\n")

	return buf.Bytes()
}

func layoutFuncName(goType string) string {
	return "c" + goType + "Layout"
}

func writeGoFile(path string, data []byte) error {
	formatted, err := format.Source(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0644)
}
