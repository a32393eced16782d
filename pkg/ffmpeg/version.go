package ffmpeg

import (
	"fmt"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// Version is a packed AV_VERSION_INT value.
type Version int

// NewVersion packs major.minor.micro.
func NewVersion(major, minor, micro int) Version {
	return Version(major<<16 | minor<<8 | micro)
}

func (v Version) Major() int { return int(v>>16) & 0xff }
func (v Version) Minor() int { return int(v>>8) & 0xff }
func (v Version) Micro() int { return int(v) & 0xff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Micro())
}

// Library pairs the version of an FFmpeg library the shim was compiled
// against with the version loaded at runtime.
type Library struct {
	Name     string
	Compiled Version
	Running  Version
}

// IsCompatible reports whether code compiled against Compiled can run against
// Running: same major, and a minor at least as new. Micro versions are
// ignored.
func (l Library) IsCompatible() bool {
	return l.Running.Major() == l.Compiled.Major() &&
		l.Running.Minor() >= l.Compiled.Minor()
}

func (l Library) String() string {
	return fmt.Sprintf("%s: running=%s compiled=%s", l.Name, l.Running, l.Compiled)
}

// Libraries reports the FFmpeg libraries in use. libswscale is omitted when
// the shim was built without it.
func Libraries() []Library {
	libs := []Library{
		{"avutil", Version(ffi.CompiledLibavutilVersion), Version(ffi.RunningLibavutilVersion())},
		{"avcodec", Version(ffi.CompiledLibavcodecVersion), Version(ffi.RunningLibavcodecVersion())},
		{"avformat", Version(ffi.CompiledLibavformatVersion), Version(ffi.RunningLibavformatVersion())},
	}
	if ffi.CompiledLibswscaleVersion != 0 {
		libs = append(libs, Library{"swscale", Version(ffi.CompiledLibswscaleVersion), Version(ffi.RunningLibswscaleVersion())})
	}
	return libs
}

// CheckVersions returns ErrIncompatibleVersion if any library in Libraries is
// not ABI-compatible. Init performs the same check.
func CheckVersions() error {
	return checkCompatible(Libraries())
}
