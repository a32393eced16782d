package ffmpeg

import (
	"fmt"
	"strings"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// Dictionary is an AVDictionary of options. The zero value is empty and
// ready to use.
type Dictionary struct {
	d ffi.Dictionary
}

// Set adds or replaces key.
func (d *Dictionary) Set(key, value string) error {
	if err := wrap(ffi.DictSet(&d.d, key, value, 0)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (d *Dictionary) Len() int { return ffi.DictCount(d.d) }

// String formats the entries as "k=v, k=v" in insertion order.
func (d *Dictionary) String() string {
	var b strings.Builder
	ffi.DictEntries(d.d, func(k, v string) {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	})
	return b.String()
}

// Free releases all entries. The dictionary is empty and reusable afterwards.
func (d *Dictionary) Free() {
	ffi.DictFree(&d.d)
}
