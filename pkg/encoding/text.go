// Package encoding provides text decoding for mesh source files.
package encoding

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewUTF8Reader wraps r so it yields UTF-8 without a byte order mark.
// A UTF-16 BOM switches decoding to that encoding; without one the input
// is read as UTF-8 and invalid sequences become U+FFFD.
func NewUTF8Reader(r io.Reader) io.Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, decoder)
}
