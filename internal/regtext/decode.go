package regtext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// fallbackEncoding maps an encoding name to the decoder used when the input
// carries no byte order mark.
func fallbackEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "UTF8":
		return unicode.UTF8, nil
	case EncodingUTF16LE, "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingUTF16BE, "UTF16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case EncodingWindows1252, "CP1252", "LATIN1", "ISO-8859-1":
		// regedit and hivex write "ANSI" exports in the local code page,
		// which is Windows-1252 on western systems.
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("regtext: unsupported encoding %q", name)
	}
}

// newDecodingReader wraps r so that it yields UTF-8. A UTF-8 or UTF-16 byte
// order mark overrides the requested encoding; regedit writes UTF-16LE with a
// BOM by default.
func newDecodingReader(r io.Reader, enc string) (io.Reader, error) {
	fallback, err := fallbackEncoding(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback.NewDecoder())), nil
}
