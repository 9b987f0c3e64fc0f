// internal/codec/codec.go
package codec

import (
	"fmt"

	"golang.org/x/text/encoding/ianaindex"
)

// Character sets used by the Star PRNT encoder. Barcode payloads are
// restricted to 7-bit ASCII by the printer; QR payloads are stored as
// single-byte Latin-1 code units.
const (
	CharsetASCII  = "US-ASCII"
	CharsetLatin1 = "ISO-8859-1"
)

// Encode maps text to the single-byte code units of the named IANA
// character set. Characters outside the target set make the underlying
// encoder fail; that error is returned as-is to the caller, which owns the
// decision of how to handle unencodable input.
func Encode(text, charset string) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q has no encoder", charset)
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text as %s: %w", charset, err)
	}

	return out, nil
}
