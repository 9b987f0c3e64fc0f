// internal/driver/starprnt/barcode.go
package starprnt

import (
	"fmt"

	"go.uber.org/zap"

	"starprnt-encoder/internal/codec"
	"starprnt-encoder/pkg/encoder"
)

// symbologyCode maps a symbology to its protocol code. The set is closed:
// an unknown symbology is rejected rather than defaulted, since printing a
// barcode with the wrong symbology produces an unreadable label.
func symbologyCode(s encoder.Symbology) (byte, bool) {
	switch s {
	case encoder.SymbologyUPCE:
		return 0x00, true
	case encoder.SymbologyUPCA:
		return 0x01, true
	case encoder.SymbologyEAN8:
		return 0x02, true
	case encoder.SymbologyEAN13:
		return 0x03, true
	case encoder.SymbologyCode39:
		return 0x04, true
	case encoder.SymbologyITF:
		return 0x05, true
	case encoder.SymbologyCode128:
		return 0x06, true
	case encoder.SymbologyCode93:
		return 0x07, true
	case encoder.SymbologyNW7:
		return 0x08, true
	case encoder.SymbologyGS1128:
		return 0x09, true
	case encoder.SymbologyGS1DataBarOmni:
		return 0x0A, true
	case encoder.SymbologyGS1DataBarTrunc:
		return 0x0B, true
	case encoder.SymbologyGS1DataBarLimited:
		return 0x0C, true
	case encoder.SymbologyGS1DataBarExpanded:
		return 0x0D, true
	}

	return 0, false
}

// Barcode encodes a barcode print command. The payload is a rigid header
// followed by a variable-length body closed by a sentinel terminator; the
// terminator is emitted even when value is empty. The value is encoded as
// 7-bit ASCII and codec failures on non-ASCII input propagate to the
// caller, which owns the input contract. The height byte is passed through
// without bounds checking.
func (e *Encoder) Barcode(value string, symbology encoder.Symbology, height int) ([]byte, error) {
	code, ok := symbologyCode(symbology)
	if !ok {
		return nil, fmt.Errorf("%w: %q", encoder.ErrUnsupportedSymbology, symbology)
	}

	data, err := codec.Encode(value, codec.CharsetASCII)
	if err != nil {
		return nil, err
	}

	out := command(
		STAR_PRNT_COMMANDS.BARCODE_START,
		[]byte{code},
		STAR_PRNT_COMMANDS.BARCODE_FRAMING,
		[]byte{byte(height)},
		data,
		STAR_PRNT_COMMANDS.BARCODE_END,
	)

	e.logger.LogCommand("barcode", len(out),
		zap.String("symbology", string(symbology)),
		zap.Int("height", height),
	)

	return out, nil
}
