// internal/driver/starprnt/qrcode.go
package starprnt

import (
	"fmt"

	"go.uber.org/zap"

	"starprnt-encoder/internal/codec"
	"starprnt-encoder/pkg/encoder"
)

// resolveQROptions applies the protocol defaults at the call boundary:
// model 2, cell size 6, error level M. Explicit values win over defaults
// and are validated by QRCode afterwards.
func resolveQROptions(opts *encoder.QROptions) (model, size int, level encoder.QRErrorLevel) {
	model, size, level = 2, 6, encoder.QRErrorLevelM
	if opts == nil {
		return
	}

	if opts.Model != 0 {
		model = opts.Model
	}
	if opts.Size != 0 {
		size = opts.Size
	}
	if opts.ErrorLevel != "" {
		level = opts.ErrorLevel
	}

	return
}

// QRCode encodes the fixed five-stage QR sequence: model select, cell
// size, error correction level, payload store, print trigger. The stages
// are emitted in this order regardless of which fields used defaults. A
// validation failure returns the matching sentinel error and no bytes.
func (e *Encoder) QRCode(value string, opts *encoder.QROptions) ([]byte, error) {
	model, size, level := resolveQROptions(opts)

	var modelCode byte
	switch model {
	case 1:
		modelCode = 0x01
	case 2:
		modelCode = 0x02
	default:
		return nil, fmt.Errorf("%w: got %d", encoder.ErrInvalidQRModel, model)
	}

	if size < 1 || size > 8 {
		return nil, fmt.Errorf("%w: got %d", encoder.ErrInvalidQRSize, size)
	}

	var levelCode byte
	switch level {
	case encoder.QRErrorLevelL:
		levelCode = 0x00
	case encoder.QRErrorLevelM:
		levelCode = 0x01
	case encoder.QRErrorLevelQ:
		levelCode = 0x02
	case encoder.QRErrorLevelH:
		levelCode = 0x03
	default:
		return nil, fmt.Errorf("%w: %q", encoder.ErrInvalidQRErrorLevel, level)
	}

	// The payload is stored as single-byte Latin-1 code units behind a
	// little-endian 16-bit length prefix, unlike the sentinel-terminated
	// barcode framing.
	data, err := codec.Encode(value, codec.CharsetLatin1)
	if err != nil {
		return nil, err
	}

	out := command(
		STAR_PRNT_COMMANDS.QR_MODEL, []byte{modelCode},
		STAR_PRNT_COMMANDS.QR_CELL_SIZE, []byte{byte(size)},
		STAR_PRNT_COMMANDS.QR_ERROR_LEVEL, []byte{levelCode},
		STAR_PRNT_COMMANDS.QR_STORE, []byte{byte(len(data)), byte(len(data) >> 8)},
		data,
		STAR_PRNT_COMMANDS.QR_PRINT,
	)

	e.logger.LogCommand("qrcode", len(out),
		zap.Int("model", model),
		zap.Int("size", size),
		zap.String("error_level", string(level)),
		zap.Int("payload_bytes", len(data)),
	)

	return out, nil
}
