// internal/driver/starprnt/encoder.go
package starprnt

import (
	"math"

	"go.uber.org/zap"

	"starprnt-encoder/internal/utils"
	"starprnt-encoder/pkg/encoder"
)

const dialectName = "starprnt"

// Encoder implements encoder.CommandEncoder for the Star PRNT dialect.
// Every operation is a pure function of its arguments: it reads only the
// static command table, allocates a fresh buffer and hands ownership to
// the caller. Concurrent use needs no locking.
type Encoder struct {
	logger *utils.EncoderLogger
}

var _ encoder.CommandEncoder = (*Encoder)(nil)

// NewEncoder creates a Star PRNT command encoder. logger may be nil.
func NewEncoder(logger *zap.Logger) *Encoder {
	return &Encoder{
		logger: utils.NewEncoderLogger(logger, dialectName),
	}
}

// command builds a fresh buffer from the given byte groups. The returned
// slice never aliases the command table or any input.
func command(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	out := make([]byte, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Initialize returns the printer reset sequence.
func (e *Encoder) Initialize() []byte {
	out := command(STAR_PRNT_COMMANDS.INITIALIZE)
	e.logger.LogCommand("initialize", len(out))
	return out
}

// Font selects a built-in typeface. Unknown values deliberately fall back
// to font A instead of failing.
func (e *Encoder) Font(f encoder.Font) []byte {
	var code byte
	switch f {
	case encoder.FontB:
		code = 0x01
	case encoder.FontC:
		code = 0x02
	default:
		code = 0x00
	}

	out := command(STAR_PRNT_COMMANDS.FONT_SELECT, []byte{code})
	e.logger.LogCommand("font", len(out), zap.String("font", string(f)))
	return out
}

// Align sets horizontal alignment. Unknown values fall back to left.
func (e *Encoder) Align(a encoder.Alignment) []byte {
	var code byte
	switch a {
	case encoder.AlignCenter:
		code = 0x01
	case encoder.AlignRight:
		code = 0x02
	default:
		code = 0x00
	}

	out := command(STAR_PRNT_COMMANDS.ALIGN_SELECT, []byte{code})
	e.logger.LogCommand("align", len(out), zap.String("alignment", string(a)))
	return out
}

// Bold toggles emphasized printing.
func (e *Encoder) Bold(on bool) []byte {
	cmd := STAR_PRNT_COMMANDS.BOLD_OFF
	if on {
		cmd = STAR_PRNT_COMMANDS.BOLD_ON
	}

	out := command(cmd)
	e.logger.LogCommand("bold", len(out), zap.Bool("enabled", on))
	return out
}

// Underline toggles underlined printing.
func (e *Encoder) Underline(on bool) []byte {
	cmd := STAR_PRNT_COMMANDS.UNDERLINE_OFF
	if on {
		cmd = STAR_PRNT_COMMANDS.UNDERLINE_ON
	}

	out := command(cmd)
	e.logger.LogCommand("underline", len(out), zap.Bool("enabled", on))
	return out
}

// Italic returns an empty sequence. The Star PRNT protocol has no italic
// mode; the operation exists so document builders can call it
// unconditionally.
func (e *Encoder) Italic(on bool) []byte {
	return []byte{}
}

// Invert toggles white-on-black printing.
func (e *Encoder) Invert(on bool) []byte {
	cmd := STAR_PRNT_COMMANDS.INVERT_OFF
	if on {
		cmd = STAR_PRNT_COMMANDS.INVERT_ON
	}

	out := command(cmd)
	e.logger.LogCommand("invert", len(out), zap.Bool("enabled", on))
	return out
}

// Size sets the character magnification. Width and height are 1-based
// multipliers and the protocol encodes the height byte before the width
// byte. Values outside the printer's 1-8 range pass through unchecked;
// guarding them is the caller's responsibility.
func (e *Encoder) Size(width, height int) []byte {
	out := command(STAR_PRNT_COMMANDS.SIZE_SELECT, []byte{byte(height - 1), byte(width - 1)})
	e.logger.LogCommand("size", len(out), zap.Int("width", width), zap.Int("height", height))
	return out
}

// Codepage selects the printer's active character-set mapping table. The
// identifier is passed through without validation.
func (e *Encoder) Codepage(page byte) []byte {
	out := command(STAR_PRNT_COMMANDS.CODEPAGE_SELECT, []byte{page})
	e.logger.LogCommand("codepage", len(out), zap.Uint8("page", page))
	return out
}

// Flush forces the printer to print the contents of its line buffer.
func (e *Encoder) Flush() []byte {
	out := command(STAR_PRNT_COMMANDS.FLUSH)
	e.logger.LogCommand("flush", len(out))
	return out
}

// Cut cuts the paper. Anything but a partial cut is a full cut.
func (e *Encoder) Cut(cutType encoder.CutType) []byte {
	var code byte
	if cutType == encoder.CutTypePartial {
		code = 0x01
	}

	out := command(STAR_PRNT_COMMANDS.CUT_SELECT, []byte{code})
	e.logger.LogCommand("cut", len(out), zap.String("cut_type", string(cutType)))
	return out
}

// Pulse kicks the cash drawer. On and off durations default to 200 ms and
// are converted to the protocol's tens-of-milliseconds unit.
func (e *Encoder) Pulse(opts *encoder.PulseOptions) []byte {
	device, on, off := 0, 200, 200
	if opts != nil {
		device = opts.Device
		if opts.On != 0 {
			on = opts.On
		}
		if opts.Off != 0 {
			off = opts.Off
		}
	}

	selector := STAR_PRNT_COMMANDS.DRAWER_PRIMARY
	if device != 0 {
		selector = STAR_PRNT_COMMANDS.DRAWER_SECONDARY
	}

	out := command(STAR_PRNT_COMMANDS.PULSE_START, []byte{pulseDuration(on), pulseDuration(off)}, selector)
	e.logger.LogCommand("pulse", len(out), zap.Int("device", device))
	return out
}

// pulseDuration converts milliseconds to the unsigned 7-bit
// tens-of-milliseconds unit, capping at the maximum rather than wrapping.
func pulseDuration(ms int) byte {
	n := int(math.Round(float64(ms) / 10))
	if n > 127 {
		n = 127
	}

	return byte(n)
}
