// internal/driver/starprnt/image.go
package starprnt

import (
	"go.uber.org/zap"

	"starprnt-encoder/pkg/encoder"
)

// bandHeight is the protocol's raster primitive: a column strip 24 dots
// tall, packed as 3 bytes per column.
const bandHeight = 24

// dotAt reports whether the pixel at (x, y) prints black. A fully dark
// channel value prints black, and so does any coordinate outside the
// source buffer. The out-of-bounds-is-black convention is shared by all 24
// bit positions so partial bands pack exactly like full ones.
func dotAt(src encoder.PixelSource, x, y int) bool {
	v, ok := src.Sample(x, y)
	return !ok || v == 0
}

// Image encodes a raster image as a series of 24-row bands, each followed
// by a head advance, closed by a command restoring the default line feed.
// The mode parameter is accepted for interface compatibility but has no
// effect; the protocol has a single raster path. Width and height are not
// validated: non-positive dimensions yield zero bands, and the terminator
// is still emitted.
func (e *Encoder) Image(src encoder.PixelSource, width, height int, mode encoder.ImageMode) []byte {
	bands := (height + bandHeight - 1) / bandHeight

	var out []byte
	for s := 0; s < bands; s++ {
		top := s * bandHeight

		out = append(out, STAR_PRNT_COMMANDS.IMAGE_BAND...)
		out = append(out, byte(width), byte(width>>8))

		for x := 0; x < width; x++ {
			// 3 bytes per column, most significant bit on top: byte 0
			// covers rows 0-7 of the band, byte 1 rows 8-15, byte 2
			// rows 16-23.
			for b := 0; b < 3; b++ {
				var packed byte
				for bit := 0; bit < 8; bit++ {
					packed <<= 1
					if dotAt(src, x, top+b*8+bit) {
						packed |= 1
					}
				}
				out = append(out, packed)
			}
		}

		out = append(out, STAR_PRNT_COMMANDS.IMAGE_ADVANCE...)
	}

	out = append(out, STAR_PRNT_COMMANDS.IMAGE_END...)

	e.logger.LogCommand("image", len(out),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("bands", bands),
	)

	return out
}
