// internal/driver/starprnt/command.go
package starprnt

// STAR_PRNT_COMMANDS contains all Star PRNT command definitions. Entries
// ending in _SELECT are prefixes completed with parameter bytes by the
// encoder; the rest are emitted as-is.
var STAR_PRNT_COMMANDS = struct {
	// Basic commands
	INITIALIZE []byte
	FLUSH      []byte

	// Text formatting
	FONT_SELECT     []byte // + font code byte
	ALIGN_SELECT    []byte // + alignment code byte
	SIZE_SELECT     []byte // + height byte + width byte
	CODEPAGE_SELECT []byte // + codepage byte
	BOLD_ON         []byte
	BOLD_OFF        []byte
	UNDERLINE_ON    []byte
	UNDERLINE_OFF   []byte
	INVERT_ON       []byte
	INVERT_OFF      []byte

	// Barcodes
	BARCODE_START   []byte // + symbology code byte
	BARCODE_FRAMING []byte // fixed bytes between symbology and height
	BARCODE_END     []byte // sentinel terminator after the payload

	// QR codes
	QR_MODEL       []byte // + model code byte
	QR_ERROR_LEVEL []byte // + error correction level byte
	QR_CELL_SIZE   []byte // + cell size byte
	QR_STORE       []byte // + length (little-endian) + payload bytes
	QR_PRINT       []byte

	// Raster graphics
	IMAGE_BAND    []byte // + width (little-endian) + 3*width column bytes
	IMAGE_ADVANCE []byte // moves the print head past the emitted band
	IMAGE_END     []byte // restores default line feed behaviour

	// Cutting
	CUT_SELECT []byte // + cut mode byte

	// Cash drawer
	PULSE_START      []byte // + on byte + off byte + drawer selector
	DRAWER_PRIMARY   []byte
	DRAWER_SECONDARY []byte
}{
	// Basic commands
	INITIALIZE: []byte{0x1B, 0x40, 0x18},                         // ESC @ CAN
	FLUSH:      []byte{0x1B, 0x1D, 0x50, 0x30, 0x1B, 0x1D, 0x50, 0x31}, // ESC GS P 0, ESC GS P 1

	// Text formatting
	FONT_SELECT:     []byte{0x1B, 0x1E, 0x46}, // ESC RS F + n
	ALIGN_SELECT:    []byte{0x1B, 0x1D, 0x61}, // ESC GS a + n
	SIZE_SELECT:     []byte{0x1B, 0x69},       // ESC i + h + w
	CODEPAGE_SELECT: []byte{0x1B, 0x1D, 0x74}, // ESC GS t + n
	BOLD_ON:         []byte{0x1B, 0x45},       // ESC E
	BOLD_OFF:        []byte{0x1B, 0x46},       // ESC F
	UNDERLINE_ON:    []byte{0x1B, 0x2D, 0x01}, // ESC - 1
	UNDERLINE_OFF:   []byte{0x1B, 0x2D, 0x00}, // ESC - 0
	INVERT_ON:       []byte{0x1B, 0x34},       // ESC 4
	INVERT_OFF:      []byte{0x1B, 0x35},       // ESC 5

	// Barcodes
	BARCODE_START:   []byte{0x1B, 0x62}, // ESC b + n
	BARCODE_FRAMING: []byte{0x01, 0x03},
	BARCODE_END:     []byte{0x1E}, // RS

	// QR codes
	QR_MODEL:       []byte{0x1B, 0x1D, 0x79, 0x53, 0x30},       // ESC GS y S 0 + n
	QR_ERROR_LEVEL: []byte{0x1B, 0x1D, 0x79, 0x53, 0x31},       // ESC GS y S 1 + n
	QR_CELL_SIZE:   []byte{0x1B, 0x1D, 0x79, 0x53, 0x32},       // ESC GS y S 2 + n
	QR_STORE:       []byte{0x1B, 0x1D, 0x79, 0x44, 0x31, 0x00}, // ESC GS y D 1 + nL nH + data
	QR_PRINT:       []byte{0x1B, 0x1D, 0x79, 0x50},             // ESC GS y P

	// Raster graphics
	IMAGE_BAND:    []byte{0x1B, 0x58},       // ESC X + nL nH + data
	IMAGE_ADVANCE: []byte{0x0A, 0x0D},       // LF CR
	IMAGE_END:     []byte{0x1B, 0x7A, 0x01}, // ESC z 1

	// Cutting
	CUT_SELECT: []byte{0x1B, 0x64}, // ESC d + n

	// Cash drawer
	PULSE_START:      []byte{0x1B, 0x07}, // ESC BEL + on + off + selector
	DRAWER_PRIMARY:   []byte{0x07},
	DRAWER_SECONDARY: []byte{0x1A},
}
