// pkg/encoder/interfaces.go
package encoder

// CommandEncoder is the contract a protocol dialect encoder must implement.
// Every operation is a pure function of its arguments: it allocates a fresh
// byte sequence, transfers ownership to the caller and keeps no state
// between calls. Callers concatenate the returned sequences in document
// order and hand the combined stream to a transport.
type CommandEncoder interface {
	// State control
	Initialize() []byte
	Codepage(page byte) []byte
	Flush() []byte

	// Text formatting
	Font(f Font) []byte
	Align(a Alignment) []byte
	Bold(on bool) []byte
	Underline(on bool) []byte
	Italic(on bool) []byte
	Invert(on bool) []byte
	Size(width, height int) []byte

	// Symbols
	Barcode(value string, symbology Symbology, height int) ([]byte, error)
	QRCode(value string, opts *QROptions) ([]byte, error)

	// Raster graphics
	Image(src PixelSource, width, height int, mode ImageMode) []byte

	// Paper and peripherals
	Cut(cutType CutType) []byte
	Pulse(opts *PulseOptions) []byte
}
