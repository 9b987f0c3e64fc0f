// pkg/encoder/types.go
package encoder

// Core data structures

// Font selects one of the printer's built-in typefaces
type Font string

const (
	FontA Font = "A"
	FontB Font = "B"
	FontC Font = "C"
)

// Alignment defines horizontal text alignment
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// CutType defines paper cutting options
type CutType string

const (
	CutTypeFull    CutType = "full"
	CutTypePartial CutType = "partial"
)

// Symbology is a barcode encoding standard supported by the printer
type Symbology string

const (
	SymbologyUPCE               Symbology = "upce"
	SymbologyUPCA               Symbology = "upca"
	SymbologyEAN8               Symbology = "ean8"
	SymbologyEAN13              Symbology = "ean13"
	SymbologyCode39             Symbology = "code39"
	SymbologyITF                Symbology = "itf"
	SymbologyCode128            Symbology = "code128"
	SymbologyCode93             Symbology = "code93"
	SymbologyNW7                Symbology = "nw-7" // Codabar
	SymbologyGS1128             Symbology = "gs1-128"
	SymbologyGS1DataBarOmni     Symbology = "gs1-databar-omni"
	SymbologyGS1DataBarTrunc    Symbology = "gs1-databar-truncated"
	SymbologyGS1DataBarLimited  Symbology = "gs1-databar-limited"
	SymbologyGS1DataBarExpanded Symbology = "gs1-databar-expanded"
)

// QRErrorLevel defines QR code error correction levels
type QRErrorLevel string

const (
	QRErrorLevelL QRErrorLevel = "l"
	QRErrorLevelM QRErrorLevel = "m"
	QRErrorLevelQ QRErrorLevel = "q"
	QRErrorLevelH QRErrorLevel = "h"
)

// ImageMode is accepted for API compatibility. The protocol has a single
// raster path, so the mode has no effect on the produced bytes.
type ImageMode string

const (
	ImageModeColumn ImageMode = "column"
)

// QROptions holds the optional QR code parameters. Zero values select the
// protocol defaults: model 2, size 6, error level M.
type QROptions struct {
	Model      int          `json:"model"`
	Size       int          `json:"size"`
	ErrorLevel QRErrorLevel `json:"error_level"`
}

// PulseOptions holds the optional drawer pulse parameters. On and Off are
// durations in milliseconds; zero values select 200 ms. Device 0 and
// nonzero device select the two drawer circuits.
type PulseOptions struct {
	Device int `json:"device"`
	On     int `json:"on"`
	Off    int `json:"off"`
}

// PixelSource provides indexed access to the first color channel of a
// pixel buffer. ok is false when (x, y) lies outside the buffer.
type PixelSource interface {
	Sample(x, y int) (v uint8, ok bool)
}
