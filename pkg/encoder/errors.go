// pkg/encoder/errors.go
package encoder

import "errors"

// Validation errors returned by encoding operations. A failed operation
// returns no bytes; sequences produced by earlier calls are unaffected.
var (
	ErrUnsupportedSymbology = errors.New("symbology not supported by printer")
	ErrInvalidQRModel       = errors.New("qr model must be 1 or 2")
	ErrInvalidQRSize        = errors.New("qr size must be between 1 and 8")
	ErrInvalidQRErrorLevel  = errors.New("qr error level must be l, m, q or h")
)
