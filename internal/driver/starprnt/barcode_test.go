// internal/driver/starprnt/barcode_test.go
package starprnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starprnt-encoder/pkg/encoder"
)

func TestBarcodeCode128(t *testing.T) {
	e := NewEncoder(nil)

	out, err := e.Barcode("TEST", encoder.SymbologyCode128, 100)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x62, 0x06, 0x01, 0x03, 100, 'T', 'E', 'S', 'T', 0x1E}, out)
}

func TestBarcodeAllSymbologies(t *testing.T) {
	e := NewEncoder(nil)

	tests := []struct {
		symbology encoder.Symbology
		code      byte
	}{
		{encoder.SymbologyUPCE, 0x00},
		{encoder.SymbologyUPCA, 0x01},
		{encoder.SymbologyEAN8, 0x02},
		{encoder.SymbologyEAN13, 0x03},
		{encoder.SymbologyCode39, 0x04},
		{encoder.SymbologyITF, 0x05},
		{encoder.SymbologyCode128, 0x06},
		{encoder.SymbologyCode93, 0x07},
		{encoder.SymbologyNW7, 0x08},
		{encoder.SymbologyGS1128, 0x09},
		{encoder.SymbologyGS1DataBarOmni, 0x0A},
		{encoder.SymbologyGS1DataBarTrunc, 0x0B},
		{encoder.SymbologyGS1DataBarLimited, 0x0C},
		{encoder.SymbologyGS1DataBarExpanded, 0x0D},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbology), func(t *testing.T) {
			out, err := e.Barcode("0123456789", tt.symbology, 80)
			require.NoError(t, err)

			assert.Equal(t, []byte{0x1B, 0x62, tt.code}, out[:3])
			assert.Equal(t, byte(0x1E), out[len(out)-1])
		})
	}
}

func TestBarcodeUnsupportedSymbology(t *testing.T) {
	e := NewEncoder(nil)

	out, err := e.Barcode("12345", encoder.Symbology("pdf417"), 80)
	assert.ErrorIs(t, err, encoder.ErrUnsupportedSymbology)
	assert.Nil(t, out)
}

func TestBarcodeEmptyValueStillTerminated(t *testing.T) {
	e := NewEncoder(nil)

	out, err := e.Barcode("", encoder.SymbologyCode39, 60)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x62, 0x04, 0x01, 0x03, 60, 0x1E}, out)
}

func TestBarcodeHeightPassesThroughUnchecked(t *testing.T) {
	e := NewEncoder(nil)

	out, err := e.Barcode("1", encoder.SymbologyEAN8, 255)
	require.NoError(t, err)
	assert.Equal(t, byte(255), out[5])
}

func TestBarcodeNonASCIIPropagatesCodecError(t *testing.T) {
	e := NewEncoder(nil)

	out, err := e.Barcode("héllo", encoder.SymbologyCode128, 80)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, encoder.ErrUnsupportedSymbology)
	assert.Nil(t, out)
}
