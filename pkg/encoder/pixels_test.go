// pkg/encoder/pixels_test.go
package encoder

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImageSourceGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 128})
	img.SetGray(1, 1, color.Gray{Y: 255})

	src := NewImageSource(img)

	v, ok := src.Sample(0, 0)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), v)

	v, ok = src.Sample(1, 0)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)

	v, ok = src.Sample(0, 1)
	assert.True(t, ok)
	assert.Equal(t, uint8(128), v)
}

func TestNewImageSourceOutOfBounds(t *testing.T) {
	src := NewImageSource(image.NewGray(image.Rect(0, 0, 2, 2)))

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		_, ok := src.Sample(c[0], c[1])
		assert.False(t, ok, "coordinate %v", c)
	}
}

func TestNewImageSourceRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	src := NewImageSource(img)

	v, ok := src.Sample(0, 0)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), v)

	v, ok = src.Sample(0, 1)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)
}

func TestNewImageSourceOffsetBounds(t *testing.T) {
	// Sampling is relative to the image origin, not the bounds rectangle.
	img := image.NewGray(image.Rect(10, 10, 12, 12))
	img.SetGray(10, 10, color.Gray{Y: 0})
	img.SetGray(11, 11, color.Gray{Y: 255})

	src := NewImageSource(img)

	v, ok := src.Sample(0, 0)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), v)

	v, ok = src.Sample(1, 1)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)
}
