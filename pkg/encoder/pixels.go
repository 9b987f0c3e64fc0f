// pkg/encoder/pixels.go
package encoder

import (
	"image"

	"golang.org/x/image/draw"
)

// grayPixels adapts a grayscale buffer to the PixelSource contract.
type grayPixels struct {
	img *image.Gray
}

// Sample returns the gray value at (x, y) relative to the buffer origin.
func (g *grayPixels) Sample(x, y int) (uint8, bool) {
	b := g.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return 0, false
	}
	return g.img.GrayAt(b.Min.X+x, b.Min.Y+y).Y, true
}

// NewImageSource converts any image.Image into a PixelSource by drawing it
// into a grayscale buffer. A fully dark pixel (gray value 0) is printed
// black; everything else is left white.
func NewImageSource(img image.Image) PixelSource {
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return &grayPixels{img: gray}
}
