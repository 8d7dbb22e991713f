// Package imageutil provides the fixed-format image type used by the
// photo strip pipeline and thin wrappers around the imaging library
// for loading, cropping, resampling, pasting and saving.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color with three 8-bit channels and no alpha.
type RGB struct {
	R, G, B uint8
}

// ToNRGBA converts RGB to color.NRGBA with full opacity.
func (rgb RGB) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, discarding alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBImage wraps image.NRGBA with convenience methods for pixel access.
// Every pixel is fully opaque; alpha is dropped on conversion.
type RGBImage struct {
	*image.NRGBA
}

// NewRGBImage creates a new RGBImage with the specified dimensions.
// Pixels start out opaque black.
func NewRGBImage(width, height int) *RGBImage {
	img := &RGBImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

// FromImage converts any image.Image to an RGBImage, normalizing the
// source color model (grayscale, palette, RGBA, ...) to three 8-bit
// channels and forcing every pixel opaque.
func FromImage(img image.Image) *RGBImage {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		out := &RGBImage{NRGBA: nrgba}
		for i := 3; i < len(out.Pix); i += 4 {
			out.Pix[i] = 255
		}
		return out
	}

	bounds := img.Bounds()
	out := NewRGBImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return out
}

// Width returns the image width.
func (img *RGBImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y), keeping the pixel opaque.
func (img *RGBImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the image.
func (img *RGBImage) Clone() *RGBImage {
	clone := NewRGBImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
