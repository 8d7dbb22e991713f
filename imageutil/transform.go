package imageutil

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropSquare crops an image to the largest centered square. The square
// side is min(width, height); when the trimmed difference is odd the
// extra pixel is taken from the right/bottom, biasing the crop toward
// the top-left.
func CropSquare(img *RGBImage) *RGBImage {
	w, h := img.Width(), img.Height()
	side := w
	if h < w {
		side = h
	}
	left := (w - side) / 2
	top := (h - side) / 2

	rect := image.Rect(left, top, left+side, top+side)
	return &RGBImage{NRGBA: imaging.Crop(img.NRGBA, rect)}
}

// ResizeSquare resamples a square image to size x size using the
// Lanczos filter. Lanczos is chosen for sharpness without aliasing on
// both upscale and downscale.
func ResizeSquare(img *RGBImage, size int) *RGBImage {
	return &RGBImage{NRGBA: imaging.Resize(img.NRGBA, size, size, imaging.Lanczos)}
}

// NewCanvas allocates a canvas of the given dimensions with every
// pixel set to the background color.
func NewCanvas(width, height int, bg RGB) *RGBImage {
	return &RGBImage{NRGBA: imaging.New(width, height, bg.ToNRGBA())}
}

// Paste draws src onto dst with src's top-left corner at (x, y) and
// returns the combined image.
func Paste(dst, src *RGBImage, x, y int) *RGBImage {
	return &RGBImage{NRGBA: imaging.Paste(dst.NRGBA, src.NRGBA, image.Pt(x, y))}
}
