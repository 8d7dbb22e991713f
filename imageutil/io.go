package imageutil

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Load opens and decodes an image from the specified path and
// normalizes it to the fixed three-channel representation.
// Supports JPEG, PNG, GIF, TIFF, BMP and WebP inputs; JPEG EXIF
// orientation is applied during decode.
func Load(path string) (*RGBImage, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG encodes an image as PNG to the specified path, overwriting
// any existing file. PNG is used regardless of the path's extension
// so the output is always lossless.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
