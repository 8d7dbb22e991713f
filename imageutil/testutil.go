package imageutil

// CreateGradientImage creates a horizontal grayscale gradient test image.
func CreateGradientImage(width, height int) *RGBImage {
	img := NewRGBImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBImage {
	img := NewRGBImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateQuadrantImage creates an image whose four quadrants carry
// distinct colors, useful for verifying crop placement. Quadrant
// boundaries sit at width/2 and height/2.
func CreateQuadrantImage(width, height int) *RGBImage {
	colors := [4]RGB{
		{255, 0, 0},   // top-left: red
		{0, 255, 0},   // top-right: green
		{0, 0, 255},   // bottom-left: blue
		{255, 255, 0}, // bottom-right: yellow
	}
	img := NewRGBImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := 0
			if x >= width/2 {
				idx++
			}
			if y >= height/2 {
				idx += 2
			}
			img.SetRGB(x, y, colors[idx])
		}
	}
	return img
}

// CreateIndexedImage creates an image where each pixel encodes its own
// coordinates: R = x mod 256, G = y mod 256, B = 0. Crop offsets can be
// recovered exactly from the output pixels.
func CreateIndexedImage(width, height int) *RGBImage {
	img := NewRGBImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, RGB{R: uint8(x % 256), G: uint8(y % 256)})
		}
	}
	return img
}
