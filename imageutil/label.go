package imageutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelHeight returns the line height of the built-in label face.
func LabelHeight() int {
	return basicfont.Face7x13.Metrics().Height.Ceil()
}

// DrawLabel renders text onto img using the built-in 7x13 face,
// horizontally centered on centerX with the baseline at baselineY.
// Drawing is clipped to the image bounds.
func DrawLabel(img *RGBImage, text string, centerX, baselineY int, c RGB) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img.NRGBA,
		Src:  image.NewUniform(c.ToNRGBA()),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	d.Dot = fixed.P(centerX-width/2, baselineY)
	d.DrawString(text)
}
