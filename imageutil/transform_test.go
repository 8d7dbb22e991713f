package imageutil

import "testing"

func TestCropSquareWide(t *testing.T) {
	// 10x4: side 4, left = (10-4)/2 = 3, top = 0
	img := CreateIndexedImage(10, 4)
	sq := CropSquare(img)

	if sq.Width() != 4 || sq.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", sq.Width(), sq.Height())
	}
	if got := sq.GetRGB(0, 0); got != (RGB{R: 3, G: 0}) {
		t.Errorf("Crop should start at source (3,0), got origin pixel %v", got)
	}
	if got := sq.GetRGB(3, 3); got != (RGB{R: 6, G: 3}) {
		t.Errorf("Crop should end at source (6,3), got corner pixel %v", got)
	}
}

func TestCropSquareTall(t *testing.T) {
	// 4x10: side 4, left = 0, top = 3
	img := CreateIndexedImage(4, 10)
	sq := CropSquare(img)

	if sq.Width() != 4 || sq.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", sq.Width(), sq.Height())
	}
	if got := sq.GetRGB(0, 0); got != (RGB{R: 0, G: 3}) {
		t.Errorf("Crop should start at source (0,3), got origin pixel %v", got)
	}
}

func TestCropSquareOddBias(t *testing.T) {
	// 7x4: side 4, difference 3 is odd; floor division gives left = 1,
	// so the crop sits one pixel closer to the left edge.
	img := CreateIndexedImage(7, 4)
	sq := CropSquare(img)

	if got := sq.GetRGB(0, 0); got != (RGB{R: 1, G: 0}) {
		t.Errorf("Odd difference should bias toward top-left, got origin pixel %v", got)
	}
	if got := sq.GetRGB(3, 0); got != (RGB{R: 4, G: 0}) {
		t.Errorf("Expected crop to cover source x=1..4, got corner pixel %v", got)
	}
}

func TestCropSquareAlreadySquare(t *testing.T) {
	img := CreateIndexedImage(5, 5)
	sq := CropSquare(img)

	if sq.Width() != 5 || sq.Height() != 5 {
		t.Fatalf("Expected 5x5, got %dx%d", sq.Width(), sq.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if sq.GetRGB(x, y) != img.GetRGB(x, y) {
				t.Fatalf("Square input should crop to itself, pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestResizeSquareDownscale(t *testing.T) {
	img := CreateGradientImage(100, 100)
	out := ResizeSquare(img, 40)
	if out.Width() != 40 || out.Height() != 40 {
		t.Errorf("Expected 40x40, got %dx%d", out.Width(), out.Height())
	}
}

func TestResizeSquareUpscale(t *testing.T) {
	img := CreateGradientImage(50, 50)
	out := ResizeSquare(img, 200)
	if out.Width() != 200 || out.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", out.Width(), out.Height())
	}
}

func TestResizeSquarePreservesSolidColor(t *testing.T) {
	c := RGB{R: 40, G: 90, B: 160}
	img := CreateSolidImage(30, 30, c)

	for _, size := range []int{10, 30, 90} {
		out := ResizeSquare(img, size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if got := out.GetRGB(x, y); got != c {
					t.Fatalf("size %d: pixel (%d,%d) = %v, want %v", size, x, y, got, c)
				}
			}
		}
	}
}

func TestNewCanvas(t *testing.T) {
	bg := RGB{R: 7, G: 8, B: 9}
	canvas := NewCanvas(6, 4, bg)

	if canvas.Width() != 6 || canvas.Height() != 4 {
		t.Fatalf("Expected 6x4, got %dx%d", canvas.Width(), canvas.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if got := canvas.GetRGB(x, y); got != bg {
				t.Fatalf("Pixel (%d,%d) = %v, want background %v", x, y, got, bg)
			}
		}
	}
}

func TestPaste(t *testing.T) {
	bg := RGB{R: 255, G: 255, B: 255}
	fg := RGB{R: 0, G: 0, B: 0}
	canvas := NewCanvas(10, 10, bg)
	patch := CreateSolidImage(3, 3, fg)

	canvas = Paste(canvas, patch, 4, 5)

	if got := canvas.GetRGB(4, 5); got != fg {
		t.Errorf("Pasted origin should be foreground, got %v", got)
	}
	if got := canvas.GetRGB(6, 7); got != fg {
		t.Errorf("Pasted far corner should be foreground, got %v", got)
	}
	if got := canvas.GetRGB(3, 5); got != bg {
		t.Errorf("Pixel left of paste should stay background, got %v", got)
	}
	if got := canvas.GetRGB(7, 8); got != bg {
		t.Errorf("Pixel past paste should stay background, got %v", got)
	}
}
