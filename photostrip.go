// Package photostrip composes a strip image from a list of input
// photos: each input is cropped to a centered square, resampled to a
// fixed size with a Lanczos filter, and pasted in order onto a
// solid-color canvas with fixed padding between frames. The strip is
// written out as a lossless PNG.
package photostrip

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"photostrip/imageutil"
)

// Documented configuration defaults.
const (
	DefaultSquareSize = 600
	DefaultPadding    = 20
	DefaultOutputPath = "photo_strip.png"
)

// DefaultBackground is opaque white.
var DefaultBackground = imageutil.RGB{R: 255, G: 255, B: 255}

// ErrNoImages is returned when no input image could be processed and
// there is nothing to assemble. No output file is written in that case.
var ErrNoImages = errors.New("no images processed")

// Orientation selects the axis along which frames are laid out.
type Orientation int

const (
	// Vertical stacks frames top to bottom.
	Vertical Orientation = iota
	// Horizontal lays frames out left to right.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Config bundles the parameters of a strip run. It is treated as an
// immutable value; the pipeline never modifies the caller's copy.
type Config struct {
	// SquareSize is the side length of each frame in pixels.
	// Zero means DefaultSquareSize; negative values are rejected.
	SquareSize int

	// Padding is the background gap between consecutive frames in
	// pixels. Padding never appears on the cross axis or at the ends
	// of the strip.
	Padding int

	// Background is the canvas fill color. The zero value is opaque
	// black; use DefaultBackground for the documented white default.
	Background imageutil.RGB

	// Orientation selects vertical (default) or horizontal layout.
	Orientation Orientation

	// OutputPath is where the PNG is written, overwriting any
	// existing file. Empty means DefaultOutputPath.
	OutputPath string

	// Caption, when non-empty, adds a band below the strip with the
	// text centered in it. The band reuses the background color.
	Caption string

	// CaptionColor is the caption text color. The zero value is
	// opaque black.
	CaptionColor imageutil.RGB

	// Logger receives progress and status lines. Progress output is
	// informational only; callers must not depend on it for control
	// flow. Nil discards all output.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a Config populated with the documented
// defaults: 600px squares, 20px padding, white background, vertical
// orientation, output to "photo_strip.png".
func DefaultConfig() Config {
	return Config{
		SquareSize: DefaultSquareSize,
		Padding:    DefaultPadding,
		Background: DefaultBackground,
		OutputPath: DefaultOutputPath,
	}
}

// withDefaults fills unset fields with their documented defaults.
func (c Config) withDefaults() Config {
	if c.SquareSize == 0 {
		c.SquareSize = DefaultSquareSize
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	return c
}

func (c Config) validate() error {
	if c.SquareSize < 1 {
		return errors.New("square size must be positive")
	}
	if c.Padding < 0 {
		return errors.New("padding must not be negative")
	}
	return nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// SkippedImage records one input that failed to load or decode.
type SkippedImage struct {
	Path string
	Err  error
}

// Result describes a completed strip run.
type Result struct {
	// OutputPath is the path the PNG was written to.
	OutputPath string

	// Width and Height are the final canvas dimensions in pixels.
	Width  int
	Height int

	// Processed is the number of frames that made it into the strip.
	Processed int

	// Skipped lists the inputs dropped by the skip-and-continue
	// policy, in input order.
	Skipped []SkippedImage
}
