package photostrip

import (
	"github.com/sirupsen/logrus"

	"photostrip/imageutil"
)

// captionBandHeight is the extra strip height added below the frames
// when a caption is configured.
const captionBandHeight = 40

// stripSize returns the canvas dimensions for n frames:
// n*sq + p*(n-1) along the strip axis and exactly sq on the cross
// axis. A caption adds a band of captionBandHeight below the strip.
func stripSize(n int, cfg Config) (width, height int) {
	span := n*cfg.SquareSize + cfg.Padding*(n-1)
	if cfg.Orientation == Horizontal {
		width, height = span, cfg.SquareSize
	} else {
		width, height = cfg.SquareSize, span
	}
	if cfg.Caption != "" {
		height += captionBandHeight
	}
	return width, height
}

// frameOffset returns the strip-axis origin of the i-th frame
// (0-indexed). The cross-axis origin is always 0.
func frameOffset(i int, cfg Config) int {
	return i * (cfg.SquareSize + cfg.Padding)
}

// Assemble pastes the frames onto a background-colored canvas in
// order and writes the canvas as PNG to cfg.OutputPath, overwriting
// any existing file. Every frame must already measure cfg.SquareSize
// on both sides. An empty frame slice is the single fatal condition:
// Assemble returns ErrNoImages and writes nothing.
func Assemble(frames []*imageutil.RGBImage, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoImages
	}

	width, height := stripSize(len(frames), cfg)
	cfg.Logger.WithFields(logrus.Fields{
		"frames": len(frames),
		"width":  width,
		"height": height,
	}).Info("assembling strip")

	canvas := imageutil.NewCanvas(width, height, cfg.Background)
	for i, frame := range frames {
		offset := frameOffset(i, cfg)
		if cfg.Orientation == Horizontal {
			canvas = imageutil.Paste(canvas, frame, offset, 0)
		} else {
			canvas = imageutil.Paste(canvas, frame, 0, offset)
		}
	}

	if cfg.Caption != "" {
		baseline := height - captionBandHeight + (captionBandHeight+imageutil.LabelHeight())/2
		imageutil.DrawLabel(canvas, cfg.Caption, width/2, baseline, cfg.CaptionColor)
	}

	if err := imageutil.SavePNG(canvas, cfg.OutputPath); err != nil {
		return nil, err
	}

	cfg.Logger.WithFields(logrus.Fields{
		"path":   cfg.OutputPath,
		"width":  width,
		"height": height,
		"format": "png",
	}).Info("photo strip saved")

	return &Result{
		OutputPath: cfg.OutputPath,
		Width:      width,
		Height:     height,
		Processed:  len(frames),
	}, nil
}
