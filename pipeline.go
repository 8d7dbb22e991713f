package photostrip

import (
	"github.com/sirupsen/logrus"

	"photostrip/imageutil"
)

// Make runs the full pipeline: load and normalize every path, crop each
// to a centered square, resample to the configured size, and assemble
// the survivors into a strip at cfg.OutputPath. Inputs that fail to
// decode are skipped; ErrNoImages is returned if none survive.
func Make(paths []string, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Logger.WithFields(logrus.Fields{
		"images":      len(paths),
		"square_size": cfg.SquareSize,
		"padding":     cfg.Padding,
		"orientation": cfg.Orientation.String(),
	}).Info("creating photo strip")

	frames, skipped := ProcessImages(paths, cfg)

	result, err := Assemble(frames, cfg)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped
	return result, nil
}

// ProcessImages runs the per-image stages (load, crop to square,
// resize) over paths in order. The returned frames all measure exactly
// cfg.SquareSize on both sides; failed inputs are reported in the
// second return value and omitted from the first.
func ProcessImages(paths []string, cfg Config) ([]*imageutil.RGBImage, []SkippedImage) {
	cfg = cfg.withDefaults()

	frames := make([]*imageutil.RGBImage, 0, len(paths))
	var skipped []SkippedImage

	for i, path := range paths {
		log := cfg.Logger.WithFields(logrus.Fields{
			"image": i + 1,
			"total": len(paths),
			"path":  path,
		})

		img, err := imageutil.Load(path)
		if err != nil {
			log.WithError(err).Warn("skipping image")
			skipped = append(skipped, SkippedImage{Path: path, Err: err})
			continue
		}
		log.WithFields(logrus.Fields{
			"width":  img.Width(),
			"height": img.Height(),
		}).Debug("decoded image")

		square := imageutil.CropSquare(img)
		frame := imageutil.ResizeSquare(square, cfg.SquareSize)
		frames = append(frames, frame)

		log.Info("processed image")
	}

	return frames, skipped
}
