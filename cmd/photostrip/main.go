package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"photostrip"
	"photostrip/imageutil"
)

// Config holds the environment-variable defaults for the CLI. Flags
// override environment values, which override the built-in defaults.
type Config struct {
	SquareSize int    `envDefault:"600"`
	Padding    int    `envDefault:"20"`
	Background string `envDefault:"255,255,255"`
	Horizontal bool
	Output     string `envDefault:"photo_strip.png"`
	Caption    string
}

func main() {
	conf, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "PHOTOSTRIP_", UseFieldNameByDefault: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	squareSize := flag.Int("size", conf.SquareSize,
		"Side length of each square frame in pixels")
	padding := flag.Int("padding", conf.Padding,
		"Background gap between frames in pixels")
	background := flag.String("background", conf.Background,
		"Background color as R,G,B (0-255 each)")
	horizontal := flag.Bool("horizontal", conf.Horizontal,
		"Lay frames out left to right instead of top to bottom")
	output := flag.String("output", conf.Output,
		"Path of the output PNG (overwritten if it exists)")
	caption := flag.String("caption", conf.Caption,
		"Optional caption rendered below the strip")
	debug := flag.Bool("debug", false,
		"Enable verbose logging")
	flag.Parse()

	logger := initLogger(*debug)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: photostrip [flags] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	bg, err := parseColor(*background)
	if err != nil {
		logger.WithError(err).Error("invalid -background value")
		os.Exit(2)
	}

	// Drop paths that don't exist up front so the per-image log noise
	// is limited to genuinely undecodable files.
	paths := make([]string, 0, flag.NArg())
	for _, path := range flag.Args() {
		if _, err := os.Stat(path); err != nil {
			logger.WithField("path", path).Warn("input file not found")
			continue
		}
		paths = append(paths, path)
	}

	orientation := photostrip.Vertical
	if *horizontal {
		orientation = photostrip.Horizontal
	}

	result, err := photostrip.Make(paths, photostrip.Config{
		SquareSize:  *squareSize,
		Padding:     *padding,
		Background:  bg,
		Orientation: orientation,
		OutputPath:  *output,
		Caption:     *caption,
		Logger:      logger,
	})
	if err != nil {
		logger.WithError(err).Error("photo strip failed")
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"path":      result.OutputPath,
		"width":     result.Width,
		"height":    result.Height,
		"processed": result.Processed,
		"skipped":   len(result.Skipped),
	}).Info("done")
}

// parseColor parses an "R,G,B" triple of 8-bit channel values.
func parseColor(s string) (imageutil.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return imageutil.RGB{}, fmt.Errorf("expected R,G,B, got %q", s)
	}
	var ch [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return imageutil.RGB{}, fmt.Errorf("invalid channel %q: %w", part, err)
		}
		ch[i] = uint8(v)
	}
	return imageutil.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
