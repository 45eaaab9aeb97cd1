// Package driver runs one face detection pass over a single image.
//
// A run builds the detector, loads the image, sizes the detector to the
// image, detects faces, draws the overlay and then, depending on the
// configuration, saves and/or shows the result. An image that cannot be
// loaded is reported on the console and ends the run without an error.
package driver

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ironsheep/yunet-facedetect/internal/config"
	"github.com/ironsheep/yunet-facedetect/internal/detector"
	"github.com/ironsheep/yunet-facedetect/internal/display"
	"github.com/ironsheep/yunet-facedetect/internal/face"
	"github.com/ironsheep/yunet-facedetect/internal/imageio"
	"github.com/ironsheep/yunet-facedetect/internal/render"
)

// Console messages.
const (
	MsgImageNotFound = "Image not found or unable to open."
	msgSavedFormat   = "%s saved."
)

// Driver sequences a single run. Zero-valued dependencies are filled in by
// New with the real implementations.
type Driver struct {
	cfg config.Config

	NewDetector func(detector.Params) (detector.Detector, error)
	Load        func(path string) (image.Image, error)
	Save        func(path string, img image.Image) error
	Display     display.Display
	Stdout      io.Writer
	Clock       clock.Clock
	Logger      *zap.SugaredLogger
}

// New returns a Driver for cfg using the real detector, file I/O and window.
func New(cfg config.Config, logger *zap.SugaredLogger) *Driver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Driver{
		cfg:         cfg,
		NewDetector: detector.New,
		Load:        imageio.Load,
		Save:        imageio.Save,
		Display:     display.New(),
		Stdout:      os.Stdout,
		Clock:       clock.New(),
		Logger:      logger,
	}
}

// Result summarises a completed run.
type Result struct {
	// Loaded is false when the input image could not be read.
	Loaded     bool
	Detections []face.Detection
	Image      image.Image
	Elapsed    time.Duration
	Saved      bool
	Shown      bool
}

// Run performs the run described by the driver's config.
func (d *Driver) Run() (_ *Result, err error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}
	params, err := detector.ParamsFromConfig(d.cfg)
	if err != nil {
		return nil, err
	}

	det, err := d.NewDetector(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create detector")
	}
	defer func() { err = multierr.Combine(err, det.Close()) }()

	res := &Result{}

	img, loadErr := d.Load(d.cfg.ImagePath)
	if loadErr != nil {
		d.Logger.Debugw("image load failed", "path", d.cfg.ImagePath, "error", loadErr)
		fmt.Fprintln(d.Stdout, MsgImageNotFound)
		return res, nil
	}
	res.Loaded = true
	d.logImageInfo(img)

	det.SetInputSize(img.Bounds().Size())

	start := d.Clock.Now()
	dets, err := det.Detect(img)
	if err != nil {
		return nil, errors.Wrap(err, "detection failed")
	}
	res.Elapsed = d.Clock.Since(start)
	res.Detections = dets
	d.Logger.Infow("detection complete", "faces", len(dets), "elapsed", res.Elapsed)

	opts := render.Options{Verbose: d.cfg.Verbose, Out: d.Stdout}
	if d.cfg.ShowFPS && res.Elapsed > 0 {
		fps := 1 / res.Elapsed.Seconds()
		opts.FPS = &fps
	}
	res.Image = render.Visualize(img, dets, opts)

	if d.cfg.Save {
		if err := d.Save(d.cfg.OutputPath, res.Image); err != nil {
			return nil, errors.Wrap(err, "failed to save result")
		}
		res.Saved = true
		fmt.Fprintf(d.Stdout, msgSavedFormat+"\n", d.cfg.OutputPath)
	}

	if d.cfg.Vis {
		if err := d.Display.Show(d.cfg.WindowTitle, res.Image); err != nil {
			return nil, errors.Wrap(err, "failed to show result")
		}
		res.Shown = true
	}

	return res, nil
}

func (d *Driver) logImageInfo(img image.Image) {
	info, err := imageio.Info(d.cfg.ImagePath, img)
	if err != nil {
		d.Logger.Debugw("image info unavailable", "error", err)
		return
	}
	d.Logger.Debugw("image loaded",
		"path", d.cfg.ImagePath,
		"width", info.Width,
		"height", info.Height,
		"format", info.Format,
		"bytes", info.FileSizeBytes)
}
