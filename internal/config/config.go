// Package config holds the run configuration for the face detection demo.
//
// There is no configuration file. Default returns the values the demo has
// always run with; callers may adjust fields before calling Validate.
package config

import (
	"image"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Defaults for a demo run.
const (
	DefaultModelPath      = "face_detection_yunet_2023mar.onnx"
	DefaultImagePath      = "Group pics Classmates/IMG_1777.JPG"
	DefaultOutputPath     = "result.jpg"
	DefaultWindowTitle    = "Face Detection"
	DefaultInputWidth     = 320
	DefaultInputHeight    = 320
	DefaultScoreThreshold = 0.6
	DefaultNMSThreshold   = 0.3
	DefaultTopK           = 5000
	DefaultBackend        = "default"
	DefaultTarget         = "cpu"
)

// Config describes a single detection run.
type Config struct {
	// ModelPath is the YuNet ONNX model file.
	ModelPath string `validate:"required"`

	// ImagePath is the image to run detection on.
	ImagePath string `validate:"required"`

	// OutputPath is where the annotated image is written when Save is set.
	OutputPath string `validate:"required_if=Save true"`

	// WindowTitle names the display window when Vis is set.
	WindowTitle string `validate:"required_if=Vis true"`

	// InputWidth and InputHeight are the detector's initial input size. The
	// driver replaces them with the loaded image's size before inference.
	InputWidth  int `validate:"gte=1"`
	InputHeight int `validate:"gte=1"`

	ScoreThreshold float32 `validate:"gte=0,lte=1"`
	NMSThreshold   float32 `validate:"gte=0,lte=1"`
	TopK           int     `validate:"gte=1"`

	Backend string `validate:"oneof=default halide inference_engine opencv"`
	Target  string `validate:"oneof=cpu opencl opencl_fp16 myriad"`

	// Save writes the annotated image to OutputPath.
	Save bool

	// Vis shows the annotated image and waits for a key press.
	Vis bool

	// Verbose prints one diagnostic line per detection.
	Verbose bool

	// ShowFPS draws the inference rate in the top-left corner.
	ShowFPS bool
}

// Default returns the demo's hardcoded configuration.
func Default() Config {
	return Config{
		ModelPath:      DefaultModelPath,
		ImagePath:      DefaultImagePath,
		OutputPath:     DefaultOutputPath,
		WindowTitle:    DefaultWindowTitle,
		InputWidth:     DefaultInputWidth,
		InputHeight:    DefaultInputHeight,
		ScoreThreshold: DefaultScoreThreshold,
		NMSThreshold:   DefaultNMSThreshold,
		TopK:           DefaultTopK,
		Backend:        DefaultBackend,
		Target:         DefaultTarget,
		Vis:            true,
		Save:           false,
	}
}

// InputSize returns the configured detector input size.
func (c Config) InputSize() image.Point {
	return image.Pt(c.InputWidth, c.InputHeight)
}

var validate = validator.New()

// Validate checks field ranges and required values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// ErrUnsupportedValue is returned by ParseBool for strings outside the known
// aliases.
var ErrUnsupportedValue = errors.New("unsupported boolean value")

// ParseBool maps the aliases true/yes/on/y/t and false/no/off/n/f, in any
// case, to a bool.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "yes", "on", "y", "t":
		return true, nil
	case "false", "no", "off", "n", "f":
		return false, nil
	default:
		return false, errors.Wrapf(ErrUnsupportedValue, "%q", v)
	}
}
