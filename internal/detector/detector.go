package detector

import (
	"image"

	"github.com/pkg/errors"

	"github.com/ironsheep/yunet-facedetect/internal/config"
	"github.com/ironsheep/yunet-facedetect/internal/face"
)

var (
	// ErrUnavailable is returned by New when the binary was built without
	// OpenCV support.
	ErrUnavailable = errors.New("face detector unavailable: built without cgo")

	// ErrInputSize is returned by Detect when the image does not match the
	// detector's input size.
	ErrInputSize = errors.New("image size does not match detector input size")
)

// Detector finds faces in an image.
type Detector interface {
	// SetInputSize sets the image size the next Detect call expects.
	SetInputSize(size image.Point)

	// Detect returns the faces found in img, in detector order. No faces is
	// a nil slice and a nil error.
	Detect(img image.Image) ([]face.Detection, error)

	Close() error
}

// Params configures a detector. They are handed to OpenCV unchanged.
type Params struct {
	ModelPath      string
	ConfigPath     string
	InputSize      image.Point
	ScoreThreshold float32
	NMSThreshold   float32
	TopK           int
	Backend        Backend
	Target         Target
}

// ParamsFromConfig extracts detector parameters from a run configuration.
func ParamsFromConfig(cfg config.Config) (Params, error) {
	backend, err := ParseBackend(cfg.Backend)
	if err != nil {
		return Params{}, err
	}
	target, err := ParseTarget(cfg.Target)
	if err != nil {
		return Params{}, err
	}
	return Params{
		ModelPath:      cfg.ModelPath,
		InputSize:      cfg.InputSize(),
		ScoreThreshold: cfg.ScoreThreshold,
		NMSThreshold:   cfg.NMSThreshold,
		TopK:           cfg.TopK,
		Backend:        backend,
		Target:         target,
	}, nil
}

// Validate checks the parameters that can be checked without loading the
// model.
func (p Params) Validate() error {
	if p.ModelPath == "" {
		return errors.New("model path is required")
	}
	if p.InputSize.X <= 0 || p.InputSize.Y <= 0 {
		return errors.Errorf("invalid input size %v", p.InputSize)
	}
	if p.TopK < 1 {
		return errors.Errorf("top-k must be positive, got %d", p.TopK)
	}
	return CheckCompatible(p.Backend, p.Target)
}

// New creates a YuNet detector.
func New(p Params) (Detector, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid detector params")
	}
	return newYuNet(p)
}
