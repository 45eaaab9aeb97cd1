package detector

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/ironsheep/yunet-facedetect/internal/config"
)

func TestParseBackend(t *testing.T) {
	for b, name := range backendNames {
		got, err := ParseBackend(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, b)
		test.That(t, got.String(), test.ShouldEqual, name)
	}
	_, err := ParseBackend("cuda")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, Backend(42).String(), test.ShouldEqual, "unknown")
}

func TestParseTarget(t *testing.T) {
	for tgt, name := range targetNames {
		got, err := ParseTarget(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, tgt)
		test.That(t, got.String(), test.ShouldEqual, name)
	}
	_, err := ParseTarget("vulkan")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, Target(-1).String(), test.ShouldEqual, "unknown")
}

func TestCheckCompatible(t *testing.T) {
	tests := []struct {
		backend Backend
		target  Target
		ok      bool
	}{
		{BackendDefault, TargetCPU, true},
		{BackendDefault, TargetOpenCLFP16, true},
		{BackendDefault, TargetMyriad, false},
		{BackendHalide, TargetOpenCL, true},
		{BackendHalide, TargetOpenCLFP16, false},
		{BackendHalide, TargetMyriad, false},
		{BackendInferenceEngine, TargetMyriad, true},
		{BackendOpenCV, TargetCPU, true},
		{BackendOpenCV, TargetMyriad, false},
	}
	for _, tt := range tests {
		t.Run(tt.backend.String()+"/"+tt.target.String(), func(t *testing.T) {
			err := CheckCompatible(tt.backend, tt.target)
			if tt.ok {
				test.That(t, err, test.ShouldBeNil)
			} else {
				test.That(t, errors.Is(err, ErrIncompatible), test.ShouldBeTrue)
			}
		})
	}

	test.That(t, CheckCompatible(Backend(9), TargetCPU), test.ShouldNotBeNil)
	test.That(t, CheckCompatible(BackendOpenCV, Target(9)), test.ShouldNotBeNil)
}

func TestParamsFromConfig(t *testing.T) {
	p, err := ParamsFromConfig(config.Default())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.ModelPath, test.ShouldEqual, config.DefaultModelPath)
	test.That(t, p.InputSize, test.ShouldResemble, image.Pt(320, 320))
	test.That(t, p.ScoreThreshold, test.ShouldEqual, float32(0.6))
	test.That(t, p.NMSThreshold, test.ShouldEqual, float32(0.3))
	test.That(t, p.TopK, test.ShouldEqual, 5000)
	test.That(t, p.Backend, test.ShouldEqual, BackendDefault)
	test.That(t, p.Target, test.ShouldEqual, TargetCPU)
	test.That(t, p.Validate(), test.ShouldBeNil)

	cfg := config.Default()
	cfg.Target = "gpu"
	_, err = ParamsFromConfig(cfg)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParamsValidate(t *testing.T) {
	base, err := ParamsFromConfig(config.Default())
	test.That(t, err, test.ShouldBeNil)

	p := base
	p.ModelPath = ""
	test.That(t, p.Validate(), test.ShouldNotBeNil)

	p = base
	p.InputSize = image.Pt(0, 320)
	test.That(t, p.Validate(), test.ShouldNotBeNil)

	p = base
	p.TopK = 0
	test.That(t, p.Validate(), test.ShouldNotBeNil)

	p = base
	p.Backend = BackendHalide
	p.Target = TargetMyriad
	test.That(t, errors.Is(p.Validate(), ErrIncompatible), test.ShouldBeTrue)
}

func TestNew_RejectsBadParams(t *testing.T) {
	p, err := ParamsFromConfig(config.Default())
	test.That(t, err, test.ShouldBeNil)
	p.Backend = BackendOpenCV
	p.Target = TargetMyriad

	det, err := New(p)
	test.That(t, det, test.ShouldBeNil)
	test.That(t, errors.Is(err, ErrIncompatible), test.ShouldBeTrue)
}

func TestNew_MissingModel(t *testing.T) {
	p, err := ParamsFromConfig(config.Default())
	test.That(t, err, test.ShouldBeNil)
	p.ModelPath = "/nonexistent/face_detection_yunet.onnx"

	det, err := New(p)
	test.That(t, det, test.ShouldBeNil)
	test.That(t, err, test.ShouldNotBeNil)
}
