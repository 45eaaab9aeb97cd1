package detector

import (
	"github.com/pkg/errors"
)

// Backend selects the DNN compute backend.
type Backend int

// Known backends.
const (
	BackendDefault Backend = iota
	BackendHalide
	BackendInferenceEngine
	BackendOpenCV
)

var backendNames = map[Backend]string{
	BackendDefault:         "default",
	BackendHalide:          "halide",
	BackendInferenceEngine: "inference_engine",
	BackendOpenCV:          "opencv",
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBackend returns the backend with the given name.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, errors.Errorf("unknown backend %q", name)
}

// Target selects the device the backend computes on.
type Target int

// Known targets.
const (
	TargetCPU Target = iota
	TargetOpenCL
	TargetOpenCLFP16
	TargetMyriad
)

var targetNames = map[Target]string{
	TargetCPU:        "cpu",
	TargetOpenCL:     "opencl",
	TargetOpenCLFP16: "opencl_fp16",
	TargetMyriad:     "myriad",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTarget returns the target with the given name.
func ParseTarget(name string) (Target, error) {
	for t, n := range targetNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.Errorf("unknown target %q", name)
}

// ErrIncompatible is returned for a backend that cannot run on a target.
var ErrIncompatible = errors.New("backend does not support target")

var supportedTargets = map[Backend][]Target{
	BackendDefault:         {TargetCPU, TargetOpenCL, TargetOpenCLFP16},
	BackendHalide:          {TargetCPU, TargetOpenCL},
	BackendInferenceEngine: {TargetCPU, TargetOpenCL, TargetOpenCLFP16, TargetMyriad},
	BackendOpenCV:          {TargetCPU, TargetOpenCL, TargetOpenCLFP16},
}

// CheckCompatible reports whether backend b can run on target t.
func CheckCompatible(b Backend, t Target) error {
	targets, ok := supportedTargets[b]
	if !ok {
		return errors.Errorf("unknown backend %d", int(b))
	}
	if _, ok := targetNames[t]; !ok {
		return errors.Errorf("unknown target %d", int(t))
	}
	for _, supported := range targets {
		if supported == t {
			return nil
		}
	}
	return errors.Wrapf(ErrIncompatible, "%s on %s", b, t)
}
