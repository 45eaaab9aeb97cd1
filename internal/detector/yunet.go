//go:build cgo

package detector

import (
	"image"
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/ironsheep/yunet-facedetect/internal/face"
)

var netBackends = map[Backend]gocv.NetBackendType{
	BackendDefault:         gocv.NetBackendDefault,
	BackendHalide:          gocv.NetBackendHalide,
	BackendInferenceEngine: gocv.NetBackendOpenVINO,
	BackendOpenCV:          gocv.NetBackendOpenCV,
}

var netTargets = map[Target]gocv.NetTargetType{
	TargetCPU:        gocv.NetTargetCPU,
	TargetOpenCL:     gocv.NetTargetFP32,
	TargetOpenCLFP16: gocv.NetTargetFP16,
	TargetMyriad:     gocv.NetTargetVPU,
}

// yunet wraps OpenCV's FaceDetectorYN.
type yunet struct {
	fd        gocv.FaceDetectorYN
	faces     gocv.Mat
	inputSize image.Point
}

func newYuNet(p Params) (Detector, error) {
	// OpenCV aborts on a missing model instead of reporting it.
	if _, err := os.Stat(p.ModelPath); err != nil {
		return nil, errors.Wrap(err, "failed to open model")
	}

	fd := gocv.NewFaceDetectorYNWithParams(
		p.ModelPath,
		p.ConfigPath,
		p.InputSize,
		p.ScoreThreshold,
		p.NMSThreshold,
		p.TopK,
		int(netBackends[p.Backend]),
		int(netTargets[p.Target]),
	)

	return &yunet{
		fd:        fd,
		faces:     gocv.NewMat(),
		inputSize: p.InputSize,
	}, nil
}

func (y *yunet) SetInputSize(size image.Point) {
	y.fd.SetInputSize(size)
	y.inputSize = size
}

func (y *yunet) Detect(img image.Image) ([]face.Detection, error) {
	if size := img.Bounds().Size(); size != y.inputSize {
		return nil, errors.Wrapf(ErrInputSize, "image %v, input %v", size, y.inputSize)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert image")
	}
	defer mat.Close()

	y.fd.Detect(mat, &y.faces)

	return face.FromRows(matRows(y.faces))
}

// matRows copies an N x 15 CV_32F result matrix into row slices.
func matRows(m gocv.Mat) [][]float32 {
	if m.Empty() || m.Cols() != face.RowSize {
		return nil
	}
	rows := make([][]float32, m.Rows())
	for r := range rows {
		row := make([]float32, face.RowSize)
		for c := range row {
			row[c] = m.GetFloatAt(r, c)
		}
		rows[r] = row
	}
	return rows
}

func (y *yunet) Close() error {
	y.fd.Close()
	return y.faces.Close()
}
