//go:build !cgo

package detector

func newYuNet(Params) (Detector, error) {
	return nil, ErrUnavailable
}
