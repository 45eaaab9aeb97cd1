//go:build cgo

package display

import (
	"image"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gocv.io/x/gocv"
)

type window struct{}

func (window) Show(title string, img image.Image) (err error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return errors.Wrap(err, "failed to convert image")
	}
	defer func() { err = multierr.Combine(err, mat.Close()) }()

	w := gocv.NewWindow(title)
	defer func() { err = multierr.Combine(err, w.Close()) }()

	size := img.Bounds().Size()
	w.ResizeWindow(size.X, size.Y)
	w.IMShow(mat)
	w.WaitKey(0)
	return nil
}
