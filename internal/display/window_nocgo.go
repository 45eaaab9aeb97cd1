//go:build !cgo

package display

import "image"

type window struct{}

func (window) Show(string, image.Image) error {
	return ErrUnavailable
}
