// Package display shows an image in a desktop window until a key is pressed.
//
// The window is provided by OpenCV's highgui through gocv and therefore needs
// cgo. Builds without cgo get a Display whose Show returns ErrUnavailable.
package display

import (
	"image"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned by Show in builds without window support.
var ErrUnavailable = errors.New("display unavailable: built without cgo")

// Display presents an image to the user.
type Display interface {
	// Show opens a window titled title showing img and blocks until any key
	// is pressed. The window is closed before Show returns.
	Show(title string, img image.Image) error
}

// New returns the platform window display.
func New() Display {
	return window{}
}
