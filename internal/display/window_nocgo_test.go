//go:build !cgo

package display

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestShow_Unavailable(t *testing.T) {
	err := New().Show("Face Detection", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	test.That(t, errors.Is(err, ErrUnavailable), test.ShouldBeTrue)
}
