package face

import (
	"image"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// RowSize is the number of values in one detector output row.
const RowSize = 15

// ErrRowSize is returned when a detector row does not hold RowSize values.
var ErrRowSize = errors.New("detection row must hold 15 values")

// Landmark identifies one of the five facial landmarks, in detector order.
type Landmark int

// Landmarks in the order the detector reports them.
const (
	RightEye Landmark = iota
	LeftEye
	NoseTip
	RightMouthCorner
	LeftMouthCorner

	// NumLandmarks is the number of landmarks per detection.
	NumLandmarks = 5
)

// String returns the landmark's snake_case name.
func (l Landmark) String() string {
	switch l {
	case RightEye:
		return "right_eye"
	case LeftEye:
		return "left_eye"
	case NoseTip:
		return "nose_tip"
	case RightMouthCorner:
		return "right_mouth_corner"
	case LeftMouthCorner:
		return "left_mouth_corner"
	default:
		return "unknown"
	}
}

// Point is a sub-pixel position.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Pixel truncates the point to an integer pixel position.
func (p Point) Pixel() image.Point {
	return image.Point{X: Trunc(p.X), Y: Trunc(p.Y)}
}

// Box is a bounding box given by its top-left corner and size.
type Box struct {
	X float32 `json:"x"` // top-left x
	Y float32 `json:"y"` // top-left y
	W float32 `json:"w"` // width
	H float32 `json:"h"` // height
}

// Rect converts the box to integer pixel bounds.
//
// Each field is truncated on its own before the far corner is computed, so a
// box of (10.9, 0, 5.9, 1) spans x 10..15, not 10..16.
func (b Box) Rect() image.Rectangle {
	x, y := Trunc(b.X), Trunc(b.Y)
	return image.Rect(x, y, x+Trunc(b.W), y+Trunc(b.H))
}

// Detection is one detected face.
type Detection struct {
	Box       Box                 `json:"box"`
	Landmarks [NumLandmarks]Point `json:"landmarks"`
	Score     float32             `json:"score"`
}

// Landmark returns the position of the given landmark.
func (d Detection) Landmark(l Landmark) Point {
	return d.Landmarks[l]
}

// Row flattens the detection back into detector row layout.
func (d Detection) Row() []float32 {
	row := make([]float32, 0, RowSize)
	row = append(row, d.Box.X, d.Box.Y, d.Box.W, d.Box.H)
	for _, p := range d.Landmarks {
		row = append(row, p.X, p.Y)
	}
	return append(row, d.Score)
}

// FromRow builds a Detection from one detector output row.
func FromRow(row []float32) (Detection, error) {
	if len(row) != RowSize {
		return Detection{}, errors.Wrapf(ErrRowSize, "got %d", len(row))
	}
	d := Detection{
		Box:   Box{X: row[0], Y: row[1], W: row[2], H: row[3]},
		Score: row[14],
	}
	for i := range d.Landmarks {
		d.Landmarks[i] = Point{X: row[4+2*i], Y: row[5+2*i]}
	}
	return d, nil
}

// FromRows converts a batch of detector rows, keeping their order.
// A nil or empty input yields a nil slice.
func FromRows(rows [][]float32) ([]Detection, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if bad, i, found := lo.FindIndexOf(rows, func(row []float32) bool {
		return len(row) != RowSize
	}); found {
		return nil, errors.Wrapf(ErrRowSize, "row %d: got %d", i, len(bad))
	}
	return lo.Map(rows, func(row []float32, _ int) Detection {
		d, _ := FromRow(row)
		return d
	}), nil
}

// Trunc converts a coordinate to int, truncating toward zero.
func Trunc(v float32) int {
	return int(v)
}
