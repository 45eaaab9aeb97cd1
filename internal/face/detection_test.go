package face

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

var sampleRow = []float32{
	10, 20, 50, 60,
	20, 30, 40, 30, 30, 45, 20, 55, 40, 55,
	0.9234,
}

func TestFromRow(t *testing.T) {
	d, err := FromRow(sampleRow)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.Box, test.ShouldResemble, Box{X: 10, Y: 20, W: 50, H: 60})
	test.That(t, d.Landmark(RightEye), test.ShouldResemble, Point{X: 20, Y: 30})
	test.That(t, d.Landmark(LeftEye), test.ShouldResemble, Point{X: 40, Y: 30})
	test.That(t, d.Landmark(NoseTip), test.ShouldResemble, Point{X: 30, Y: 45})
	test.That(t, d.Landmark(RightMouthCorner), test.ShouldResemble, Point{X: 20, Y: 55})
	test.That(t, d.Landmark(LeftMouthCorner), test.ShouldResemble, Point{X: 40, Y: 55})
	test.That(t, d.Score, test.ShouldEqual, float32(0.9234))
	test.That(t, d.Row(), test.ShouldResemble, sampleRow)
}

func TestFromRow_WrongSize(t *testing.T) {
	for _, n := range []int{0, 14, 16} {
		_, err := FromRow(make([]float32, n))
		test.That(t, errors.Is(err, ErrRowSize), test.ShouldBeTrue)
	}
}

func TestFromRows(t *testing.T) {
	dets, err := FromRows(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dets, test.ShouldBeNil)

	second := append([]float32(nil), sampleRow...)
	second[0] = 100
	dets, err = FromRows([][]float32{sampleRow, second})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dets, test.ShouldHaveLength, 2)
	// order is preserved
	test.That(t, dets[0].Box.X, test.ShouldEqual, float32(10))
	test.That(t, dets[1].Box.X, test.ShouldEqual, float32(100))

	_, err = FromRows([][]float32{sampleRow, {1, 2, 3}})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "row 1")
	test.That(t, errors.Is(err, ErrRowSize), test.ShouldBeTrue)

	// the first bad row is reported
	_, err = FromRows([][]float32{{1}, sampleRow, {1, 2}})
	test.That(t, err.Error(), test.ShouldContainSubstring, "row 0: got 1")
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{10.9, 10},
		{10.1, 10},
		{0.99, 0},
		{-0.5, 0},
		{-3.7, -3},
		{42, 42},
	}
	for _, tt := range tests {
		test.That(t, Trunc(tt.in), test.ShouldEqual, tt.want)
	}
}

func TestBoxRect(t *testing.T) {
	b := Box{X: 10.9, Y: 20.5, W: 50.9, H: 60.2}
	test.That(t, b.Rect(), test.ShouldResemble, image.Rect(10, 20, 60, 80))

	p := Point{X: 19.99, Y: 30.01}
	test.That(t, p.Pixel(), test.ShouldResemble, image.Pt(19, 30))
}

func TestLandmarkString(t *testing.T) {
	test.That(t, RightEye.String(), test.ShouldEqual, "right_eye")
	test.That(t, LeftMouthCorner.String(), test.ShouldEqual, "left_mouth_corner")
	test.That(t, Landmark(9).String(), test.ShouldEqual, "unknown")
}
