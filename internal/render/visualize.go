package render

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/ironsheep/yunet-facedetect/internal/face"
)

// Overlay geometry.
const (
	BoxThickness      = 2
	LandmarkRadius    = 2
	LandmarkThickness = 2
	ScoreOffsetY      = 15
)

// FPSOrigin is where the frame rate label is drawn.
var FPSOrigin = image.Pt(0, 15)

// Options controls what Visualize draws besides the detections.
type Options struct {
	// FPS, when non-nil and non-zero, is drawn as "FPS: %.2f".
	FPS *float64

	// Verbose writes one diagnostic line per detection to Out.
	Verbose bool

	// Out receives verbose lines. Nil means os.Stdout.
	Out io.Writer

	// Palette overrides the default colours. Unset entries keep their default.
	Palette Palette
}

// Visualize returns a copy of img with dets drawn on it. img is not modified.
func Visualize(img image.Image, dets []face.Detection, opts Options) image.Image {
	c := NewCanvas(img)
	Draw(c, dets, opts)
	return c.Image()
}

// Draw renders the overlay for dets onto c.
func Draw(c Canvas, dets []face.Detection, opts Options) {
	palette := opts.Palette.withDefaults()
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.FPS != nil && *opts.FPS != 0 {
		c.Text(FPSLabel(*opts.FPS), FPSOrigin, palette.Text)
	}

	for idx, d := range dets {
		if opts.Verbose {
			fmt.Fprintln(out, DiagnosticLine(idx, d))
		}

		box := d.Box.Rect()
		c.Rectangle(box, palette.Box, BoxThickness)
		for i, p := range d.Landmarks {
			c.Circle(p.Pixel(), LandmarkRadius, palette.Landmarks[i], LandmarkThickness)
		}
		c.Text(ScoreLabel(d.Score), image.Pt(box.Min.X, box.Min.Y+ScoreOffsetY), palette.Text)
	}
}

// ScoreLabel formats a confidence score for drawing.
func ScoreLabel(score float32) string {
	return fmt.Sprintf("%.4f", score)
}

// FPSLabel formats a frame rate for drawing.
func FPSLabel(fps float64) string {
	return fmt.Sprintf("FPS: %.2f", fps)
}

// DiagnosticLine formats the verbose line for detection idx.
// "box height" has no colon; the format is relied on verbatim.
func DiagnosticLine(idx int, d face.Detection) string {
	return fmt.Sprintf("Face %d, top-left coordinates: (%.0f, %.0f), box width: %.0f, box height %.0f, score: %.2f",
		idx, d.Box.X, d.Box.Y, d.Box.W, d.Box.H, d.Score)
}
