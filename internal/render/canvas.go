package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas receives drawing primitives in integer pixel coordinates.
type Canvas interface {
	// Rectangle strokes the outline of r.
	Rectangle(r image.Rectangle, c color.Color, thickness float64)

	// Circle draws a filled circle centred at center with an outline of the
	// given thickness.
	Circle(center image.Point, radius int, c color.Color, thickness float64)

	// Text draws s with its baseline starting at origin.
	Text(s string, origin image.Point, c color.Color)

	// Image returns the drawn image.
	Image() image.Image
}

// LabelSize is the label font size in pixels.
const LabelSize = 13

var labelFont *truetype.Font

func init() {
	var err error
	labelFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

type ggCanvas struct {
	dc   *gg.Context
	face font.Face
}

// NewCanvas returns a canvas that draws on a copy of img. The copy starts at
// (0, 0) so detection coordinates address it directly. Alpha is dropped:
// every pixel keeps its colour and becomes opaque.
func NewCanvas(img image.Image) Canvas {
	dst := opaqueCopy(img)
	return &ggCanvas{
		dc:   gg.NewContextForRGBA(dst),
		face: truetype.NewFace(labelFont, &truetype.Options{Size: LabelSize}),
	}
}

func (g *ggCanvas) Rectangle(r image.Rectangle, c color.Color, thickness float64) {
	g.dc.SetColor(c)
	g.dc.SetLineWidth(thickness)
	g.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	g.dc.Stroke()
}

func (g *ggCanvas) Circle(center image.Point, radius int, c color.Color, thickness float64) {
	g.dc.SetColor(c)
	g.dc.SetLineWidth(thickness)
	g.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	g.dc.FillPreserve()
	g.dc.Stroke()
}

func (g *ggCanvas) Text(s string, origin image.Point, c color.Color) {
	g.dc.SetFontFace(g.face)
	g.dc.SetColor(c)
	g.dc.DrawString(s, float64(origin.X), float64(origin.Y))
}

func (g *ggCanvas) Image() image.Image {
	return g.dc.Image()
}

// opaqueCopy copies img as non-premultiplied pixels and sets alpha to 255.
// With every pixel opaque the NRGBA bytes are valid RGBA bytes.
func opaqueCopy(img image.Image) *image.RGBA {
	n := imaging.Clone(img)
	for i := 3; i < len(n.Pix); i += 4 {
		n.Pix[i] = 0xff
	}
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}
