package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/ironsheep/yunet-facedetect/internal/face"
)

// Palette holds the overlay colours.
type Palette struct {
	Box       color.Color
	Landmarks [face.NumLandmarks]color.Color
	Text      color.Color
}

// Default box and label colours as #RRGGBB.
const (
	DefaultBoxHex  = "#00FF00"
	DefaultTextHex = "#00FF00"
)

// DefaultLandmarkHex lists landmark colours in face.Landmark order.
var DefaultLandmarkHex = [face.NumLandmarks]string{
	"#0000FF", // right eye
	"#FF0000", // left eye
	"#00FF00", // nose tip
	"#FF00FF", // right mouth corner
	"#FFFF00", // left mouth corner
}

// ParsePalette builds a palette from hex colour strings.
func ParsePalette(boxHex string, landmarkHex [face.NumLandmarks]string, textHex string) (Palette, error) {
	var p Palette
	var err error
	if p.Box, err = parseHex(boxHex); err != nil {
		return Palette{}, errors.Wrap(err, "box colour")
	}
	for i, h := range landmarkHex {
		if p.Landmarks[i], err = parseHex(h); err != nil {
			return Palette{}, errors.Wrapf(err, "%s colour", face.Landmark(i))
		}
	}
	if p.Text, err = parseHex(textHex); err != nil {
		return Palette{}, errors.Wrap(err, "text colour")
	}
	return p, nil
}

// DefaultPalette returns the standard overlay colours.
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultBoxHex, DefaultLandmarkHex, DefaultTextHex)
	if err != nil {
		panic(err)
	}
	return p
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// withDefaults fills every unset colour from DefaultPalette.
func (p Palette) withDefaults() Palette {
	def := DefaultPalette()
	if p.Box == nil {
		p.Box = def.Box
	}
	for i, c := range p.Landmarks {
		if c == nil {
			p.Landmarks[i] = def.Landmarks[i]
		}
	}
	if p.Text == nil {
		p.Text = def.Text
	}
	return p
}
