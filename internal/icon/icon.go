// Package icon draws the extension's clock-face toolbar icon.
//
// The face is a white ring on a blue square with a short hand pointing at
// nine o'clock, a long hand at twelve and a pivot dot. Icons of
// config.LabelMinSize pixels or more also carry the config.LabelText label
// under the pivot.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"skyscanner-time-converter/internal/config"
	"skyscanner-time-converter/internal/icon/raster"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Icon is one rendered icon. Labeled reports whether the label made it
// onto the image; an icon without one is still complete.
type Icon struct {
	Size    int
	Img     *image.RGBA
	Labeled bool
}

// Renderer draws clock icons, labeling them with faces from its FaceFunc.
type Renderer struct {
	faces FaceFunc
}

// New returns a Renderer that asks faces for the label font. A nil faces
// uses DefaultFace.
func New(faces FaceFunc) *Renderer {
	if faces == nil {
		faces = DefaultFace
	}
	return &Renderer{faces: faces}
}

// Draw renders a size×size icon with the default label face.
func Draw(size int) *image.RGBA {
	return New(nil).Render(size).Img
}

// Render draws the icon for a positive pixel size.
func (r *Renderer) Render(size int) Icon {
	g := newGeometry(size)
	fg := config.Foreground

	c := raster.New(size, config.Background)
	c.StrokeCircle(g.center, g.center, g.radius, g.ring, fg)
	c.Line(g.center, g.center, g.center-0.6*g.radius, g.center, g.shortHand, fg)
	c.Line(g.center, g.center, g.center, g.center-0.8*g.radius, g.longHand, fg)
	c.FillCircle(g.center, g.center, g.pivot, fg)

	ic := Icon{Size: size, Img: c.Image()}
	if size >= config.LabelMinSize {
		ic.Labeled = r.label(c, g)
	}
	return ic
}

// label draws the label centered under the pivot. Any failure to get a
// face leaves the icon unlabeled.
func (r *Renderer) label(c *raster.Canvas, g geometry) bool {
	face, err := r.faces(g.size)
	if err != nil {
		return false
	}
	defer face.Close()

	c.String(face, labelDot(face, g), config.LabelText, config.Foreground)
	return true
}

// labelDot returns the baseline origin that puts the label's ascent line at
// labelTop and centers its ink horizontally on the clock.
func labelDot(face font.Face, g geometry) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, config.LabelText)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	return fixed.Point26_6{
		X: fixed.I(int(g.center) - width/2),
		Y: fixed.I(g.labelTop()) + face.Metrics().Ascent,
	}
}

// geometry holds the integer-derived measurements of one icon size.
type geometry struct {
	size int

	center, radius float64

	ring, shortHand, longHand, pivot float64
}

func newGeometry(size int) geometry {
	return geometry{
		size:      size,
		center:    float64(size / 2),
		radius:    float64(size / 3),
		ring:      float64(max(1, size/32)),
		shortHand: float64(max(1, size/16)),
		longHand:  float64(max(1, size/20)),
		pivot:     float64(max(1, size/16)),
	}
}

func (g geometry) labelTop() int {
	return g.size/2 + (g.size/3)/2
}

// Save PNG-encodes img into a new file at path, replacing any existing one.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
