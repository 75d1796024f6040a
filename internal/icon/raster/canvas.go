// Package raster draws the primitive shapes used by the icon renderer onto
// an opaque RGBA canvas.
//
// Shapes are given in pixel coordinates: (x, y) names the pixel whose
// center is at (x+0.5, y+0.5). Their coverage is rasterized with
// golang.org/x/image/vector and snapped to on/off before compositing, so
// small icons stay two-colored instead of going blurry at the edges.
// Text is the exception and is composited anti-aliased.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// snap is the coverage at or above which a pixel counts as inside a shape.
const snap = 0x80

// kappa places the control points of a cubic bezier approximating a
// quarter circle.
const kappa = 0.5522847498

// Canvas is a square, opaque RGBA image with shape-drawing helpers.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	r    *vector.Rasterizer
}

// New returns a size×size canvas filled with bg.
func New(size int, bg color.RGBA) *Canvas {
	rect := image.Rect(0, 0, size, size)
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		img:  img,
		mask: image.NewAlpha(rect),
		r:    vector.NewRasterizer(size, size),
	}
}

// Image returns the canvas pixels. Later drawing calls keep mutating it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.img.Rect.Dx()
}

// FillCircle draws a disc covering every pixel within r pixels of (cx, cy),
// counting the center pixel itself.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	c.begin()
	c.circle(cx+0.5, cy+0.5, r+0.5, false)
	c.paint(col)
}

// StrokeCircle draws a ring whose outer edge matches FillCircle(cx, cy, r)
// and which is width pixels thick, growing inward.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	outer := r + 0.5
	inner := outer - width
	c.begin()
	c.circle(cx+0.5, cy+0.5, outer, false)
	if inner > 0 {
		c.circle(cx+0.5, cy+0.5, inner, true)
	}
	c.paint(col)
}

// Line draws a segment of the given width between two pixels, both
// endpoints included. Axis-aligned segments cover exactly width pixels
// across; even widths put the extra pixel above or to the left.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	ax, ay := x0+0.5, y0+0.5
	bx, by := x1+0.5, y1+0.5

	// Unit direction along the segment; a degenerate segment is a square.
	dx, dy := bx-ax, by-ay
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	} else {
		dx, dy = 1, 0
	}
	// An even width centered on a pixel center would half-cover one extra
	// pixel on each side; move it onto the pixel boundary above or left.
	if w := math.Round(width); w == width && int(w)%2 == 0 {
		if math.Abs(dx) >= math.Abs(dy) {
			ay, by = ay-0.5, by-0.5
		} else {
			ax, bx = ax-0.5, bx-0.5
		}
	}
	// Extend half a pixel past each end and half the width to each side.
	ex, ey := dx*0.5, dy*0.5
	nx, ny := -dy*width/2, dx*width/2

	c.begin()
	c.r.MoveTo(f32(ax-ex+nx), f32(ay-ey+ny))
	c.r.LineTo(f32(bx+ex+nx), f32(by+ey+ny))
	c.r.LineTo(f32(bx+ex-nx), f32(by+ey-ny))
	c.r.LineTo(f32(ax-ex-nx), f32(ay-ey-ny))
	c.r.ClosePath()
	c.paint(col)
}

// String draws s with face starting at the baseline origin dot.
func (c *Canvas) String(face font.Face, dot fixed.Point26_6, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}

func (c *Canvas) begin() {
	n := c.Size()
	c.r.Reset(n, n)
}

// circle appends a closed circular subpath. Reverse subpaths cancel the
// coverage of forward ones, which is how rings get their hole.
func (c *Canvas) circle(cx, cy, r float64, reverse bool) {
	step := math.Pi / 2
	if reverse {
		step = -step
	}
	k := kappa * r
	if reverse {
		k = -k
	}
	c.r.MoveTo(f32(cx+r), f32(cy))
	for i := 0; i < 4; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		c.r.CubeTo(
			f32(cx+r*c0-k*s0), f32(cy+r*s0+k*c0),
			f32(cx+r*c1+k*s1), f32(cy+r*s1-k*c1),
			f32(cx+r*c1), f32(cy+r*s1),
		)
	}
	c.r.ClosePath()
}

// paint rasterizes the pending path into the mask, snaps it and composites
// col through it.
func (c *Canvas) paint(col color.Color) {
	clear(c.mask.Pix)
	c.r.DrawOp = draw.Src
	c.r.Draw(c.mask, c.mask.Rect, image.Opaque, image.Point{})
	for i, a := range c.mask.Pix {
		if a >= snap {
			c.mask.Pix[i] = 0xff
		} else {
			c.mask.Pix[i] = 0
		}
	}
	draw.DrawMask(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, c.mask, image.Point{}, draw.Over)
}

func f32(v float64) float32 {
	return float32(v)
}
