// Package raster paints spinner frames into images
package raster

import (
	"image"
	"image/color"
	"math"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/log"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control point distance of a cubic Bézier approximating a
// quarter circle of radius 1
const kappa = 0.5522847498

// Canvas is a [vxspin.Painter] backed by an RGBA image. Shapes are given in
// frame units; Origin maps to the top left pixel and every unit spans Scale
// pixels
type Canvas struct {
	Origin vxspin.Vec2
	Scale  float32

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas creates a transparent canvas of w x h pixels
func NewCanvas(w int, h int, origin vxspin.Vec2, scale float32) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	return &Canvas{
		Origin: origin,
		Scale:  scale,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		z:      z,
	}
}

// Image returns the image painted so far
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear makes every pixel transparent
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
}

func (c *Canvas) point(v vxspin.Vec2) (float32, float32) {
	return (v.X - c.Origin.X) * c.Scale, (v.Y - c.Origin.Y) * c.Scale
}

func (c *Canvas) CircleFilled(center vxspin.Vec2, radius float32, col color.RGBA) {
	r := radius * c.Scale
	if !(r > 0) || col.A == 0 {
		return
	}
	cx, cy := c.point(center)
	k := r * kappa
	c.begin()
	c.z.MoveTo(cx+r, cy)
	c.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()
	c.fill(col)
}

func (c *Canvas) RectFilled(rect vxspin.Rect, rounding float32, col color.RGBA) {
	if rect.Empty() || col.A == 0 {
		return
	}
	x0, y0 := c.point(rect.Min)
	x1, y1 := c.point(rect.Max)
	r := rounding * c.Scale
	maxR := float32(math.Min(float64(x1-x0), float64(y1-y0))) / 2
	if r > maxR {
		r = maxR
	}
	c.begin()
	if !(r > 0) {
		c.z.MoveTo(x0, y0)
		c.z.LineTo(x1, y0)
		c.z.LineTo(x1, y1)
		c.z.LineTo(x0, y1)
		c.z.ClosePath()
		c.fill(col)
		return
	}
	k := r * kappa
	c.z.MoveTo(x0+r, y0)
	c.z.LineTo(x1-r, y0)
	c.z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	c.z.LineTo(x1, y1-r)
	c.z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	c.z.LineTo(x0+r, y1)
	c.z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	c.z.LineTo(x0, y0+r)
	c.z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	c.z.ClosePath()
	c.fill(col)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) fill(col color.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Rasterize paints f into a w x h image. The frame's rect is fitted to the
// image. The frame is painted at oversample times the resolution and filtered
// down, which antialiases edges that are a few pixels wide
func Rasterize(f vxspin.Frame, w int, h int, oversample int) *image.RGBA {
	if oversample < 1 {
		oversample = 1
	}
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	scale := float32(1)
	if fw := f.Rect.Width(); fw > 0 {
		scale = float32(w) / fw
	}
	if fh := f.Rect.Height(); fh > 0 {
		if s := float32(h) / fh; s < scale {
			scale = s
		}
	}
	canvas := NewCanvas(w*oversample, h*oversample, f.Rect.Min, scale*float32(oversample))
	f.Paint(canvas)
	return Downsample(canvas.Image(), w, h)
}

// Downsample filters img down to w x h. img is returned as is when it already
// has that size
func Downsample(img *image.RGBA, w int, h int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	log.Trace("downsampling %dx%d image to %dx%d", b.Dx(), b.Dy(), w, h)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
