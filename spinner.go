// Package vxspin draws animated indeterminate progress spinners
package vxspin

import (
	"image/color"
	"math"
	"time"
)

// DefaultSize is the size of a spinner created with [New]
const DefaultSize float32 = 40

// Spinner is an animated indeterminate progress indicator. A Spinner holds no
// animation state: every frame is computed from the clock alone, so a host can
// build a new Spinner each frame.
//
// The zero value is a zero sized Dots spinner. Use [New] for the defaults
type Spinner struct {
	// Size is the maximum width and height. Depending on the style, the
	// spinner may be shorter or narrower. A size <= 0 draws nothing visible
	Size float32
	// Style is the animation to draw
	Style Style
}

// New returns a Dots spinner of [DefaultSize]
func New() Spinner {
	return Spinner{
		Size:  DefaultSize,
		Style: Dots,
	}
}

// WithSize returns a copy of s with the given size
func (s Spinner) WithSize(size float32) Spinner {
	s.Size = size
	return s
}

// WithStyle returns a copy of s with the given style
func (s Spinner) WithStyle(style Style) Spinner {
	s.Style = style
	return s
}

// size is the usable size: negative and NaN sizes collapse to zero
func (s Spinner) size() float32 {
	if !(s.Size > 0) || math.IsInf(float64(s.Size), 1) {
		return 0
	}
	return s.Size
}

// Desired is the area the spinner asks its host for
func (s Spinner) Desired() Vec2 {
	size := s.size()
	switch s.Style {
	case Dots:
		return Vec2{X: size, Y: size / 2}
	default:
		return Vec2{X: size, Y: size}
	}
}

// Period is the length of one animation cycle in seconds. Rendering at t and
// at t + n*Period yields identical frames
func (s Spinner) Period() float64 {
	switch s.Style {
	case Dots:
		return dotsRadius(s.size(), 0).Duration()
	case Bars:
		return barHeight(s.size()).Duration()
	case Squares:
		return squaresPeriod
	}
	return 0
}

// Render computes the frame drawn into rect at time t, in seconds. Shapes are
// colored with fg. Render is pure: identical inputs yield identical frames
func (s Spinner) Render(rect Rect, t float64, fg color.RGBA) Frame {
	f := Frame{
		Rect:       rect,
		Continuous: true,
	}
	size := s.size()
	switch s.Style {
	case Dots:
		f.Shapes = dots(rect, size, t, fg)
	case Bars:
		f.Shapes = bars(rect, size, t, fg)
	case Squares:
		f.Shapes = squares(rect, size, t, fg)
	default:
		f.Continuous = false
	}
	return f
}

// Show draws the spinner into the host. It allocates an area, renders the
// frame at the host's current time and paints it. The returned frame reports
// whether the host should keep repainting
func (s Spinner) Show(h Host) Frame {
	rect := h.Allocate(s.Desired())
	f := s.Render(rect, h.Time(), h.Foreground())
	f.Paint(h.Painter())
	return f
}

// Painter draws filled primitives
type Painter interface {
	// CircleFilled fills a circle
	CircleFilled(center Vec2, radius float32, c color.RGBA)
	// RectFilled fills a rectangle with corners rounded to the given
	// radius
	RectFilled(r Rect, rounding float32, c color.RGBA)
}

// Host is the environment a spinner is shown in
type Host interface {
	// Time is the current animation time in seconds since an arbitrary
	// epoch. Only its value modulo a style's period matters
	Time() float64
	// Allocate reserves an area of at least desired and returns it
	Allocate(desired Vec2) Rect
	// Foreground is the current text color
	Foreground() color.RGBA
	// Painter paints within the allocated area
	Painter() Painter
}

// Clock reports elapsed seconds
type Clock func() float64

// Since returns a clock counting seconds from start
func Since(start time.Time) Clock {
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// Fixed returns a clock stopped at t
func Fixed(t float64) Clock {
	return func() float64 {
		return t
	}
}

// ShapeKind is the primitive a [Shape] describes
type ShapeKind uint8

const (
	Circle ShapeKind = iota
	Rectangle
)

// Shape is one draw command of a [Frame]
type Shape struct {
	Kind ShapeKind
	// Center and Radius describe a Circle
	Center Vec2
	Radius float32
	// Rect and Rounding describe a Rectangle
	Rect     Rect
	Rounding float32
	// Color is premultiplied
	Color color.RGBA
}

// Frame is everything a spinner draws at one point in time
type Frame struct {
	// Rect is the area the frame was rendered into
	Rect Rect
	// Shapes in paint order
	Shapes []Shape
	// Continuous asks the host to draw another frame as soon as possible
	// instead of waiting for input
	Continuous bool
}

// Paint issues the frame's draw calls to p
func (f Frame) Paint(p Painter) {
	for _, sh := range f.Shapes {
		switch sh.Kind {
		case Circle:
			p.CircleFilled(sh.Center, sh.Radius, sh.Color)
		case Rectangle:
			p.RectFilled(sh.Rect, sh.Rounding, sh.Color)
		}
	}
}
