package spinner

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/log"
	"git.sr.ht/~rockorager/vxspin/raster"
)

// Spinner draws a [vxspin.Spinner] with half block characters. One spinner
// unit is one pixel, and every cell holds 1x2 pixels. A Dots spinner of size
// 16 is therefore 16 columns wide and 4 rows tall.
//
// The widget only draws. To animate it, the application must redraw while
// [Spinner.Animating] reports true
type Spinner struct {
	// Spinner is the spinner to draw
	Spinner vxspin.Spinner
	// Foreground is the color of the spinner shapes
	Foreground color.RGBA
	// Background is the color faded shapes are blended with. The zero
	// value uses the terminal background and draws faded shapes at full
	// strength
	Background color.RGBA
	// Clock is the animation clock. A nil clock counts from the first
	// draw
	Clock vxspin.Clock
	// Oversample is the antialiasing factor. Values below 1 disable
	// antialiasing
	Oversample int

	animating atomic.Bool
}

func New(s vxspin.Spinner) *Spinner {
	return &Spinner{
		Spinner:    s,
		Foreground: vxspin.Opaque(0xd0, 0xd0, 0xd0),
		Oversample: 4,
	}
}

// Animating reports whether the last drawn frame asked for another one. It is
// safe to call from any goroutine
func (s *Spinner) Animating() bool {
	return s.animating.Load()
}

// Noop for spinner
func (s *Spinner) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}

func (s *Spinner) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if s.Clock == nil {
		s.Clock = vxspin.Since(time.Now())
	}
	h := &host{
		ctx:        ctx,
		clock:      s.Clock,
		fg:         s.Foreground,
		oversample: s.Oversample,
	}
	f := s.Spinner.Show(h)
	s.animating.Store(f.Continuous)

	surface := vxfw.NewSurface(h.cols, h.rows, s)
	if h.canvas == nil {
		return surface, nil
	}
	img := raster.Downsample(h.canvas.Image(), int(h.cols), int(h.rows)*2)
	cells, w, _ := raster.HalfBlocks(img, s.Background)
	for i, c := range cells {
		row := i / w
		col := i % w
		surface.WriteCell(uint16(col), uint16(row), cell(c))
	}
	log.Trace("spinner %s drew %dx%d cells", s.Spinner.Style, h.cols, h.rows)
	return surface, nil
}

// cell converts a half block cell into a vaxis cell
func cell(c raster.Cell) vaxis.Cell {
	var style vaxis.Style
	if c.HasForeground {
		style.Foreground = vaxis.RGBColor(c.Foreground.R, c.Foreground.G, c.Foreground.B)
	}
	if c.HasBackground {
		style.Background = vaxis.RGBColor(c.Background.R, c.Background.G, c.Background.B)
	}
	return vaxis.Cell{
		Character: vaxis.Character{
			Grapheme: c.Grapheme,
			Width:    1,
		},
		Style: style,
	}
}

// host adapts a DrawContext to a vxspin.Host. Units map to pixels of the half
// block grid
type host struct {
	ctx        vxfw.DrawContext
	clock      vxspin.Clock
	fg         color.RGBA
	oversample int

	cols   uint16
	rows   uint16
	canvas *raster.Canvas
}

func (h *host) Time() float64 {
	return h.clock()
}

func (h *host) Foreground() color.RGBA {
	return h.fg
}

// Allocate sizes the surface to fit desired within the draw constraints
func (h *host) Allocate(desired vxspin.Vec2) vxspin.Rect {
	cols := fit(math.Ceil(float64(desired.X)), h.ctx.Min.Width, h.ctx.Max.Width)
	rows := fit(math.Ceil(float64(desired.Y)/2), h.ctx.Min.Height, h.ctx.Max.Height)
	h.cols, h.rows = cols, rows
	return vxspin.RectFromMinSize(vxspin.Vec2{}, vxspin.Vec2{
		X: float32(cols),
		Y: float32(rows) * 2,
	})
}

func (h *host) Painter() vxspin.Painter {
	n := h.oversample
	if n < 1 {
		n = 1
	}
	h.canvas = raster.NewCanvas(int(h.cols)*n, int(h.rows)*2*n, vxspin.Vec2{}, float32(n))
	return h.canvas
}

// fit clamps n cells between min and max
func fit(n float64, min uint16, max uint16) uint16 {
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	if n > float64(max) {
		n = float64(max)
	}
	if n < float64(min) {
		n = float64(min)
	}
	return uint16(n)
}

// Verify we meet the Widget interface
var _ vxfw.Widget = &Spinner{}
