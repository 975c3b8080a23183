// Package bubble hosts a spinner inside a Bubble Tea program
package bubble

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/raster"
)

// DefaultFPS is the redraw rate of a new Model
const DefaultFPS = 30

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg asks the model with the matching ID to draw its next frame
type TickMsg struct {
	ID   int
	Time time.Time
}

// Model is a Bubble Tea component drawing a spinner with half block
// characters. Embed it in a parent model and forward messages to Update
type Model struct {
	Spinner    vxspin.Spinner
	Foreground color.RGBA
	// Background is the color faded shapes are blended with. The zero
	// value uses the terminal background
	Background color.RGBA
	FPS        int
	Oversample int
	// Clock is the animation clock
	Clock vxspin.Clock

	id int
}

func New(s vxspin.Spinner) Model {
	return Model{
		Spinner:    s,
		Foreground: vxspin.Opaque(0xd0, 0xd0, 0xd0),
		FPS:        DefaultFPS,
		Oversample: 4,
		Clock:      vxspin.Since(time.Now()),
		id:         nextID(),
	}
}

// ID identifies the ticks of this model
func (m Model) ID() int {
	return m.id
}

func (m Model) Init() tea.Cmd {
	return m.Tick()
}

// Tick schedules the next frame
func (m Model) Tick() tea.Cmd {
	fps := m.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	id := m.id
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		if !m.frame().Continuous {
			return m, nil
		}
		return m, m.Tick()
	}
	return m, nil
}

// cells is the size of the spinner in terminal cells
func (m Model) cells() (int, int) {
	d := m.Spinner.Desired()
	return int(math.Ceil(float64(d.X))), int(math.Ceil(float64(d.Y) / 2))
}

func (m Model) frame() vxspin.Frame {
	cols, rows := m.cells()
	rect := vxspin.RectFromMinSize(vxspin.Vec2{}, vxspin.Vec2{
		X: float32(cols),
		Y: float32(rows) * 2,
	})
	t := 0.0
	if m.Clock != nil {
		t = m.Clock()
	}
	return m.Spinner.Render(rect, t, m.Foreground)
}

func (m Model) View() string {
	cols, rows := m.cells()
	if cols == 0 || rows == 0 {
		return ""
	}
	img := raster.Rasterize(m.frame(), cols, rows*2, m.Oversample)
	cells, w, _ := raster.HalfBlocks(img, m.Background)

	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(render(c))
	}
	return sb.String()
}

func render(c raster.Cell) string {
	if !c.HasForeground && !c.HasBackground {
		return c.Grapheme
	}
	style := lipgloss.NewStyle()
	if c.HasForeground {
		style = style.Foreground(hex(c.Foreground))
	}
	if c.HasBackground {
		style = style.Background(hex(c.Background))
	}
	return style.Render(c.Grapheme)
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
