package spinner_test

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/vxfw/spinner"
)

func drawCtx(w, h uint16) vxfw.DrawContext {
	return vxfw.DrawContext{
		Max:        vxfw.Size{Width: w, Height: h},
		Characters: vaxis.Characters,
	}
}

func TestSpinnerSize(t *testing.T) {
	tests := []struct {
		name  string
		s     vxspin.Spinner
		ctx   vxfw.DrawContext
		width uint16
		rows  uint16
	}{
		{"dots", vxspin.New().WithSize(16), drawCtx(80, 24), 16, 4},
		{"bars", vxspin.New().WithSize(10).WithStyle(vxspin.Bars), drawCtx(80, 24), 10, 5},
		{"squares odd", vxspin.New().WithSize(9).WithStyle(vxspin.Squares), drawCtx(80, 24), 9, 5},
		{"clamped", vxspin.New(), drawCtx(8, 2), 8, 2},
		{"zero", vxspin.New().WithSize(0), drawCtx(80, 24), 0, 0},
		{"min", vxspin.New().WithSize(0), vxfw.DrawContext{
			Min:        vxfw.Size{Width: 3, Height: 1},
			Max:        vxfw.Size{Width: 10, Height: 10},
			Characters: vaxis.Characters,
		}, 3, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := spinner.New(test.s)
			w.Clock = vxspin.Fixed(0.2)
			s, err := w.Draw(test.ctx)
			require.NoError(t, err)
			assert.Equal(t, test.width, s.Size.Width)
			assert.Equal(t, test.rows, s.Size.Height)
			assert.Len(t, s.Buffer, int(test.width)*int(test.rows))
			assert.Equal(t, vxfw.Widget(w), s.Widget)
		})
	}
}

func TestSpinnerDraw(t *testing.T) {
	w := spinner.New(vxspin.New().WithSize(24))
	w.Clock = vxspin.Fixed(0.2)
	assert.False(t, w.Animating())

	s, err := w.Draw(drawCtx(80, 24))
	require.NoError(t, err)
	assert.True(t, w.Animating())

	painted := 0
	for _, c := range s.Buffer {
		if c.Character.Grapheme != " " && c.Character.Grapheme != "" {
			painted += 1
			assert.NotEqual(t, vaxis.Color(0), c.Style.Foreground)
		}
	}
	assert.Greater(t, painted, 0)

	// A stopped clock draws the same surface every time
	again, err := w.Draw(drawCtx(80, 24))
	require.NoError(t, err)
	assert.Equal(t, s.Buffer, again.Buffer)
}

func TestSpinnerBackground(t *testing.T) {
	w := spinner.New(vxspin.New().WithSize(12).WithStyle(vxspin.Squares))
	w.Clock = vxspin.Fixed(0)
	w.Oversample = 0
	w.Background = vxspin.Opaque(0, 0, 0)

	s, err := w.Draw(drawCtx(80, 24))
	require.NoError(t, err)
	// The brightest square sits at the bottom right and fills whole cells
	last := s.Buffer[len(s.Buffer)-1]
	assert.Equal(t, " ", last.Character.Grapheme)
	assert.NotEqual(t, vaxis.Color(0), last.Style.Background)
	// The first square of the window is faded out completely
	assert.Equal(t, vaxis.Color(0), s.Buffer[0].Style.Background)
	assert.Equal(t, vaxis.Color(0), s.Buffer[0].Style.Foreground)
}

func TestSpinnerConstraints(t *testing.T) {
	ctx := vxfw.DrawContext{
		Min:        vxfw.Size{Width: 4, Height: 4},
		Max:        vxfw.Size{Width: 16, Height: 16},
		Characters: vaxis.Characters,
	}
	for _, style := range vxspin.Styles() {
		w := spinner.New(vxspin.New().WithStyle(style))
		s, err := w.Draw(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Size.Width, ctx.Min.Width)
		assert.GreaterOrEqual(t, s.Size.Height, ctx.Min.Height)
		assert.LessOrEqual(t, s.Size.Width, ctx.Max.Width)
		assert.LessOrEqual(t, s.Size.Height, ctx.Max.Height)
	}
}
