package radio_test

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxspin/vxfw/radio"
)

func TestButtonDraw(t *testing.T) {
	ctx := vxfw.DrawContext{
		Max:        vxfw.Size{Width: 40, Height: 1},
		Characters: vaxis.Characters,
	}
	b := radio.New("dots", nil)
	assert.Equal(t, 8, b.Width())

	s, err := b.Draw(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(8), s.Size.Width)
	assert.Equal(t, vxfw.Widget(b), s.Widget)
	assert.Equal(t, "(", s.Buffer[0].Character.Grapheme)
	assert.Equal(t, " ", s.Buffer[1].Character.Grapheme)

	b.Selected = true
	s, err = b.Draw(ctx)
	require.NoError(t, err)
	assert.Equal(t, "•", s.Buffer[1].Character.Grapheme)
	assert.Equal(t, vaxis.AttrBold, s.Buffer[0].Style.Attribute)
}

func TestButtonSelect(t *testing.T) {
	selected := 0
	b := radio.New("bars", func() (vxfw.Command, error) {
		selected += 1
		return nil, nil
	})

	cmd, err := b.HandleEvent(vaxis.Key{Keycode: vaxis.KeyEnter}, vxfw.TargetPhase)
	require.NoError(t, err)
	assert.Equal(t, 1, selected)
	assert.Contains(t, cmd, vxfw.RedrawCmd{})

	_, err = b.HandleEvent(vaxis.Mouse{
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventPress,
	}, vxfw.TargetPhase)
	require.NoError(t, err)
	assert.Equal(t, 1, selected)

	_, err = b.HandleEvent(vaxis.Mouse{
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventRelease,
	}, vxfw.TargetPhase)
	require.NoError(t, err)
	assert.Equal(t, 2, selected)
}
