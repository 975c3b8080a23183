package radio

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"

	"github.com/mattn/go-runewidth"
)

const (
	markOn  = "(•) "
	markOff = "( ) "
)

// Button is one option of a radio group. The group is owned by the
// application: OnSelect is expected to update Selected on every button of the
// group
type Button struct {
	Label    string
	Selected bool
	Style    StyleSet
	OnSelect func() (vxfw.Command, error)

	mouseDown bool
	hover     bool
	focused   bool
}

type StyleSet struct {
	Default  vaxis.Style
	Selected vaxis.Style
	Hover    vaxis.Style
	Focus    vaxis.Style
}

func New(label string, onSelect func() (vxfw.Command, error)) *Button {
	ss := StyleSet{
		Selected: vaxis.Style{
			Attribute: vaxis.AttrBold,
		},
		Hover: vaxis.Style{
			Foreground: vaxis.IndexColor(3),
		},
		Focus: vaxis.Style{
			Foreground: vaxis.IndexColor(5),
		},
	}
	return &Button{
		Label:    label,
		Style:    ss,
		OnSelect: onSelect,
	}
}

// Width is the number of columns the button occupies
func (b *Button) Width() int {
	return runewidth.StringWidth(markOff + b.Label)
}

func (b *Button) selectCmd() (vxfw.Command, error) {
	if b.OnSelect == nil {
		return vxfw.ConsumeAndRedraw(), nil
	}
	cmd, err := b.OnSelect()
	if err != nil {
		return nil, err
	}
	return vxfw.BatchCmd{cmd, vxfw.RedrawCmd{}}, nil
}

func (b *Button) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		if ev.EventType == vaxis.EventRelease {
			return nil, nil
		}
		if ev.Matches(vaxis.KeyEnter) || ev.Matches(' ') {
			return b.selectCmd()
		}
	case vaxis.Mouse:
		b.hover = true
		if b.mouseDown && ev.EventType == vaxis.EventRelease {
			b.mouseDown = false
			return b.selectCmd()
		}
		if ev.EventType == vaxis.EventPress && ev.Button == vaxis.MouseLeftButton {
			b.mouseDown = true
			return vxfw.ConsumeAndRedraw(), nil
		}
	case vxfw.MouseEnter:
		b.hover = true
		cmd := []vxfw.Command{
			vxfw.SetMouseShapeCmd(vaxis.MouseShapeClickable),
			vxfw.RedrawCmd{},
			vxfw.ConsumeEventCmd{},
		}
		return cmd, nil
	case vxfw.MouseLeave:
		b.hover = false
		b.mouseDown = false
		cmd := []vxfw.Command{
			vxfw.SetMouseShapeCmd(vaxis.MouseShapeDefault),
			vxfw.RedrawCmd{},
			vxfw.ConsumeEventCmd{},
		}
		return cmd, nil
	case vaxis.FocusIn:
		b.focused = true
		return vxfw.ConsumeAndRedraw(), nil
	case vaxis.FocusOut:
		b.focused = false
		b.mouseDown = false
		return vxfw.ConsumeAndRedraw(), nil
	}
	return nil, nil
}

func (b *Button) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	style := b.Style.Default
	if b.Selected {
		style = b.Style.Selected
	}
	switch {
	case b.hover || b.mouseDown:
		style.Foreground = b.Style.Hover.Foreground
	case b.focused:
		style.Foreground = b.Style.Focus.Foreground
	}

	mark := markOff
	if b.Selected {
		mark = markOn
	}
	l := text.New(mark + b.Label)
	l.Style = style
	l.Softwrap = false

	s, err := l.Draw(ctx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	// Rewrite the widget of this surface so events reach the button
	s.Widget = b
	return s, nil
}

// Verify we meet the Widget interface
var _ vxfw.Widget = &Button{}
