package main

import (
	"context"
	"fmt"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/center"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"
	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/internal/config"
	"git.sr.ht/~rockorager/vxspin/log"
	"git.sr.ht/~rockorager/vxspin/vxfw/radio"
	"git.sr.ht/~rockorager/vxspin/vxfw/spinner"
)

const (
	minSize  = 4
	maxSize  = 200
	sizeStep = 2
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the spinners in a vaxis application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()
			return runDemo(cmd.Context(), cfg)
		},
	}
}

func runDemo(ctx context.Context, cfg *config.Config) error {
	d, err := newDemo(cfg)
	if err != nil {
		return err
	}

	app, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go animate(ctx, app, d.spinner, cfg.Render.FPS)

	log.Info("starting demo with %s spinner", cfg.Spinner.Style)
	return app.Run(d)
}

// animate requests a redraw at fps while the spinner wants more frames
func animate(ctx context.Context, app *vxfw.App, w *spinner.Spinner, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.Animating() {
				app.PostEvent(vaxis.Redraw{})
			}
		}
	}
}

// demo is the root widget: a title, one radio button per style and the
// spinner centered below them
type demo struct {
	spinner *spinner.Spinner
	buttons []*radio.Button
	title   *text.Text
	help    *text.Text
}

func newDemo(cfg *config.Config) (*demo, error) {
	fg, err := cfg.Foreground()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}

	d := &demo{
		spinner: spinner.New(cfg.SpinnerValue()),
		title:   text.New("vxspin"),
		help:    text.New("1-3 style  tab next  +/- size  q quit"),
	}
	d.spinner.Foreground = fg
	d.spinner.Background = bg
	d.spinner.Oversample = cfg.Render.Oversample
	d.title.Style = vaxis.Style{Attribute: vaxis.AttrBold}
	d.help.Style = vaxis.Style{Attribute: vaxis.AttrDim}

	for _, style := range vxspin.Styles() {
		style := style
		d.buttons = append(d.buttons, radio.New(style.String(), func() (vxfw.Command, error) {
			d.selectStyle(style)
			return nil, nil
		}))
	}
	d.selectStyle(cfg.Spinner.Style)
	return d, nil
}

func (d *demo) style() vxspin.Style {
	return d.spinner.Spinner.Style
}

func (d *demo) selectStyle(style vxspin.Style) {
	d.spinner.Spinner = d.spinner.Spinner.WithStyle(style)
	for i, b := range d.buttons {
		b.Selected = vxspin.Style(i) == style
	}
	log.Debug("selected %s", style)
}

// cycle moves the selection by n styles, wrapping around
func (d *demo) cycle(n int) {
	count := len(vxspin.Styles())
	i := (int(d.style()) + n%count + count) % count
	d.selectStyle(vxspin.Style(i))
}

func (d *demo) resize(delta float32) {
	size := d.spinner.Spinner.Size + delta
	size = max(minSize, min(maxSize, size))
	d.spinner.Spinner = d.spinner.Spinner.WithSize(size)
	log.Debug("spinner size %v", size)
}

func (d *demo) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok || key.EventType == vaxis.EventRelease {
		return nil, nil
	}
	switch {
	case key.Matches('c', vaxis.ModCtrl), key.Matches('q'):
		return vxfw.QuitCmd{}, nil
	case key.Matches(vaxis.KeyTab), key.Matches(vaxis.KeyRight):
		d.cycle(1)
	case key.Matches(vaxis.KeyTab, vaxis.ModShift), key.Matches(vaxis.KeyLeft):
		d.cycle(-1)
	case key.Text == "+" || key.Text == "=":
		d.resize(sizeStep)
	case key.Text == "-":
		d.resize(-sizeStep)
	case len(key.Text) == 1 && key.Text[0] >= '1' && int(key.Text[0]-'1') < len(vxspin.Styles()):
		d.selectStyle(vxspin.Style(key.Text[0] - '1'))
	default:
		return nil, nil
	}
	return vxfw.ConsumeAndRedraw(), nil
}

func (d *demo) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	switch ev.(type) {
	case vxfw.Init:
		return vxfw.SetTitleCmd(fmt.Sprintf("vxspin: %s", d.style())), nil
	}
	return nil, nil
}

func (d *demo) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	root := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, d)
	line := vxfw.DrawContext{
		Max:        vxfw.Size{Width: ctx.Max.Width, Height: 1},
		Characters: ctx.Characters,
	}

	title, err := d.title.Draw(line)
	if err != nil {
		return vxfw.Surface{}, err
	}
	root.AddChild(1, 0, title)

	col := 1
	for _, b := range d.buttons {
		s, err := b.Draw(line)
		if err != nil {
			return vxfw.Surface{}, err
		}
		root.AddChild(col, 2, s)
		col += b.Width() + 2
	}

	if ctx.Max.Height > 6 {
		c := &center.Center{Child: d.spinner}
		s, err := c.Draw(vxfw.DrawContext{
			Max: vxfw.Size{
				Width:  ctx.Max.Width,
				Height: ctx.Max.Height - 6,
			},
			Characters: ctx.Characters,
		})
		if err != nil {
			return vxfw.Surface{}, err
		}
		root.AddChild(0, 4, s)
	}

	help, err := d.help.Draw(line)
	if err != nil {
		return vxfw.Surface{}, err
	}
	root.AddChild(1, int(ctx.Max.Height)-1, help)

	return root, nil
}

// Verify we meet the Widget interface
var _ vxfw.Widget = &demo{}
