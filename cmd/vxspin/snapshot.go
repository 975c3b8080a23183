package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sixel"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/internal/config"
	"git.sr.ht/~rockorager/vxspin/log"
	"git.sr.ht/~rockorager/vxspin/raster"
)

const (
	formatPNG   = "png"
	formatGIF   = "gif"
	formatSixel = "sixel"
)

var errEmptySnapshot = errors.New("spinner has zero size")

type snapshotOptions struct {
	time   float64
	frames int
	fps    int
	scale  float32
	format string
	output string
}

func newSnapshotCmd(opts *options) *cobra.Command {
	so := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render spinner frames to an image",
		Long: `Render spinner frames to a PNG, an animated GIF or sixel graphics.

The format defaults to the extension of the output file, and to PNG when
writing to stdout. Sixel output may be written to a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg, true)
			if err != nil {
				return err
			}
			defer closeLog()
			return so.run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&so.time, "time", 0, "Animation time of the first frame in seconds")
	flags.IntVar(&so.frames, "frames", 0, "Number of GIF frames (default one period)")
	flags.IntVar(&so.fps, "fps", 0, "GIF frame rate (default from config)")
	flags.Float32Var(&so.scale, "scale", 4, "Pixels per spinner unit")
	flags.StringVar(&so.format, "format", "", "Output format: png, gif or sixel")
	flags.StringVarP(&so.output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// resolveFormat picks the explicit format, then the output extension, then PNG
func (o *snapshotOptions) resolveFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".gif":
			format = formatGIF
		case ".six", ".sixel":
			format = formatSixel
		default:
			format = formatPNG
		}
	}
	switch format {
	case formatPNG, formatGIF, formatSixel:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q", o.format)
	}
}

func (o *snapshotOptions) toStdout() bool {
	return o.output == "" || o.output == "-"
}

func (o *snapshotOptions) run(cmd *cobra.Command, cfg *config.Config) error {
	format, err := o.resolveFormat()
	if err != nil {
		return err
	}
	if !(o.scale > 0) {
		return fmt.Errorf("scale must be positive, got %v", o.scale)
	}
	fps := o.fps
	if fps == 0 {
		fps = cfg.Render.FPS
	}
	if fps < 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if o.frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", o.frames)
	}

	s, err := newSnapshotter(cfg, o.scale)
	if err != nil {
		return err
	}

	var out io.Writer
	if o.toStdout() {
		if format != formatSixel && term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write %s data to a terminal, use -o", format)
		}
		out = cmd.OutOrStdout()
	} else {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	log.Info("rendering %s %s snapshot at %dx%d", s.spinner.Style, format, s.width, s.height)
	switch format {
	case formatGIF:
		frames := o.frames
		if frames == 0 {
			frames = max(1, int(math.Round(s.spinner.Period()*float64(fps))))
		}
		err = gif.EncodeAll(out, s.animation(o.time, frames, fps))
	case formatSixel:
		err = sixel.NewEncoder(out).Encode(s.frame(o.time))
	default:
		err = png.Encode(out, s.frame(o.time))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// snapshotter renders frames of a spinner at a fixed pixel size
type snapshotter struct {
	spinner    vxspin.Spinner
	fg         color.RGBA
	bg         color.RGBA
	width      int
	height     int
	oversample int
}

func newSnapshotter(cfg *config.Config, scale float32) (*snapshotter, error) {
	fg, err := cfg.Foreground()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}
	sp := cfg.SpinnerValue()
	d := sp.Desired()
	s := &snapshotter{
		spinner:    sp,
		fg:         fg,
		bg:         bg,
		width:      int(math.Ceil(float64(d.X * scale))),
		height:     int(math.Ceil(float64(d.Y * scale))),
		oversample: cfg.Render.Oversample,
	}
	if s.width == 0 || s.height == 0 {
		return nil, errEmptySnapshot
	}
	return s, nil
}

// frame renders the spinner at time t over the background. A transparent
// background keeps the image transparent
func (s *snapshotter) frame(t float64) *image.RGBA {
	rect := vxspin.RectFromMinSize(vxspin.Vec2{}, s.spinner.Desired())
	img := raster.Rasterize(s.spinner.Render(rect, t, s.fg), s.width, s.height, s.oversample)
	if s.bg.A == 0 {
		return img
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Over)
	return dst
}

// animation renders frames starting at start, fps frames per second. All
// frames share one palette
func (s *snapshotter) animation(start float64, frames int, fps int) *gif.GIF {
	delay := max(1, int(math.Round(100/float64(fps))))
	images := make([]*image.RGBA, 0, frames)
	octree := raster.NewOctree()
	for i := 0; i < frames; i++ {
		img := s.frame(start + float64(i)/float64(fps))
		octree.Add(img)
		images = append(images, img)
	}
	palette := octree.Palette(256)

	anim := &gif.GIF{}
	for _, img := range images {
		anim.Image = append(anim.Image, raster.Quantize(img, palette))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	return anim
}
