package raster

import (
	"image"
	"image/color"
)

// Alpha value that we consider to be transparent enough to use default
// background color
const transparentEnough = 50

const (
	blank      = " "
	upperBlock = "▀"
	lowerBlock = "▄"
)

// Cell is one terminal cell showing two vertically stacked pixels. Colors are
// opaque. A color is only meaningful when its Has flag is set, otherwise the
// terminal default applies
type Cell struct {
	Grapheme      string
	Foreground    color.RGBA
	HasForeground bool
	Background    color.RGBA
	HasBackground bool
}

// HalfBlocks converts img into rows of half block cells, each cell capturing
// 1x2 pixels. Pixels with an alpha below a small threshold are transparent.
// Other pixels are composited over bg; when bg is itself transparent they are
// shown at full opacity instead
func HalfBlocks(img image.Image, bg color.RGBA) (cells []Cell, width int, height int) {
	b := img.Bounds()
	width = b.Dx()
	h := b.Dy()
	if h%2 != 0 {
		h += 1
	}
	height = h / 2
	cells = make([]Cell, width*height)
	for i := range cells {
		y := i / width
		x := i - (y * width)
		y *= 2

		top, ta := resolve(pixel(img, b.Min.X+x, b.Min.Y+y), bg)
		bot, ba := resolve(pixel(img, b.Min.X+x, b.Min.Y+y+1), bg)
		// Figure out if one of the alpha channels is transparent
		// "enough"
		switch {
		case ta < transparentEnough && ba < transparentEnough:
			cells[i] = Cell{Grapheme: blank}
		case ta < transparentEnough:
			// Top is transparent. Use a lower block
			cells[i] = Cell{
				Grapheme:      lowerBlock,
				Foreground:    bot,
				HasForeground: true,
			}
		case ba < transparentEnough:
			// Bottom is transparent. Use an upper block
			cells[i] = Cell{
				Grapheme:      upperBlock,
				Foreground:    top,
				HasForeground: true,
			}
		case top == bot:
			cells[i] = Cell{
				Grapheme:      blank,
				Background:    top,
				HasBackground: true,
			}
		default:
			cells[i] = Cell{
				Grapheme:      upperBlock,
				Foreground:    top,
				HasForeground: true,
				Background:    bot,
				HasBackground: true,
			}
		}
	}
	return cells, width, height
}

// pixel reads a pixel, treating everything outside the image as transparent
func pixel(img image.Image, x int, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.RGBA{}
	}
	return img.At(x, y)
}

// resolve turns a premultiplied pixel into an opaque color and its 8 bit
// alpha
func resolve(c color.Color, bg color.RGBA) (color.RGBA, uint8) {
	pr, pg, pb, pa := c.RGBA()
	a := uint8(pa >> 8)
	if pa == 0 {
		return color.RGBA{}, 0
	}
	if bg.A == 0 {
		return color.RGBA{
			R: uint8((pr * 0xff) / pa),
			G: uint8((pg * 0xff) / pa),
			B: uint8((pb * 0xff) / pa),
			A: 0xff,
		}, a
	}
	// Source over an opaque background
	br, bgr, bb, _ := bg.RGBA()
	inv := 0xffff - pa
	return color.RGBA{
		R: uint8((pr + br*inv/0xffff) >> 8),
		G: uint8((pg + bgr*inv/0xffff) >> 8),
		B: uint8((pb + bb*inv/0xffff) >> 8),
		A: 0xff,
	}, a
}
