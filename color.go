package vxspin

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LinearMultiply scales c by factor in linear light. c is premultiplied, so
// scaling every channel, alpha included, fades the color toward transparent.
// The factor is clamped to [0,1]
func LinearMultiply(c color.RGBA, factor float32) color.RGBA {
	f := float64(factor)
	switch {
	case math.IsNaN(f) || f <= 0:
		return color.RGBA{}
	case f >= 1:
		return c
	}
	// The sRGB transfer is applied to the premultiplied channels directly
	srgb := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	r, g, b := srgb.LinearRgb()
	r, g, b = r*f, g*f, b*f
	out := colorful.LinearRgb(r, g, b).Clamped()
	a := math.Round(float64(c.A) * f)
	return color.RGBA{
		R: clampChannel(out.R, a),
		G: clampChannel(out.G, a),
		B: clampChannel(out.B, a),
		A: uint8(a),
	}
}

// clampChannel converts a [0,1] channel to 8 bits, keeping it within alpha as
// premultiplied colors require
func clampChannel(v float64, alpha float64) uint8 {
	c := math.Round(v * 255)
	if c > alpha {
		c = alpha
	}
	if c < 0 {
		c = 0
	}
	return uint8(c)
}

// Opaque returns a fully opaque color from 8 bit RGB channels
func Opaque(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// FromColorful converts a go-colorful color to an opaque color.RGBA
func FromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return Opaque(r, g, b)
}
