package vxspin

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLinearMultiply(t *testing.T) {
	c := Opaque(0xc0, 0x80, 0x40)
	assert.Equal(t, c, LinearMultiply(c, 1))
	assert.Equal(t, c, LinearMultiply(c, 3))
	assert.Equal(t, color.RGBA{}, LinearMultiply(c, 0))
	assert.Equal(t, color.RGBA{}, LinearMultiply(c, -1))

	half := LinearMultiply(Opaque(0xff, 0xff, 0xff), 0.5)
	assert.Equal(t, uint8(128), half.A)
	// Half of linear white is about 0.735 in sRGB, clamped by alpha
	assert.Equal(t, uint8(128), half.R)

	dim := LinearMultiply(Opaque(0x40, 0x40, 0x40), 0.5)
	assert.Equal(t, uint8(128), dim.A)
	assert.Less(t, dim.R, uint8(0x40))
	assert.Greater(t, dim.R, uint8(0x20))

	// Premultiplied channels never exceed alpha
	for _, f := range []float32{0.05, 0.2, 0.4, 0.6, 0.8, 0.95} {
		m := LinearMultiply(Opaque(0xff, 0x10, 0x80), f)
		assert.LessOrEqual(t, m.R, m.A)
		assert.LessOrEqual(t, m.G, m.A)
		assert.LessOrEqual(t, m.B, m.A)
	}
}

func TestFromColorful(t *testing.T) {
	c, err := colorful.Hex("#102030")
	assert.NoError(t, err)
	assert.Equal(t, Opaque(0x10, 0x20, 0x30), FromColorful(c))
}
