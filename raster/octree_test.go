package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxspin"
)

func TestOctreeExact(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, vxspin.Opaque(0xff, 0, 0))
	img.SetRGBA(1, 0, vxspin.Opaque(0, 0xff, 0))
	img.SetRGBA(2, 0, vxspin.Opaque(0xff, 0, 0))

	o := NewOctree()
	o.Add(img)
	p := o.Palette(256)
	require.Len(t, p, 2)
	assert.Contains(t, p, color.Color(vxspin.Opaque(0xff, 0, 0)))
	assert.Contains(t, p, color.Color(vxspin.Opaque(0, 0xff, 0)))

	q := Quantize(img, p)
	assert.Equal(t, q.ColorIndexAt(0, 0), q.ColorIndexAt(2, 0))
	assert.NotEqual(t, q.ColorIndexAt(0, 0), q.ColorIndexAt(1, 0))
	assert.Equal(t, vxspin.Opaque(0, 0xff, 0), p[q.ColorIndexAt(1, 0)])
}

func TestOctreeTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, vxspin.Opaque(0x10, 0x20, 0x30))

	o := NewOctree()
	o.Add(img)
	p := o.Palette(16)
	require.Len(t, p, 2)
	assert.Equal(t, color.RGBA{}, p[0])

	q := Quantize(img, p)
	assert.Equal(t, uint8(0), q.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), q.ColorIndexAt(1, 0))
}

func TestOctreeReduce(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 1))
	for x := 0; x < 256; x++ {
		img.SetRGBA(x, 0, vxspin.Opaque(uint8(x), uint8(255-x), uint8(x/2)))
	}

	o := NewOctree()
	o.Add(img)
	p := o.Palette(16)
	assert.LessOrEqual(t, len(p), 16)
	assert.Greater(t, len(p), 1)

	q := Quantize(img, p)
	// Nearby colors land on the same or a close entry
	assert.Equal(t, q.ColorIndexAt(0, 0), q.ColorIndexAt(1, 0))
}

func TestOctreeEmpty(t *testing.T) {
	p := NewOctree().Palette(256)
	assert.Len(t, p, 1)
}
