package raster

import (
	"image"
	"image/color"
)

const octreeDepth = 8

type octreeNode struct {
	r, g, b int
	n       int
	leaf    bool
	index   int
	kids    [8]*octreeNode
}

func (n *octreeNode) color() color.RGBA {
	return color.RGBA{
		R: uint8(n.r / n.n),
		G: uint8(n.g / n.n),
		B: uint8(n.b / n.n),
		A: 0xff,
	}
}

// Octree collects the colors of one or more images and reduces them to a
// palette. Adding every frame of an animation yields a palette shared by all
// frames.
//
// Based on the octree quantizer by delthas: https://github.com/delthas/octreequant
type Octree struct {
	root *octreeNode
	// reducible holds the inner nodes of every level
	reducible   [octreeDepth][]*octreeNode
	leaves      int
	transparent bool
}

func NewOctree() *Octree {
	o := &Octree{root: &octreeNode{}}
	o.reducible[0] = append(o.reducible[0], o.root)
	return o
}

// Add records every pixel of img. Pixels below the transparency threshold
// reserve a transparent palette entry
func (o *Octree) Add(img image.Image) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, a := resolve(img.At(x, y), color.RGBA{})
			if a < transparentEnough {
				o.transparent = true
				continue
			}
			o.insert(c)
		}
	}
}

func (o *Octree) insert(c color.RGBA) {
	n := o.root
	for level := 0; !n.leaf; level++ {
		i := octant(c, level)
		kid := n.kids[i]
		if kid == nil {
			kid = &octreeNode{}
			if level+1 == octreeDepth {
				kid.leaf = true
				o.leaves++
			} else {
				o.reducible[level+1] = append(o.reducible[level+1], kid)
			}
			n.kids[i] = kid
		}
		n = kid
	}
	n.r += int(c.R)
	n.g += int(c.G)
	n.b += int(c.B)
	n.n++
}

func octant(c color.RGBA, level int) int {
	mask := uint8(0x80 >> level)
	i := 0
	if c.R&mask != 0 {
		i |= 4
	}
	if c.G&mask != 0 {
		i |= 2
	}
	if c.B&mask != 0 {
		i |= 1
	}
	return i
}

// reduce merges the children of the deepest inner node into it
func (o *Octree) reduce() bool {
	for level := octreeDepth - 1; level >= 0; level-- {
		nodes := o.reducible[level]
		if len(nodes) == 0 {
			continue
		}
		n := nodes[len(nodes)-1]
		o.reducible[level] = nodes[:len(nodes)-1]
		kids := 0
		for i, k := range n.kids {
			if k == nil {
				continue
			}
			n.r += k.r
			n.g += k.g
			n.b += k.b
			n.n += k.n
			n.kids[i] = nil
			kids++
		}
		n.leaf = true
		o.leaves -= kids - 1
		return true
	}
	return false
}

// Palette reduces the tree to at most size colors, including the transparent
// entry which comes first when present. Colors added afterwards join the
// reduced leaves
func (o *Octree) Palette(size int) color.Palette {
	size = max(1, min(256, size))
	opaque := size
	if o.transparent {
		opaque--
	}
	for o.leaves > opaque && o.reduce() {
	}

	var p color.Palette
	if o.transparent {
		p = append(p, color.RGBA{})
	}
	var walk func(n *octreeNode)
	walk = func(n *octreeNode) {
		if n.leaf {
			if n.n > 0 {
				n.index = len(p)
				p = append(p, n.color())
			}
			return
		}
		for _, k := range n.kids {
			if k != nil {
				walk(k)
			}
		}
	}
	walk(o.root)
	if len(p) == 0 {
		p = append(p, color.RGBA{})
	}
	return p
}

// Quantize maps img onto p. Pixels below the transparency threshold use the
// first fully transparent entry of p, others the nearest opaque color
func Quantize(img image.Image, p color.Palette) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, p)
	transparent := -1
	for i, c := range p {
		if _, _, _, a := c.RGBA(); a == 0 {
			transparent = i
			break
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, a := resolve(img.At(x, y), color.RGBA{})
			if a < transparentEnough && transparent >= 0 {
				dst.SetColorIndex(x, y, uint8(transparent))
				continue
			}
			dst.SetColorIndex(x, y, uint8(p.Index(c)))
		}
	}
	return dst
}
