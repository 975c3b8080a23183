package vxspin

import (
	"image/color"

	"git.sr.ht/~rockorager/vxspin/internal/keyframe"
)

// dotPhases are the start offsets of the left, middle and right dot
var dotPhases = [3]float64{0.0, 0.2, 0.4}

// dotsRadius is the radius animation of a dot starting at phase. A dot rests
// at the small radius, grows to the big one and back, then rests until the
// cycle ends
func dotsRadius(size float32, phase float64) keyframe.Sequence[float32] {
	big := size / 6
	small := big / 2
	return keyframe.New(
		keyframe.At(small, phase),
		keyframe.At(big, phase+0.2),
		keyframe.At(small, phase+0.4),
		keyframe.At(small, 1.0),
	)
}

func dots(rect Rect, size float32, t float64, fg color.RGBA) []Shape {
	big := size / 6
	center := rect.Center()
	offset := Vec2{X: big * 2}
	centers := [3]Vec2{
		center.Sub(offset),
		center,
		center.Add(offset),
	}

	// Every dot reduces time by the left dot's cycle
	left := dotsRadius(size, dotPhases[0])
	t = left.Wrap(t)

	shapes := make([]Shape, 0, len(centers))
	for i, c := range centers {
		seq := left
		if i > 0 {
			seq = dotsRadius(size, dotPhases[i])
		}
		shapes = append(shapes, Shape{
			Kind:   Circle,
			Center: c,
			Radius: seq.Value(t),
			Color:  fg,
		})
	}
	return shapes
}
