package vxspin

import (
	"image/color"

	"git.sr.ht/~rockorager/vxspin/internal/keyframe"
)

const (
	barCount    = 5
	barRounding = 2.0
	// barStagger is how far ahead of its right neighbour each bar runs
	barStagger = 0.1
)

// barHeight pulses from 30% to 70% of size and back
func barHeight(size float32) keyframe.Sequence[float32] {
	low := size * 0.3
	high := size * 0.7
	return keyframe.New(
		keyframe.Eased(low, 0.0, keyframe.EaseInOut),
		keyframe.Eased(low, 0.2, keyframe.EaseInOut),
		keyframe.Eased(high, 0.5, keyframe.EaseInOut),
		keyframe.Eased(low, 0.8, keyframe.EaseInOut),
		keyframe.At(low, 1.0),
	)
}

// barTime is the point in the height animation bar i shows at time t
func barTime(seq keyframe.Sequence[float32], i int, t float64) float64 {
	phase := seq.Wrap(barStagger * float64(barCount-i))
	return seq.Wrap(phase + seq.Wrap(t))
}

func bars(rect Rect, size float32, t float64, fg color.RGBA) []Shape {
	seq := barHeight(size)
	barWidth := size / barCount

	shapes := make([]Shape, 0, barCount)
	for i := 0; i < barCount; i += 1 {
		h := seq.Value(barTime(seq, i, t))
		center := rect.LeftCenter().Add(Vec2{
			X: barWidth*float32(i) + barWidth/2,
		})
		shapes = append(shapes, Shape{
			Kind:     Rectangle,
			Rect:     RectFromCenterSize(center, Vec2{X: barWidth * 0.5, Y: h}),
			Rounding: barRounding,
			Color:    fg,
		})
	}
	return shapes
}
