package vxspin

import (
	"image/color"
	"math"

	"git.sr.ht/~rockorager/vxspin/internal/keyframe"
)

const (
	// squaresRate is how many ring positions the lit window advances per
	// second
	squaresRate = 15.0
	// squaresLit is the length of the lit window
	squaresLit = 5
)

// squareRing is the perimeter of a 3x3 grid, in cells, clockwise from the top
// left
var squareRing = [8]Vec2{
	{0, 0},
	{1, 0},
	{2, 0},
	{2, 1},
	{2, 2},
	{1, 2},
	{0, 2},
	{0, 1},
}

// squaresPeriod is the time the window takes to travel the whole ring
const squaresPeriod = float64(len(squareRing)) / squaresRate

// SquaresWindow is the ring index of the first lit square at time t
func SquaresWindow(t float64) int {
	n := float64(len(squareRing))
	idx := int(math.Floor(keyframe.Wrap(t*squaresRate, n)))
	// Guard against rounding at the top of the range
	return idx % len(squareRing)
}

// SquaresFade is the color factor of the i-th lit square. The first square of
// the window is fully faded and the last is the brightest
func SquaresFade(i int) float32 {
	return float32(i) / squaresLit
}

func squares(rect Rect, size float32, t float64, fg color.RGBA) []Shape {
	side := size / 3
	idx := SquaresWindow(t)

	shapes := make([]Shape, 0, squaresLit)
	for i := 0; i < squaresLit; i += 1 {
		cell := squareRing[(idx+i)%len(squareRing)]
		origin := rect.Min.Add(Vec2{X: cell.X * side, Y: cell.Y * side})
		shapes = append(shapes, Shape{
			Kind:  Rectangle,
			Rect:  RectFromMinSize(origin, Vec2{X: side, Y: side}),
			Color: LinearMultiply(fg, SquaresFade(i)),
		})
	}
	return shapes
}
