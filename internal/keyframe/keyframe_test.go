package keyframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceValue(t *testing.T) {
	seq := New(
		At[float32](1, 0.2),
		At[float32](3, 0.4),
		At[float32](1, 0.6),
		At[float32](1, 1.0),
	)

	tests := []struct {
		name string
		t    float64
		want float32
	}{
		{"before first", 0.0, 1},
		{"first", 0.2, 1},
		{"halfway up", 0.3, 2},
		{"peak", 0.4, 3},
		{"halfway down", 0.5, 2},
		{"flat tail", 0.8, 1},
		{"last", 1.0, 1},
		{"after last", 4.0, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.want, seq.Value(test.t), 1e-5)
		})
	}
}

func TestSequenceDuration(t *testing.T) {
	assert.Equal(t, 0.0, Sequence[float64]{}.Duration())
	assert.Equal(t, 0.0, Sequence[float64]{}.Value(0.5))

	seq := New(At(1.0, 0.8), At(2.0, 0.1))
	assert.Equal(t, 0.8, seq.Duration())
	assert.Equal(t, 2, seq.Len())
	// Out of order keyframes are sorted
	assert.Equal(t, 2.0, seq.Value(0))
}

func TestSequenceEasingFromSegmentStart(t *testing.T) {
	seq := New(
		Eased(0.0, 0, func(x float64) float64 { return x * x }),
		At(1.0, 1),
		At(0.0, 2),
	)
	assert.InDelta(t, 0.25, seq.Value(0.5), 1e-9)
	// The second segment starts at a linear keyframe
	assert.InDelta(t, 0.5, seq.Value(1.5), 1e-9)
}

func TestSequenceSharedTimestamp(t *testing.T) {
	seq := New(At(0.0, 0), At(5.0, 1), At(10.0, 1), At(10.0, 2))
	assert.Equal(t, 10.0, seq.Value(1))
	assert.InDelta(t, 10.0, seq.Value(1.5), 1e-9)
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
	assert.Less(t, EaseInOut(0.1), 0.1)
	assert.Greater(t, EaseInOut(0.9), 0.9)

	prev := 0.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		y := EaseInOut(x)
		assert.GreaterOrEqual(t, y, prev-1e-9, "x=%f", x)
		prev = y
	}
}

func TestCubicBezierLinear(t *testing.T) {
	ease := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, x, ease(x), 1e-6)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		t    float64
		d    float64
		want float64
	}{
		{0, 1, 0},
		{0.25, 1, 0.25},
		{1, 1, 0},
		{2.5, 1, 0.5},
		{-0.25, 1, 0.75},
		{3, 0, 0},
		{3, -1, 0},
		{math.NaN(), 1, 0},
		{math.Inf(1), 1, 0},
		{1, math.NaN(), 0},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, Wrap(test.t, test.d), 1e-9, "Wrap(%v, %v)", test.t, test.d)
	}
}
