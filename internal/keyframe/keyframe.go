// Package keyframe interpolates values between timestamped checkpoints.
package keyframe

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// EasingFunc maps linear progress through a segment, in [0,1], to eased
// progress
type EasingFunc func(x float64) float64

// Linear is the identity easing
func Linear(x float64) float64 {
	return x
}

// EaseInOut starts and ends slowly. It is the cubic Bézier curve with control
// points (0.42, 0) and (0.58, 1)
var EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

// CubicBezier returns an easing along the curve from (0,0) to (1,1) with the
// two given control points. x1 and x2 must be within [0,1] so that the curve
// is a function of x
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	bezier := func(u, p1, p2 float64) float64 {
		v := 1 - u
		return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
	}
	slope := func(u, p1, p2 float64) float64 {
		v := 1 - u
		return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
	}
	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		}
		// Newton first, the curve is well behaved for common control
		// points
		u := x
		for i := 0; i < 8; i += 1 {
			dx := bezier(u, x1, x2) - x
			if math.Abs(dx) < 1e-7 {
				return bezier(u, y1, y2)
			}
			d := slope(u, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= dx / d
			if u < 0 || u > 1 {
				break
			}
		}
		// Fall back to bisection
		lo, hi := 0.0, 1.0
		u = x
		for i := 0; i < 64; i += 1 {
			bx := bezier(u, x1, x2)
			if math.Abs(bx-x) < 1e-7 {
				break
			}
			if bx < x {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(u, y1, y2)
	}
}

// Keyframe is a value at a point in time. Ease shapes the segment which starts
// at this keyframe. A nil Ease is linear
type Keyframe[T constraints.Float] struct {
	Value T
	Time  float64
	Ease  EasingFunc
}

// At returns a linear keyframe
func At[T constraints.Float](value T, time float64) Keyframe[T] {
	return Keyframe[T]{Value: value, Time: time}
}

// Eased returns a keyframe whose outgoing segment uses ease
func Eased[T constraints.Float](value T, time float64, ease EasingFunc) Keyframe[T] {
	return Keyframe[T]{Value: value, Time: time, Ease: ease}
}

// Sequence is an ordered list of keyframes. The zero value is an empty
// sequence which always evaluates to zero
type Sequence[T constraints.Float] struct {
	frames []Keyframe[T]
}

// New creates a sequence. Keyframes are ordered by time; keyframes sharing a
// timestamp keep their relative order
func New[T constraints.Float](frames ...Keyframe[T]) Sequence[T] {
	fs := make([]Keyframe[T], len(frames))
	copy(fs, frames)
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].Time < fs[j].Time
	})
	return Sequence[T]{frames: fs}
}

// Len is the number of keyframes in the sequence
func (s Sequence[T]) Len() int {
	return len(s.frames)
}

// Duration is the timestamp of the last keyframe. A sequence does not need to
// start at zero, but it always ends at its last keyframe
func (s Sequence[T]) Duration() float64 {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].Time
}

// Wrap reduces t into [0, Duration). It returns 0 when the sequence has no
// duration
func (s Sequence[T]) Wrap(t float64) float64 {
	return Wrap(t, s.Duration())
}

// Value evaluates the sequence at t. Before the first keyframe the first value
// is held, after the last keyframe the last value is held
func (s Sequence[T]) Value(t float64) T {
	n := len(s.frames)
	switch {
	case n == 0:
		return 0
	case t <= s.frames[0].Time:
		return s.frames[0].Value
	case t >= s.frames[n-1].Time:
		return s.frames[n-1].Value
	}
	// Index of the first keyframe strictly after t
	i := sort.Search(n, func(i int) bool {
		return s.frames[i].Time > t
	})
	from := s.frames[i-1]
	to := s.frames[i]
	span := to.Time - from.Time
	if span <= 0 {
		return to.Value
	}
	ease := from.Ease
	if ease == nil {
		ease = Linear
	}
	p := ease((t - from.Time) / span)
	return from.Value + T(float64(to.Value-from.Value)*p)
}

// Wrap reduces t into [0, d). Negative values wrap from the end. It returns 0
// for a non-positive or NaN d, or a non-finite t
func Wrap(t float64, d float64) float64 {
	if !(d > 0) || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	m := math.Mod(t, d)
	if m < 0 {
		m += d
	}
	// m + d can round up to d for tiny negative m
	if m >= d {
		return 0
	}
	return m
}
