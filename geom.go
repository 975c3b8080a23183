package vxspin

// Vec2 is a point or an extent in abstract length units. Y grows downward
type Vec2 struct {
	X float32
	Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis aligned rectangle. Max is exclusive
type Rect struct {
	Min Vec2
	Max Vec2
}

// RectFromMinSize returns the rectangle with origin min and the given size
func RectFromMinSize(min Vec2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize returns the rectangle of the given size centered on
// center
func RectFromCenterSize(center Vec2, size Vec2) Rect {
	half := Vec2{X: size.X / 2, Y: size.Y / 2}
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

func (r Rect) Center() Vec2 {
	return Vec2{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// LeftCenter is the midpoint of the left edge
func (r Rect) LeftCenter() Vec2 {
	return Vec2{X: r.Min.X, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Translate moves the rectangle by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}
