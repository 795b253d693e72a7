package gridutils

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. Zero components yield IEEE infinities or NaN.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Size returns (Width, Height).
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Inset shrinks the rectangle by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}
