package video

import "math"

// Vector represents a 2D point or displacement in logical or device space.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Floor returns the vector with both components rounded toward negative
// infinity. Camera translations are floored before they are applied so that
// sub-pixel camera motion never shifts sprites relative to each other.
func (v Vector) Floor() Vector {
	return Vector{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Sizef represents a width/height pair.
type Sizef struct {
	Width, Height float64
}

// Size is a convenience function to create a Sizef.
func Size(w, h float64) Sizef {
	return Sizef{Width: w, Height: h}
}

// Rectf is an axis-aligned rectangle in floating-point coordinates.
// MinX/MinY is the top-left corner, MaxX/MaxY the bottom-right.
type Rectf struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRectf creates a rectangle from a top-left corner and a size.
func NewRectf(x, y, w, h float64) Rectf {
	return Rectf{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// RectfFromPoints creates a rectangle spanning two corner points.
func RectfFromPoints(p1, p2 Vector) Rectf {
	return Rectf{MinX: p1.X, MinY: p1.Y, MaxX: p2.X, MaxY: p2.Y}
}

// RectfFromSize creates a rectangle from a top-left corner and a size.
func RectfFromSize(pos Vector, size Sizef) Rectf {
	return Rectf{MinX: pos.X, MinY: pos.Y, MaxX: pos.X + size.Width, MaxY: pos.Y + size.Height}
}

// Width returns the width of the rectangle.
func (r Rectf) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rectf) Height() float64 {
	return r.MaxY - r.MinY
}

// Size returns the size of the rectangle.
func (r Rectf) Size() Sizef {
	return Sizef{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rectf) TopLeft() Vector {
	return Vector{X: r.MinX, Y: r.MinY}
}

// BottomRight returns the bottom-right corner.
func (r Rectf) BottomRight() Vector {
	return Vector{X: r.MaxX, Y: r.MaxY}
}

// Translate returns the rectangle shifted by v.
func (r Rectf) Translate(v Vector) Rectf {
	return Rectf{MinX: r.MinX + v.X, MinY: r.MinY + v.Y, MaxX: r.MaxX + v.X, MaxY: r.MaxY + v.Y}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectf) Contains(p Vector) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Rect is an axis-aligned rectangle in integer device pixels, used for
// viewports.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates an integer rectangle from a top-left corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Rectf converts the rectangle to floating-point coordinates.
func (r Rect) Rectf() Rectf {
	return NewRectf(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}
