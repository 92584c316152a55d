// Package core provides fundamental types and utilities for the scroller.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is a 2D point or displacement in world units.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both axes multiplied by k.
func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// AddAssign accumulates d into v in place.
func (v *Vec2) AddAssign(d Vec2) {
	v.X += d.X
	v.Y += d.Y
}

// Box is an axis-aligned box in world space. Y grows downward, so Top is
// numerically smaller than Bottom.
type Box struct {
	Position Vec2 // Top-left corner
	Size     Vec2 // Width and height, never negative
}

// NewBox creates a box at (x, y) with size (w, h).
// Negative sizes are clamped to zero.
func NewBox(x, y, w, h float32) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{Position: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float32 {
	return b.Position.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float32 {
	return b.Position.Y + b.Size.Y
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float32 {
	return b.Position.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float32 {
	return b.Position.X + b.Size.X
}

// SetTop moves the box so its top edge lies at y.
func (b *Box) SetTop(y float32) {
	b.Position.Y = y
}

// SetBottom moves the box so its bottom edge lies at y.
func (b *Box) SetBottom(y float32) {
	b.Position.Y = y - b.Size.Y
}

// SetLeft moves the box so its left edge lies at x.
func (b *Box) SetLeft(x float32) {
	b.Position.X = x
}

// SetRight moves the box so its right edge lies at x.
func (b *Box) SetRight(x float32) {
	b.Position.X = x - b.Size.X
}

// Offset translates the box by d.
func (b *Box) Offset(d Vec2) {
	b.Position.AddAssign(d)
}

// Scale returns the box with position and size multiplied by k.
// Used to turn world geometry into screen cells.
func (b Box) Scale(k float32) Box {
	return Box{Position: b.Position.Scale(k), Size: b.Size.Scale(k)}
}

// Rect represents an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FloorMod returns a modulo b in [0, b), also for negative a. b must be positive.
func FloorMod(a, b int) int {
	return ((a % b) + b) % b
}
