// Package geom provides the small 2D value types shared by the simulation model.
package geom

import "math"

// Vector2 is a point or displacement in model units.
type Vector2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// V is shorthand for constructing a Vector2.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Plus returns v + o.
func (v Vector2) Plus(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Minus returns v - o.
func (v Vector2) Minus(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// MinusXY returns v - (x, y).
func (v Vector2) MinusXY(x, y float64) Vector2 {
	return Vector2{X: v.X - x, Y: v.Y - y}
}

// Times scales v by s.
func (v Vector2) Times(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vector2) Distance(o Vector2) float64 {
	return v.Minus(o).Magnitude()
}

// Normalized returns the unit vector along v. The zero vector is returned unchanged.
func (v Vector2) Normalized() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// IsFinite reports whether both components are finite numbers.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// Length returns Max - Min.
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// NextRange returns the range of the given width starting where prev ends.
// A nil prev starts the range at zero.
func NextRange(width float64, prev *Range) Range {
	start := 0.0
	if prev != nil {
		start = prev.Max
	}
	return Range{Min: start, Max: start + width}
}

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectBounds builds bounds from a top-left corner and a size.
func RectBounds(x, y, width, height float64) Bounds {
	return Bounds{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ContainsPoint reports whether p lies inside b, edges included.
func (b Bounds) ContainsPoint(p Vector2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Intersects reports whether b and o overlap, touching edges included.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Clamp returns p moved to the nearest point inside b.
func (b Bounds) Clamp(p Vector2) Vector2 {
	return Vector2{X: clamp(p.X, b.MinX, b.MaxX), Y: clamp(p.Y, b.MinY, b.MaxY)}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
