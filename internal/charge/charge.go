// Package charge models the discrete point charges drawn on the sweater and the wall.
package charge

import "github.com/f3rmion/balloons/internal/geom"

// Radius of a drawn point charge.
const Radius = 8

// Unit is the charge carried by one point, scaled so that 57 points match the 100-unit
// charge of the continuous model.
const Unit = -1.754

// MaxPerObject is the most point charges a single object can hold.
const MaxPerObject = 57

// Charge is implemented by fixed and movable point charges.
type Charge interface {
	DefaultPosition() geom.Vector2
	Position() geom.Vector2
	Center() geom.Vector2
}

// PointCharge is a charge at a fixed position. Moved is only used on the sweater, where it
// marks a minus charge that has been picked up by a balloon.
type PointCharge struct {
	ID    int
	Moved bool

	defaultPosition geom.Vector2
}

// NewPointCharge creates a charge at its resting position.
func NewPointCharge(id int, x, y float64) *PointCharge {
	return &PointCharge{ID: id, defaultPosition: geom.V(x, y)}
}

// DefaultPosition returns the resting position set at construction.
func (c *PointCharge) DefaultPosition() geom.Vector2 { return c.defaultPosition }

// Position of a fixed charge is always its default position.
func (c *PointCharge) Position() geom.Vector2 { return c.defaultPosition }

// Center returns the center of the drawn charge.
func (c *PointCharge) Center() geom.Vector2 {
	return c.defaultPosition.Plus(geom.V(Radius, Radius))
}

// Reset clears the moved flag.
func (c *PointCharge) Reset() { c.Moved = false }

// MovablePointCharge is a charge that can be displaced from its resting position.
type MovablePointCharge struct {
	PointCharge

	position geom.Vector2
}

// NewMovablePointCharge creates a movable charge resting at (x, y).
func NewMovablePointCharge(id int, x, y float64) *MovablePointCharge {
	return &MovablePointCharge{
		PointCharge: PointCharge{ID: id, defaultPosition: geom.V(x, y)},
		position:    geom.V(x, y),
	}
}

// Position returns the current position.
func (c *MovablePointCharge) Position() geom.Vector2 { return c.position }

// SetPosition moves the charge.
func (c *MovablePointCharge) SetPosition(p geom.Vector2) { c.position = p }

// Center returns the center of the charge at its current position.
func (c *MovablePointCharge) Center() geom.Vector2 {
	return c.position.Plus(geom.V(Radius, Radius))
}

// Displacement returns the distance between the current and resting positions.
func (c *MovablePointCharge) Displacement() float64 {
	return c.position.Distance(c.defaultPosition)
}

// Reset returns the charge to its resting position.
func (c *MovablePointCharge) Reset() {
	c.PointCharge.Reset()
	c.position = c.defaultPosition
}
