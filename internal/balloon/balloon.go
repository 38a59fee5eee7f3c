// Package balloon holds the public state of a balloon and the force law it exerts on wall
// charges.
package balloon

import (
	"fmt"
	"math"

	"github.com/f3rmion/balloons/internal/charge"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
)

// Balloon size in model units.
const (
	Width  = 134
	Height = 222
)

// Force law constants, tuned by eye against the reference visuals.
const (
	ForceConstant = 10000
	ForcePower    = 2.35
)

// AdjacentDistance is the center distance under which two balloons are described together.
const AdjacentDistance = 40

// Force returns the displacement pushing p1 away from p2 with magnitude kqq / r^power. Equal
// points produce the zero vector.
func Force(p1, p2 geom.Vector2, kqq, power float64) geom.Vector2 {
	diff := p1.Minus(p2)
	r := diff.Magnitude()
	if r == 0 {
		return geom.Vector2{}
	}
	return diff.Normalized().Times(kqq / math.Pow(r, power))
}

// ForceOnWallCharge returns the push on a wall charge at p from a balloon whose charge center
// is at chargeCenter and which carries n point charges.
func ForceOnWallCharge(p, chargeCenter geom.Vector2, n int) geom.Vector2 {
	source := chargeCenter.MinusXY(0, 2*charge.Radius)
	return Force(p, source, ForceConstant*charge.Unit*float64(n), ForcePower)
}

// AttractiveState describes how a balloon relates to the object it is at.
type AttractiveState int

const (
	On AttractiveState = iota
	Sticking
	Touching
)

func (s AttractiveState) String() string {
	switch s {
	case On:
		return "on"
	case Sticking:
		return "sticking"
	case Touching:
		return "touching"
	}
	return fmt.Sprintf("attractive_state(%d)", int(s))
}

// Balloon is a draggable balloon. Charge is never positive.
type Balloon struct {
	Label string

	Dragged          bool
	TimeSinceRelease float64

	// Derived on every model sync.
	ClosestWallCharge *charge.MovablePointCharge
	InducingCharge    bool

	position       geom.Vector2
	charge         int
	visible        bool
	initialPos     geom.Vector2
	initialVisible bool
}

// New creates a balloon with its top-left corner at (x, y).
func New(label string, x, y float64, visible bool) *Balloon {
	return &Balloon{
		Label:          label,
		position:       geom.V(x, y),
		visible:        visible,
		initialPos:     geom.V(x, y),
		initialVisible: visible,
	}
}

// Position returns the top-left corner.
func (b *Balloon) Position() geom.Vector2 { return b.position }

// SetPosition moves the top-left corner.
func (b *Balloon) SetPosition(p geom.Vector2) { b.position = p }

// SetCenter moves the balloon so that its center is at c.
func (b *Balloon) SetCenter(c geom.Vector2) {
	b.position = c.MinusXY(Width/2, Height/2)
}

// Height returns the balloon height.
func (b *Balloon) Height() float64 { return Height }

// Center returns the center of the balloon.
func (b *Balloon) Center() geom.Vector2 {
	return b.position.Plus(geom.V(Width/2, Height/2))
}

// ChargeCenter returns the center of the drawn charges, which rises as charge accumulates.
func (b *Balloon) ChargeCenter() geom.Vector2 {
	return b.Center().MinusXY(0, math.Abs(float64(b.charge)))
}

// Bounds returns the balloon rectangle.
func (b *Balloon) Bounds() geom.Bounds {
	return geom.RectBounds(b.position.X, b.position.Y, Width, Height)
}

// Charge returns the number of charges carried, zero or negative.
func (b *Balloon) Charge() int { return b.charge }

// SetCharge sets the charge, clamped to [-charge.MaxPerObject, 0].
func (b *Balloon) SetCharge(n int) {
	if n > 0 {
		n = 0
	}
	if n < -charge.MaxPerObject {
		n = -charge.MaxPerObject
	}
	b.charge = n
}

// AddCharge adds delta to the charge.
func (b *Balloon) AddCharge(delta int) { b.SetCharge(b.charge + delta) }

// IsCharged reports whether the balloon carries any charge.
func (b *Balloon) IsCharged() bool { return b.charge < 0 }

// Visible reports whether the balloon is in the play area.
func (b *Balloon) Visible() bool { return b.visible }

// SetVisible shows or hides the balloon.
func (b *Balloon) SetVisible(v bool) { b.visible = v }

// ResetReleaseTimer restarts the time since the balloon was let go.
func (b *Balloon) ResetReleaseTimer() { b.TimeSinceRelease = 0 }

// RightAtWall reports whether the balloon center is exactly against the wall.
func (b *Balloon) RightAtWall() bool {
	return b.Center().X == playarea.XAtWall
}

// TouchingWall reports whether the balloon rests against a visible wall.
func (b *Balloon) TouchingWall(wallVisible bool) bool {
	return wallVisible && b.RightAtWall()
}

// OnSweater reports whether the balloon overlaps the sweater.
func (b *Balloon) OnSweater(sweater geom.Bounds) bool {
	return b.Bounds().Intersects(sweater)
}

// ForceOnCharge returns the force this balloon exerts on a wall charge at p.
func (b *Balloon) ForceOnCharge(p geom.Vector2) geom.Vector2 {
	return ForceOnWallCharge(p, b.ChargeCenter(), b.charge)
}

// AttractiveState classifies the balloon given whether it is touching an object.
func (b *Balloon) AttractiveState(touching bool) AttractiveState {
	return StateFor(touching, b.IsCharged(), b.Dragged)
}

// StateFor is the attractive state for a balloon that is touching (or not), charged and
// dragged.
func StateFor(touching, charged, dragged bool) AttractiveState {
	switch {
	case !touching:
		return On
	case charged && !dragged:
		return Sticking
	default:
		return Touching
	}
}

// Adjacent reports whether two balloons are both visible and close enough to be described as
// one.
func Adjacent(a, b *Balloon) bool {
	if !a.visible || !b.visible {
		return false
	}
	return a.Center().Distance(b.Center()) < AdjacentDistance
}

// Reset restores the initial position and visibility and clears charge and drag state.
func (b *Balloon) Reset() {
	b.position = b.initialPos
	b.visible = b.initialVisible
	b.charge = 0
	b.Dragged = false
	b.TimeSinceRelease = 0
	b.ClosestWallCharge = nil
	b.InducingCharge = false
}
