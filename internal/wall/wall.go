// Package wall models the removable wall whose movable negative charges are pushed away by
// nearby charged balloons.
package wall

import (
	"math"

	"github.com/f3rmion/balloons/internal/balloon"
	"github.com/f3rmion/balloons/internal/charge"
	"github.com/f3rmion/balloons/internal/geom"
)

// Charge grid dimensions.
const (
	NumColumns = 3
	NumRows    = 18
)

// ForceThreshold is the force magnitude above which a charge is considered induced.
// Determined by inspection.
const ForceThreshold = 2

// Source is a charged object that pushes the wall's minus charges.
type Source interface {
	Visible() bool
	ChargeCenter() geom.Vector2
	Charge() int
}

// Releasable is a balloon whose release timer restarts when the wall is removed from under it.
type Releasable interface {
	Visible() bool
	RightAtWall() bool
	IsCharged() bool
	ResetReleaseTimer()
}

// Wall holds fixed plus charges and movable minus charges on a staggered grid. Its net charge
// is always zero.
type Wall struct {
	X, Y   float64
	Width  float64
	Height float64

	PlusCharges  []*charge.PointCharge
	MinusCharges []*charge.MovablePointCharge

	visible bool
	dx, dy  float64
}

// New creates a visible wall with its left edge at x.
func New(x, width, height float64) *Wall {
	w := &Wall{
		X:       x,
		Width:   width,
		Height:  height,
		visible: true,
		dx:      math.Round(width/NumColumns + 2),
		dy:      height / NumRows,
	}

	id := 0
	for i := 0; i < NumColumns; i++ {
		for k := 0; k < NumRows; k++ {
			p := w.calculatePosition(i, k)
			w.PlusCharges = append(w.PlusCharges, charge.NewPointCharge(id, x+p.X, p.Y))
			w.MinusCharges = append(w.MinusCharges,
				charge.NewMovablePointCharge(id, x+p.X-charge.Radius, p.Y-charge.Radius))
			id++
		}
	}
	return w
}

// calculatePosition places charge (i, k) on the grid relative to the wall's left edge.
// Odd columns are shifted up to stagger the rows.
func (w *Wall) calculatePosition(i, k int) geom.Vector2 {
	y0 := 1.0
	if i%2 == 0 {
		y0 = w.dy / 2
	}
	return geom.V(float64(i)*w.dx+charge.Radius+1, float64(k)*w.dy+y0)
}

// Bounds returns the wall rectangle.
func (w *Wall) Bounds() geom.Bounds {
	return geom.RectBounds(w.X, w.Y, w.Width, w.Height)
}

// Visible reports whether the wall is in the play area.
func (w *Wall) Visible() bool { return w.visible }

// NetCharge is always zero; charges are only displaced.
func (w *Wall) NetCharge() int { return 0 }

// SetVisible shows or hides the wall. When the wall is removed, charged balloons that were
// resting against it restart their release timers so they can drift toward the sweater.
func (w *Wall) SetVisible(v bool, balloons ...Releasable) {
	wasVisible := w.visible
	w.visible = v
	if !wasVisible || v {
		return
	}
	for _, b := range balloons {
		if b.Visible() && b.RightAtWall() && b.IsCharged() {
			b.ResetReleaseTimer()
		}
	}
}

// UpdateChargePositions moves every minus charge to its resting position plus the summed
// force of every visible source.
func (w *Wall) UpdateChargePositions(sources ...Source) {
	for _, c := range w.MinusCharges {
		rest := c.DefaultPosition()
		offset := geom.Vector2{}
		for _, s := range sources {
			if !s.Visible() {
				continue
			}
			offset = offset.Plus(balloon.ForceOnWallCharge(rest, s.ChargeCenter(), s.Charge()))
		}
		c.SetPosition(rest.Plus(offset))
	}
}

// ClosestCharge returns the minus charge whose resting position is closest to p. Ties go to
// the first charge in storage order.
func (w *Wall) ClosestCharge(p geom.Vector2) *charge.MovablePointCharge {
	var closest *charge.MovablePointCharge
	best := math.Inf(1)
	for _, c := range w.MinusCharges {
		if d := c.DefaultPosition().Distance(p); d < best {
			best = d
			closest = c
		}
	}
	return closest
}

// ForceIndicatesInducedCharge reports whether a force is strong enough to describe the wall
// as having induced charge.
func ForceIndicatesInducedCharge(f geom.Vector2) bool {
	return f.Magnitude() > ForceThreshold
}

// MaxDisplacement returns the largest displacement of any minus charge.
func (w *Wall) MaxDisplacement() float64 {
	largest := 0.0
	for _, c := range w.MinusCharges {
		if d := c.Displacement(); d > largest {
			largest = d
		}
	}
	return largest
}

// Reset shows the wall and returns every minus charge to rest.
func (w *Wall) Reset() {
	w.visible = true
	for _, c := range w.MinusCharges {
		c.Reset()
	}
}
