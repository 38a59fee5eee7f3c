// Package sweater models the sweater and the transfer of its negative charges to balloons
// rubbed against it.
package sweater

import (
	"github.com/f3rmion/balloons/internal/charge"
	"github.com/f3rmion/balloons/internal/geom"
)

// Sweater size in model units.
const (
	Width  = 330
	Height = 420
)

// layout holds the charge pair positions in storage order. Transfer scans this order.
var layout = [...][2]float64{
	{104, 114}, {94, 140}, {85, 171}, {80, 197}, {76, 228}, {74, 259}, {71, 292}, {67, 323}, {67, 354}, {61, 380},
	{140, 135}, {142, 166}, {145, 195}, {145, 224}, {143, 255}, {140, 287}, {138, 317}, {132, 346}, {128, 377},
	{170, 148}, {171, 179}, {171, 210}, {172, 241}, {171, 273}, {169, 304}, {167, 337}, {163, 368}, {163, 400},
	{208, 138}, {208, 167}, {206, 198}, {205, 229}, {203, 260}, {202, 291}, {200, 322}, {197, 352}, {196, 383},
	{239, 125}, {236, 155}, {234, 185}, {233, 216}, {232, 247}, {231, 279}, {230, 310}, {227, 341}, {226, 371}, {224, 400},
	{266, 109}, {283, 140}, {292, 171}, {292, 202}, {292, 237}, {290, 267}, {295, 297}, {296, 328}, {295, 358}, {290, 387},
}

// MaxCharge is the number of charge pairs on the sweater.
const MaxCharge = len(layout)

// Receiver is an object that can pick up charges from the sweater.
type Receiver interface {
	// Position is the top-left corner of the receiver.
	Position() geom.Vector2
	Height() float64
	AddCharge(delta int)
}

// Sweater holds a fixed grid of charge pairs. NetCharge counts the minus charges given away.
type Sweater struct {
	X, Y   float64
	Width  float64
	Height float64

	PlusCharges  []*charge.PointCharge
	MinusCharges []*charge.PointCharge

	NetCharge int
}

// New creates a sweater with its top-left corner at (x, y).
func New(x, y float64) *Sweater {
	s := &Sweater{X: x, Y: y, Width: Width, Height: Height}
	for i, p := range layout {
		// only y is offset by the sweater position
		s.PlusCharges = append(s.PlusCharges, charge.NewPointCharge(i, p[0], p[1]+y))
		s.MinusCharges = append(s.MinusCharges, charge.NewPointCharge(i, p[0], p[1]+y))
	}
	return s
}

// Bounds returns the sweater rectangle.
func (s *Sweater) Bounds() geom.Bounds {
	return geom.RectBounds(s.X, s.Y, s.Width, s.Height)
}

// Center returns the center of the sweater rectangle.
func (s *Sweater) Center() geom.Vector2 {
	return geom.V(s.X+s.Width/2, s.Y+s.Height/2)
}

// TransferChargeNear moves the first un-moved minus charge inside the receiver's contact
// rectangle onto the receiver. At most one charge moves per call.
func (s *Sweater) TransferChargeNear(r Receiver) bool {
	pos := r.Position()
	x1, x2 := pos.X-5, pos.X+50
	y1, y2 := pos.Y-10, pos.Y+r.Height()+10

	for _, c := range s.MinusCharges {
		if c.Moved {
			continue
		}
		p := c.Position()
		if x1 < p.X && p.X < x2 && y1 < p.Y && p.Y < y2 {
			c.Moved = true
			r.AddCharge(-1)
			s.NetCharge++
			return true
		}
	}
	return false
}

// NextCharge returns the first minus charge still on the sweater, or nil.
func (s *Sweater) NextCharge() *charge.PointCharge {
	for _, c := range s.MinusCharges {
		if !c.Moved {
			return c
		}
	}
	return nil
}

// Exhausted reports whether every minus charge has been picked up.
func (s *Sweater) Exhausted() bool {
	return s.NetCharge >= len(s.MinusCharges)
}

// Reset puts every charge back on the sweater.
func (s *Sweater) Reset() {
	for _, c := range s.MinusCharges {
		c.Reset()
	}
	s.NetCharge = 0
}
