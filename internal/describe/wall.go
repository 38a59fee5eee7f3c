package describe

import (
	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
	"github.com/f3rmion/balloons/internal/relative"
)

// WallDescription describes the wall location and charges, adding the charge induced by each
// visible balloon when every charge is shown:
//
//	At right edge of Play Area. Has zero net charge, many pairs of negative and positive charges.
//	Negative charges in upper wall move away from Yellow Balloon a little bit. Positive charges do not move.
func (d *Describer) WallDescription(yellow, green BalloonState, adjacent, wallVisible bool, mode ShowCharges) string {
	s := d.s
	if mode == ShowNone {
		return s.FragmentToSentence(s.WallLocation)
	}

	shown := s.ManyChargePairs
	if mode == ShowDiff {
		shown = s.ShowingNoCharges
	}

	var induced string
	if wallVisible && mode == ShowAll {
		induced = d.wallInducedCharge(yellow, green, adjacent)
	}

	values := a11y.Values{
		"netCharge":    s.WallNoNetCharge,
		"shownCharges": shown,
	}
	pattern := s.WallChargeWithoutInducedPattern
	if induced != "" {
		values["inducedCharge"] = induced
		pattern = s.WallChargeWithInducedPattern
	}

	return a11y.FillCompose(s.WallDescriptionPattern, a11y.Values{
		"location": s.WallLocation,
		"charge":   a11y.Fill(pattern, values),
	})
}

// wallInducedCharge joins the charge induced by both balloons, merged into one clause when they
// are adjacent. Empty when neither balloon induces charge.
func (d *Describer) wallInducedCharge(yellow, green BalloonState, adjacent bool) string {
	s := d.s
	yellowInducing := yellow.Visible && yellow.InducingCharge
	greenInducing := green.Visible && green.InducingCharge

	var clauses string
	switch {
	case yellowInducing && greenInducing && adjacent:
		both := yellow
		both.Label = s.BothBalloons
		clauses = s.FragmentToSentence(d.InducedChargeDescription(both, true, true))
	case yellowInducing && greenInducing:
		clauses = a11y.Fill(s.WallTwoBalloonInducedPattern, a11y.Values{
			"yellowBalloon": s.FragmentToSentence(d.InducedChargeDescription(yellow, true, true)),
			"greenBalloon":  s.FragmentToSentence(d.InducedChargeDescription(green, true, true)),
		})
	case yellowInducing:
		clauses = s.FragmentToSentence(d.InducedChargeDescription(yellow, true, true))
	case greenInducing:
		clauses = s.FragmentToSentence(d.InducedChargeDescription(green, true, true))
	default:
		return ""
	}

	return a11y.Fill(s.WallInducedChargeSummaryPattern, a11y.Values{
		"inducedCharge":   clauses,
		"positiveCharges": s.PositiveChargesDoNotMove,
	})
}

// InducedChargeDescription describes the negative charges a balloon pushes away in the wall:
// "Negative charges in upper wall move away from Yellow Balloon a little bit". Without the
// amount the clause is a full sentence.
func (d *Describer) InducedChargeDescription(b BalloonState, wallVisible, includeAmount bool) string {
	s := d.s
	location := d.Location(InducedChargePosition(b), wallVisible)
	if !includeAmount {
		return a11y.Fill(s.InducedChargeNoAmountPattern, a11y.Values{
			"wallLocation": location,
			"balloon":      b.Label,
		})
	}
	return a11y.Fill(s.InducedChargePattern, a11y.Values{
		"wallLocation":    location,
		"balloon":         b.Label,
		"inductionAmount": d.InducedChargeAmount(b.InducedDisplacement),
	})
}

// InducedChargeIfBigEnough returns the induced charge clause for b, or "" when b does not induce
// a describable charge.
func (d *Describer) InducedChargeIfBigEnough(b BalloonState, wallVisible bool) string {
	if !wallVisible || !b.Visible || !b.InducingCharge {
		return ""
	}
	return d.InducedChargeDescription(b, wallVisible, true)
}

// InducedChargeAmount describes how far a wall charge moved from rest.
func (d *Describer) InducedChargeAmount(displacement float64) string {
	switch relative.ForDisplacement(displacement) {
	case relative.ALot:
		return d.s.ALot
	case relative.QuiteALot:
		return d.s.QuiteALot
	}
	return d.s.ALittleBit
}

// InducedChargePosition is the wall point where b's induced charge is described: level with the
// displaced wall charge, or with the balloon when that charge is unknown.
func InducedChargePosition(b BalloonState) geom.Vector2 {
	y := b.Center.Y
	if b.ClosestWallCharge != (geom.Vector2{}) {
		y = max(b.ClosestWallCharge.Y, 0)
	}
	return geom.V(playarea.XAtWall, y)
}
