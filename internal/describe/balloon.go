package describe

import (
	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/sweater"
)

// BalloonLocation describes where a balloon is, e.g. "Sticking to upper wall."
func (d *Describer) BalloonLocation(b BalloonState, wallVisible bool) string {
	return d.s.FragmentToSentence(d.attractiveStateAndLocation(b, wallVisible))
}

func (d *Describer) attractiveStateAndLocation(b BalloonState, wallVisible bool) string {
	return a11y.Fill(d.s.BalloonLocationAttractivePattern, a11y.Values{
		"attractiveState": d.AttractiveStatePhrase(b, wallVisible),
		"location":        d.Location(describedPosition(b, wallVisible), wallVisible),
	})
}

// BalloonCharge describes the charge on a balloon:
//
//	Has zero net charge, a few pairs of negative and positive charges.
//	Has negative net charge, several more negative charges than positive charges.
//	Has negative net charge, showing several negative charges.
func (d *Describer) BalloonCharge(charge int, mode ShowCharges) string {
	s := d.s
	netCharge := a11y.Fill(s.BalloonNetChargePattern, a11y.Values{"chargeAmount": d.signOf(charge)})

	var relativeCharge string
	switch mode {
	case ShowAll:
		if charge == 0 {
			relativeCharge = s.SummaryBalloonNeutralCharge
		} else {
			relativeCharge = a11y.Fill(s.BalloonRelativeChargePattern, a11y.Values{"amount": d.MustRelativeCharge(charge)})
		}
	case ShowDiff:
		if charge == 0 {
			relativeCharge = s.ShowingNoCharges
		} else {
			relativeCharge = a11y.Fill(s.BalloonChargeDifferencesPattern, a11y.Values{"amount": d.MustRelativeCharge(charge)})
		}
	}

	return s.FragmentToSentence(a11y.Fill(s.BalloonChargePattern, a11y.Values{
		"netCharge":      netCharge,
		"relativeCharge": relativeCharge,
	}))
}

// BalloonDescription is the full description of a balloon: location, charge and, when every
// charge is shown, the charge it induces in the wall.
func (d *Describer) BalloonDescription(b BalloonState, wallVisible bool, mode ShowCharges) string {
	parts := d.BalloonLocation(b, wallVisible) + " " + d.BalloonCharge(b.Charge, mode)
	if mode == ShowAll {
		if induced := d.InducedChargeIfBigEnough(b, wallVisible); induced != "" {
			parts += " " + d.s.FragmentToSentence(induced)
		}
	}
	return a11y.Compose(parts)
}

// BalloonLabelWithLocation is the balloon entry of the scene summary, e.g.
// "Yellow Balloon, sticking to left side of sweater".
func (d *Describer) BalloonLabelWithLocation(b BalloonState, wallVisible bool) string {
	return a11y.Fill(d.s.BalloonLabelWithAttractivePattern, a11y.Values{
		"balloonLabel":               b.Label,
		"attractiveStateAndLocation": lowerFirst(d.attractiveStateAndLocation(b, wallVisible)),
	})
}

// PickupAlert is announced when a dragged balloon takes a charge from the sweater. first reports
// whether this was the balloon's first charge; sweaterCharge is the sweater charge after the
// transfer.
func (d *Describer) PickupAlert(b BalloonState, sweaterCharge int, first bool, mode ShowCharges) string {
	s := d.s
	if sweaterCharge >= sweater.MaxCharge {
		relativeCharge := a11y.Fill(s.BalloonRelativeChargePattern, a11y.Values{"amount": d.MustRelativeCharge(b.Charge)})
		return a11y.FillCompose(s.LastChargePickedUpPattern, a11y.Values{
			"sweater": d.SweaterNoMoreChargesAlert(sweaterCharge, mode),
			"balloon": a11y.Fill(s.BalloonHasRelativeChargePattern, a11y.Values{
				"balloonLabel":   b.Label,
				"relativeCharge": relativeCharge,
			}),
		})
	}

	pattern := s.BalloonPicksUpMoreChargesPattern
	if first {
		pattern = s.BalloonPicksUpChargesPattern
	}
	pickUp := a11y.Fill(pattern, a11y.Values{"balloon": b.Label})
	if mode == ShowDiff {
		return a11y.FillCompose(s.BalloonPicksUpChargesDiffPattern, a11y.Values{"pickUp": pickUp})
	}
	return s.FragmentToSentence(pickUp)
}

// BalloonChargeAlert describes the charge of a balloon with its label, for when the charge is
// set directly. Empty when charges are hidden.
func (d *Describer) BalloonChargeAlert(b BalloonState, mode ShowCharges) string {
	s := d.s
	switch mode {
	case ShowAll:
		if b.Charge == 0 {
			return s.FragmentToSentence(a11y.Fill(s.BalloonHasNetChargePattern, a11y.Values{
				"balloon": b.Label,
				"charge":  s.Zero,
				"showing": s.SummaryBalloonNeutralCharge,
			}))
		}
		relativeCharge := a11y.Fill(s.BalloonRelativeChargePattern, a11y.Values{"amount": d.MustRelativeCharge(b.Charge)})
		return s.FragmentToSentence(a11y.Fill(s.BalloonHasRelativeChargePattern, a11y.Values{
			"balloonLabel":   b.Label,
			"relativeCharge": relativeCharge,
		}))
	case ShowDiff:
		showing := s.ShowingNoCharges
		if b.Charge != 0 {
			showing = a11y.Fill(s.BalloonChargeDifferencesPattern, a11y.Values{"amount": d.MustRelativeCharge(b.Charge)})
		}
		return s.FragmentToSentence(a11y.Fill(s.BalloonHasNetChargePattern, a11y.Values{
			"balloon": b.Label,
			"charge":  d.signOf(b.Charge),
			"showing": showing,
		}))
	}
	return ""
}
