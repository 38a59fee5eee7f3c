package describe

import (
	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/sweater"
)

// sweaterRelativeCharge is the relative amount of charge on the sweater; "all" once every
// negative charge is gone.
func (d *Describer) sweaterRelativeCharge(charge int) string {
	if charge == sweater.MaxCharge {
		return d.s.All
	}
	return d.MustRelativeCharge(charge)
}

func (d *Describer) signOf(charge int) string {
	switch {
	case charge > 0:
		return d.s.Positive
	case charge < 0:
		return d.s.Negative
	}
	return d.s.Zero
}

// SweaterDescription describes the sweater position and, unless charges are hidden, its charge:
//
//	At left edge of Play Area. Has positive net charge, several more positive charges than negative charges.
func (d *Describer) SweaterDescription(charge int, mode ShowCharges) string {
	s := d.s
	if mode == ShowNone {
		return s.SweaterPosition
	}

	relative := d.MustRelativeCharge(charge)
	netCharge := a11y.Fill(s.SweaterNetChargePattern, a11y.Values{"netCharge": d.signOf(charge)})

	var shown string
	switch {
	case mode == ShowAll && charge == sweater.MaxCharge:
		shown = s.SweaterNoMoreCharges
	case mode == ShowAll:
		shown = a11y.Fill(s.SweaterRelativeChargeAllPattern, a11y.Values{"charge": relative})
	case charge == 0:
		shown = s.ShowingNoCharges
	case charge == sweater.MaxCharge:
		shown = s.ShowingAllPositiveCharges
	default:
		shown = a11y.Fill(s.SweaterRelativeChargeDiffPattern, a11y.Values{"charge": relative})
	}

	chargeDesc := a11y.Fill(s.SweaterChargePattern, a11y.Values{
		"netCharge":      netCharge,
		"relativeCharge": shown,
	})
	desc := a11y.Fill(s.SweaterDescriptionPattern, a11y.Values{
		"position": s.SweaterPosition,
		"charge":   chargeDesc,
	})
	return s.FragmentToSentence(desc)
}

// SweaterRelativeChargeWithLabel describes the sweater charge as a sentence starting with its
// label. Empty when charges are hidden.
func (d *Describer) SweaterRelativeChargeWithLabel(charge int, mode ShowCharges) string {
	s := d.s
	relative := d.sweaterRelativeCharge(charge)
	switch mode {
	case ShowAll:
		if charge == sweater.MaxCharge {
			return a11y.Fill(s.SweaterHasRelativeChargePattern, a11y.Values{"relativeCharge": s.SweaterNoMoreCharges})
		}
		rel := a11y.Fill(s.SweaterRelativeChargeAllPattern, a11y.Values{"charge": relative})
		return a11y.Fill(s.SweaterHasRelativeChargePattern, a11y.Values{"relativeCharge": rel})
	case ShowDiff:
		showing := a11y.Fill(s.SweaterRelativeChargeDiffPattern, a11y.Values{"charge": relative})
		return a11y.Fill(s.SweaterHasNetChargeShowingPattern, a11y.Values{"showing": showing})
	}
	return ""
}

// SweaterNoMoreChargesAlert is announced when the last negative charge leaves the sweater.
func (d *Describer) SweaterNoMoreChargesAlert(charge int, mode ShowCharges) string {
	if mode == ShowAll {
		return a11y.Fill(d.s.SweaterHasRelativeChargePattern, a11y.Values{"relativeCharge": d.s.SweaterNoMoreCharges})
	}
	return d.SweaterRelativeChargeWithLabel(charge, mode)
}

// SweaterNetCharge returns "Sweater has positive net charge." or "Sweater has neutral net charge.".
func (d *Describer) SweaterNetCharge(charge int) string {
	rel := d.s.PositiveNetCharge
	if charge == 0 {
		rel = d.s.NeutralNetCharge
	}
	return a11y.Fill(d.s.SweaterHasRelativeChargePattern, a11y.Values{"relativeCharge": rel})
}

// SweaterMoreCharges hints at where the remaining charges are, e.g.
// "More pairs of charges further down." Empty when charges are hidden.
func (d *Describer) SweaterMoreCharges(dir Direction, mode ShowCharges) string {
	var more string
	switch mode {
	case ShowAll:
		more = d.s.MorePairsOfCharges
	case ShowDiff:
		more = d.s.MoreHiddenPairsOfCharges
	default:
		return ""
	}

	pattern := d.s.MoreChargesPattern
	if dir.IsCardinal() {
		pattern = d.s.MoreChargesFurtherPattern
	}
	return a11y.Fill(pattern, a11y.Values{
		"moreCharges": more,
		"direction":   d.Direction(dir),
	})
}

// SweaterSummary is the sweater entry of the scene charge summary.
func (d *Describer) SweaterSummary(mode ShowCharges, charge int) string {
	s := d.s
	object := a11y.Fill(s.SummaryObjectHasChargePattern, a11y.Values{
		"object": s.SweaterLabel,
		"charge": d.signOf(charge),
	})

	var shown string
	relative := d.MustRelativeCharge(charge)
	switch mode {
	case ShowAll:
		if charge == 0 {
			shown = a11y.Fill(s.SummaryNeutralChargesPattern, a11y.Values{"amount": s.Many})
		} else {
			shown = a11y.Fill(s.SweaterRelativeChargeAllPattern, a11y.Values{"charge": relative})
		}
	case ShowDiff:
		if charge == 0 {
			shown = s.ShowingNoCharges
		} else {
			shown = a11y.Fill(s.SweaterRelativeChargeDiffPattern, a11y.Values{"charge": relative})
		}
	}

	return a11y.FillCompose(s.SummaryObjectChargePattern, a11y.Values{
		"object": object,
		"charge": shown,
	})
}
