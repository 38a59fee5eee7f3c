package describe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/balloons/internal/a11y"
)

// ErrUnknownTarget is returned by Describe for an object it cannot describe.
var ErrUnknownTarget = errors.New("unknown description target")

// Scene is everything the scene descriptions depend on.
type Scene struct {
	Yellow        BalloonState
	Green         BalloonState
	SweaterCharge int
	WallVisible   bool
	Adjacent      bool
	Mode          ShowCharges
}

// Targets lists the names accepted by Describe.
var Targets = []string{"sweater", "wall", "yellow", "green", "objects", "location", "charges", "summary"}

// Describe returns the description of a named object in the scene.
func (d *Describer) Describe(target string, sc Scene) (string, error) {
	switch target {
	case "sweater":
		return d.SweaterDescription(sc.SweaterCharge, sc.Mode), nil
	case "wall":
		return d.WallDescription(sc.Yellow, sc.Green, sc.Adjacent, sc.WallVisible, sc.Mode), nil
	case "yellow":
		return d.BalloonDescription(sc.Yellow, sc.WallVisible, sc.Mode), nil
	case "green":
		return d.BalloonDescription(sc.Green, sc.WallVisible, sc.Mode), nil
	case "objects":
		return d.SceneObjects(sc.Green.Visible, sc.WallVisible), nil
	case "location":
		return d.SceneLocationSummary(sc.Yellow, sc.Green, sc.WallVisible), nil
	case "charges":
		return d.SceneChargeSummary(sc), nil
	case "summary":
		return strings.Join(d.SceneSummary(sc), " "), nil
	}
	return "", fmt.Errorf("describing %q: %w", target, ErrUnknownTarget)
}

// SceneSummary returns the summary entries in reading order: the objects in the room, where
// the balloons are and what charge everything carries.
func (d *Describer) SceneSummary(sc Scene) []string {
	return []string{
		d.SceneObjects(sc.Green.Visible, sc.WallVisible),
		d.SceneLocationSummary(sc.Yellow, sc.Green, sc.WallVisible),
		d.SceneChargeSummary(sc),
	}
}

// SceneObjects lists the objects in the room:
//
//	Currently, room has a yellow balloon, a green balloon, a sweater, and a removable wall.
func (d *Describer) SceneObjects(greenVisible, wallVisible bool) string {
	s := d.s
	values := a11y.Values{"yellowBalloon": s.AYellowBalloon}
	if greenVisible {
		values["greenBalloon"] = s.AGreenBalloon
	}
	switch {
	case wallVisible:
		values["sweater"] = s.ASweater
		values["wall"] = s.AndARemovableWall
	case greenVisible:
		values["sweater"] = s.AndASweater
	default:
		// two objects take no serial comma
		values["yellowBalloon"] = strings.TrimSuffix(s.AYellowBalloon, ",")
		values["sweater"] = s.AndASweater
	}

	return a11y.FillCompose(s.RoomObjectsPattern, a11y.Values{
		"description": a11y.FillCompose(s.SummaryObjectsPattern, values),
	})
}

// SceneLocationSummary describes where each visible balloon is and the charge it induces.
func (d *Describer) SceneLocationSummary(yellow, green BalloonState, wallVisible bool) string {
	s := d.s
	summary := d.balloonLocationSummary(yellow, wallVisible)
	if green.Visible {
		summary = a11y.Fill(s.TwoBalloonLocationSummary, a11y.Values{
			"yellowBalloon": summary,
			"greenBalloon":  d.balloonLocationSummary(green, wallVisible),
		})
	}

	if d.InducedChargeIfBigEnough(yellow, wallVisible) != "" || d.InducedChargeIfBigEnough(green, wallVisible) != "" {
		summary = a11y.Fill(s.LocationSummaryPositiveCharges, a11y.Values{"balloonSummary": summary})
	}
	return a11y.Compose(summary)
}

func (d *Describer) balloonLocationSummary(b BalloonState, wallVisible bool) string {
	s := d.s
	values := a11y.Values{
		"balloon":         b.Label,
		"attractiveState": lowerFirst(d.AttractiveStatePhrase(b, wallVisible)),
		"location":        d.Location(describedPosition(b, wallVisible), wallVisible),
	}
	if induced := d.InducedChargeIfBigEnough(b, wallVisible); induced != "" {
		values["inducedCharge"] = induced
		return a11y.Fill(s.BalloonSummaryInducedPattern, values)
	}
	return a11y.Fill(s.BalloonSummaryPattern, values)
}

// SceneChargeSummary describes the charge of the sweater, each visible balloon and the wall.
func (d *Describer) SceneChargeSummary(sc Scene) string {
	parts := []string{d.SweaterSummary(sc.Mode, sc.SweaterCharge), d.balloonChargeSummary(sc.Yellow, sc.Mode)}
	if sc.Green.Visible {
		parts = append(parts, d.balloonChargeSummary(sc.Green, sc.Mode))
	}
	if sc.WallVisible {
		parts = append(parts, d.wallChargeSummary(sc.Mode))
	}
	return a11y.Compose(strings.Join(parts, " "))
}

func (d *Describer) balloonChargeSummary(b BalloonState, mode ShowCharges) string {
	s := d.s
	object := a11y.Fill(s.SummaryObjectHasChargePattern, a11y.Values{
		"object": b.Label,
		"charge": d.signOf(b.Charge),
	})

	var shown string
	switch mode {
	case ShowAll:
		if b.Charge == 0 {
			shown = s.SummaryBalloonNeutralCharge
		} else {
			shown = a11y.Fill(s.BalloonRelativeChargePattern, a11y.Values{"amount": d.MustRelativeCharge(b.Charge)})
		}
	case ShowDiff:
		if b.Charge == 0 {
			shown = s.ShowingNoCharges
		} else {
			shown = a11y.Fill(s.BalloonChargeDifferencesPattern, a11y.Values{"amount": d.MustRelativeCharge(b.Charge)})
		}
	}
	return a11y.FillCompose(s.SummaryObjectChargePattern, a11y.Values{"object": object, "charge": shown})
}

func (d *Describer) wallChargeSummary(mode ShowCharges) string {
	s := d.s
	object := a11y.Fill(s.SummaryObjectHasChargePattern, a11y.Values{
		"object": s.WallLabel,
		"charge": s.Zero,
	})
	var shown string
	switch mode {
	case ShowAll:
		shown = s.ManyChargePairs
	case ShowDiff:
		shown = s.ShowingNoCharges
	}
	return a11y.FillCompose(s.SummaryObjectChargePattern, a11y.Values{"object": object, "charge": shown})
}

// WallVisibilityAlert is announced when the wall is added or removed.
func (d *Describer) WallVisibilityAlert(visible bool) string {
	if visible {
		return d.s.WallAdded
	}
	return d.s.WallRemoved
}

// ShowChargesAlert is announced when the charge display mode changes.
func (d *Describer) ShowChargesAlert(mode ShowCharges) string {
	switch mode {
	case ShowNone:
		return d.s.ShowNoChargesAlert
	case ShowDiff:
		return d.s.ShowChargeDifferencesAlert
	}
	return d.s.ShowAllChargesAlert
}

// BalloonVisibilityAlert is announced when a balloon is added to or removed from the play area.
func (d *Describer) BalloonVisibilityAlert(label string, visible bool) string {
	pattern := d.s.BalloonRemovedPattern
	if visible {
		pattern = d.s.BalloonAddedPattern
	}
	return a11y.Fill(pattern, a11y.Values{"balloonLabel": label})
}

// ResetAlert is announced when the balloons and sweater are reset.
func (d *Describer) ResetAlert(greenVisible bool) string {
	balloons := d.s.Balloon
	if greenVisible {
		balloons = d.s.Balloons
	}
	return a11y.Fill(d.s.ResetBalloonsAlertPattern, a11y.Values{"balloons": balloons})
}
