// Package describe composes screen-reader descriptions of the simulation from model snapshots.
// Every method is a pure function of its arguments and the string table.
package describe

import (
	"errors"
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/balloon"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
	"github.com/f3rmion/balloons/internal/relative"
)

// ErrUnknownShowCharges is returned when parsing an unknown charge display mode.
var ErrUnknownShowCharges = errors.New("unknown show-charges mode")

// ShowCharges controls which charges are drawn and therefore described.
type ShowCharges string

const (
	ShowAll  ShowCharges = "all"
	ShowDiff ShowCharges = "diff"
	ShowNone ShowCharges = "none"
)

// ParseShowCharges parses a display mode name.
func ParseShowCharges(s string) (ShowCharges, error) {
	if mode := ShowCharges(s); mode.Valid() {
		return mode, nil
	}
	return "", fmt.Errorf("parsing %q: %w", s, ErrUnknownShowCharges)
}

// Valid reports whether m is one of the known display modes.
func (m ShowCharges) Valid() bool {
	switch m {
	case ShowAll, ShowDiff, ShowNone:
		return true
	}
	return false
}

func (m ShowCharges) String() string { return string(m) }

// BalloonState is the snapshot of a balloon the describers work from.
type BalloonState struct {
	Label          string
	Center         geom.Vector2
	Charge         int
	Visible        bool
	Dragged        bool
	OnSweater      bool
	TouchingWall   bool
	InducingCharge bool

	// InducedDisplacement is the displacement of the wall charge closest to the balloon.
	InducedDisplacement float64
	// ClosestWallCharge is the current position of that charge. The zero vector means unknown.
	ClosestWallCharge geom.Vector2
}

// Describer builds descriptions from a string table.
type Describer struct {
	s a11y.Strings
}

// New creates a describer using the strings of p.
func New(p a11y.Provider) *Describer {
	return &Describer{s: p.Strings()}
}

// Strings returns the table the describer uses.
func (d *Describer) Strings() a11y.Strings { return d.s }

// Location describes position p, e.g. "upper wall" or "left arm of sweater".
func (d *Describer) Location(p geom.Vector2, wallVisible bool) string {
	return d.RegionPhrase(playarea.MustClassify(p, wallVisible))
}

// RegionPhrase returns the location phrase for a classified region.
func (d *Describer) RegionPhrase(r playarea.Region) string {
	upper, center, lower := d.phrases(r)
	switch r.Row {
	case playarea.UpperPlayArea:
		return upper
	case playarea.LowerPlayArea:
		return lower
	}
	return center
}

func (d *Describer) phrases(r playarea.Region) (upper, center, lower string) {
	s := d.s
	switch r.Landmark {
	case playarea.AtNearSweater:
		return s.LandmarkNearSweater, s.LandmarkNearSweater, s.LandmarkNearSweater
	case playarea.AtVeryCloseToSweater:
		return s.LandmarkVeryCloseToSweater, s.LandmarkVeryCloseToSweater, s.LandmarkVeryCloseToSweater
	case playarea.AtCenterPlayArea:
		return s.LandmarkAtUpperCenterPlayArea, s.LandmarkAtCenterPlayArea, s.LandmarkAtLowerCenterPlayArea
	case playarea.AtNearWall:
		return s.LandmarkNearUpperWall, s.LandmarkNearWall, s.LandmarkNearLowerWall
	case playarea.AtVeryCloseToWall:
		return s.LandmarkVeryCloseToUpperWall, s.LandmarkVeryCloseToWall, s.LandmarkVeryCloseToLowerWall
	case playarea.AtWall:
		return s.UpperWall, s.Wall, s.LowerWall
	case playarea.AtNearRightEdge:
		return s.LandmarkNearUpperRightEdge, s.LandmarkNearRightEdge, s.LandmarkNearLowerRightEdge
	case playarea.AtVeryCloseToRightEdge:
		return s.LandmarkVeryCloseToUpperRightEdge, s.LandmarkVeryCloseToRightEdge, s.LandmarkVeryCloseToLowerRightEdge
	}

	switch r.Column {
	case playarea.LeftArm:
		return s.LeftShoulderOfSweater, s.LeftArmOfSweater, s.LowerLeftArmOfSweater
	case playarea.LeftSideOfSweater:
		return s.UpperLeftSideOfSweater, s.LeftSideOfSweater, s.LowerLeftSideOfSweater
	case playarea.RightSideOfSweater:
		return s.UpperRightSideOfSweater, s.RightSideOfSweater, s.LowerRightSideOfSweater
	case playarea.RightArm:
		return s.RightShoulderOfSweater, s.RightArmOfSweater, s.LowerRightArmOfSweater
	case playarea.LeftPlayArea:
		return s.UpperLeftSideOfPlayArea, s.LeftSideOfPlayArea, s.LowerLeftSideOfPlayArea
	case playarea.CenterPlayArea:
		return s.UpperCenterOfPlayArea, s.CenterOfPlayArea, s.LowerCenterOfPlayArea
	case playarea.RightPlayArea:
		return s.UpperRightSideOfPlayArea, s.RightSideOfPlayArea, s.LowerRightSideOfPlayArea
	case playarea.Wall:
		return s.UpperWall, s.Wall, s.LowerWall
	case playarea.RightEdge:
		return s.UpperRightEdgeOfPlayArea, s.RightEdgeOfPlayArea, s.LowerRightEdgeOfPlayArea
	}
	panic(fmt.Sprintf("no location phrase for region %v", r))
}

// RelativeCharge describes the magnitude of n: "no", "a few", "several" or "many".
func (d *Describer) RelativeCharge(n int) (string, error) {
	a, err := relative.ForCharge(n)
	if err != nil {
		return "", err
	}
	switch a {
	case relative.None:
		return d.s.No, nil
	case relative.AFew:
		return d.s.AFew, nil
	case relative.Several:
		return d.s.Several, nil
	}
	return d.s.Many, nil
}

// MustRelativeCharge is like RelativeCharge but panics on charges outside every bucket.
func (d *Describer) MustRelativeCharge(n int) string {
	s, err := d.RelativeCharge(n)
	if err != nil {
		panic(err)
	}
	return s
}

// NeutralChargesShown describes n pairs of charges, e.g. "many pairs of negative and positive
// charges", or "showing no charges" unless every charge is shown.
func (d *Describer) NeutralChargesShown(mode ShowCharges, n int) string {
	if mode == ShowAll {
		return a11y.Fill(d.s.SummaryNeutralChargesPattern, a11y.Values{"amount": d.MustRelativeCharge(n)})
	}
	return d.s.ShowingNoCharges
}

// Direction is one of the eight compass directions on screen.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// IsCardinal reports whether d is straight up, down, left or right.
func (d Direction) IsCardinal() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// DirectionBetween returns the direction of to as seen from from, in screen coordinates
// (y grows downward).
func DirectionBetween(from, to geom.Vector2) Direction {
	v := to.Minus(from)
	// angle clockwise from up
	angle := math.Atan2(v.X, -v.Y)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	sector := int(math.Floor(angle/(math.Pi/4)+0.5)) % 8
	return Direction(sector)
}

// Direction describes d, e.g. "up and to the left".
func (d *Describer) Direction(dir Direction) string {
	switch dir {
	case Up:
		return d.s.Up
	case UpRight:
		return d.s.UpAndToTheRight
	case Right:
		return d.s.Right
	case DownRight:
		return d.s.DownAndToTheRight
	case Down:
		return d.s.Down
	case DownLeft:
		return d.s.DownAndToTheLeft
	case Left:
		return d.s.Left
	}
	return d.s.UpAndToTheLeft
}

// AttractiveStatePhrase is the leading phrase of a balloon location such as "Sticking to" or
// "Near".
func (d *Describer) AttractiveStatePhrase(b BalloonState, wallVisible bool) string {
	touching := b.OnSweater || (wallVisible && b.TouchingWall)
	switch balloon.StateFor(touching, b.Charge != 0, b.Dragged) {
	case balloon.Sticking:
		return d.s.BalloonStickingTo
	case balloon.Touching:
		return d.s.BalloonTouching
	}
	return d.preposition(playarea.MustClassify(describedPosition(b, wallVisible), wallVisible))
}

func (d *Describer) preposition(r playarea.Region) string {
	switch r.Landmark {
	case playarea.AtNearSweater, playarea.AtNearWall, playarea.AtNearRightEdge:
		return d.s.BalloonNear
	case playarea.AtVeryCloseToSweater, playarea.AtVeryCloseToWall, playarea.AtVeryCloseToRightEdge:
		return d.s.BalloonVeryCloseTo
	}
	switch r.Column {
	case playarea.LeftArm, playarea.LeftSideOfSweater, playarea.RightSideOfSweater, playarea.RightArm:
		return d.s.BalloonOn
	}
	return d.s.BalloonAt
}

// describedPosition is the point of the balloon used for its location: the wall line when it
// touches the wall, its left edge on the sweater, the center otherwise.
func describedPosition(b BalloonState, wallVisible bool) geom.Vector2 {
	switch {
	case wallVisible && b.TouchingWall:
		return geom.V(playarea.XAtWall, b.Center.Y)
	case b.OnSweater:
		return geom.V(math.Max(b.Center.X-float64(balloon.Width)/2, 0), b.Center.Y)
	}
	return b.Center
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
