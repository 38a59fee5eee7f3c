// Package model ties the sweater, the wall and the two balloons into one simulation.
//
// Inputs are explicit setters that mark the model dirty. Derived quantities (wall charge
// positions, each balloon's closest wall charge and induced-charge flag, balloon adjacency)
// are recomputed by Sync, once per dirty period, before any read.
package model

import (
	"errors"
	"fmt"

	"github.com/f3rmion/balloons/internal/balloon"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
	"github.com/f3rmion/balloons/internal/sweater"
	"github.com/f3rmion/balloons/internal/wall"
)

// ErrUnknownBalloon is returned for a balloon id that does not exist.
var ErrUnknownBalloon = errors.New("unknown balloon")

// BalloonID identifies one of the two balloons.
type BalloonID int

const (
	Yellow BalloonID = iota
	Green
)

func (id BalloonID) String() string {
	switch id {
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return fmt.Sprintf("balloon(%d)", int(id))
}

// ParseBalloonID parses "yellow" or "green".
func ParseBalloonID(s string) (BalloonID, error) {
	switch s {
	case "yellow":
		return Yellow, nil
	case "green":
		return Green, nil
	}
	return 0, fmt.Errorf("parsing %q: %w", s, ErrUnknownBalloon)
}

// Scene layout.
const (
	WallWidth  = 80
	WallHeight = 600

	sweaterX = 0
	sweaterY = -50

	yellowX = 440
	yellowY = 100
	greenX  = 380
	greenY  = 130
)

// Model is the whole simulation. It is not safe for concurrent use.
type Model struct {
	Width, Height float64

	Sweater *sweater.Sweater
	Wall    *wall.Wall

	balloons    [2]*balloon.Balloon
	showCharges describe.ShowCharges

	adjacent bool
	dirty    bool
	syncs    int
}

// Option configures a new model.
type Option func(*Model)

// WithLabels names the balloons, typically from the description string table.
func WithLabels(yellow, green string) Option {
	return func(m *Model) {
		m.balloons[Yellow].Label = yellow
		m.balloons[Green].Label = green
	}
}

// New creates the simulation in its initial layout: the yellow balloon in the play area, the
// green balloon hidden, the wall visible and every charge shown.
func New(opts ...Option) *Model {
	m := &Model{
		Width:       playarea.Width,
		Height:      playarea.Height,
		Sweater:     sweater.New(sweaterX, sweaterY),
		Wall:        wall.New(playarea.Width-WallWidth, WallWidth, WallHeight),
		showCharges: describe.ShowAll,
		dirty:       true,
	}
	m.balloons[Yellow] = balloon.New("Yellow Balloon", yellowX, yellowY, true)
	m.balloons[Green] = balloon.New("Green Balloon", greenX, greenY, false)
	for _, opt := range opts {
		opt(m)
	}
	m.Sync()
	return m
}

func (m *Model) lookup(id BalloonID) (*balloon.Balloon, error) {
	if id != Yellow && id != Green {
		return nil, fmt.Errorf("balloon %d: %w", int(id), ErrUnknownBalloon)
	}
	return m.balloons[id], nil
}

// Balloon returns the balloon with the given id, synced.
func (m *Model) Balloon(id BalloonID) (*balloon.Balloon, error) {
	b, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	m.Sync()
	return b, nil
}

// ShowCharges returns the charge display mode.
func (m *Model) ShowCharges() describe.ShowCharges { return m.showCharges }

// MoveBalloon moves a balloon center to p, clamped to where the balloon can be dragged.
func (m *Model) MoveBalloon(id BalloonID, p geom.Vector2) error {
	b, err := m.lookup(id)
	if err != nil {
		return err
	}
	b.SetCenter(playarea.DragBounds(m.Wall.Visible()).Clamp(p))
	m.dirty = true
	return nil
}

// SetBalloonCharge sets the charge on a balloon, clamped to what a balloon can carry.
func (m *Model) SetBalloonCharge(id BalloonID, n int) error {
	b, err := m.lookup(id)
	if err != nil {
		return err
	}
	b.SetCharge(n)
	m.dirty = true
	return nil
}

// SetBalloonVisible adds a balloon to or removes it from the play area.
func (m *Model) SetBalloonVisible(id BalloonID, v bool) error {
	b, err := m.lookup(id)
	if err != nil {
		return err
	}
	b.SetVisible(v)
	m.dirty = true
	return nil
}

// Grab starts dragging a balloon.
func (m *Model) Grab(id BalloonID) error {
	b, err := m.lookup(id)
	if err != nil {
		return err
	}
	b.Dragged = true
	m.dirty = true
	return nil
}

// Release lets go of a balloon and restarts its release timer.
func (m *Model) Release(id BalloonID) error {
	b, err := m.lookup(id)
	if err != nil {
		return err
	}
	b.Dragged = false
	b.ResetReleaseTimer()
	m.dirty = true
	return nil
}

// SetWallVisible adds or removes the wall. Balloons stuck to a removed wall restart their
// release timers, and balloons beyond the new drag bounds are pulled back inside.
func (m *Model) SetWallVisible(v bool) {
	m.Wall.SetVisible(v, m.balloons[Yellow], m.balloons[Green])
	bounds := playarea.DragBounds(v)
	for _, b := range m.balloons {
		b.SetCenter(bounds.Clamp(b.Center()))
	}
	m.dirty = true
}

// SetShowCharges changes the charge display mode. Unknown modes are rejected and leave the
// mode unchanged.
func (m *Model) SetShowCharges(mode describe.ShowCharges) error {
	if !mode.Valid() {
		return fmt.Errorf("setting charge display %q: %w", mode, describe.ErrUnknownShowCharges)
	}
	m.showCharges = mode
	return nil
}

// ResetBalloons returns both balloons and the sweater to their initial state. Balloons stay in
// or out of the play area as they are.
func (m *Model) ResetBalloons() {
	for _, b := range m.balloons {
		visible := b.Visible()
		b.Reset()
		b.SetVisible(visible)
	}
	m.Sweater.Reset()
	m.dirty = true
}

// Reset returns the whole simulation to its initial state.
func (m *Model) Reset() {
	for _, b := range m.balloons {
		b.Reset()
	}
	m.Sweater.Reset()
	m.Wall.Reset()
	m.showCharges = describe.ShowAll
	m.dirty = true
	m.Sync()
}

// Dirty reports whether an input changed since the last sync.
func (m *Model) Dirty() bool { return m.dirty }

// Sync recomputes every derived quantity from the current inputs if any input changed. It
// reports whether anything was recomputed.
func (m *Model) Sync() bool {
	if !m.dirty {
		return false
	}

	yellow, green := m.balloons[Yellow], m.balloons[Green]
	m.Wall.UpdateChargePositions(yellow, green)

	for _, b := range m.balloons {
		closest := m.Wall.ClosestCharge(b.ChargeCenter())
		b.ClosestWallCharge = closest
		b.InducingCharge = b.Visible() && b.IsCharged() && m.Wall.Visible() &&
			wall.ForceIndicatesInducedCharge(b.ForceOnCharge(closest.Position()))
	}
	m.adjacent = balloon.Adjacent(yellow, green)

	m.dirty = false
	m.syncs++
	return true
}

// Pickup records a charge moving from the sweater to a balloon.
type Pickup struct {
	Balloon BalloonID
	// First is set when the balloon carried no charge before.
	First bool
}

// StepResult reports what happened during one frame.
type StepResult struct {
	Pickups []Pickup

	// SweaterExhausted is set on the frame the last charge leaves the sweater.
	SweaterExhausted bool
}

// Step advances the simulation by dt seconds. Each dragged balloon picks up at most one
// charge from the sweater; released balloons age their release timers.
func (m *Model) Step(dt float64) StepResult {
	var res StepResult
	wasExhausted := m.Sweater.Exhausted()

	for i, b := range m.balloons {
		if !b.Visible() {
			continue
		}
		if !b.Dragged {
			b.TimeSinceRelease += dt
			continue
		}
		first := b.Charge() == 0
		if m.Sweater.TransferChargeNear(b) {
			res.Pickups = append(res.Pickups, Pickup{Balloon: BalloonID(i), First: first})
			m.dirty = true
		}
	}

	res.SweaterExhausted = !wasExhausted && m.Sweater.Exhausted()
	m.Sync()
	return res
}

// BalloonsAdjacent reports whether both balloons are visible and next to each other.
func (m *Model) BalloonsAdjacent() bool {
	m.Sync()
	return m.adjacent
}

// BalloonState is the description snapshot of a balloon.
func (m *Model) BalloonState(id BalloonID) (describe.BalloonState, error) {
	b, err := m.Balloon(id)
	if err != nil {
		return describe.BalloonState{}, err
	}
	st := describe.BalloonState{
		Label:          b.Label,
		Center:         b.Center(),
		Charge:         b.Charge(),
		Visible:        b.Visible(),
		Dragged:        b.Dragged,
		OnSweater:      b.OnSweater(m.Sweater.Bounds()),
		TouchingWall:   b.TouchingWall(m.Wall.Visible()),
		InducingCharge: b.InducingCharge,
	}
	if b.ClosestWallCharge != nil {
		st.InducedDisplacement = b.ClosestWallCharge.Displacement()
		st.ClosestWallCharge = b.ClosestWallCharge.Position()
	}
	return st, nil
}

func (m *Model) mustBalloonState(id BalloonID) describe.BalloonState {
	st, err := m.BalloonState(id)
	if err != nil {
		panic(err)
	}
	return st
}

// SweaterState is a snapshot of the sweater.
type SweaterState struct {
	Charge    int
	Exhausted bool
}

// SweaterState returns the sweater snapshot.
func (m *Model) SweaterState() SweaterState {
	return SweaterState{Charge: m.Sweater.NetCharge, Exhausted: m.Sweater.Exhausted()}
}

// WallState is a snapshot of the wall.
type WallState struct {
	Visible         bool
	MaxDisplacement float64
}

// WallState returns the wall snapshot.
func (m *Model) WallState() WallState {
	m.Sync()
	return WallState{Visible: m.Wall.Visible(), MaxDisplacement: m.Wall.MaxDisplacement()}
}

// Scene returns everything the scene summary needs.
func (m *Model) Scene() describe.Scene {
	return describe.Scene{
		Yellow:        m.mustBalloonState(Yellow),
		Green:         m.mustBalloonState(Green),
		SweaterCharge: m.Sweater.NetCharge,
		WallVisible:   m.Wall.Visible(),
		Adjacent:      m.BalloonsAdjacent(),
		Mode:          m.showCharges,
	}
}

// MoreChargesDirection returns the direction from a balloon to the next charge left on the
// sweater. ok is false once the sweater is exhausted.
func (m *Model) MoreChargesDirection(id BalloonID) (dir describe.Direction, ok bool, err error) {
	b, err := m.lookup(id)
	if err != nil {
		return 0, false, err
	}
	next := m.Sweater.NextCharge()
	if next == nil {
		return 0, false, nil
	}
	return describe.DirectionBetween(b.Center(), next.Position()), true, nil
}
