package scenario

import (
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/transcript"
)

// Announcer receives every alert and description a session produces.
type Announcer func(source, text string)

// Session drives a model and announces what changes, the way a screen reader would hear it.
type Session struct {
	Model     *model.Model
	Describer *describe.Describer

	announce Announcer
}

// NewSession wraps m. A nil announcer discards announcements.
func NewSession(m *model.Model, d *describe.Describer, announce Announcer) *Session {
	if announce == nil {
		announce = func(string, string) {}
	}
	return &Session{Model: m, Describer: d, announce: announce}
}

func (s *Session) alert(text string) {
	if text != "" {
		s.announce(transcript.SourceAlert, text)
	}
}

func (s *Session) balloonState(id model.BalloonID) describe.BalloonState {
	st, err := s.Model.BalloonState(id)
	if err != nil {
		panic(err)
	}
	return st
}

// Step advances the model one frame and announces every charge pickup.
func (s *Session) Step(dt float64) model.StepResult {
	res := s.Model.Step(dt)
	mode := s.Model.ShowCharges()
	sweaterCharge := s.Model.SweaterState().Charge
	for _, p := range res.Pickups {
		s.alert(s.Describer.PickupAlert(s.balloonState(p.Balloon), sweaterCharge, p.First, mode))
	}
	return res
}

// Move moves a balloon center.
func (s *Session) Move(id model.BalloonID, p geom.Vector2) error {
	return s.Model.MoveBalloon(id, p)
}

// Grab starts dragging a balloon.
func (s *Session) Grab(id model.BalloonID) error {
	return s.Model.Grab(id)
}

// Release lets go of a balloon and announces where it is.
func (s *Session) Release(id model.BalloonID) error {
	if err := s.Model.Release(id); err != nil {
		return err
	}
	b := s.balloonState(id)
	s.announce(transcript.SourceDescription,
		s.Describer.BalloonDescription(b, s.Model.Wall.Visible(), s.Model.ShowCharges()))
	return nil
}

// SetCharge sets a balloon charge and announces it.
func (s *Session) SetCharge(id model.BalloonID, n int) error {
	if err := s.Model.SetBalloonCharge(id, n); err != nil {
		return err
	}
	s.alert(s.Describer.BalloonChargeAlert(s.balloonState(id), s.Model.ShowCharges()))
	return nil
}

// SetBalloonVisible adds or removes a balloon and announces it.
func (s *Session) SetBalloonVisible(id model.BalloonID, v bool) error {
	if err := s.Model.SetBalloonVisible(id, v); err != nil {
		return err
	}
	s.alert(s.Describer.BalloonVisibilityAlert(s.balloonState(id).Label, v))
	return nil
}

// SetWallVisible adds or removes the wall and announces it.
func (s *Session) SetWallVisible(v bool) {
	if s.Model.Wall.Visible() == v {
		return
	}
	s.Model.SetWallVisible(v)
	s.alert(s.Describer.WallVisibilityAlert(v))
}

// SetShowCharges changes the charge display mode and announces it.
func (s *Session) SetShowCharges(mode describe.ShowCharges) error {
	if s.Model.ShowCharges() == mode {
		return nil
	}
	if err := s.Model.SetShowCharges(mode); err != nil {
		return err
	}
	s.alert(s.Describer.ShowChargesAlert(mode))
	return nil
}

// ResetBalloons resets the balloons and the sweater and announces it.
func (s *Session) ResetBalloons() {
	s.Model.ResetBalloons()
	s.alert(s.Describer.ResetAlert(s.balloonState(model.Green).Visible))
}

// Reset returns the whole simulation to its initial state.
func (s *Session) Reset() {
	s.Model.Reset()
	s.alert(s.Describer.ResetAlert(s.balloonState(model.Green).Visible))
}

// Describe returns the current description of a named target.
func (s *Session) Describe(target string) (string, error) {
	return s.Describer.Describe(target, s.Model.Scene())
}

// MoreCharges hints at where the charges left on the sweater are, relative to a balloon.
// Empty once the sweater is exhausted.
func (s *Session) MoreCharges(id model.BalloonID) (string, error) {
	dir, ok, err := s.Model.MoreChargesDirection(id)
	if err != nil || !ok {
		return "", err
	}
	return s.Describer.SweaterMoreCharges(dir, s.Model.ShowCharges()), nil
}
