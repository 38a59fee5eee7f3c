// Package scenario replays scripted interactions against the simulation and checks the
// descriptions they produce.
//
// A scenario is a YAML file:
//
//	name: charged balloon at the wall
//	steps:
//	  - balloon: yellow
//	    charge: -10
//	  - move: [621, 112]
//	  - expect:
//	      describe: wall
//	      contains: [a little bit]
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrExpectation is returned when a description does not match what a step expects.
var ErrExpectation = errors.New("expectation failed")

// ErrInvalidStep is returned for a step that cannot be applied.
var ErrInvalidStep = errors.New("invalid step")

// DefaultDT is the frame length used when a step advances frames without a dt.
const DefaultDT = 1.0 / 60

// Scenario is a scripted sequence of steps.
type Scenario struct {
	Name        string `yaml:"name"`
	ShowCharges string `yaml:"show_charges,omitempty"`
	WallVisible *bool  `yaml:"wall_visible,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scripted interaction. Every field set on a step is applied, in the order the
// fields are declared here.
type Step struct {
	// Balloon names the balloon the step acts on; yellow when empty.
	Balloon string `yaml:"balloon,omitempty"`

	Reset         bool      `yaml:"reset,omitempty"`
	ResetBalloons bool      `yaml:"reset_balloons,omitempty"`
	Show          string    `yaml:"show,omitempty"`
	Wall          *bool     `yaml:"wall,omitempty"`
	Visible       *bool     `yaml:"visible,omitempty"`
	Charge        *int      `yaml:"charge,omitempty"`
	Grab          bool      `yaml:"grab,omitempty"`
	Move          []float64 `yaml:"move,omitempty"`
	Frames        int       `yaml:"frames,omitempty"`
	DT            float64   `yaml:"dt,omitempty"`
	Release       bool      `yaml:"release,omitempty"`

	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation checks the description of a target after a step.
type Expectation struct {
	Describe string   `yaml:"describe"`
	Equals   string   `yaml:"equals,omitempty"`
	Contains []string `yaml:"contains,omitempty"`
	Absent   []string `yaml:"absent,omitempty"`
}

// Output is a description produced by an expectation.
type Output struct {
	Step   int
	Target string
	Text   string
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks every step without running it.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.ShowCharges != "" {
		if _, err := describe.ParseShowCharges(sc.ShowCharges); err != nil {
			errs = append(errs, err)
		}
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	if st.Balloon != "" {
		if _, err := model.ParseBalloonID(st.Balloon); err != nil {
			return err
		}
	}
	if st.Show != "" {
		if _, err := describe.ParseShowCharges(st.Show); err != nil {
			return err
		}
	}
	if st.Move != nil && len(st.Move) != 2 {
		return fmt.Errorf("move needs [x, y], got %d values: %w", len(st.Move), ErrInvalidStep)
	}
	if st.Frames < 0 || st.DT < 0 {
		return fmt.Errorf("frames and dt must not be negative: %w", ErrInvalidStep)
	}
	if st.Expect != nil {
		if !validTarget(st.Expect.Describe) {
			return fmt.Errorf("describing %q: %w", st.Expect.Describe, describe.ErrUnknownTarget)
		}
		if st.Expect.Equals == "" && len(st.Expect.Contains) == 0 && len(st.Expect.Absent) == 0 {
			return fmt.Errorf("expect on %q checks nothing: %w", st.Expect.Describe, ErrInvalidStep)
		}
	}
	return nil
}

func validTarget(target string) bool {
	for _, t := range describe.Targets {
		if t == target {
			return true
		}
	}
	return false
}

// Run replays the scenario on s from its current state and returns the description produced by
// every expectation. It stops at the first failing step.
func (sc *Scenario) Run(s *Session) ([]Output, error) {
	if sc.ShowCharges != "" {
		mode, err := describe.ParseShowCharges(sc.ShowCharges)
		if err != nil {
			return nil, err
		}
		if err := s.SetShowCharges(mode); err != nil {
			return nil, err
		}
	}
	if sc.WallVisible != nil {
		s.SetWallVisible(*sc.WallVisible)
	}

	var outputs []Output
	for i, st := range sc.Steps {
		out, err := st.apply(s)
		if err != nil {
			return outputs, fmt.Errorf("step %d: %w", i+1, err)
		}
		if out != nil {
			out.Step = i + 1
			outputs = append(outputs, *out)
		}
	}
	return outputs, nil
}

func (st Step) apply(s *Session) (*Output, error) {
	id := model.Yellow
	if st.Balloon != "" {
		var err error
		if id, err = model.ParseBalloonID(st.Balloon); err != nil {
			return nil, err
		}
	}

	if st.Reset {
		s.Reset()
	}
	if st.ResetBalloons {
		s.ResetBalloons()
	}
	if st.Show != "" {
		mode, err := describe.ParseShowCharges(st.Show)
		if err != nil {
			return nil, err
		}
		if err := s.SetShowCharges(mode); err != nil {
			return nil, err
		}
	}
	if st.Wall != nil {
		s.SetWallVisible(*st.Wall)
	}
	if st.Visible != nil {
		if err := s.SetBalloonVisible(id, *st.Visible); err != nil {
			return nil, err
		}
	}
	if st.Charge != nil {
		if err := s.SetCharge(id, *st.Charge); err != nil {
			return nil, err
		}
	}
	if st.Grab {
		if err := s.Grab(id); err != nil {
			return nil, err
		}
	}
	if st.Move != nil {
		if len(st.Move) != 2 {
			return nil, fmt.Errorf("move needs [x, y]: %w", ErrInvalidStep)
		}
		if err := s.Move(id, geom.V(st.Move[0], st.Move[1])); err != nil {
			return nil, err
		}
	}

	dt := st.DT
	if dt == 0 {
		dt = DefaultDT
	}
	for range st.Frames {
		s.Step(dt)
	}

	if st.Release {
		if err := s.Release(id); err != nil {
			return nil, err
		}
	}

	if st.Expect == nil {
		return nil, nil
	}
	return st.Expect.check(s)
}

func (e *Expectation) check(s *Session) (*Output, error) {
	text, err := s.Describe(e.Describe)
	if err != nil {
		return nil, err
	}
	out := &Output{Target: e.Describe, Text: text}

	if e.Equals != "" && text != e.Equals {
		return out, fmt.Errorf("%s: expected %q, got %q: %w", e.Describe, e.Equals, text, ErrExpectation)
	}
	for _, want := range e.Contains {
		if !strings.Contains(text, want) {
			return out, fmt.Errorf("%s: expected %q in %q: %w", e.Describe, want, text, ErrExpectation)
		}
	}
	for _, unwanted := range e.Absent {
		if strings.Contains(text, unwanted) {
			return out, fmt.Errorf("%s: expected no %q in %q: %w", e.Describe, unwanted, text, ErrExpectation)
		}
	}
	return out, nil
}
