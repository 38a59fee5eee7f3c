package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/transcript"
)

var errUnknownCommand = errors.New("unknown command")

// runCommand applies a line typed at the ":" prompt:
//
//	describe <target>   move <x> <y>   charge <n>   show <all|diff|none>   select <yellow|green>
func (m *Model) runCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]

	switch fields[0] {
	case "describe", "d":
		target := "summary"
		if len(args) > 0 {
			target = args[0]
		}
		text, err := m.session.Describe(target)
		if err != nil {
			return err
		}
		source := transcript.SourceDescription
		if target == "summary" {
			source = transcript.SourceSummary
		}
		m.feed.announce(source, text)
		return nil

	case "move":
		if len(args) != 2 {
			return fmt.Errorf("move needs x and y")
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parsing x: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing y: %w", err)
		}
		return m.session.Move(m.selected, geom.V(x, y))

	case "charge":
		if len(args) != 1 {
			return fmt.Errorf("charge needs a value")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parsing charge: %w", err)
		}
		return m.session.SetCharge(m.selected, n)

	case "show":
		if len(args) != 1 {
			return fmt.Errorf("show needs a mode")
		}
		mode, err := describe.ParseShowCharges(args[0])
		if err != nil {
			return err
		}
		return m.session.SetShowCharges(mode)

	case "select":
		if len(args) != 1 {
			return fmt.Errorf("select needs a balloon")
		}
		id, err := model.ParseBalloonID(args[0])
		if err != nil {
			return err
		}
		m.selected = id
		return nil
	}
	return fmt.Errorf("%q: %w", fields[0], errUnknownCommand)
}
