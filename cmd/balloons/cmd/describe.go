package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/balloons/internal/clipboard"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))

var describeCmd = &cobra.Command{
	Use:   "describe [target...]",
	Short: "Print descriptions of the scene",
	Long: `Print the descriptions a screen reader would hear for the scene.

Targets: sweater, wall, yellow, green, objects, location, charges, summary.
'balloon' is the yellow balloon, 'scene' is the summary and 'all' prints every target.
Without a target the summary is printed.

Example:
  balloons describe wall --yellow 621,112 --yellow-charge -10
  balloons describe all --green 380,300 --show-charges diff`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().String("yellow", "", "yellow balloon center as x,y")
	describeCmd.Flags().Int("yellow-charge", 0, "yellow balloon charge (0 to -57)")
	describeCmd.Flags().String("green", "", "green balloon center as x,y (adds the green balloon)")
	describeCmd.Flags().Int("green-charge", 0, "green balloon charge (0 to -57)")
	describeCmd.Flags().Bool("copy", false, "copy the descriptions to the clipboard")
}

func parsePoint(s string) (geom.Vector2, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Vector2{}, fmt.Errorf("point %q: want x,y", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return geom.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return geom.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.V(px, py), nil
}

// applyBalloonFlags places and charges a balloon from --<name> and --<name>-charge.
func applyBalloonFlags(cmd *cobra.Command, m *model.Model, id model.BalloonID) error {
	name := id.String()
	if s, _ := cmd.Flags().GetString(name); s != "" {
		p, err := parsePoint(s)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		if err := m.SetBalloonVisible(id, true); err != nil {
			return err
		}
		if err := m.MoveBalloon(id, p); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed(name + "-charge") {
		n, _ := cmd.Flags().GetInt(name + "-charge")
		if err := m.SetBalloonCharge(id, n); err != nil {
			return err
		}
	}
	return nil
}

func resolveTargets(args []string) []string {
	if len(args) == 0 {
		return []string{"summary"}
	}
	var targets []string
	for _, a := range args {
		switch a {
		case "all":
			targets = append(targets, describe.Targets...)
		case "balloon":
			targets = append(targets, "yellow")
		case "scene":
			targets = append(targets, "summary")
		default:
			targets = append(targets, a)
		}
	}
	return targets
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, d, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	for _, id := range []model.BalloonID{model.Yellow, model.Green} {
		if err := applyBalloonFlags(cmd, m, id); err != nil {
			return err
		}
	}

	targets := resolveTargets(args)
	scene := m.Scene()
	var texts []string
	for _, target := range targets {
		text, err := d.Describe(target, scene)
		if err != nil {
			return err
		}
		texts = append(texts, text)
		if len(targets) > 1 {
			fmt.Println(headerStyle.Render(target))
			fmt.Printf("  %s\n\n", text)
		} else {
			fmt.Println(text)
		}
	}

	if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
		if err := clipboard.WriteLines(texts); err != nil {
			return err
		}
		logf("copied %d descriptions", len(texts))
	}
	return nil
}
