package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/playarea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var induceCmd = &cobra.Command{
	Use:   "induce",
	Short: "Sweep a charged balloon toward the wall and plot the induced charge",
	Long: `Move a charged yellow balloon from --from to the wall along one row and plot how far
the closest wall charge is pushed at each position, then print the wall description at
the end of the sweep.

Example:
  balloons induce --charge -10 --y 112
  balloons induce --charge -40 --from 300 --step 2`,
	RunE: runInduce,
}

func init() {
	rootCmd.AddCommand(induceCmd)
	induceCmd.Flags().Int("charge", -10, "balloon charge (0 to -57)")
	induceCmd.Flags().Float64("y", 112, "balloon center y")
	induceCmd.Flags().Float64("from", 400, "starting balloon center x")
	induceCmd.Flags().Float64("step", 5, "x step between samples")
	induceCmd.Flags().Int("height", 10, "plot height")
}

func runInduce(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("charge")
	y, _ := cmd.Flags().GetFloat64("y")
	from, _ := cmd.Flags().GetFloat64("from")
	step, _ := cmd.Flags().GetFloat64("step")
	height, _ := cmd.Flags().GetInt("height")
	if step <= 0 {
		return errors.New("--step must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.WallVisible {
		return errors.New("the wall must be in place to induce charge")
	}
	m, d, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	if err := m.SetBalloonCharge(model.Yellow, n); err != nil {
		return err
	}

	var samples []float64
	firstInducing := -1.0
	for x := from; ; x += step {
		if x > playarea.XAtWall {
			x = playarea.XAtWall
		}
		if err := m.MoveBalloon(model.Yellow, geom.V(x, y)); err != nil {
			return err
		}
		st, err := m.BalloonState(model.Yellow)
		if err != nil {
			return err
		}
		samples = append(samples, st.InducedDisplacement)
		if st.InducingCharge && firstInducing < 0 {
			firstInducing = st.Center.X
		}
		if x >= playarea.XAtWall {
			break
		}
	}
	logf("%d samples from x=%.0f", len(samples), from)

	if len(samples) > 1 {
		fmt.Println(asciigraph.Plot(samples,
			asciigraph.Height(height),
			asciigraph.Caption(fmt.Sprintf("closest wall charge displacement, x %.0f to %.0f", from, playarea.XAtWall)),
		))
		fmt.Println()
	}
	if firstInducing >= 0 {
		fmt.Printf("%s x = %.0f\n", headerStyle.Render("Induces charge from"), firstInducing)
	} else {
		fmt.Println(headerStyle.Render("No induced charge along this sweep"))
	}

	text, err := d.Describe("wall", m.Scene())
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
