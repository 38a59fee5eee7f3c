package cmd

import (
	"fmt"
	"strconv"

	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <x> <y>",
	Short: "Show the region and location phrase of a balloon center",
	Long: `Classify a balloon center into its play-area region and print the phrase used to
describe it.

Example:
  balloons classify 507 211
  balloons classify 690 300 --no-wall`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing y: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, d, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	p := geom.V(x, y)
	region, err := playarea.Classify(p, cfg.WallVisible)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", headerStyle.Render("Region:  "), region)
	fmt.Printf("%s %s\n", headerStyle.Render("Location:"), d.Location(p, cfg.WallVisible))
	if !playarea.DragBounds(cfg.WallVisible).ContainsPoint(p) {
		fmt.Printf("%s %v\n", headerStyle.Render("Balloon: "), playarea.DragBounds(cfg.WallVisible).Clamp(p))
	}
	return nil
}
