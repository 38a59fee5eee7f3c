package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/balloons/internal/regionmap"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Draw the map of described regions",
	Long: `Draw the play-area region map: every cell is labelled with the column or landmark
its center falls in, and rows are separated by lines.

Example:
  balloons regions --cols 96 --rows 21
  balloons regions --png regions.png --no-wall`,
	RunE: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
	regionsCmd.Flags().Int("cols", 96, "grid columns")
	regionsCmd.Flags().Int("rows", 21, "grid rows")
	regionsCmd.Flags().String("png", "", "write a PNG to this path instead of text")
	regionsCmd.Flags().Float64("cell", 16, "PNG cell size in pixels")
}

func runRegions(cmd *cobra.Command, args []string) error {
	cols, _ := cmd.Flags().GetInt("cols")
	rows, _ := cmd.Flags().GetInt("rows")
	out, _ := cmd.Flags().GetString("png")
	cell, _ := cmd.Flags().GetFloat64("cell")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := regionmap.Build(cols, rows, cfg.WallVisible)
	if err != nil {
		return err
	}

	if out == "" {
		return m.WriteText(os.Stdout)
	}

	opts := regionmap.DefaultPNGOptions()
	opts.CellSize = cell
	if err := m.SavePNG(out, opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
