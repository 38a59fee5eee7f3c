package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/balloons/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the terminal playground",
	Long: `Launch the terminal playground.

Move a balloon with the arrow keys (shift for small steps), rub it on the sweater to charge
it and bring it to the wall. Every change is announced in the transcript pane and, when
enabled, saved to the transcript database.

Press ? inside the playground for all keys.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, d, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	opts := tui.Options{
		FPS:      cfg.Playground.FPS,
		Step:     cfg.Playground.Step,
		FineStep: cfg.Playground.FineStep,
	}

	store, err := openTranscript(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open transcript: %v\n", err)
	}
	if store != nil {
		defer store.Close()
		warned := false
		opts.Record = func(source, text string) {
			if _, err := store.Append(source, text); err != nil && !warned {
				warned = true
				logf("recording transcript: %v", err)
			}
		}
	}

	return tui.Run(m, d, opts)
}
