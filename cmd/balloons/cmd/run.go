package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/balloons/internal/scenario"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenario scripts and check their descriptions",
	Long: `Replay scripted interactions and print the description each expectation reads.
A scenario fails at the first description that does not match.

Example scenario:
  name: charged balloon at the wall
  steps:
    - charge: -10
    - move: [621, 112]
    - expect:
        describe: wall
        contains: [a little bit]`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("announce", false, "print alerts and descriptions as they are announced")
	runCmd.Flags().Bool("record", false, "save announcements to the transcript")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	announce, _ := cmd.Flags().GetBool("announce")
	record, _ := cmd.Flags().GetBool("record")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var announcer scenario.Announcer
	if record {
		store, err := openTranscript(cfg)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
			announcer = func(source, text string) {
				if _, err := store.Append(source, text); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Could not record announcement: %v\n", err)
				}
			}
		}
	}
	if announce {
		next := announcer
		announcer = func(source, text string) {
			fmt.Printf("  [%s] %s\n", source, text)
			if next != nil {
				next(source, text)
			}
		}
	}

	failed := 0
	for _, path := range args {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		m, d, err := newSimulation(cfg)
		if err != nil {
			return err
		}

		name := sc.Name
		if name == "" {
			name = path
		}
		fmt.Println(headerStyle.Render(name))

		outputs, err := sc.Run(scenario.NewSession(m, d, announcer))
		for _, out := range outputs {
			fmt.Printf("  step %d %s: %s\n", out.Step, out.Target, out.Text)
		}
		if err != nil {
			if !errors.Is(err, scenario.ErrExpectation) {
				return fmt.Errorf("running %s: %w", path, err)
			}
			failed++
			fmt.Printf("  FAIL %v\n\n", err)
			continue
		}
		fmt.Printf("  ok (%d steps)\n\n", len(sc.Steps))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
	}
	return nil
}
