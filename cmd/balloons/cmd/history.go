package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/balloons/internal/transcript"
	"github.com/spf13/cobra"
)

var sourceStyles = map[string]lipgloss.Style{
	transcript.SourceAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d")),
	transcript.SourceDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee")),
	transcript.SourceSummary:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a8dadc")).Italic(true),
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently announced descriptions",
	Long: `Show the most recent alerts and descriptions saved to the transcript, oldest first.

Example:
  balloons history --limit 50
  balloons history --clear`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "number of entries")
	historyCmd.Flags().Bool("clear", false, "delete the transcript")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	clearAll, _ := cmd.Flags().GetBool("clear")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openTranscript(cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("transcript is disabled in config")
	}
	defer store.Close()

	if clearAll {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Transcript cleared.")
		return nil
	}

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Transcript is empty.")
		return nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		style, ok := sourceStyles[e.Source]
		if !ok {
			style = lipgloss.NewStyle()
		}
		fmt.Printf("%s %-11s %s\n", e.At.Format("2006-01-02 15:04:05"), e.Source, style.Render(e.Text))
	}
	return nil
}
