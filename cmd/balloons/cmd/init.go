package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/balloons/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize balloons configuration",
	Long: `Initialize balloons configuration in your config directory.

This writes config.yaml with the defaults:
  - show_charges           (all, diff or none)
  - wall_visible, green_balloon_visible
  - strings                (normal or xss, plus an optional overrides file)
  - transcript             (announcement log)
  - playground             (frame rate and key step sizes)`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Initialized balloons configuration in %s\n\n", configDir)
	fmt.Printf("  Created %s\n", config.FileName)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'balloons' to open the playground")
	fmt.Println("  2. Run 'balloons describe all' to read every description")
	fmt.Println("  3. Run 'balloons regions' to see how positions are named")

	return nil
}
