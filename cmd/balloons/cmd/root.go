// Package cmd contains all CLI commands for the balloons tool.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/config"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/transcript"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloons and static electricity, described for screen readers",
	Long: `Balloons simulates rubbing balloons on a sweater and holding them near a wall,
and describes every state the way a screen reader would announce it.

The scene:
  - Sweater (left)       → gives negative charges to balloons rubbed on it
  - Balloons (yellow, green) → carry charge, induce charge in the wall
  - Wall (right, removable)  → its negative charges move away from charged balloons

Running 'balloons' without arguments launches the terminal playground.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/balloons)")
	flags.Bool("verbose", false, "verbose output")
	flags.String("show-charges", "", "charge display mode: all, diff or none")
	flags.Bool("no-wall", false, "start with the wall removed")
	flags.Bool("green-balloon", false, "start with the green balloon in the play area")
	flags.String("strings", "", "description strings: normal or xss")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("show_charges", flags.Lookup("show-charges"))
	viper.BindPFlag("no_wall", flags.Lookup("no-wall"))
	viper.BindPFlag("green_balloon", flags.Lookup("green-balloon"))
	viper.BindPFlag("strings_mode", flags.Lookup("strings"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("BALLOONS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	log.SetFlags(0)
	log.SetPrefix("balloons: ")
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// logf prints progress when --verbose is set.
func logf(format string, args ...any) {
	if viper.GetBool("verbose") {
		log.Printf(format, args...)
	}
}

// loadConfig reads config.yaml from the config directory and applies flag and environment
// overrides on top of it.
func loadConfig() (*config.Config, error) {
	path := filepath.Join(getConfigDir(), config.FileName)
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	logf("config: %s", path)

	if mode := viper.GetString("show_charges"); mode != "" {
		cfg.ShowCharges = mode
	}
	if viper.GetBool("no_wall") {
		cfg.WallVisible = false
	}
	if viper.GetBool("green_balloon") {
		cfg.GreenBalloonVisible = true
	}
	if mode := viper.GetString("strings_mode"); mode != "" {
		cfg.Strings.Mode = mode
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newSimulation builds the model and describer a configuration asks for.
func newSimulation(cfg *config.Config) (*model.Model, *describe.Describer, error) {
	mode, err := a11y.ParseMode(cfg.Strings.Mode)
	if err != nil {
		return nil, nil, err
	}
	provider, err := a11y.New(mode, cfg.Strings.File)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Strings.File != "" {
		logf("strings: %s", cfg.Strings.File)
	}

	show, err := describe.ParseShowCharges(cfg.ShowCharges)
	if err != nil {
		return nil, nil, err
	}

	s := provider.Strings()
	m := model.New(model.WithLabels(s.YellowBalloonLabel, s.GreenBalloonLabel))
	if err := m.SetShowCharges(show); err != nil {
		return nil, nil, err
	}
	m.SetWallVisible(cfg.WallVisible)
	if err := m.SetBalloonVisible(model.Green, cfg.GreenBalloonVisible); err != nil {
		return nil, nil, err
	}
	m.Sync()

	return m, describe.New(provider), nil
}

// openTranscript opens the transcript database when the configuration enables it. A nil store
// and nil error mean transcripts are off.
func openTranscript(cfg *config.Config) (*transcript.Store, error) {
	if !cfg.Transcript.Enabled {
		return nil, nil
	}
	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	path := cfg.TranscriptPath(dir)
	logf("transcript: %s", path)
	return transcript.Open(path)
}
