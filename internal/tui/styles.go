// Package tui provides the terminal playground: the balloons, sweater and wall on a character
// grid, driven from the keyboard and narrated through the description layer.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, sweater
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - labels, green balloon
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - yellow balloon, selection
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, empty regions
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - success, green balloon
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
	ColorWall      = lipgloss.Color("#e0b88a") // Tan - wall
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Play area styles
var (
	PlayAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	SweaterCellStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	WallCellStyle = lipgloss.NewStyle().
			Foreground(ColorWall).
			Background(ColorBgAlt)

	LandmarkCellStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	EmptyCellStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	YellowBalloonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBg).
				Background(ColorAccent)

	GreenBalloonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBg).
				Background(ColorSuccess)
)

// Status panel styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	MeterStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	GraphStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TranscriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// Transcript line styles
var (
	AlertStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Italic(true)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)
