package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/relative"
	"github.com/f3rmion/balloons/internal/sweater"
	"github.com/f3rmion/balloons/internal/transcript"
)

// meterMax is the displacement drawn as a full bar.
const meterMax = 30

const statusWidth = 44

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Balloons and Static Electricity") + "\n\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		PlayAreaStyle.Render(m.renderPlayArea()),
		" ",
		BoxStyle.Width(statusWidth).Render(m.renderStatus()),
	)
	b.WriteString(top + "\n")
	b.WriteString(TranscriptStyle.Width(max(m.width-2, 20)).Render(m.transcript.View()) + "\n")

	switch {
	case m.commanding:
		b.WriteString(m.input.View())
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
	case m.copied:
		b.WriteString(CopiedStyle.Render("Copied to clipboard"))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderPlayArea() string {
	wallVisible := m.session.Model.Wall.Visible()
	grid := *m.grids[wallVisible]
	grid.Markers = nil

	// green first so the yellow balloon wins a shared cell
	for _, id := range []model.BalloonID{model.Green, model.Yellow} {
		st := m.balloonState(id)
		if !st.Visible {
			continue
		}
		grid.Mark(st.Center, balloonSymbol(id, st.Dragged))
	}

	lines := grid.Lines()
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderRuns(line)
	}
	return strings.Join(rendered, "\n")
}

func balloonSymbol(id model.BalloonID, dragged bool) rune {
	switch {
	case id == model.Yellow && dragged:
		return 'y'
	case id == model.Yellow:
		return 'Y'
	case dragged:
		return 'g'
	}
	return 'G'
}

func cellStyle(sym rune) lipgloss.Style {
	switch sym {
	case 'Y', 'y':
		return YellowBalloonStyle
	case 'G', 'g':
		return GreenBalloonStyle
	case 'a', 's', 'S', 'A':
		return SweaterCellStyle
	case 'W', '|':
		return WallCellStyle
	case 'n', 'C', 'N', 'E', 'v', 'V', 'x':
		return LandmarkCellStyle
	}
	return EmptyCellStyle
}

// renderRuns styles a grid line, one style per run of cells sharing a style.
func renderRuns(line string) string {
	var b strings.Builder
	runes := []rune(line)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && sameStyleClass(runes[i], runes[start]) {
			continue
		}
		b.WriteString(cellStyle(runes[start]).Render(displayRun(runes[start:i])))
		start = i
	}
	return b.String()
}

func sameStyleClass(a, b rune) bool {
	return isBalloon(a) == isBalloon(b) && !isBalloon(a) && cellClass(a) == cellClass(b)
}

func isBalloon(r rune) bool {
	switch r {
	case 'Y', 'y', 'G', 'g':
		return true
	}
	return false
}

func cellClass(r rune) int {
	switch r {
	case 'a', 's', 'S', 'A':
		return 1
	case 'W', '|':
		return 2
	case 'n', 'C', 'N', 'E', 'v', 'V', 'x':
		return 3
	}
	return 0
}

// displayRun replaces region symbols with their on-screen texture.
func displayRun(run []rune) string {
	out := make([]rune, len(run))
	for i, r := range run {
		switch cellClass(r) {
		case 1:
			out[i] = '▒'
		case 2:
			out[i] = '█'
		case 3:
			out[i] = '┊'
		default:
			if isBalloon(r) {
				out[i] = r
			} else {
				out[i] = '·'
			}
		}
	}
	return string(out)
}

func (m Model) renderRow(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func (m Model) renderStatus() string {
	mdl := m.session.Model
	d := m.session.Describer
	wallVisible := mdl.Wall.Visible()

	var rows []string
	for _, id := range []model.BalloonID{model.Yellow, model.Green} {
		st := m.balloonState(id)
		if !st.Visible {
			continue
		}
		label := st.Label
		if id == m.selected {
			label = SelectedStyle.Render("▸ " + label)
		}
		rows = append(rows, label)
		rows = append(rows, m.renderRow("Position", fmt.Sprintf("%.0f, %.0f", st.Center.X, st.Center.Y)))
		rows = append(rows, m.renderRow("Location", truncate(d.BalloonLocation(st, wallVisible), statusWidth-14)))
		rows = append(rows, m.renderRow("Charge", fmt.Sprintf("%d", st.Charge)))
		induced := m.meters[id].pos
		rows = append(rows, m.renderRow("Induced",
			MeterStyle.Render(bar(induced, meterMax, 12))+" "+formatDisplacement(induced)+" "+
				relative.ForDisplacement(induced).String()))
		rows = append(rows, "")
	}

	sw := mdl.SweaterState()
	rows = append(rows, m.renderRow("Sweater", fmt.Sprintf("+%d of %d", sw.Charge, sweater.MaxCharge)))
	wall := "removed"
	if wallVisible {
		wall = "in place"
	}
	rows = append(rows, m.renderRow("Wall", wall))
	rows = append(rows, m.renderRow("Charges", showChargesLabel(mdl.ShowCharges())))

	if plot := m.wallHist.plot(statusWidth-12, 4, "wall displacement"); plot != "" {
		rows = append(rows, "", GraphStyle.Render(plot))
	}
	return strings.Join(rows, "\n")
}

func showChargesLabel(mode describe.ShowCharges) string {
	switch mode {
	case describe.ShowDiff:
		return "differences"
	case describe.ShowNone:
		return "hidden"
	}
	return "all"
}

// refreshTranscript rewraps the feed into the transcript pane when it changed.
func (m *Model) refreshTranscript() {
	if !m.feed.changed {
		return
	}
	m.feed.changed = false

	width := max(m.transcript.Width-2, 20)
	lines := make([]string, 0, len(m.feed.entries))
	for _, e := range m.feed.entries {
		lines = append(lines, entryStyle(e.Source).Render(wordWrap(e.Text, width)))
	}
	m.transcript.SetContent(strings.Join(lines, "\n"))
	m.transcript.GotoBottom()
}

func entryStyle(source string) lipgloss.Style {
	switch source {
	case transcript.SourceAlert:
		return AlertStyle
	case transcript.SourceSummary:
		return SummaryStyle
	}
	return DescriptionStyle
}
