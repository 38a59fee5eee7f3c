package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/balloons/internal/clipboard"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/model"
	"github.com/f3rmion/balloons/internal/regionmap"
	"github.com/f3rmion/balloons/internal/scenario"
	"github.com/f3rmion/balloons/internal/transcript"
)

// Play area grid size in cells.
const (
	gridCols = 64
	gridRows = 18
)

const historySize = 90

// Options configures the playground.
type Options struct {
	FPS      int
	Step     float64 // balloon move per key press
	FineStep float64 // move with shift held

	// Record receives every announcement, typically to keep a transcript.
	Record func(source, text string)
	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy func(text string) error
}

// DefaultOptions matches the default configuration.
func DefaultOptions() Options {
	return Options{FPS: 30, Step: 20, FineStep: 5}
}

// feed collects announcements for the transcript pane.
type feed struct {
	entries []transcript.Entry
	record  func(source, text string)
	changed bool
}

func (f *feed) announce(source, text string) {
	if text == "" {
		return
	}
	f.entries = append(f.entries, transcript.Entry{
		ID:     int64(len(f.entries) + 1),
		At:     time.Now(),
		Source: source,
		Text:   text,
	})
	f.changed = true
	if f.record != nil {
		f.record(source, text)
	}
}

func (f *feed) last() (transcript.Entry, bool) {
	if len(f.entries) == 0 {
		return transcript.Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}

type tickMsg time.Time

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the Bubble Tea model for the playground.
type Model struct {
	session *scenario.Session
	feed    *feed
	opts    Options

	keys       keyMap
	help       help.Model
	input      textinput.Model
	commanding bool
	transcript viewport.Model

	selected model.BalloonID
	meters   [2]*meter
	wallHist *history
	grids    map[bool]*regionmap.Map

	copied bool
	err    error

	width  int
	height int
	ready  bool
}

// New creates the playground around a simulation.
func New(m *model.Model, d *describe.Describer, opts Options) (Model, error) {
	def := DefaultOptions()
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}
	if opts.Step <= 0 {
		opts.Step = def.Step
	}
	if opts.FineStep <= 0 {
		opts.FineStep = def.FineStep
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.Write
	}

	grids := make(map[bool]*regionmap.Map, 2)
	for _, wallVisible := range []bool{true, false} {
		g, err := regionmap.Build(gridCols, gridRows, wallVisible)
		if err != nil {
			return Model{}, fmt.Errorf("building play area grid: %w", err)
		}
		grids[wallVisible] = g
	}

	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "describe wall, move 300 200, charge -10, show diff"
	ti.CharLimit = 60
	ti.Width = 50
	ti.PromptStyle = SubtitleStyle

	f := &feed{record: opts.Record}
	return Model{
		session:    scenario.NewSession(m, d, f.announce),
		feed:       f,
		opts:       opts,
		keys:       defaultKeyMap(),
		help:       help.New(),
		input:      ti,
		transcript: viewport.New(80, 6),
		selected:   model.Yellow,
		meters:     [2]*meter{newMeter(opts.FPS), newMeter(opts.FPS)},
		wallHist:   newHistory(historySize),
		grids:      grids,
	}, nil
}

// Run starts the playground and blocks until the user quits.
func Run(m *model.Model, d *describe.Describer, opts Options) error {
	app, err := New(m, d, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame clock and announces the scene.
func (m Model) Init() tea.Cmd {
	if text, err := m.session.Describe("summary"); err == nil {
		m.feed.announce(transcript.SourceSummary, text)
	}
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.transcript.Width = msg.Width - 4
		m.transcript.Height = max(m.height-gridRows-10, 3)
		m.refreshTranscript()
		return m, nil

	case tickMsg:
		m.frame()
		return m, m.tick()

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		if m.commanding {
			return m.updateCommand(msg)
		}
		if m.help.ShowAll {
			m.help.ShowAll = false
			return m, nil
		}
		m.err = nil
		cmd := m.handleKey(msg)
		m.refreshTranscript()
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) frame() {
	m.session.Step(1 / float64(m.opts.FPS))

	for _, id := range []model.BalloonID{model.Yellow, model.Green} {
		st := m.balloonState(id)
		target := 0.0
		if st.Visible && st.InducingCharge {
			target = st.InducedDisplacement
		}
		m.meters[id].step(target)
	}
	m.wallHist.push(m.session.Model.WallState().MaxDisplacement)
	m.refreshTranscript()
}

func (m *Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		m.input.Blur()
		m.commanding = false
		m.err = m.runCommand(line)
		m.refreshTranscript()
		return *m, nil
	case tea.KeyEsc:
		m.input.Reset()
		m.input.Blur()
		m.commanding = false
		return *m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return *m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = true
	case key.Matches(msg, k.Command):
		m.commanding = true
		return m.input.Focus()

	case key.Matches(msg, k.Up):
		m.move(0, -m.opts.Step)
	case key.Matches(msg, k.Down):
		m.move(0, m.opts.Step)
	case key.Matches(msg, k.Left):
		m.move(-m.opts.Step, 0)
	case key.Matches(msg, k.Right):
		m.move(m.opts.Step, 0)
	case key.Matches(msg, k.FineUp):
		m.move(0, -m.opts.FineStep)
	case key.Matches(msg, k.FineDown):
		m.move(0, m.opts.FineStep)
	case key.Matches(msg, k.FineLeft):
		m.move(-m.opts.FineStep, 0)
	case key.Matches(msg, k.FineRight):
		m.move(m.opts.FineStep, 0)

	case key.Matches(msg, k.Grab):
		if m.balloonState(m.selected).Dragged {
			m.err = m.session.Release(m.selected)
		} else {
			m.err = m.session.Grab(m.selected)
		}
	case key.Matches(msg, k.NextBalloon):
		m.releaseSelected()
		if m.selected == model.Yellow && m.balloonState(model.Green).Visible {
			m.selected = model.Green
		} else {
			m.selected = model.Yellow
		}
	case key.Matches(msg, k.Green):
		visible := m.balloonState(model.Green).Visible
		m.err = m.session.SetBalloonVisible(model.Green, !visible)
		if visible && m.selected == model.Green {
			m.selected = model.Yellow
		}
	case key.Matches(msg, k.Wall):
		m.session.SetWallVisible(!m.session.Model.Wall.Visible())
	case key.Matches(msg, k.Charges):
		m.err = m.session.SetShowCharges(nextShowCharges(m.session.Model.ShowCharges()))
	case key.Matches(msg, k.Reset):
		m.session.ResetBalloons()
		m.resetView()
	case key.Matches(msg, k.ResetAll):
		m.session.Reset()
		m.resetView()
		m.wallHist.clear()

	case key.Matches(msg, k.DescribeBalloon):
		m.describe(m.selected.String(), transcript.SourceDescription)
	case key.Matches(msg, k.DescribeSweater):
		m.describe("sweater", transcript.SourceDescription)
	case key.Matches(msg, k.DescribeWall):
		m.describe("wall", transcript.SourceDescription)
	case key.Matches(msg, k.Summary):
		m.describe("summary", transcript.SourceSummary)
	case key.Matches(msg, k.MoreCharges):
		text, err := m.session.MoreCharges(m.selected)
		if err != nil {
			m.err = err
		} else if text == "" {
			m.describe("sweater", transcript.SourceDescription)
		} else {
			m.feed.announce(transcript.SourceDescription, text)
		}

	case key.Matches(msg, k.Copy):
		last, ok := m.feed.last()
		if !ok {
			return nil
		}
		if err := m.opts.Copy(last.Text); err != nil {
			m.err = err
			return nil
		}
		m.copied = true
		return clearCopiedAfter(2 * time.Second)
	}
	return nil
}

// move drags the selected balloon, grabbing it first if needed.
func (m *Model) move(dx, dy float64) {
	st := m.balloonState(m.selected)
	if !st.Visible {
		return
	}
	if !st.Dragged {
		if m.err = m.session.Grab(m.selected); m.err != nil {
			return
		}
	}
	m.err = m.session.Move(m.selected, st.Center.Plus(geom.V(dx, dy)))
}

func (m *Model) releaseSelected() {
	if m.balloonState(m.selected).Dragged {
		m.err = m.session.Release(m.selected)
	}
}

func (m *Model) describe(target, source string) {
	text, err := m.session.Describe(target)
	if err != nil {
		m.err = err
		return
	}
	m.feed.announce(source, text)
}

func (m *Model) resetView() {
	for _, mt := range m.meters {
		mt.reset()
	}
	if !m.balloonState(m.selected).Visible {
		m.selected = model.Yellow
	}
}

func (m *Model) balloonState(id model.BalloonID) describe.BalloonState {
	st, err := m.session.Model.BalloonState(id)
	if err != nil {
		panic(err)
	}
	return st
}

func nextShowCharges(mode describe.ShowCharges) describe.ShowCharges {
	switch mode {
	case describe.ShowAll:
		return describe.ShowDiff
	case describe.ShowDiff:
		return describe.ShowNone
	}
	return describe.ShowAll
}
