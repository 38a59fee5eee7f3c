package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right                 key.Binding
	FineUp, FineDown, FineLeft, FineRight key.Binding

	Grab        key.Binding
	NextBalloon key.Binding
	Green       key.Binding
	Wall        key.Binding
	Charges     key.Binding
	Reset       key.Binding
	ResetAll    key.Binding

	DescribeBalloon key.Binding
	DescribeSweater key.Binding
	DescribeWall    key.Binding
	Summary         key.Binding
	MoreCharges     key.Binding

	Copy    key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		FineUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "nudge up")),
		FineDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "nudge down")),
		FineLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "nudge left")),
		FineRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "nudge right")),

		Grab:        key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "grab/release")),
		NextBalloon: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch balloon")),
		Green:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "add/remove green")),
		Wall:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add/remove wall")),
		Charges:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle charges")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset balloons")),
		ResetAll:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all")),

		DescribeBalloon: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "describe balloon")),
		DescribeSweater: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "describe sweater")),
		DescribeWall:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "describe wall")),
		Summary:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scene summary")),
		MoreCharges:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "where are charges")),

		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy last")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.NextBalloon, k.Wall, k.Charges, k.Summary, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.FineUp, k.FineDown, k.FineLeft, k.FineRight},
		{k.Grab, k.NextBalloon, k.Green, k.Wall, k.Charges, k.Reset, k.ResetAll},
		{k.DescribeBalloon, k.DescribeSweater, k.DescribeWall, k.Summary, k.MoreCharges},
		{k.Copy, k.Command, k.Help, k.Quit},
	}
}
