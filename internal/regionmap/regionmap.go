// Package regionmap samples the play-area classifier on a grid so the described regions can be
// inspected, as text in a terminal or as a PNG.
package regionmap

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/playarea"
)

// Outside is drawn for cells the classifier rejects.
const Outside = '.'

var columnSymbols = map[playarea.Column]rune{
	playarea.LeftArm:            'a',
	playarea.LeftSideOfSweater:  's',
	playarea.RightSideOfSweater: 'S',
	playarea.RightArm:           'A',
	playarea.LeftPlayArea:       'l',
	playarea.CenterPlayArea:     'c',
	playarea.RightPlayArea:      'r',
	playarea.RightEdge:          'e',
	playarea.Wall:               'W',
}

var landmarkSymbols = map[playarea.Landmark]rune{
	playarea.AtNearSweater:          'n',
	playarea.AtCenterPlayArea:       'C',
	playarea.AtNearWall:             'N',
	playarea.AtNearRightEdge:        'E',
	playarea.AtVeryCloseToSweater:   'v',
	playarea.AtVeryCloseToWall:      'V',
	playarea.AtVeryCloseToRightEdge: 'x',
	playarea.AtWall:                 '|',
}

// Symbol returns the grid symbol for a region, ignoring its row.
func Symbol(r playarea.Region) rune {
	if r.IsLandmark() {
		if s, ok := landmarkSymbols[r.Landmark]; ok {
			return s
		}
	} else if s, ok := columnSymbols[r.Column]; ok {
		return s
	}
	return Outside
}

// Cell is one sample of the map.
type Cell struct {
	Center geom.Vector2
	Region playarea.Region
	// Inside is false when the center is outside every row or column.
	Inside bool
}

// Marker is a labelled position drawn over the map, such as a balloon.
type Marker struct {
	Position geom.Vector2
	Symbol   rune
}

// Map is the classifier sampled at the center of each cell of a cols × rows grid spanning the
// play area.
type Map struct {
	Cols, Rows  int
	WallVisible bool
	Cells       [][]Cell
	Markers     []Marker
}

// Build samples the classifier. cols and rows must be positive.
func Build(cols, rows int, wallVisible bool) (*Map, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid %dx%d: size must be positive", cols, rows)
	}

	cellW := float64(playarea.Width) / float64(cols)
	cellH := float64(playarea.Height) / float64(rows)

	m := &Map{Cols: cols, Rows: rows, WallVisible: wallVisible, Cells: make([][]Cell, rows)}
	for y := range rows {
		m.Cells[y] = make([]Cell, cols)
		for x := range cols {
			center := geom.V((float64(x)+0.5)*cellW, (float64(y)+0.5)*cellH)
			region, err := playarea.Classify(center, wallVisible)
			m.Cells[y][x] = Cell{Center: center, Region: region, Inside: err == nil}
		}
	}
	return m, nil
}

// Mark adds a marker at a play-area position.
func (m *Map) Mark(p geom.Vector2, symbol rune) {
	m.Markers = append(m.Markers, Marker{Position: p, Symbol: symbol})
}

// CellAt returns the grid cell containing p. ok is false for positions off the grid.
func (m *Map) CellAt(p geom.Vector2) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 || !p.IsFinite() {
		return 0, 0, false
	}
	col = int(p.X * float64(m.Cols) / playarea.Width)
	row = int(p.Y * float64(m.Rows) / playarea.Height)
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return 0, 0, false
	}
	return col, row, true
}

func (m *Map) symbolAt(col, row int) rune {
	c := m.Cells[row][col]
	if !c.Inside {
		return Outside
	}
	return Symbol(c.Region)
}

// Lines renders the grid, one string per row, with markers drawn over the regions.
func (m *Map) Lines() []string {
	grid := make([][]rune, m.Rows)
	for y := range m.Rows {
		grid[y] = make([]rune, m.Cols)
		for x := range m.Cols {
			grid[y][x] = m.symbolAt(x, y)
		}
	}
	for _, mk := range m.Markers {
		if x, y, ok := m.CellAt(mk.Position); ok {
			grid[y][x] = mk.Symbol
		}
	}

	lines := make([]string, m.Rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}

// LegendEntry names a symbol used in the map.
type LegendEntry struct {
	Symbol rune
	Name   string
}

// Legend lists the symbols present in the map, landmarks after columns.
func (m *Map) Legend() []LegendEntry {
	seen := make(map[rune]string)
	for _, row := range m.Cells {
		for _, c := range row {
			if !c.Inside {
				continue
			}
			name := c.Region.Column.String()
			if c.Region.IsLandmark() {
				name = c.Region.Landmark.String()
			}
			seen[Symbol(c.Region)] = name
		}
	}

	entries := make([]LegendEntry, 0, len(seen))
	for s, name := range seen {
		entries = append(entries, LegendEntry{Symbol: s, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		li := strings.HasPrefix(entries[i].Name, "at_")
		lj := strings.HasPrefix(entries[j].Name, "at_")
		if li != lj {
			return lj
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// RowBreaks returns the grid rows where a new play-area row starts.
func (m *Map) RowBreaks() []int {
	var breaks []int
	for y := 1; y < m.Rows; y++ {
		if m.Cells[y][0].Region.Row != m.Cells[y-1][0].Region.Row {
			breaks = append(breaks, y)
		}
	}
	return breaks
}

// WriteText writes the grid followed by its legend.
func (m *Map) WriteText(w io.Writer) error {
	breaks := make(map[int]bool)
	for _, y := range m.RowBreaks() {
		breaks[y] = true
	}

	var b strings.Builder
	for y, line := range m.Lines() {
		if breaks[y] {
			b.WriteString(strings.Repeat("-", m.Cols))
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, e := range m.Legend() {
		fmt.Fprintf(&b, "%c  %s\n", e.Symbol, e.Name)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
