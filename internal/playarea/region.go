package playarea

import (
	"errors"
	"fmt"

	"github.com/f3rmion/balloons/internal/geom"
)

// ErrOutsidePlayArea is returned when a position falls in no row or no column.
var ErrOutsidePlayArea = errors.New("position outside play area")

// Column is a vertical strip of the play area.
type Column int

const (
	NoColumn Column = iota
	LeftArm
	LeftSideOfSweater
	RightSideOfSweater
	RightArm
	LeftPlayArea
	CenterPlayArea
	RightPlayArea
	RightEdge
	Wall
)

var columnNames = map[Column]string{
	NoColumn:           "none",
	LeftArm:            "left_arm",
	LeftSideOfSweater:  "left_side_of_sweater",
	RightSideOfSweater: "right_side_of_sweater",
	RightArm:           "right_arm",
	LeftPlayArea:       "left_play_area",
	CenterPlayArea:     "center_play_area",
	RightPlayArea:      "right_play_area",
	RightEdge:          "right_edge",
	Wall:               "wall",
}

func (c Column) String() string {
	if s, ok := columnNames[c]; ok {
		return s
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// Landmark is a narrow band (or exact location) around a critical x position.
type Landmark int

const (
	NoLandmark Landmark = iota
	AtNearSweater
	AtCenterPlayArea
	AtNearWall
	AtNearRightEdge
	AtVeryCloseToSweater
	AtVeryCloseToWall
	AtVeryCloseToRightEdge
	AtWall
)

var landmarkNames = map[Landmark]string{
	NoLandmark:             "none",
	AtNearSweater:          "at_near_sweater",
	AtCenterPlayArea:       "at_center_play_area",
	AtNearWall:             "at_near_wall",
	AtNearRightEdge:        "at_near_right_edge",
	AtVeryCloseToSweater:   "at_very_close_to_sweater",
	AtVeryCloseToWall:      "at_very_close_to_wall",
	AtVeryCloseToRightEdge: "at_very_close_to_right_edge",
	AtWall:                 "at_wall",
}

func (l Landmark) String() string {
	if s, ok := landmarkNames[l]; ok {
		return s
	}
	return fmt.Sprintf("landmark(%d)", int(l))
}

// Row is a horizontal strip of the play area.
type Row int

const (
	NoRow Row = iota
	UpperPlayArea
	CenterPlayAreaRow
	LowerPlayArea
)

var rowNames = map[Row]string{
	NoRow:             "none",
	UpperPlayArea:     "upper",
	CenterPlayAreaRow: "center",
	LowerPlayArea:     "lower",
}

func (r Row) String() string {
	if s, ok := rowNames[r]; ok {
		return s
	}
	return fmt.Sprintf("row(%d)", int(r))
}

// Region is the classified zone of a position. Exactly one of Column and Landmark is set.
type Region struct {
	Column   Column
	Landmark Landmark
	Row      Row
}

// IsLandmark reports whether the region resolved to a landmark rather than a column.
func (r Region) IsLandmark() bool {
	return r.Landmark != NoLandmark
}

func (r Region) String() string {
	if r.IsLandmark() {
		return r.Landmark.String() + "/" + r.Row.String()
	}
	return r.Column.String() + "/" + r.Row.String()
}

// InWallBucket reports whether the region describes the wall or the space right next to it.
func (r Region) InWallBucket() bool {
	switch r.Landmark {
	case AtWall, AtNearWall, AtVeryCloseToWall:
		return true
	}
	return r.Column == Wall
}

// Classify maps a position to its region. An exact critical location wins over the landmark
// bands, which win over the columns. Ranges are closed; on a shared edge the band listed later
// wins.
func Classify(p geom.Vector2, wallVisible bool) (Region, error) {
	if !p.IsFinite() {
		return Region{}, fmt.Errorf("classifying %v: %w", p, ErrOutsidePlayArea)
	}

	var region Region
	region.Row = RowOf(p.Y)
	if region.Row == NoRow {
		return Region{}, fmt.Errorf("classifying %v: %w", p, ErrOutsidePlayArea)
	}

	region.Landmark = LandmarkOf(p.X)
	if region.Landmark == NoLandmark {
		region.Column = ColumnOf(p.X)
		if region.Column == NoColumn {
			return Region{}, fmt.Errorf("classifying %v: %w", p, ErrOutsidePlayArea)
		}
	}

	if wallVisible {
		if region.Column == RightEdge {
			region.Column = Wall
		}
	} else if region.InWallBucket() {
		region.Column = RightPlayArea
		region.Landmark = NoLandmark
	}
	return region, nil
}

// MustClassify is like Classify but panics on positions outside the play area.
func MustClassify(p geom.Vector2, wallVisible bool) Region {
	r, err := Classify(p, wallVisible)
	if err != nil {
		panic(err)
	}
	return r
}

// LandmarkOf returns the landmark at x, checking exact locations first. NoLandmark is returned
// when x is in no landmark band.
func LandmarkOf(x float64) Landmark {
	for _, loc := range locations {
		if x == loc.x {
			return loc.landmark
		}
	}
	found := NoLandmark
	for _, b := range landmarkBands {
		if b.r.Contains(x) {
			found = b.landmark
		}
	}
	return found
}

// ColumnOf returns the geometric column at x, ignoring landmarks and the wall.
func ColumnOf(x float64) Column {
	found := NoColumn
	for _, b := range columnBands {
		if b.r.Contains(x) {
			found = b.column
		}
	}
	return found
}

// RowOf returns the row at y.
func RowOf(y float64) Row {
	found := NoRow
	for _, b := range rowBands {
		if b.r.Contains(y) {
			found = b.row
		}
	}
	return found
}

// InLandmarkColumn reports whether x falls on any landmark.
func InLandmarkColumn(x float64) bool {
	return LandmarkOf(x) != NoLandmark
}
