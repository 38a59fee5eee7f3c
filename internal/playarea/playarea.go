// Package playarea maps continuous play-area positions onto the named columns, rows and
// landmarks used by both the physics thresholds and the description layer.
//
// The map is made of columns and rows broken up into ranges; every column/row intersection is a
// described region. Critical x locations get narrow landmark bands around them which take
// priority over the wider columns.
package playarea

import "github.com/f3rmion/balloons/internal/geom"

// Play area size in model units.
const (
	Width  = 768
	Height = 504
)

// LandmarkWidth is the width of the band around a critical x location.
const LandmarkWidth = 20

const halfLandmarkWidth = LandmarkWidth / 2

// Critical x locations, relative to the balloon's center.
const (
	XNearSweater    = 393.0
	XCenterPlayArea = 507.0
	XNearWall       = 596.0
	XAtWall         = 621.0
	XNearRightEdge  = 676.0
)

// Critical y locations, relative to the balloon's center.
const (
	YBottom         = 393.0
	YCenterPlayArea = 249.0
)

// Boundary locations the balloon center can reach.
const (
	XLeftEdge  = 67.0
	XRightEdge = 701.0
	YTop       = 111.0
)

type columnBand struct {
	column Column
	r      geom.Range
}

type landmarkBand struct {
	landmark Landmark
	r        geom.Range
}

type rowBand struct {
	row Row
	r   geom.Range
}

type location struct {
	landmark Landmark
	x        float64
}

var (
	locations = []location{
		{AtNearSweater, XNearSweater},
		{AtCenterPlayArea, XCenterPlayArea},
		{AtNearWall, XNearWall},
		{AtWall, XAtWall},
		{AtNearRightEdge, XNearRightEdge},
	}

	landmarkBands []landmarkBand
	columnBands   []columnBand
	rowBands      []rowBand
)

func init() {
	nearSweater := landmarkRange(XNearSweater)
	centerPlayArea := landmarkRange(XCenterPlayArea)
	nearWall := landmarkRange(XNearWall)
	nearRightEdge := landmarkRange(XNearRightEdge)

	// "very close to" bands extend the "near" bands toward the object until just before contact
	landmarkBands = []landmarkBand{
		{AtNearSweater, nearSweater},
		{AtCenterPlayArea, centerPlayArea},
		{AtNearWall, nearWall},
		{AtNearRightEdge, nearRightEdge},
		{AtVeryCloseToSweater, geom.Range{Min: nearSweater.Min - LandmarkWidth, Max: nearSweater.Min}},
		{AtVeryCloseToWall, geom.Range{Min: nearWall.Max, Max: XAtWall - 1}},
		{AtVeryCloseToRightEdge, geom.Range{Min: nearRightEdge.Max, Max: XRightEdge - 1}},
	}

	// column widths chosen by inspection to match the design mockup
	widths := []struct {
		column Column
		width  float64
	}{
		{LeftArm, 138},
		{LeftSideOfSweater, 65},
		{RightSideOfSweater, 67},
		{RightArm, 65},
		{LeftPlayArea, 132},
		{CenterPlayArea, 77},
		{RightPlayArea, 132},
		{RightEdge, 500}, // extends far beyond the play area bounds
	}
	var prev *geom.Range
	for _, w := range widths {
		r := geom.NextRange(w.width, prev)
		columnBands = append(columnBands, columnBand{w.column, r})
		prev = &r
	}

	heights := []struct {
		row    Row
		height float64
	}{
		{UpperPlayArea, 172},
		{CenterPlayAreaRow, 154},
		{LowerPlayArea, 500},
	}
	prev = nil
	for _, h := range heights {
		r := geom.NextRange(h.height, prev)
		rowBands = append(rowBands, rowBand{h.row, r})
		prev = &r
	}
}

func landmarkRange(x float64) geom.Range {
	return geom.Range{Min: x - halfLandmarkWidth, Max: x + halfLandmarkWidth}
}

// ColumnRange returns the x range of a geometric column. Wall has no range of its own; it
// shares the RightEdge band.
func ColumnRange(c Column) (geom.Range, bool) {
	for _, b := range columnBands {
		if b.column == c {
			return b.r, true
		}
	}
	return geom.Range{}, false
}

// LandmarkRange returns the x range of a landmark band. AtWall is an exact location and has
// no band.
func LandmarkRange(l Landmark) (geom.Range, bool) {
	for _, b := range landmarkBands {
		if b.landmark == l {
			return b.r, true
		}
	}
	return geom.Range{}, false
}

// RowRange returns the y range of a row.
func RowRange(r Row) (geom.Range, bool) {
	for _, b := range rowBands {
		if b.row == r {
			return b.r, true
		}
	}
	return geom.Range{}, false
}

// Columns lists the geometric columns left to right.
func Columns() []Column {
	out := make([]Column, len(columnBands))
	for i, b := range columnBands {
		out[i] = b.column
	}
	return out
}

// LandmarkBands lists the landmarks that own a band, in lookup order.
func LandmarkBands() []Landmark {
	out := make([]Landmark, len(landmarkBands))
	for i, b := range landmarkBands {
		out[i] = b.landmark
	}
	return out
}

// Rows lists the rows top to bottom.
func Rows() []Row {
	out := make([]Row, len(rowBands))
	for i, b := range rowBands {
		out[i] = b.row
	}
	return out
}

// DragBounds returns the bounds the balloon center may occupy. With the wall visible the
// balloon stops at the wall; otherwise it can reach the right edge.
func DragBounds(wallVisible bool) geom.Bounds {
	maxX := XRightEdge
	if wallVisible {
		maxX = XAtWall
	}
	return geom.Bounds{MinX: XLeftEdge, MinY: YTop, MaxX: maxX, MaxY: YBottom}
}
