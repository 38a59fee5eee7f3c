package regionmap

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// palette colors region symbols; landmarks get the darker half.
var palette = map[rune]color.RGBA{
	'a': {0xf4, 0xd0, 0x3f, 0xff},
	's': {0xe8, 0x9f, 0x3c, 0xff},
	'S': {0xde, 0x84, 0x2e, 0xff},
	'A': {0xf0, 0xc0, 0x60, 0xff},
	'l': {0xa8, 0xd8, 0xea, 0xff},
	'c': {0xc5, 0xe3, 0xbf, 0xff},
	'r': {0xaa, 0xc4, 0xe8, 0xff},
	'e': {0xd9, 0xd9, 0xd9, 0xff},
	'W': {0xe0, 0xb8, 0x8a, 0xff},
	'n': {0x5b, 0x8d, 0xb8, 0xff},
	'C': {0x5e, 0x9e, 0x5a, 0xff},
	'N': {0x8a, 0x6f, 0xb0, 0xff},
	'E': {0x80, 0x80, 0x80, 0xff},
	'v': {0x3e, 0x6a, 0x94, 0xff},
	'V': {0x6b, 0x4f, 0x90, 0xff},
	'x': {0x60, 0x60, 0x60, 0xff},
	'|': {0x8b, 0x45, 0x13, 0xff},
}

// PNGOptions controls the rendered image.
type PNGOptions struct {
	// CellSize is the size in pixels of one grid cell.
	CellSize float64
	// FontSize of the symbols and legend, in points.
	FontSize float64
	// Labels draws each cell's symbol over its color.
	Labels bool
}

// DefaultPNGOptions renders 16 pixel cells with labels.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 16, FontSize: 11, Labels: true}
}

func loadFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Render draws the map with its legend below the grid.
func (m *Map) Render(opts PNGOptions) (*gg.Context, error) {
	if opts.CellSize <= 0 || opts.FontSize <= 0 {
		return nil, fmt.Errorf("cell size %v and font size %v must be positive", opts.CellSize, opts.FontSize)
	}

	legend := m.Legend()
	lineHeight := opts.FontSize * 1.5
	gridW := float64(m.Cols) * opts.CellSize
	gridH := float64(m.Rows) * opts.CellSize
	height := gridH + lineHeight*float64(len(legend)+1)

	dc := gg.NewContext(int(gridW), int(height))
	dc.SetColor(color.White)
	dc.Clear()

	face, err := loadFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	lines := m.Lines()
	for y, line := range lines {
		for x, sym := range []rune(line) {
			px, py := float64(x)*opts.CellSize, float64(y)*opts.CellSize
			dc.SetColor(colorOf(m.symbolAt(x, y)))
			dc.DrawRectangle(px, py, opts.CellSize, opts.CellSize)
			dc.Fill()

			if opts.Labels || sym != m.symbolAt(x, y) {
				dc.SetColor(color.Black)
				dc.DrawStringAnchored(string(sym), px+opts.CellSize/2, py+opts.CellSize/2, 0.5, 0.5)
			}
		}
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	for _, y := range m.RowBreaks() {
		py := float64(y) * opts.CellSize
		dc.DrawLine(0, py, gridW, py)
		dc.Stroke()
	}

	for i, e := range legend {
		py := gridH + lineHeight*float64(i+1)
		dc.SetColor(colorOf(e.Symbol))
		dc.DrawRectangle(4, py-opts.FontSize, opts.FontSize, opts.FontSize)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawString(fmt.Sprintf("%c  %s", e.Symbol, e.Name), 8+opts.FontSize, py)
	}

	return dc, nil
}

// SavePNG renders the map and writes it to path.
func (m *Map) SavePNG(path string, opts PNGOptions) error {
	dc, err := m.Render(opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

func colorOf(sym rune) color.Color {
	if c, ok := palette[sym]; ok {
		return c
	}
	return color.White
}
