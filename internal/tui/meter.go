package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/guptarohit/asciigraph"
)

// meter eases a value toward its target so the induced-charge bars move smoothly between
// frames.
type meter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newMeter(fps int) *meter {
	return &meter{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8)}
}

func (m *meter) step(target float64) float64 {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	return m.pos
}

func (m *meter) reset() {
	m.pos, m.vel = 0, 0
}

// bar renders value out of max as a fixed-width bar.
func bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// history keeps the most recent samples of a value.
type history struct {
	samples []float64
	size    int
}

func newHistory(size int) *history {
	return &history{size: size}
}

func (h *history) push(v float64) {
	h.samples = append(h.samples, v)
	if len(h.samples) > h.size {
		h.samples = h.samples[len(h.samples)-h.size:]
	}
}

func (h *history) clear() {
	h.samples = h.samples[:0]
}

// plot draws the history, or nothing until there are two samples.
func (h *history) plot(width, height int, caption string) string {
	if len(h.samples) < 2 {
		return ""
	}
	return asciigraph.Plot(h.samples,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.Precision(1),
	)
}

func formatDisplacement(d float64) string {
	return fmt.Sprintf("%5.1f", d)
}
