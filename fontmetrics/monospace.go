package fontmetrics

import (
	"unicode/utf8"

	"github.com/eolymp/go-mathtex"
	"github.com/npillmayer/uax/uax11"
)

// Monospace is a fixed-pitch metrics table. Wide east asian characters take
// two cells, combining marks none. Bearings are always zero.
type Monospace struct {
	advance float64
	context *uax11.Context
}

// NewMonospace creates a table with the given cell advance. If advance is not
// positive, half an em is used. A nil context defaults to the latin context.
func NewMonospace(advance float64, context *uax11.Context) *Monospace {
	if advance <= 0 {
		advance = 0.5
	}

	if context == nil {
		context = uax11.LatinContext
	}

	return &Monospace{advance: advance, context: context}
}

func (m *Monospace) Glyph(r rune) mathtex.Glyph {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)

	w := uax11.Width(buf[:n], m.context)
	return mathtex.Glyph{Width: float64(w) * m.advance}
}

// Height is one em, three fifths of it above the baseline.
func (m *Monospace) Height() float64 {
	return 1
}

func (m *Monospace) Baseline() float64 {
	return 0.6
}
