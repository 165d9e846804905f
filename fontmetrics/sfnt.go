package fontmetrics

import (
	"fmt"
	"sync"

	"github.com/eolymp/go-mathtex"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ppem is the scale metrics are read at, one em being ppem pixels
const ppem = 1024

// Font is a metrics table backed by a TrueType or OpenType font. Glyph metrics
// are read lazily and cached.
type Font struct {
	font     *sfnt.Font
	height   float64
	baseline float64

	mu    sync.RWMutex
	buf   sfnt.Buffer // guarded by mu, sfnt buffers are not safe for concurrent use
	cache map[rune]mathtex.Glyph
}

// Parse reads font metrics from font file contents.
func Parse(src []byte) (*Font, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font: %w", err)
	}

	table := &Font{font: f, cache: map[rune]mathtex.Glyph{}}

	m, err := f.Metrics(&table.buf, fixed.I(ppem), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("unable to read font metrics: %w", err)
	}

	table.baseline = em(m.Ascent)
	table.height = em(m.Ascent + m.Descent)

	tracer().Debugf("font metrics: height=%.4f, baseline=%.4f", table.height, table.baseline)

	return table, nil
}

// GoRegular returns metrics of the Go Regular font.
func GoRegular() (*Font, error) {
	return Parse(goregular.TTF)
}

// Glyph returns metrics of a character. Characters missing in the font get
// metrics of the .notdef glyph.
func (f *Font) Glyph(r rune) mathtex.Glyph {
	f.mu.RLock()
	g, ok := f.cache[r]
	f.mu.RUnlock()

	if ok {
		return g
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	g = f.measure(r)
	f.cache[r] = g
	return g
}

// Height returns distance between ascender and descender lines.
func (f *Font) Height() float64 {
	return f.height
}

// Baseline returns height of the ascender.
func (f *Font) Baseline() float64 {
	return f.baseline
}

func (f *Font) measure(r rune) mathtex.Glyph {
	x, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		tracer().Errorf("unable to find glyph for %q: %v", r, err)
		x = 0
	}

	if x == 0 {
		tracer().Debugf("font has no glyph for %q", r)
	}

	bounds, advance, err := f.font.GlyphBounds(&f.buf, x, fixed.I(ppem), font.HintingNone)
	if err != nil {
		tracer().Errorf("unable to measure glyph for %q: %v", r, err)
		return mathtex.Glyph{}
	}

	return mathtex.Glyph{
		Width:        em(advance),
		LeftBearing:  em(bounds.Min.X),
		RightBearing: em(advance - bounds.Max.X),
	}
}

func em(v fixed.Int26_6) float64 {
	return float64(v) / 64 / ppem
}
