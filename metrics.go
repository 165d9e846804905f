package mathtex

// Glyph describes horizontal metrics of a single character, in em.
type Glyph struct {
	Width        float64 // advance width
	LeftBearing  float64
	RightBearing float64
}

// Metrics is a read-only table of font metrics used by the layout engine.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// Glyph returns metrics of a character.
	Glyph(r rune) Glyph

	// Height returns height of the natural glyph box, in em.
	Height() float64

	// Baseline returns distance from the top of the glyph box to the baseline, in em.
	Baseline() float64
}
