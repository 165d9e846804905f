/*
Package fontmetrics provides glyph metrics tables for the mathtex layout engine.

Two tables are available:

▪︎ Font reads metrics from a TrueType/OpenType font, GoRegular being the default one.

▪︎ Monospace assigns every character a multiple of a fixed advance, wide east asian
characters taking two cells.

All values are in em. Tables may be shared by any number of goroutines.
*/
package fontmetrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathtex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("mathtex.fonts")
}
