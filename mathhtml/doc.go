// Package mathhtml serializes box trees into absolutely positioned HTML elements.
//
// Every leaf box becomes a div placed by its accumulated offset; the whole formula
// is wrapped into an inline-block div of class "math", shifted so that its baseline
// sits on the baseline of the surrounding text. Shapes (rules, brackets, braces,
// radical strokes) are drawn by the classes of Stylesheet.
package mathhtml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathtex.html'
func tracer() tracing.Trace {
	return tracing.Select("mathtex.html")
}
