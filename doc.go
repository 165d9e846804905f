// Package mathtex typesets a restricted TeX math notation into a tree of
// positioned boxes.
//
// The pipeline is text -> tokens -> AST -> restructured AST -> boxes:
//
//	root, err := mathtex.ParseString(`\frac{a}{b}`)
//	box := mathtex.NewRenderer(metrics).Render(mathtex.Prepare(root), 1)
//
// Boxes carry em-relative geometry. Package mathhtml turns them into
// absolutely positioned HTML elements.
package mathtex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathtex'.
func tracer() tracing.Trace {
	return tracing.Select("mathtex")
}
