// Package markdown is a goldmark extension typesetting inline $...$ formulas.
//
//	md := goldmark.New(goldmark.WithExtensions(markdown.Extension(metrics)))
//
// A formula is the shortest span between two dollar signs on one line, with at
// least one character in between. It is replaced with the positioned HTML of
// package mathhtml, the page is expected to carry mathhtml.Stylesheet.
package markdown

import (
	"bytes"

	"github.com/eolymp/go-mathtex"
	"github.com/eolymp/go-mathtex/mathhtml"
	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// tracer writes to trace with key 'mathtex.markdown'
func tracer() tracing.Trace {
	return tracing.Select("mathtex.markdown")
}

// KindMath is the kind of inline formula nodes.
var KindMath = ast.NewNodeKind("Math")

// Math is an inline formula, Source is the text between the dollar signs.
type Math struct {
	ast.BaseInline
	Source string
}

func (n *Math) Kind() ast.NodeKind {
	return KindMath
}

func (n *Math) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Source": n.Source}, nil)
}

type mathParser struct{}

func (p mathParser) Trigger() []byte {
	return []byte{'$'}
}

func (p mathParser) Parse(parent ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 3 || line[0] != '$' {
		return nil
	}

	stop := bytes.IndexByte(line[1:], '$')
	if stop <= 0 {
		return nil
	}

	src := string(line[1 : 1+stop])
	block.Advance(stop + 2)

	return &Math{Source: src}
}

type mathRenderer struct {
	metrics mathtex.Metrics
	size    float64
	opts    []mathtex.Option
}

func (r *mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMath, r.render)
}

func (r *mathRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*Math)

	box, err := mathtex.Typeset(n.Source, r.metrics, r.size, r.opts...)
	if err != nil {
		tracer().Errorf("unable to typeset %q: %v", n.Source, err)
		r.source(w, n.Source)
		return ast.WalkSkipChildren, nil
	}

	if err := mathhtml.Render(w, box); err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}

// source writes formula as it was written in the document
func (r *mathRenderer) source(w util.BufWriter, src string) {
	_ = w.WriteByte('$')
	_, _ = w.Write(util.EscapeHTML([]byte(src)))
	_ = w.WriteByte('$')
}

type extension struct {
	metrics mathtex.Metrics
	opts    []mathtex.Option
}

// Extension typesets formulas with the given metrics and renderer options at
// the size of the surrounding text.
func Extension(m mathtex.Metrics, opts ...mathtex.Option) goldmark.Extender {
	return &extension{metrics: m, opts: opts}
}

func (e *extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(mathParser{}, 50),
		),
	)

	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&mathRenderer{metrics: e.metrics, size: 1, opts: e.opts}, 50),
		),
	)
}
