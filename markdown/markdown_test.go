package markdown_test

import (
	"bytes"
	"testing"

	"github.com/eolymp/go-mathtex"
	"github.com/eolymp/go-mathtex/markdown"
	"github.com/eolymp/go-mathtex/mathhtml"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"
)

type fakeMetrics struct{}

func (fakeMetrics) Glyph(rune) mathtex.Glyph { return mathtex.Glyph{Width: 0.5} }
func (fakeMetrics) Height() float64          { return 1.2 }
func (fakeMetrics) Baseline() float64        { return 0.9 }

func formula(t *testing.T, src string) string {
	t.Helper()

	box, err := mathtex.Typeset(src, fakeMetrics{}, 1)
	if err != nil {
		t.Fatalf("Unable to typeset %q: %v", src, err)
	}

	var buf bytes.Buffer
	if err := mathhtml.Render(&buf, box); err != nil {
		t.Fatalf("Unable to render %q: %v", src, err)
	}

	return buf.String()
}

func convert(t *testing.T, m mathtex.Metrics, input string) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(markdown.Extension(m)))

	var buf bytes.Buffer
	if err := md.Convert([]byte(input), &buf); err != nil {
		t.Fatalf("Unable to convert markdown: %v", err)
	}

	return buf.String()
}

func TestExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathtex.markdown")
	defer teardown()

	tt := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "inline formula",
			input:  "Let $x^2$ be",
			output: "<p>Let " + formula(t, "x^2") + " be</p>\n",
		},
		{
			name:   "two formulas",
			input:  "$a$ and $\\frac{1}{2}$",
			output: "<p>" + formula(t, "a") + " and " + formula(t, "\\frac{1}{2}") + "</p>\n",
		},
		{
			name:   "formula inside emphasis",
			input:  "*see $b$*",
			output: "<p><em>see " + formula(t, "b") + "</em></p>\n",
		},
		{
			name:   "unclosed dollar",
			input:  "price $5 only",
			output: "<p>price $5 only</p>\n",
		},
		{
			name:   "empty formula",
			input:  "$$",
			output: "<p>$$</p>\n",
		},
		{
			name:   "code span",
			input:  "`$x$`",
			output: "<p><code>$x$</code></p>\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, convert(t, fakeMetrics{}, tc.input))
		})
	}
}

func TestExtensionFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathtex.markdown")
	defer teardown()

	// without metrics formulas cannot be typeset and are kept as source
	got := convert(t, nil, "see $a<b$")
	assert.Equal(t, "<p>see $a&lt;b$</p>\n", got)
}
