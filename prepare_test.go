package mathtex_test

import (
	"testing"

	"github.com/eolymp/go-mathtex"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func script(base, sub, sup *mathtex.Node) *mathtex.Node {
	return &mathtex.Node{Kind: mathtex.ScriptKind, Children: []*mathtex.Node{base, sub, sup}}
}

func delim(left, right string, content ...*mathtex.Node) *mathtex.Node {
	return &mathtex.Node{Kind: mathtex.DelimiterKind, Children: []*mathtex.Node{text(left), text(right), block(content...)}}
}

func TestPrepare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathtex")
	defer teardown()

	tt := []struct {
		name   string
		input  string
		output *mathtex.Node
	}{
		{
			name:   "plain text",
			input:  "a+b",
			output: root(text("a+b")),
		},
		{
			name:   "subscript and superscript",
			input:  "a_{1}^{2}",
			output: root(script(text("a"), block(text("1")), block(text("2")))),
		},
		{
			name:   "scripts in any order",
			input:  "a^{2}_{1}",
			output: root(script(text("a"), block(text("1")), block(text("2")))),
		},
		{
			name:   "base is the preceding text",
			input:  "ab_1",
			output: root(script(text("ab"), text("1"), nil)),
		},
		{
			name:   "script without base",
			input:  "_2",
			output: root(script(nil, text("2"), nil)),
		},
		{
			name:   "repeated script replaces the first one",
			input:  "x^1^2",
			output: root(script(text("x"), nil, text("2"))),
		},
		{
			name:   "scripts inside arguments",
			input:  "\\frac{a_1}{b}",
			output: root(cmd("frac", 2, block(script(text("a"), text("1"), nil)), block(text("b")))),
		},
		{
			name:   "script of a block",
			input:  "{x+y}^2",
			output: root(script(block(text("x+y")), nil, text("2"))),
		},
		{
			name:   "delimiters",
			input:  "\\left(a\\right)",
			output: root(delim("(", ")", text("a"))),
		},
		{
			name:   "content of delimiters",
			input:  "x\\left[a_1+b\\right]y",
			output: root(text("x"), delim("[", "]", script(text("a"), text("1"), nil), text("+b")), text("y")),
		},
		{
			name:   "nested delimiters",
			input:  "\\left(\\left[a\\right]\\right)",
			output: root(delim("(", ")", delim("[", "]", text("a")))),
		},
		{
			name:   "empty delimiters",
			input:  "\\left.\\right|",
			output: root(delim(".", "|")),
		},
		{
			name:   "script of delimiters",
			input:  "\\left(a\\right)^2",
			output: root(script(delim("(", ")", text("a")), nil, text("2"))),
		},
		{
			name:   "unmatched left",
			input:  "\\left(a",
			output: root(cmd("left", 1, text("(")), text("a")),
		},
		{
			name:   "unmatched right",
			input:  "a\\right)",
			output: root(text("a"), cmd("right", 1, text(")"))),
		},
		{
			name:  "left used as a base",
			input: "\\left(^2a\\right)",
			output: root(
				script(cmd("left", 1, text("(")), nil, text("2")),
				text("a"),
				cmd("right", 1, text(")")),
			),
		},
		{
			name:  "pairs do not cross blocks",
			input: "\\left({a\\right)}",
			output: root(
				cmd("left", 1, text("(")),
				block(text("a"), cmd("right", 1, text(")"))),
			),
		},
		{
			name:  "environment cells",
			input: "\\begin{array}x^2&\\left|y\\right|\\end{array}",
			output: root(env("array", line(
				cell(script(text("x"), nil, text("2"))),
				cell(delim("|", "|", text("y"))),
			))),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := mathtex.ParseString(tc.input)
			if err != nil {
				t.Fatalf("Unable to parse formula: %v", err)
			}

			got := mathtex.Prepare(parsed)

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Tree does not match (-want +got):\n%s\nGOT: %s", diff, mathtex.String(got))
			}

			if diff := cmp.Diff(got, mathtex.Prepare(got)); diff != "" {
				t.Errorf("Prepare is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestPrepareDoesNotModifyInput(t *testing.T) {
	parsed, err := mathtex.ParseString("\\left(a_1\\right)^2")
	if err != nil {
		t.Fatalf("Unable to parse formula: %v", err)
	}

	before := mathtex.String(parsed)
	mathtex.Prepare(parsed)

	if after := mathtex.String(parsed); before != after {
		t.Errorf("Input tree was modified:\n before %s\n after  %s", before, after)
	}
}

func TestPrepareNil(t *testing.T) {
	if got := mathtex.Prepare(nil); got != nil {
		t.Errorf("Nil is expected, got %s", mathtex.String(got))
	}
}
