package mathtex_test

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/eolymp/go-mathtex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathtex")
	defer teardown()

	tt := []struct {
		name   string
		input  string
		output []any
	}{
		{
			name:   "characters",
			input:  "a+b",
			output: []any{mathtex.Char('a'), mathtex.Char('+'), mathtex.Char('b')},
		},
		{
			name:   "whitespaces are skipped",
			input:  " a \t\n b ",
			output: []any{mathtex.Char('a'), mathtex.Char('b')},
		},
		{
			name:   "comment",
			input:  "a % comment \\frac{\nb",
			output: []any{mathtex.Char('a'), mathtex.Char('b')},
		},
		{
			name:   "comment at the end",
			input:  "a%b",
			output: []any{mathtex.Char('a')},
		},
		{
			name:  "command",
			input: "\\frac{1}{2}",
			output: []any{
				mathtex.Command("frac"),
				mathtex.Char('{'),
				mathtex.Char('1'),
				mathtex.Char('}'),
				mathtex.Char('{'),
				mathtex.Char('2'),
				mathtex.Char('}'),
			},
		},
		{
			name:   "longest command name",
			input:  "\\alpha1\\beta",
			output: []any{mathtex.Command("alpha"), mathtex.Char('1'), mathtex.Command("beta")},
		},
		{
			name:   "one symbol commands",
			input:  "\\\\\\{\\,",
			output: []any{mathtex.Command("\\"), mathtex.Command("{"), mathtex.Command(",")},
		},
		{
			name:   "scripts",
			input:  "a_1^2",
			output: []any{mathtex.Char('a'), mathtex.Char('_'), mathtex.Char('1'), mathtex.Char('^'), mathtex.Char('2')},
		},
		{
			name:  "environment",
			input: "\\begin{array}a\\end{array}",
			output: []any{
				mathtex.EnvironmentStart{Name: "array"},
				mathtex.Char('a'),
				mathtex.EnvironmentEnd{Name: "array"},
			},
		},
		{
			name:  "environment with invalid name",
			input: "\\begin{ab1}",
			output: []any{
				mathtex.Command("begin"),
				mathtex.Char('{'),
				mathtex.Char('a'),
				mathtex.Char('b'),
				mathtex.Char('1'),
				mathtex.Char('}'),
			},
		},
		{
			name:   "environment without name",
			input:  "\\end x",
			output: []any{mathtex.Command("end"), mathtex.Char('x')},
		},
		{
			name:   "unclosed environment name",
			input:  "\\begin{ab",
			output: []any{mathtex.Command("begin"), mathtex.Char('{'), mathtex.Char('a'), mathtex.Char('b')},
		},
		{
			name:   "lone backslash",
			input:  "a\\",
			output: []any{mathtex.Char('a'), mathtex.Char('\\')},
		},
		{
			name:   "unicode",
			input:  "α≤β",
			output: []any{mathtex.Char('α'), mathtex.Char('≤'), mathtex.Char('β')},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lexer := mathtex.NewTokenizer(strings.NewReader(tc.input))

			var got []any

			for {
				token, err := lexer.Token()
				if err == io.EOF {
					break
				}

				if err != nil {
					t.Fatalf("Unable to read token: %v", err)
				}

				got = append(got, token)
			}

			want := tc.output

			if !reflect.DeepEqual(want, got) {
				t.Errorf("Tokens do not match:\n want %#v\n  got %#v\n", want, got)
			}
		})
	}
}

type failingReader struct {
	*strings.Reader
}

var errBroken = errors.New("broken reader")

func (r failingReader) ReadRune() (rune, int, error) {
	if r.Len() == 0 {
		return 0, 0, errBroken
	}

	return r.Reader.ReadRune()
}

func TestLexerReaderError(t *testing.T) {
	lexer := mathtex.NewTokenizer(failingReader{strings.NewReader("a")})

	if _, err := lexer.Token(); err != nil {
		t.Fatalf("Unable to read first token: %v", err)
	}

	if _, err := lexer.Token(); !errors.Is(err, errBroken) {
		t.Errorf("Reader error is expected, got %v", err)
	}
}
