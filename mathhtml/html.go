package mathhtml

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/eolymp/go-mathtex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elements returns one element per leaf of the box tree. Offsets and sizes are
// expressed in em of the element itself, so they are divided by its font size.
func Elements(b *mathtex.Box) (elements []*html.Node) {
	b.Leaves(func(leaf *mathtex.Box, x, y float64) {
		elements = append(elements, leafElement(leaf, x, y))
	})

	return
}

// Element returns the formula wrapper with all leaf elements inside.
func Element(b *mathtex.Box) *html.Node {
	style := "width:" + em(b.Width) + ";height:" + em(b.Height) + ";vertical-align:" + em(b.Baseline-b.Height) + ";"

	wrapper := element(atom.Div, "math", style)
	for _, child := range Elements(b) {
		wrapper.AppendChild(child)
	}

	return wrapper
}

// Render writes HTML of the formula.
func Render(w io.Writer, b *mathtex.Box) error {
	if err := html.Render(w, Element(b)); err != nil {
		return fmt.Errorf("unable to render formula: %w", err)
	}

	return nil
}

func leafElement(leaf *mathtex.Box, x, y float64) *html.Node {
	size := leaf.FontSize
	if size <= 0 {
		tracer().Debugf("leaf %q has no font size", leaf.Text)
		size = 1
	}

	var style strings.Builder
	style.WriteString("left:" + em(x/size) + ";top:" + em(y/size) + ";")

	// glyphs are sized by the font, shapes by their box
	if leaf.Text == "" {
		style.WriteString("width:" + em(leaf.Width) + ";height:" + em(leaf.Height) + ";")
	}

	if size != 1 {
		style.WriteString("font-size:" + em(size) + ";")
	}

	node := element(atom.Div, leaf.Class, style.String())
	if leaf.Text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: leaf.Text})
	}

	return node
}

func element(a atom.Atom, class, style string) *html.Node {
	node := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}

	if class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: class})
	}

	if style != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: style})
	}

	return node
}

// em formats a length rounded to 1/10000 of em
func em(v float64) string {
	v = math.Round(v*10000) / 10000
	if v == 0 {
		v = 0 // no negative zero
	}

	return strconv.FormatFloat(v, 'f', -1, 64) + "em"
}
