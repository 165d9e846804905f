package mathhtml

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Stylesheet positions leaf elements inside formulas and draws shapes.
const Stylesheet = `
.math {
    display: inline-block;
    position: relative;
    padding: 0;
    margin: 0;
}
.math div {
    position: absolute;
    padding: 0;
    margin: 0;
    line-height: 1;
    white-space: pre;
    font-family: "Go", "Lucida Sans Unicode", sans-serif;
}
.math .italic {
    font-style: italic;
}
.math .bold {
    font-weight: bold;
}
.math .hline {
    border-top: 0.14ex solid;
}
.math .left-bracket, .math .left-bracket-rounded {
    border-left: 0.14ex solid;
    border-top: 0.1ex solid;
    border-bottom: 0.1ex solid;
}
.math .right-bracket, .math .right-bracket-rounded {
    border-right: 0.14ex solid;
    border-top: 0.1ex solid;
    border-bottom: 0.1ex solid;
}
.math .left-bracket-rounded {
    border-top-left-radius: 0.5em 100%;
    border-bottom-left-radius: 0.5em 100%;
}
.math .right-bracket-rounded {
    border-top-right-radius: 0.5em 100%;
    border-bottom-right-radius: 0.5em 100%;
}
.math .left-brace0, .math .right-brace2 {
    border-left: 0.14ex solid;
    border-top: 0.1ex solid;
    border-top-left-radius: 0.5em 1ex;
}
.math .left-brace1, .math .right-brace3 {
    border-right: 0.14ex solid;
    border-bottom: 0.1ex solid;
    border-bottom-right-radius: 0.5em 1ex;
}
.math .left-brace2, .math .right-brace0 {
    border-right: 0.14ex solid;
    border-top: 0.1ex solid;
    border-top-right-radius: 0.5em 1ex;
}
.math .left-brace3, .math .right-brace1 {
    border-left: 0.14ex solid;
    border-bottom: 0.1ex solid;
    border-bottom-left-radius: 0.5em 1ex;
}
.math .sqrt1 {
    border-right: 0.14ex solid;
    border-bottom: 0.14ex solid;
    border-bottom-right-radius: 100%;
}
.math .sqrt2 {
    border-right: 0.14ex solid;
    border-top: 0.14ex solid;
    border-top-right-radius: 100%;
}
`

// WriteDocument writes a standalone HTML page carrying the stylesheet, body
// writes the page contents.
func WriteDocument(w io.Writer, body func(w io.Writer) error) error {
	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}

	meta := &html.Node{Type: html.ElementNode, DataAtom: atom.Meta, Data: "meta"}
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)

	style := &html.Node{Type: html.ElementNode, DataAtom: atom.Style, Data: "style"}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: Stylesheet})
	head.AppendChild(style)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n"); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	if err := html.Render(w, head); err != nil {
		return fmt.Errorf("unable to write document head: %w", err)
	}

	if _, err := io.WriteString(w, "\n<body>\n"); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	if body != nil {
		if err := body(w); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n</body>\n</html>\n"); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	return nil
}
