package mathtex

import "strings"

// renderDelimiters renders content enclosed by \left and \right delimiters.
// Delimiters of content taller than one line are drawn as shapes stretched
// to the height of the content.
func (r *Renderer) renderDelimiters(node *Node, size float64) *Box {
	content := r.render(node.Child(DelimiterContent), size)
	braceSize := content.Height / (r.lineHeight * size)

	left := r.renderDelimiter(Text(node.Child(DelimiterLeft)), content, braceSize, size)
	right := r.renderDelimiter(Text(node.Child(DelimiterRight)), content, braceSize, size)

	return r.hbox([]*Box{left, content, right}, size)
}

func (r *Renderer) renderDelimiter(glyph string, content *Box, braceSize, size float64) *Box {
	// \left. and \right. are invisible
	if glyph == "" || glyph == "." {
		return newBox()
	}

	if braceSize <= 1 {
		return r.renderText(glyph, size, false)
	}

	side := "right"
	if strings.ContainsAny(glyph, "([{") {
		side = "left"
	}

	var box *Box
	switch glyph {
	case "(", ")":
		box = bracket(side+"-bracket-rounded", content.Height, size)
	case "[", "]":
		box = bracket(side+"-bracket", content.Height, size)
	case "{", "}":
		box = brace(side, content.Height, size)
	default:
		tracer().Debugf("no shape for delimiter %q, scaling glyph", glyph)
		return r.renderText(glyph, size*braceSize, false)
	}

	box.Baseline = content.Baseline - r.delimiterCorrection*size
	return box
}

// bracket is a single vertical bar, with rounded ends for parentheses
func bracket(class string, height, size float64) *Box {
	box := newBox()
	box.Width = size / 4
	box.Height = height
	box.Children = []*Box{shape(class, size/4, height)}
	return box
}

// brace is made of four quarter arcs stacked on top of each other, the
// middle two pointing outwards
func brace(side string, height, size float64) *Box {
	offsets := []float64{1, 0, 0, 1}
	if side == "right" {
		offsets = []float64{0, 1, 1, 0}
	}

	box := newBox()
	box.Width = size / 2
	box.Height = height

	for i, offset := range offsets {
		part := shape(side+"-brace"+string(rune('0'+i)), size/4, height/4)
		part.X = offset * size / 4
		part.Y = float64(i) * height / 4
		box.Children = append(box.Children, part)
	}

	return box
}
