package mathtex

import (
	"math"
	"unicode"
)

// Renderer lays out AST nodes into boxes.
//
// Renderer holds no state besides its configuration, so one renderer may be
// used by many goroutines at once.
type Renderer struct {
	metrics             Metrics
	lineHeight          float64
	charMargin          float64
	columnGap           float64
	rowGap              float64
	scriptMargin        float64
	ruleThickness       float64
	delimiterCorrection float64
}

// NewRenderer creates a renderer using given font metrics, m must not be nil.
func NewRenderer(m Metrics, opts ...Option) *Renderer {
	r := &Renderer{
		metrics:             m,
		lineHeight:          m.Height(),
		columnGap:           0.5,
		rowGap:              0.25,
		scriptMargin:        0.05,
		ruleThickness:       0.06,
		delimiterCorrection: 0.05,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render lays out the node at the given font size, 1 being the size of the
// surrounding text. The node is expected to be restructured by Prepare.
func (r *Renderer) Render(node *Node, size float64) *Box {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		tracer().Debugf("invalid font size %v, using 1", size)
		size = 1
	}

	return r.render(node, size)
}

func (r *Renderer) render(node *Node, size float64) *Box {
	if node == nil {
		return newBox()
	}

	switch node.Kind {
	case TextKind:
		return r.renderText(node.Data, size, true)
	case BlockKind, CellKind, LineKind:
		return r.renderBlock(node.Children, size)
	case EnvironmentKind:
		return r.renderGrid(node, size)
	case ScriptKind:
		return r.renderScripts(node.Child(ScriptBase), node.Child(ScriptSub), node.Child(ScriptSup), size)
	case DelimiterKind:
		return r.renderDelimiters(node, size)
	case CommandKind:
		return r.renderCommand(node, size)
	default:
		return newBox()
	}
}

// centered returns baseline of a box of the given height, such that a glyph
// box placed in the middle of it would have its natural baseline there.
func (r *Renderer) centered(height, size float64) float64 {
	return (height-r.metrics.Height()*size)/2 + r.metrics.Baseline()*size
}

// renderText creates one box per character. Letters are italic unless the
// text is upright (eg. function names).
func (r *Renderer) renderText(text string, size float64, italic bool) *Box {
	box := newBox()
	box.FontSize = size
	box.Height = r.lineHeight * size
	box.Baseline = r.centered(box.Height, size)

	var prev Glyph
	for i, c := range []rune(text) {
		glyph := r.metrics.Glyph(c)

		if i > 0 {
			box.Width += r.charMargin * size

			// bearings may only bring glyphs closer
			if kern := math.Min(prev.RightBearing, glyph.LeftBearing); kern > 0 {
				box.Width -= kern * size
			}
		}

		child := newBox()
		child.X = box.Width
		child.Width = glyph.Width * size
		child.Height = box.Height
		child.Baseline = box.Baseline
		child.FontSize = size
		child.Text = string(c)

		if italic && unicode.IsLetter(c) {
			child.Class = "italic"
		}

		box.Width += child.Width
		box.Children = append(box.Children, child)
		prev = glyph
	}

	return box
}

func (r *Renderer) renderBlock(nodes []*Node, size float64) *Box {
	var children []*Box
	for _, node := range nodes {
		children = append(children, r.render(node, size))
	}

	return r.hbox(children, size)
}

// hbox puts boxes one after another and aligns them on a common baseline.
func (r *Renderer) hbox(children []*Box, size float64) *Box {
	box := newBox()

	for i, child := range children {
		if i > 0 {
			box.Width += r.charMargin * size
		}

		child.X = box.Width
		box.Width += child.Width

		if i == 0 || child.Baseline > box.Baseline {
			box.Baseline = child.Baseline
		}

		box.Children = append(box.Children, child)
	}

	// children with a lower baseline may reach further down than the tallest one
	for _, child := range box.Children {
		child.Y = box.Baseline - child.Baseline
		box.Height = math.Max(box.Height, child.Bottom())
	}

	return box
}

func (r *Renderer) renderCommand(node *Node, size float64) *Box {
	switch node.Data {
	case "frac":
		return r.renderFraction(node.Child(0), node.Child(1), size)
	case "sqrt":
		return r.renderRadical(node.Child(0), size)
	case "boldsymbol":
		box := r.render(node.Child(0), size)
		embolden(box)
		return box
	case "_":
		return r.renderScripts(nil, node.Child(0), nil, size)
	case "^":
		return r.renderScripts(nil, nil, node.Child(0), size)
	case "left", "right":
		// delimiter without a pair is shown as is
		return r.renderText(Text(node.Child(0)), size, false)
	default:
		return r.renderText(node.Data, size, false)
	}
}

// embolden marks all glyphs of the box as bold
func embolden(box *Box) {
	if len(box.Children) == 0 && box.Text != "" {
		if box.Class == "" {
			box.Class = "bold"
		} else {
			box.Class += " bold"
		}
	}

	for _, child := range box.Children {
		embolden(child)
	}
}
