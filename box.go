package mathtex

// Box is a positioned rectangle of the layout. X and Y are relative to the
// parent box, Baseline is measured from the top of the box. All dimensions
// are in em of the surrounding text.
//
// A box either has children, in which case its size is derived from them, or
// it is a leaf showing a glyph (Text), a shape drawn by style (Class) or a
// styled glyph (both).
type Box struct {
	X, Y     float64
	Width    float64
	Height   float64
	Baseline float64
	FontSize float64 // scale of the font relative to the surrounding text
	Text     string
	Class    string
	Children []*Box
}

func newBox() *Box {
	return &Box{FontSize: 1}
}

// Bottom returns offset of the lower edge of the box within its parent.
func (b *Box) Bottom() float64 {
	return b.Y + b.Height
}

// Leaves calls fn for every leaf with its offset accumulated from the root
// box. Container boxes are not reported.
func (b *Box) Leaves(fn func(leaf *Box, x, y float64)) {
	b.leaves(fn, 0, 0)
}

func (b *Box) leaves(fn func(*Box, float64, float64), x, y float64) {
	if len(b.Children) == 0 {
		if b.Text != "" || b.Class != "" {
			fn(b, x+b.X, y+b.Y)
		}

		return
	}

	for _, child := range b.Children {
		child.leaves(fn, x+b.X, y+b.Y)
	}
}
