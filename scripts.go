package mathtex

import "math"

// scriptSize returns font size of sub- and superscripts. Scripts shrink faster
// at large sizes and stay legible at small ones.
func scriptSize(size float64) float64 {
	return (size + 3) / 5
}

// renderScripts puts subscript and superscript to the right of the base. The
// superscript ends at the vertical middle of the base and the subscript starts
// there. Any of the three may be missing.
func (r *Renderer) renderScripts(base, sub, sup *Node, size float64) *Box {
	box := newBox()
	small := scriptSize(size)

	b := r.render(base, size)
	half := b.Height / 2

	var subBox, supBox *Box
	if sub != nil {
		subBox = r.render(sub, small)
	}

	if sup != nil {
		supBox = r.render(sup, small)
	}

	// superscript taller than the upper half of the base pushes everything down
	top := 0.0
	if supBox != nil && supBox.Height > half {
		top = supBox.Height - half
	}

	b.X, b.Y = 0, top
	box.Children = append(box.Children, b)
	box.Width = b.Width
	box.Height = b.Bottom()
	box.Baseline = top + b.Baseline

	x := b.Width + r.scriptMargin*small

	if supBox != nil {
		supBox.X = x
		supBox.Y = top + half - supBox.Height
		box.Width = math.Max(box.Width, supBox.X+supBox.Width)
		box.Children = append(box.Children, supBox)
	}

	if subBox != nil {
		subBox.X = x
		subBox.Y = top + half
		box.Width = math.Max(box.Width, subBox.X+subBox.Width)
		box.Height = math.Max(box.Height, subBox.Bottom())
		box.Children = append(box.Children, subBox)
	}

	return box
}

// renderFraction stacks numerator over denominator with a rule in between.
func (r *Renderer) renderFraction(numerator, denominator *Node, size float64) *Box {
	box := newBox()
	num := r.render(numerator, size)
	den := r.render(denominator, size)
	rule := r.ruleThickness * size

	box.Width = math.Max(num.Width, den.Width) + size/2

	num.X = (box.Width - num.Width) / 2
	num.Y = 0

	den.X = (box.Width - den.Width) / 2
	den.Y = num.Height + rule

	line := hline(size/8, num.Height, box.Width-size/4, rule)

	box.Height = den.Bottom()
	box.Baseline = r.centered(box.Height, size)
	box.Children = []*Box{num, line, den}
	return box
}

// renderRadical draws a square root sign to the left of the operand and a bar
// above it.
func (r *Renderer) renderRadical(operand *Node, size float64) *Box {
	box := newBox()
	o := r.render(operand, size)
	rule := r.ruleThickness * size
	gap := 2 * rule
	stroke := size / 2

	box.Height = o.Height + gap
	box.Width = stroke + o.Width + size/8

	o.X = stroke
	o.Y = gap

	hook := shape("sqrt1", stroke/2, box.Height/2)
	hook.Y = box.Height / 2

	stem := shape("sqrt2", stroke/2, box.Height)
	stem.X = stroke / 2

	bar := hline(stroke, 0, o.Width+size/8, rule)

	box.Baseline = gap + o.Baseline
	box.Children = []*Box{hook, stem, bar, o}
	return box
}

// shape is a leaf drawn entirely by its style class
func shape(class string, width, height float64) *Box {
	box := newBox()
	box.Class = class
	box.Width = width
	box.Height = height
	return box
}

func hline(x, y, width, thickness float64) *Box {
	box := shape("hline", width, thickness)
	box.X = x
	box.Y = y
	return box
}
