package mathtex

import "math"

type row struct {
	y        float64
	height   float64
	baseline float64
}

type column struct {
	x     float64
	width float64
}

// renderGrid lays out lines of an environment as rows and their cells as
// columns. Columns are as wide as their widest cell, cells of a row share a
// baseline. Rows shorter than others simply have fewer cells.
func (r *Renderer) renderGrid(env *Node, size float64) *Box {
	var cells [][]*Box
	var rows []row
	var columns []column

	for _, line := range env.Children {
		var boxes []*Box
		var current row

		for j, cell := range line.Children {
			b := r.render(cell, size)
			boxes = append(boxes, b)

			if j >= len(columns) {
				columns = append(columns, column{})
			}

			columns[j].width = math.Max(columns[j].width, b.Width)

			if j == 0 || b.Baseline > current.baseline {
				current.baseline = b.Baseline
			}
		}

		for _, b := range boxes {
			current.height = math.Max(current.height, current.baseline-b.Baseline+b.Height)
		}

		cells = append(cells, boxes)
		rows = append(rows, current)
	}

	box := newBox()

	for j := range columns {
		if j > 0 {
			columns[j].x = columns[j-1].x + columns[j-1].width + r.columnGap*size
		}

		box.Width = columns[j].x + columns[j].width
	}

	for i := range rows {
		if i > 0 {
			rows[i].y = rows[i-1].y + rows[i-1].height + r.rowGap*size
		}

		box.Height = rows[i].y + rows[i].height
	}

	for i, boxes := range cells {
		for j, b := range boxes {
			b.X = columns[j].x
			b.Y = rows[i].y + rows[i].baseline - b.Baseline
			box.Children = append(box.Children, b)
		}
	}

	// a single row keeps the baseline of its cells, so a formula sits on the
	// surrounding text line
	if len(rows) == 1 {
		box.Baseline = rows[0].baseline
	} else {
		box.Baseline = r.centered(box.Height, size)
	}

	return box
}
