package document

import (
	"sort"
	"strings"
)

// Row lays its children out side by side, Gap columns apart, splitting the
// available width evenly. Its height is the tallest child.
type Row struct {
	Children []Element
	Gap      int

	// Width is the width the row is laid out in, capped by the render
	// width. Focusable rects are only shifted into their columns when it
	// is set.
	Width int
}

func (r Row) Height() int {
	h := 0
	for _, child := range r.Children {
		h = max(h, child.Height())
	}
	return h
}

// CollectFocusable tags every entry with its row position. An entry that
// already has one belongs to a nested row and keeps it. Entries are merged
// by y so the focus list stays in visual top-to-bottom order.
func (r Row) CollectFocusable(out *[]FocusableElement, y int) {
	start := len(*out)
	for i, child := range r.Children {
		var entries []FocusableElement
		child.CollectFocusable(&entries, y)
		x := r.columnX(i)
		for j := range entries {
			entries[j].Rect.X += x
			if entries[j].RowPos == nil {
				entries[j].RowPos = &RowPosition{RowY: y, Child: i, Index: j}
			}
		}
		*out = append(*out, entries...)
	}
	merged := (*out)[start:]
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Y < merged[b].Y
	})
}

// columnX is the left edge of child i, or 0 without a layout width
func (r Row) columnX(i int) int {
	if r.Width <= 0 {
		return 0
	}
	return i * (r.columnWidth(r.Width) + max(r.Gap, 0))
}

func (r Row) layoutWidth(width int) int {
	if r.Width > 0 && r.Width < width {
		return r.Width
	}
	return width
}

func (r Row) columnWidth(width int) int {
	n := len(r.Children)
	if n == 0 {
		return 0
	}
	return max((width-max(r.Gap, 0)*(n-1))/n, 0)
}

func (r Row) Render(ctx RenderContext) []string {
	height := r.Height()
	colWidth := r.columnWidth(r.layoutWidth(ctx.Width))
	gap := strings.Repeat(" ", max(r.Gap, 0))

	columns := make([][]string, len(r.Children))
	for i, child := range r.Children {
		columns[i] = child.Render(ctx.withWidth(colWidth))
	}

	lines := make([]string, height)
	for y := range lines {
		var b strings.Builder
		for i, col := range columns {
			if i > 0 {
				b.WriteString(gap)
			}
			var line string
			if y < len(col) {
				line = col[y]
			}
			if i == len(columns)-1 {
				b.WriteString(clip(line, colWidth))
			} else {
				b.WriteString(fit(line, colWidth))
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}
