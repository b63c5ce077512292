package document

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnGap is the number of blank cells between table columns
const ColumnGap = 2

// Align is the horizontal alignment of a table column
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. A zero Width sizes the column to its
// widest cell.
type Column struct {
	Title string
	Width int
	Align Align
}

// Cell is one table cell. Cells with a Target are entity links and become
// focusable; the rest are plain text.
type Cell struct {
	Text   string
	Target *Target
}

// TextCell returns a plain cell
func TextCell(text string) Cell {
	return Cell{Text: text}
}

// LinkCell returns a focusable cell that opens target
func LinkCell(text string, target Target) Cell {
	return Cell{Text: text, Target: &target}
}

// Grid is the table content. Name keys the focusable cells, so it must be
// unique within a document.
type Grid struct {
	Name    string
	Columns []Column
	Rows    [][]Cell
}

// HeaderHeight is 2 (titles plus rule) when any column has a title
func (g Grid) HeaderHeight() int {
	for _, col := range g.Columns {
		if col.Title != "" {
			return 2
		}
	}
	return 0
}

func (g Grid) columnCount() int {
	n := len(g.Columns)
	for _, row := range g.Rows {
		n = max(n, len(row))
	}
	return n
}

// ColumnWidths returns the display width of every column
func (g Grid) ColumnWidths() []int {
	widths := make([]int, g.columnCount())
	for i := range widths {
		if i < len(g.Columns) && g.Columns[i].Width > 0 {
			widths[i] = g.Columns[i].Width
			continue
		}
		if i < len(g.Columns) {
			widths[i] = runewidth.StringWidth(g.Columns[i].Title)
		}
		for _, row := range g.Rows {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i].Text))
			}
		}
	}
	return widths
}

func (g Grid) align(col int) Align {
	if col < len(g.Columns) {
		return g.Columns[col].Align
	}
	return AlignLeft
}

// Table embeds a grid in a document. Every link cell is one focusable
// element keyed CellID(name, row, col); row r is drawn at headerHeight + r.
type Table struct {
	Grid Grid
}

func (t Table) Height() int {
	return t.Grid.HeaderHeight() + len(t.Grid.Rows)
}

func (t Table) CollectFocusable(out *[]FocusableElement, y int) {
	header := t.Grid.HeaderHeight()
	widths := t.Grid.ColumnWidths()
	for r, row := range t.Grid.Rows {
		x := markerWidth
		for c, cell := range row {
			if c > 0 {
				x += widths[c-1] + ColumnGap
			}
			if cell.Target == nil {
				continue
			}
			rowY := y + header + r
			*out = append(*out, FocusableElement{
				ID:     CellID(t.Grid.Name, r, c),
				Y:      rowY,
				Height: 1,
				Rect:   Rect{X: x, Y: rowY, Width: widths[c], Height: 1},
				Target: cell.Target,
			})
		}
	}
}

func (t Table) Render(ctx RenderContext) []string {
	st := ctx.styles()
	widths := t.Grid.ColumnWidths()
	lines := make([]string, 0, t.Height())

	if t.Grid.HeaderHeight() > 0 {
		titles := make([]string, len(widths))
		total := 0
		for c, w := range widths {
			var title string
			if c < len(t.Grid.Columns) {
				title = t.Grid.Columns[c].Title
			}
			titles[c] = pad(title, w, t.Grid.align(c))
			total += w
		}
		total += ColumnGap * max(len(widths)-1, 0)
		lines = append(lines,
			clip("  "+st.TableHeader.Render(strings.Join(titles, strings.Repeat(" ", ColumnGap))), ctx.Width),
			clip("  "+st.Separator.Render(strings.Repeat("─", total)), ctx.Width),
		)
	}

	gap := strings.Repeat(" ", ColumnGap)
	for r, row := range t.Grid.Rows {
		rowFocused := ctx.Focused.InTableRow(t.Grid.Name, r)
		var b strings.Builder
		if rowFocused {
			b.WriteString(st.FocusMarker + " ")
		} else {
			b.WriteString("  ")
		}
		for c, w := range widths {
			var cell Cell
			if c < len(row) {
				cell = row[c]
			}
			text := pad(cell.Text, w, t.Grid.align(c))
			if c > 0 {
				if rowFocused {
					b.WriteString(st.FocusedRow.Render(gap))
				} else {
					b.WriteString(gap)
				}
			}
			switch {
			case rowFocused && ctx.Focused.Col == c && cell.Target != nil:
				b.WriteString(st.FocusedCell.Render(text))
			case rowFocused:
				b.WriteString(st.FocusedRow.Render(text))
			case cell.Target != nil:
				b.WriteString(st.Link.Render(text))
			default:
				b.WriteString(st.Text.Render(text))
			}
		}
		lines = append(lines, clip(b.String(), ctx.Width))
	}
	return lines
}

// pad truncates or pads plain text to width cells
func pad(text string, width int, align Align) string {
	if runewidth.StringWidth(text) > width {
		return runewidth.Truncate(text, width, "…")
	}
	if align == AlignRight {
		return runewidth.FillLeft(text, width)
	}
	return runewidth.FillRight(text, width)
}
