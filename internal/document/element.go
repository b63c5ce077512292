package document

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Element is one node of a document. Height is the number of lines the
// element renders; CollectFocusable appends the element's focusable entries
// to out in top-to-bottom order, treating y as the element's first line;
// Render returns exactly Height lines.
type Element interface {
	Height() int
	CollectFocusable(out *[]FocusableElement, y int)
	Render(ctx RenderContext) []string
}

// RenderContext carries what elements need to draw themselves
type RenderContext struct {
	Width   int
	Focused FocusableID
	Styles  *Styles
}

func (ctx RenderContext) styles() *Styles {
	if ctx.Styles == nil {
		return PlainStyles()
	}
	return ctx.Styles
}

// IsFocused reports whether id is the focused element
func (ctx RenderContext) IsFocused(id FocusableID) bool {
	return !id.IsZero() && ctx.Focused == id
}

func (ctx RenderContext) withWidth(width int) RenderContext {
	ctx.Width = width
	return ctx
}

// Text is static, possibly multi-line, content
type Text struct {
	Content string
	Muted   bool
}

func (t Text) Height() int {
	return strings.Count(t.Content, "\n") + 1
}

func (t Text) CollectFocusable(out *[]FocusableElement, y int) {}

func (t Text) Render(ctx RenderContext) []string {
	style := ctx.styles().Text
	if t.Muted {
		style = ctx.styles().Muted
	}
	lines := strings.Split(t.Content, "\n")
	for i, line := range lines {
		lines[i] = style.Render(clip(line, ctx.Width))
	}
	return lines
}

// Heading is a title line. Level 1 headings are underlined.
type Heading struct {
	Level   int
	Content string
}

func (h Heading) Height() int {
	if h.Level == 1 {
		return 2
	}
	return 1
}

func (h Heading) CollectFocusable(out *[]FocusableElement, y int) {}

func (h Heading) Render(ctx RenderContext) []string {
	style := ctx.styles().Heading
	content := clip(h.Content, ctx.Width)
	if h.Level != 1 {
		return []string{style.Render(content)}
	}
	rule := strings.Repeat("═", ansi.StringWidth(content))
	return []string{style.Render(content), style.Render(rule)}
}

// SectionTitle is a title preceded by a blank line
type SectionTitle struct {
	Content   string
	Underline bool
}

func (s SectionTitle) Height() int {
	if s.Underline {
		return 3
	}
	return 2
}

func (s SectionTitle) CollectFocusable(out *[]FocusableElement, y int) {}

func (s SectionTitle) Render(ctx RenderContext) []string {
	style := ctx.styles().SectionTitle
	content := clip(s.Content, ctx.Width)
	lines := []string{"", style.Render(content)}
	if s.Underline {
		lines = append(lines, ctx.styles().Separator.Render(strings.Repeat("─", ansi.StringWidth(content))))
	}
	return lines
}

// Link is a single focusable line
type Link struct {
	ID     FocusableID
	Label  string
	Target *Target
}

func (l Link) Height() int { return 1 }

func (l Link) CollectFocusable(out *[]FocusableElement, y int) {
	*out = append(*out, FocusableElement{
		ID:     l.ID,
		Y:      y,
		Height: 1,
		Rect:   Rect{X: 0, Y: y, Width: markerWidth + ansi.StringWidth(l.Label), Height: 1},
		Target: l.Target,
	})
}

func (l Link) Render(ctx RenderContext) []string {
	st := ctx.styles()
	if ctx.IsFocused(l.ID) {
		return []string{clip(st.FocusMarker+" "+st.FocusedLink.Render(l.Label), ctx.Width)}
	}
	return []string{clip("  "+st.Link.Render(l.Label), ctx.Width)}
}

// markerWidth is the focus marker plus its trailing space
const markerWidth = 2

// Separator is a horizontal rule across the full width
type Separator struct{}

func (Separator) Height() int { return 1 }

func (Separator) CollectFocusable(out *[]FocusableElement, y int) {}

func (Separator) Render(ctx RenderContext) []string {
	return []string{ctx.styles().Separator.Render(strings.Repeat("─", max(ctx.Width, 0)))}
}

// Spacer is Lines blank lines
type Spacer struct {
	Lines int
}

func (s Spacer) Height() int { return max(s.Lines, 0) }

func (s Spacer) CollectFocusable(out *[]FocusableElement, y int) {}

func (s Spacer) Render(ctx RenderContext) []string {
	return make([]string, s.Height())
}

// Group stacks children vertically. Style, when set, is applied to every
// rendered line and must not add lines (no borders or vertical padding).
type Group struct {
	Children []Element
	Style    *lipgloss.Style
}

func (g Group) Height() int {
	return Height(g.Children)
}

func (g Group) CollectFocusable(out *[]FocusableElement, y int) {
	for _, child := range g.Children {
		child.CollectFocusable(out, y)
		y += child.Height()
	}
}

func (g Group) Render(ctx RenderContext) []string {
	var lines []string
	for _, child := range g.Children {
		lines = append(lines, child.Render(ctx)...)
	}
	if g.Style != nil {
		for i, line := range lines {
			lines[i] = g.Style.Render(line)
		}
	}
	return lines
}

// Indented shifts its child right by Margin columns
type Indented struct {
	Child  Element
	Margin int
}

func (in Indented) Height() int {
	return in.Child.Height()
}

func (in Indented) CollectFocusable(out *[]FocusableElement, y int) {
	start := len(*out)
	in.Child.CollectFocusable(out, y)
	for i := start; i < len(*out); i++ {
		(*out)[i].Rect.X += in.Margin
	}
}

func (in Indented) Render(ctx RenderContext) []string {
	margin := strings.Repeat(" ", max(in.Margin, 0))
	lines := in.Child.Render(ctx.withWidth(ctx.Width - in.Margin))
	for i, line := range lines {
		lines[i] = margin + line
	}
	return lines
}

// Button is a custom multi-line focusable element, e.g. a game box on the
// scores screen
type Button struct {
	ID     FocusableID
	Lines  []string
	Target *Target
}

func (b Button) Height() int {
	return max(len(b.Lines), 1)
}

func (b Button) CollectFocusable(out *[]FocusableElement, y int) {
	width := 0
	for _, line := range b.Lines {
		width = max(width, ansi.StringWidth(line))
	}
	*out = append(*out, FocusableElement{
		ID:     b.ID,
		Y:      y,
		Height: b.Height(),
		Rect:   Rect{X: 0, Y: y, Width: markerWidth + width, Height: b.Height()},
		Target: b.Target,
	})
}

func (b Button) Render(ctx RenderContext) []string {
	st := ctx.styles()
	focused := ctx.IsFocused(b.ID)
	lines := make([]string, b.Height())
	for i := range lines {
		var content string
		if i < len(b.Lines) {
			content = b.Lines[i]
		}
		prefix := "  "
		style := st.Text
		if focused {
			style = st.FocusedLink
			if i == 0 {
				prefix = st.FocusMarker + " "
			}
		}
		lines[i] = clip(prefix+style.Render(content), ctx.Width)
	}
	return lines
}

// clip truncates a possibly styled line to width cells
func clip(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "")
}

// fit clips or right-pads a possibly styled line to exactly width cells
func fit(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}
