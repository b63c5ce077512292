package document

// Padding is the number of lines kept visible around the focused element
// when it is scrolled into view
const Padding = 2

// NoFocus is the Viewport.Focus value when nothing is focused
const NoFocus = -1

// Viewport is the scroll and focus state that persists between renders of
// a document. Screens own their Viewport; documents are rebuilt every time.
type Viewport struct {
	ScrollOffset int
	Height       int
	Focus        int
}

// NewViewport returns an unfocused viewport at the top
func NewViewport(height int) Viewport {
	return Viewport{Height: max(height, 1), Focus: NoFocus}
}

// HasFocus reports whether an element is focused
func (v Viewport) HasFocus() bool {
	return v.Focus >= 0
}

// WithHeight returns v resized to height lines
func (v Viewport) WithHeight(height int) Viewport {
	v.Height = max(height, 1)
	return v
}

// FocusManager applies focus and scroll movements to a Viewport over one
// built element list. It is cheap to create and is meant to be discarded
// after use: build the document, wrap it, move, then keep only Viewport().
type FocusManager struct {
	vp         Viewport
	elems      []Element
	focusables []FocusableElement
	content    int
}

// NewFocusManager wraps elems. The viewport is normalized: an out of range
// focus is clamped to the last element, an empty focus list clears focus,
// and the scroll offset is clamped to the content.
func NewFocusManager(vp Viewport, elems []Element) *FocusManager {
	m := &FocusManager{vp: vp}
	m.SetElements(elems)
	return m
}

// SetElements replaces the element list, e.g. after the data changed
func (m *FocusManager) SetElements(elems []Element) {
	m.elems = elems
	m.focusables = CollectFocusable(elems, 0)
	m.content = Height(elems)
	m.normalize()
}

func (m *FocusManager) normalize() {
	m.vp.Height = max(m.vp.Height, 1)
	switch {
	case len(m.focusables) == 0 || m.vp.Focus < 0:
		m.vp.Focus = NoFocus
	case m.vp.Focus >= len(m.focusables):
		m.vp.Focus = len(m.focusables) - 1
	}
	m.vp.ScrollOffset = m.clampScroll(m.vp.ScrollOffset)
}

// Viewport returns the current scroll and focus state
func (m *FocusManager) Viewport() Viewport {
	return m.vp
}

// Elements returns the wrapped element list
func (m *FocusManager) Elements() []Element {
	return m.elems
}

// Focusables returns the extracted focus list
func (m *FocusManager) Focusables() []FocusableElement {
	return m.focusables
}

// ContentHeight is the total height of the element list
func (m *FocusManager) ContentHeight() int {
	return m.content
}

// MaxScroll is the largest scroll offset that still fills the viewport
func (m *FocusManager) MaxScroll() int {
	return max(m.content-m.vp.Height, 0)
}

// Focused returns the focused element
func (m *FocusManager) Focused() (FocusableElement, bool) {
	if m.vp.Focus < 0 || m.vp.Focus >= len(m.focusables) {
		return FocusableElement{}, false
	}
	return m.focusables[m.vp.Focus], true
}

// FocusedID returns the focused element's id, or the zero id
func (m *FocusManager) FocusedID() FocusableID {
	f, ok := m.Focused()
	if !ok {
		return FocusableID{}
	}
	return f.ID
}

// FocusNext moves focus down one entry, wrapping to the first. With no
// focus it selects the first entry; with nothing focusable it scrolls.
func (m *FocusManager) FocusNext() {
	n := len(m.focusables)
	if n == 0 {
		m.ScrollBy(1)
		return
	}
	if m.vp.Focus < 0 {
		m.vp.Focus = 0
	} else {
		m.vp.Focus = (m.vp.Focus + 1) % n
	}
	m.ensureVisible()
}

// FocusPrev moves focus up one entry, wrapping to the last. With no focus
// it selects the last entry; with nothing focusable it scrolls.
func (m *FocusManager) FocusPrev() {
	n := len(m.focusables)
	if n == 0 {
		m.ScrollBy(-1)
		return
	}
	if m.vp.Focus < 0 {
		m.vp.Focus = n - 1
	} else {
		m.vp.Focus = (m.vp.Focus - 1 + n) % n
	}
	m.ensureVisible()
}

// FocusByIndex focuses entry i, clamped to the focus list
func (m *FocusManager) FocusByIndex(i int) {
	n := len(m.focusables)
	if n == 0 {
		m.vp.Focus = NoFocus
		return
	}
	m.vp.Focus = min(max(i, 0), n-1)
	m.ensureVisible()
}

// FocusByID focuses the entry with id. It reports false, leaving focus
// unchanged, if no entry has that id.
func (m *FocusManager) FocusByID(id FocusableID) bool {
	for i, f := range m.focusables {
		if f.ID == id {
			m.vp.Focus = i
			m.ensureVisible()
			return true
		}
	}
	return false
}

// ClearFocus removes focus without scrolling
func (m *FocusManager) ClearFocus() {
	m.vp.Focus = NoFocus
}

// FocusLeft moves to the previous column of the enclosing row
func (m *FocusManager) FocusLeft() bool {
	return m.focusColumn(-1)
}

// FocusRight moves to the next column of the enclosing row
func (m *FocusManager) FocusRight() bool {
	return m.focusColumn(1)
}

// focusColumn finds, among entries of the adjacent row child at the same
// row y, the one whose index within its child is closest to the current
// one. Outside a row or at an edge column nothing changes.
func (m *FocusManager) focusColumn(dir int) bool {
	cur, ok := m.Focused()
	if !ok || cur.RowPos == nil {
		return false
	}
	child := cur.RowPos.Child + dir
	best, bestDist := -1, 0
	for i, f := range m.focusables {
		if f.RowPos == nil || f.RowPos.RowY != cur.RowPos.RowY || f.RowPos.Child != child {
			continue
		}
		dist := abs(f.RowPos.Index - cur.RowPos.Index)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return false
	}
	m.vp.Focus = best
	m.ensureVisible()
	return true
}

// ensureVisible scrolls the focused element into view with Padding lines
// of context. An element already fully inside the viewport does not move
// it. An element taller than the viewport is shown from its first line.
func (m *FocusManager) ensureVisible() {
	f, ok := m.Focused()
	if !ok {
		return
	}
	vh := m.vp.Height
	scroll := m.vp.ScrollOffset
	top, bottom := scroll, scroll+vh

	if f.Y < top {
		scroll = max(0, f.Y-Padding)
	} else if f.Y+f.Height > bottom {
		scroll = max(0, f.Y+f.Height+Padding-vh)
	}
	scroll = m.clampScroll(scroll)

	if f.Height > vh {
		scroll = f.Y
	} else {
		if f.Y+f.Height > scroll+vh {
			scroll = f.Y + f.Height - vh
		}
		if scroll > f.Y {
			scroll = f.Y
		}
	}
	m.vp.ScrollOffset = max(scroll, 0)
}

func (m *FocusManager) clampScroll(n int) int {
	return min(max(n, 0), m.MaxScroll())
}

// SetScrollOffset scrolls to line n, clamped to the content
func (m *FocusManager) SetScrollOffset(n int) {
	m.vp.ScrollOffset = m.clampScroll(n)
}

// ScrollBy scrolls delta lines without changing focus
func (m *FocusManager) ScrollBy(delta int) {
	m.SetScrollOffset(m.vp.ScrollOffset + delta)
}

func (m *FocusManager) pageSize() int {
	return max(m.vp.Height-1, 1)
}

func (m *FocusManager) PageUp()         { m.ScrollBy(-m.pageSize()) }
func (m *FocusManager) PageDown()       { m.ScrollBy(m.pageSize()) }
func (m *FocusManager) ScrollToTop()    { m.SetScrollOffset(0) }
func (m *FocusManager) ScrollToBottom() { m.SetScrollOffset(m.MaxScroll()) }

// Handle applies a navigation message and reports whether it was
// understood
func (m *FocusManager) Handle(msg NavigationMessage) bool {
	switch msg {
	case NavFocusNext:
		m.FocusNext()
	case NavFocusPrev:
		m.FocusPrev()
	case NavFocusLeft:
		m.FocusLeft()
	case NavFocusRight:
		m.FocusRight()
	case NavScrollUp:
		m.ScrollBy(-1)
	case NavScrollDown:
		m.ScrollBy(1)
	case NavPageUp:
		m.PageUp()
	case NavPageDown:
		m.PageDown()
	case NavScrollToTop:
		m.ScrollToTop()
	case NavScrollToBottom:
		m.ScrollToBottom()
	default:
		return false
	}
	return true
}

// Render draws the elements intersecting [scroll, scroll+height) into
// area, translating document line y to area row y-scroll
func (m *FocusManager) Render(area Rect, s Surface, ctx RenderContext) {
	ctx.Width = area.Width
	ctx.Focused = m.FocusedID()

	height := min(m.vp.Height, area.Height)
	top := m.vp.ScrollOffset
	bottom := top + height

	y := 0
	for _, e := range m.elems {
		if y >= bottom {
			break
		}
		h := e.Height()
		if y+h > top {
			for i, line := range e.Render(ctx) {
				ly := y + i
				if ly < top || ly >= bottom {
					continue
				}
				s.WriteString(area.X, area.Y+ly-top, line)
			}
		}
		y += h
	}
}

// View renders the visible window to a string of exactly Height lines
func (m *FocusManager) View(width int, styles *Styles) string {
	canvas := NewCanvas(width, m.vp.Height)
	m.Render(Rect{Width: width, Height: m.vp.Height}, canvas, RenderContext{Styles: styles})
	return canvas.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
