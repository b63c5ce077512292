package document

// Document produces the element tree of one screen or panel. Build is a
// pure function of the data it closes over and the focused id; it must not
// reorder focusable elements depending on which one is focused.
type Document interface {
	Build(fc FocusContext) []Element
}

// DocumentFunc adapts a function to Document
type DocumentFunc func(fc FocusContext) []Element

// Build calls f
func (f DocumentFunc) Build(fc FocusContext) []Element {
	return f(fc)
}

// Height is the stacked height of elems
func Height(elems []Element) int {
	h := 0
	for _, e := range elems {
		h += e.Height()
	}
	return h
}

// CollectFocusable extracts the focus list of a stacked element list whose
// first line is at y
func CollectFocusable(elems []Element, y int) []FocusableElement {
	var out []FocusableElement
	for _, e := range elems {
		e.CollectFocusable(&out, y)
		y += e.Height()
	}
	return out
}

// Layout builds doc for vp: the focused id is resolved from vp's focus
// index against an unfocused build, then the document is rebuilt with that
// id in its focus context.
func Layout(doc Document, vp Viewport) *FocusManager {
	elems := doc.Build(FocusContext{})
	if vp.Focus >= 0 {
		focusables := CollectFocusable(elems, 0)
		if vp.Focus < len(focusables) {
			elems = doc.Build(FocusContext{Focused: focusables[vp.Focus].ID})
		}
	}
	return NewFocusManager(vp, elems)
}
