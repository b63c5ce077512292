// Package document is a small layout engine for scrollable, keyboard
// navigable terminal screens.
//
// A Document builds a fresh tree of Elements on every render. Each element
// knows its height in lines and contributes zero or more FocusableElements
// to a flat focus list, visited depth first with a running y offset so the
// list is always in top-to-bottom order:
//
//	elems := doc.Build(document.FocusContext{})
//	fm := document.NewFocusManager(vp, elems)
//	fm.FocusNext()
//	vp = fm.Viewport()
//
// Only the Viewport (scroll offset, height and focus index) survives between
// renders; screens store it in their own state.
//
// Tables turn every link cell into a focusable element keyed by
// (table, row, col) so the whole row of the focused cell can be highlighted.
// Rows place children side by side and tag their focusable elements with a
// RowPosition, which FocusLeft and FocusRight use to hop between columns
// without leaving the current row. Up and down always walk the flat list.
package document
