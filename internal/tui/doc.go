// Package tui runs the interactive dashboard.
//
// Model is a thin Bubble Tea adapter over a store.Runtime. The Bubble Tea
// event loop doubles as the runtime's dispatch loop:
//
//   - key presses are mapped to app actions by app.KeyMap and dispatched
//   - completed fetches and live score updates arrive on the runtime inbox;
//     a command blocked on the inbox turns each one into a message, and
//     Update dispatches it
//   - a clock tick dispatches app.Tick, which drives auto refresh
//
// View renders the chrome (tab bar, breadcrumb or search prompt, status
// line, key help) around the active document, which the app package lays
// out against the stored viewport. Tabs are mouse zones; clicking one
// switches to it.
//
// Run wires a session together: runtime, search index, settings
// persistence and the optional live feed.
package tui
