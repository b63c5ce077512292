// Package app is the dashboard's application layer: the State tree, the
// closed set of Actions, the reducer that turns one into the other, and the
// documents each screen and detail panel renders from State.
//
// # Data Flow
//
// Key presses are mapped to Actions by KeyToAction. The store.Runtime applies
// every Action through Reducer.Reduce, which returns the next State and an
// Effect. Effects that perform I/O (fetches, search, saving settings) run on
// the runtime's task pool and come back as further Actions.
//
//	rt := store.New(app.NewState(prefs, time.Now(), w, h), reducer.Reduce(), store.Options{})
//	if a, ok := app.KeyToAction(rt.State(), msg); ok {
//	    rt.Dispatch(a)
//	}
//
// # Focus
//
// Keys either drive the tab bar or the content area (FocusLevel). Inside the
// content area the active document is the top detail panel if any is open,
// otherwise the tab's screen. Each screen and each panel keeps its own
// document.Viewport so leaving and returning restores scroll and focus.
//
// # Staleness
//
// Fetched data is tracked per key ("standings", "schedule:<date>",
// "game:<id>", ...). A key is fetched at most once at a time, and a schedule
// that arrives for a date nobody is waiting on is dropped.
package app
