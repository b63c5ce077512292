// Package search finds teams and players by fuzzy name match.
//
// The index never touches application state directly. It reads the fetched
// data through a store.Snapshot that the dispatch loop publishes whenever
// fetched entities change, so it can run on the runtime's task pool while
// keys keep arriving and only rebuilds its corpus after new data lands:
//
//	snap := store.NewSnapshot(app.DataState{})
//	pick := func(s app.State) app.DataState { return s.Data }
//	rt.Observe(store.PublishChanged(snap, pick, app.DataState.SameEntities))
//	reducer.Search = search.New(snap).Find
//
// Matching uses github.com/sahilm/fuzzy, so "tml" finds "Toronto Maple
// Leafs" and consecutive or word-start matches rank first.
package search
