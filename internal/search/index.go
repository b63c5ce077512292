package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/store"
)

// DefaultLimit caps the number of hits returned by Find
const DefaultLimit = 25

// entry is one searchable team or player
type entry struct {
	hit  app.SearchHit
	text string
}

// corpus adapts entries to fuzzy.Source
type corpus []entry

func (c corpus) String(i int) string { return c[i].text }
func (c corpus) Len() int            { return len(c) }

// Index searches the teams and players present in fetched data. It only
// reads the snapshot; the corpus is rebuilt when the snapshot version moves.
type Index struct {
	snap  *store.Snapshot[app.DataState]
	Limit int

	mu      sync.Mutex
	version uint64
	built   bool
	entries corpus
}

// New creates an index over snap
func New(snap *store.Snapshot[app.DataState]) *Index {
	return &Index{snap: snap, Limit: DefaultLimit}
}

// Find returns the best matches for query, best first. It is safe for
// concurrent use.
func (ix *Index) Find(query string) []app.SearchHit {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	entries := ix.corpus()

	matches := fuzzy.FindFrom(query, entries)
	limit := ix.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	hits := make([]app.SearchHit, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		hits = append(hits, entries[m.Index].hit)
	}
	return hits
}

func (ix *Index) corpus() corpus {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	v := ix.snap.Version()
	if !ix.built || v != ix.version {
		ix.entries = build(ix.snap.Load())
		ix.version = v
		ix.built = true
	}
	return ix.entries
}

// build collects every team and player known to d, each once. Teams come
// first, then players, each ordered by label.
func build(d app.DataState) corpus {
	teams := map[string]app.SearchHit{}
	addTeam := func(abbrev, name, detail string) {
		if abbrev == "" {
			return
		}
		hit, ok := teams[abbrev]
		if !ok {
			hit = app.SearchHit{Kind: app.TargetTeam, Abbrev: abbrev, Label: abbrev}
		}
		if name != "" {
			hit.Label = name
		}
		if detail != "" {
			hit.Detail = detail
		}
		teams[abbrev] = hit
	}

	players := map[int]app.SearchHit{}
	addPlayer := func(id int, name, team, position string) {
		if id == 0 || name == "" {
			return
		}
		if _, ok := players[id]; ok && team == "" {
			return
		}
		players[id] = app.SearchHit{
			Kind:   app.TargetPlayer,
			ID:     id,
			Abbrev: team,
			Label:  name,
			Detail: strings.Join(slices.DeleteFunc([]string{team, position}, func(s string) bool { return s == "" }), " · "),
		}
	}

	for _, s := range d.Standings {
		addTeam(s.TeamAbbrev, s.TeamName, s.Division)
	}
	for _, schedule := range d.Schedules {
		for _, g := range schedule.Games {
			addTeam(g.Away.Abbrev, g.Away.Name, "")
			addTeam(g.Home.Abbrev, g.Home.Name, "")
		}
	}
	for _, detail := range d.Games {
		for _, l := range detail.Players {
			addPlayer(l.PlayerID, l.Name, l.Team, l.Position)
		}
	}
	for abbrev, t := range d.Teams {
		addTeam(abbrev, t.Name, t.Division)
		for _, r := range t.Roster {
			addPlayer(r.PlayerID, r.Name, abbrev, r.Position)
		}
	}
	for id, p := range d.Players {
		addPlayer(id, p.Name, p.Team, p.Position)
	}

	out := make(corpus, 0, len(teams)+len(players))
	for _, hit := range teams {
		out = append(out, entry{hit: hit, text: fmt.Sprintf("%s %s", hit.Abbrev, hit.Label)})
	}
	for _, hit := range players {
		out = append(out, entry{hit: hit, text: hit.Label})
	}
	slices.SortFunc(out, func(a, b entry) int {
		if a.hit.Kind != b.hit.Kind {
			// teams before players
			return cmp.Compare(b.hit.Kind, a.hit.Kind)
		}
		if c := cmp.Compare(a.hit.Label, b.hit.Label); c != 0 {
			return c
		}
		return cmp.Compare(a.hit.ID, b.hit.ID)
	})
	return out
}
