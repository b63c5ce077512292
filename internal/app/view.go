package app

import (
	"slices"

	"github.com/muurk/sportsdash/internal/document"
)

// ActiveDocument is the document keys currently drive: the innermost
// panel, or the active tab's screen
func ActiveDocument(s State) document.Document {
	if top, ok := s.Nav.TopPanel(); ok {
		return PanelDocument(s, top.Panel)
	}
	return ScreenDocument(s, s.Nav.Tab)
}

// ScreenDocument is the document of a tab's screen
func ScreenDocument(s State, tab Tab) document.Document {
	switch tab {
	case TabStandings:
		return standingsDocument(s)
	case TabSearch:
		return searchDocument(s)
	case TabSettings:
		return settingsDocument(s)
	default:
		return scoresDocument(s)
	}
}

// PanelDocument is the document of a detail panel
func PanelDocument(s State, p Panel) document.Document {
	switch p.Kind {
	case PanelGame:
		return gameDocument(s, p.ID)
	case PanelTeam:
		return teamDocument(s, p.Abbrev)
	default:
		return playerDocument(s, p.ID)
	}
}

// ActiveViewport is the viewport of the active document
func (s State) ActiveViewport() document.Viewport {
	if top, ok := s.Nav.TopPanel(); ok {
		return top.Viewport
	}
	return s.screenViewport(s.Nav.Tab)
}

func (s State) screenViewport(tab Tab) document.Viewport {
	switch tab {
	case TabStandings:
		return s.UI.Standings.Viewport
	case TabSearch:
		return s.UI.Search.Viewport
	case TabSettings:
		return s.UI.Settings.Viewport
	default:
		return s.UI.Scores.Viewport
	}
}

// withActiveViewport stores vp as the active document's viewport
func (s State) withActiveViewport(vp document.Viewport) State {
	if n := len(s.Nav.Panels); n > 0 {
		panels := slices.Clone(s.Nav.Panels)
		panels[n-1].Viewport = vp
		s.Nav.Panels = panels
		return s
	}
	switch s.Nav.Tab {
	case TabStandings:
		s.UI.Standings.Viewport = vp
	case TabSearch:
		s.UI.Search.Viewport = vp
	case TabSettings:
		s.UI.Settings.Viewport = vp
	default:
		s.UI.Scores.Viewport = vp
	}
	return s
}

// Layout builds the active document against its viewport, sized to the
// current content area
func (s State) Layout() *document.FocusManager {
	return document.Layout(ActiveDocument(s), s.ActiveViewport().WithHeight(s.ContentHeight()))
}

// Breadcrumb names the open panels, outermost first
func (s State) Breadcrumb() []string {
	crumbs := []string{s.Nav.Tab.Title()}
	for _, entry := range s.Nav.Panels {
		crumbs = append(crumbs, panelTitle(s, entry.Panel))
	}
	return crumbs
}
