package app

import (
	"time"

	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

// Action is the closed set of events the reducer understands. Variants are
// small values and are never modified after creation.
type Action interface {
	isAction()
}

// Navigation
type (
	SwitchTab    struct{ Tab Tab }
	NextTab      struct{}
	PrevTab      struct{}
	EnterContent struct{}
	ExitContent  struct{}
	Navigate     struct{ Msg document.NavigationMessage }
	Activate     struct{}
	PopPanel     struct{}
	Resize       struct{ Width, Height int }
)

// Screens
type (
	ChangeDate         struct{ Days int }
	CycleStandingsView struct{}
	ToggleBrowseMode   struct{}
	ToggleBoxSelection struct{}
	SetSearchQuery     struct{ Query string }
	SearchResults      struct {
		Query string
		Hits  []SearchHit
	}
)

// Data
type (
	Refresh        struct{}
	Tick           struct{ Now time.Time }
	FetchStandings struct{ Force bool }
	FetchSchedule  struct{ Date string }
	FetchGame      struct{ ID int }
	FetchTeam      struct{ Abbrev string }
	FetchPlayer    struct{ ID int }

	StandingsLoaded struct{ Standings []sportsapi.Standing }
	ScheduleLoaded  struct {
		Date     string
		Schedule sportsapi.Schedule
	}
	GameLoaded struct {
		ID     int
		Detail sportsapi.GameDetail
	}
	TeamLoaded struct {
		Abbrev string
		Team   sportsapi.Team
	}
	PlayerLoaded struct {
		ID     int
		Player sportsapi.Player
	}
	FetchFailed struct {
		Key     string
		Message string
	}

	LiveScore  struct{ Update sportsapi.ScoreUpdate }
	LiveStatus struct{ Connected bool }
)

// System
type (
	ToggleSetting  struct{ Setting string }
	ToggleFavorite struct{ Abbrev string }
	ConfigSaved    struct{ Err string }
	SetStatus      struct{ Message string }
)

func (SwitchTab) isAction()    {}
func (NextTab) isAction()      {}
func (PrevTab) isAction()      {}
func (EnterContent) isAction() {}
func (ExitContent) isAction()  {}
func (Navigate) isAction()     {}
func (Activate) isAction()     {}
func (PopPanel) isAction()     {}
func (Resize) isAction()       {}

func (ChangeDate) isAction()         {}
func (CycleStandingsView) isAction() {}
func (ToggleBrowseMode) isAction()   {}
func (ToggleBoxSelection) isAction() {}
func (SetSearchQuery) isAction()     {}
func (SearchResults) isAction()      {}

func (Refresh) isAction()         {}
func (Tick) isAction()            {}
func (FetchStandings) isAction()  {}
func (FetchSchedule) isAction()   {}
func (FetchGame) isAction()       {}
func (FetchTeam) isAction()       {}
func (FetchPlayer) isAction()     {}
func (StandingsLoaded) isAction() {}
func (ScheduleLoaded) isAction()  {}
func (GameLoaded) isAction()      {}
func (TeamLoaded) isAction()      {}
func (PlayerLoaded) isAction()    {}
func (FetchFailed) isAction()     {}
func (LiveScore) isAction()       {}
func (LiveStatus) isAction()      {}

func (ToggleSetting) isAction()  {}
func (ToggleFavorite) isAction() {}
func (ConfigSaved) isAction()    {}
func (SetStatus) isAction()      {}
