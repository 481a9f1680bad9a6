package service

import "github.com/mmynk/dailypick/internal/models"

// GetDayRequest asks for one day's selection. Empty fields fall back to the
// default roster and today's date.
type GetDayRequest struct {
	Roster string `json:"roster,omitempty"`
	Date   string `json:"date,omitempty"`
}

type GetDayResponse struct {
	Day *models.DayPicks `json:"day"`
}

// GetStatsRequest asks for the count table from the roster's start date
// through Through (default today).
type GetStatsRequest struct {
	Roster  string `json:"roster,omitempty"`
	Through string `json:"through,omitempty"`
}

type GetStatsResponse struct {
	Stats *models.Stats `json:"stats"`
}

type ListRostersRequest struct{}

type ListRostersResponse struct {
	Rosters []*models.Roster `json:"rosters"`
}

// GetRosterRequest looks a roster up by name; empty means the default roster.
type GetRosterRequest struct {
	Name string `json:"name,omitempty"`
}

type GetRosterResponse struct {
	Roster *models.Roster `json:"roster"`
}
