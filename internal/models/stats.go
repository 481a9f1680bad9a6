package models

// PersonCount is one row of the count table.
type PersonCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayPicks is the selection for one roster on one day.
type DayPicks struct {
	Roster string   `json:"roster"`
	Date   string   `json:"date"`
	Picks  []string `json:"picks"`
}

// Stats is the recomputed history of a roster up to and including Through.
type Stats struct {
	Roster    string `json:"roster"`
	StartDate string `json:"start_date"`
	Through   string `json:"through"`

	// Days is the number of days replayed.
	Days int `json:"days"`

	// Today is the selection for Through.
	Today []string `json:"today"`

	// Counts is sorted by count descending; ties keep roster order.
	Counts []PersonCount `json:"counts"`
}
