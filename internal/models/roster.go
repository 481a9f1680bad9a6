package models

// Roster is a named, ordered list of people that a daily selection draws from.
//
// A roster is frozen once it is created: changing the members, their order,
// the start date or the pick count would rewrite every past day's selection,
// so there is no update path. Create a new roster instead.
type Roster struct {
	// ID is the unique identifier for the roster (UUID format).
	// Empty for rosters that only exist in the config file.
	ID string `json:"id,omitempty"`

	// Name is the display and lookup name (e.g., "class-2717").
	Name string `json:"name"`

	// Members is the ordered list of unique names. Order matters: it is the
	// input order of the shuffle and the tie-break order of the count table.
	Members []string `json:"members"`

	// StartDate is the first day (YYYY-MM-DD) counted in statistics.
	StartDate string `json:"start_date"`

	// PickCount is the number of members selected each day.
	PickCount int `json:"pick_count"`

	// CreatedAt is the Unix timestamp when the roster was stored.
	CreatedAt int64 `json:"created_at,omitempty"`
}
