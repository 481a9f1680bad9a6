// Package picker implements the deterministic daily selection.
//
// A day's selection is derived entirely from its date key:
//
//	DeriveSeed("2026-02-11") -> NewGenerator -> ShufflePrefix(roster, n)
//
// Because nothing is stored, historical statistics are rebuilt by replaying
// every day since the roster's start date (see Aggregate).
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/dailypick/internal/calendar"
)

var (
	ErrEmptyRoster            = errors.New("roster must have at least one member")
	ErrBlankMember            = errors.New("roster member name cannot be blank")
	ErrDuplicateMember        = errors.New("roster member listed more than once")
	ErrInvalidPickCount       = errors.New("pick count must be at least 1")
	ErrPickCountExceedsRoster = errors.New("pick count exceeds roster size")
	ErrRangeInverted          = errors.New("end date is before start date")
)

// Selector is an immutable roster configuration. It is safe for concurrent
// use; every call builds its own generator and counts.
type Selector struct {
	roster    []string
	start     calendar.Date
	pickCount int
}

// NewSelector validates the configuration and copies roster.
func NewSelector(roster []string, start calendar.Date, pickCount int) (*Selector, error) {
	if err := ValidateRoster(roster, pickCount); err != nil {
		return nil, err
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start date not set", calendar.ErrInvalidDate)
	}

	owned := make([]string, len(roster))
	copy(owned, roster)
	return &Selector{roster: owned, start: start, pickCount: pickCount}, nil
}

// ValidateRoster reports the first configuration error in roster and
// pickCount, or nil.
func ValidateRoster(roster []string, pickCount int) error {
	if len(roster) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[string]bool, len(roster))
	for i, name := range roster {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w (position %d)", ErrBlankMember, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateMember, name)
		}
		seen[name] = true
	}
	if pickCount < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidPickCount, pickCount)
	}
	if pickCount > len(roster) {
		return fmt.Errorf("%w: %d > %d", ErrPickCountExceedsRoster, pickCount, len(roster))
	}
	return nil
}

// Day returns the selection for d.
func (s *Selector) Day(d calendar.Date) []string {
	return SelectForDate(d.String(), s.roster, s.pickCount)
}

// Aggregate replays every day from the start date through end.
func (s *Selector) Aggregate(end calendar.Date) (Tally, error) {
	if end.Before(s.start) {
		return Tally{}, fmt.Errorf("%w: %s < %s", ErrRangeInverted, end, s.start)
	}
	return Aggregate(s.start, end, s.roster, s.pickCount), nil
}

// Roster returns a copy of the configured members in order.
func (s *Selector) Roster() []string {
	out := make([]string, len(s.roster))
	copy(out, s.roster)
	return out
}

// Start returns the first day counted by Aggregate.
func (s *Selector) Start() calendar.Date {
	return s.start
}

// PickCount returns the number of members selected per day.
func (s *Selector) PickCount() int {
	return s.pickCount
}
