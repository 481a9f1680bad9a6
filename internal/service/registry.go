package service

import (
	"errors"
	"fmt"

	"github.com/mmynk/dailypick/internal/calendar"
	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/picker"
)

// ErrUnknownRoster is returned when a roster name is not registered.
var ErrUnknownRoster = errors.New("unknown roster")

// Registry maps roster names to their validated selectors. It is built once
// at start-up and read-only afterwards, so it needs no locking.
type Registry struct {
	entries     map[string]registryEntry
	order       []string
	defaultName string
}

type registryEntry struct {
	roster   models.Roster
	selector *picker.Selector
}

// NewRegistry validates every roster and builds its selector. defaultName
// may be empty, in which case the first roster is the default.
func NewRegistry(rosters []*models.Roster, defaultName string) (*Registry, error) {
	if len(rosters) == 0 {
		return nil, errors.New("registry needs at least one roster")
	}

	r := &Registry{entries: make(map[string]registryEntry, len(rosters))}
	for _, roster := range rosters {
		if _, dup := r.entries[roster.Name]; dup {
			return nil, fmt.Errorf("roster %q registered twice", roster.Name)
		}
		start, err := calendar.Parse(roster.StartDate)
		if err != nil {
			return nil, fmt.Errorf("roster %q: %w", roster.Name, err)
		}
		sel, err := picker.NewSelector(roster.Members, start, roster.PickCount)
		if err != nil {
			return nil, fmt.Errorf("roster %q: %w", roster.Name, err)
		}

		frozen := *roster
		frozen.Members = sel.Roster()
		r.entries[roster.Name] = registryEntry{roster: frozen, selector: sel}
		r.order = append(r.order, roster.Name)
	}

	if defaultName == "" {
		defaultName = r.order[0]
	}
	if _, ok := r.entries[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownRoster, defaultName)
	}
	r.defaultName = defaultName

	return r, nil
}

// DefaultName returns the roster used when a request names none.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Lookup resolves name (empty means default) to its roster and selector.
func (r *Registry) Lookup(name string) (*models.Roster, *picker.Selector, error) {
	if name == "" {
		name = r.defaultName
	}
	e, ok := r.entries[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRoster, name)
	}
	return copyRoster(e.roster), e.selector, nil
}

// Rosters returns copies of every roster in registration order.
func (r *Registry) Rosters() []*models.Roster {
	out := make([]*models.Roster, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, copyRoster(r.entries[name].roster))
	}
	return out
}

func copyRoster(roster models.Roster) *models.Roster {
	roster.Members = append([]string(nil), roster.Members...)
	return &roster
}
