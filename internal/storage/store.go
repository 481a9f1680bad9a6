// Package storage provides abstractions for persistent roster storage.
//
// Only rosters are stored. Selections and statistics are recomputed from a
// roster and a date on every request.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dailypick/internal/models"
)

var (
	ErrRosterNotFound = errors.New("roster not found")
	ErrRosterExists   = errors.New("roster already exists")
)

// RosterStore defines the interface for roster storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type RosterStore interface {
	// CreateRoster persists a new roster. The roster.ID and roster.CreatedAt
	// fields are populated by the store. Returns ErrRosterExists if the name
	// is taken.
	CreateRoster(ctx context.Context, roster *models.Roster) error

	// GetRoster retrieves a roster by name, members in their stored order.
	// Returns ErrRosterNotFound if there is none.
	GetRoster(ctx context.Context, name string) (*models.Roster, error)

	// ListRosters returns every stored roster ordered by name.
	ListRosters(ctx context.Context) ([]*models.Roster, error)

	// DeleteRoster removes a roster and its members.
	// Returns ErrRosterNotFound if there is none.
	DeleteRoster(ctx context.Context, name string) error

	// Close releases any resources held by the store.
	Close() error
}
