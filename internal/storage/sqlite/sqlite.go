// Package sqlite provides a SQLite-backed implementation of the storage.RosterStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/storage"
)

// Ensure SQLiteStore implements storage.RosterStore
var _ storage.RosterStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.RosterStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateRoster persists a new roster and its members in order.
func (s *SQLiteStore) CreateRoster(ctx context.Context, roster *models.Roster) error {
	if roster.ID == "" {
		roster.ID = uuid.New().String()
	}
	if roster.CreatedAt == 0 {
		roster.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM rosters WHERE name = ?", roster.Name).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: %s", storage.ErrRosterExists, roster.Name)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check roster name: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO rosters (id, name, start_date, pick_count, created_at) VALUES (?, ?, ?, ?, ?)",
		roster.ID, roster.Name, roster.StartDate, roster.PickCount, roster.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}

	for position, name := range roster.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO roster_members (roster_id, position, name) VALUES (?, ?, ?)",
			roster.ID, position, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert roster member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRoster retrieves a roster by name, including its ordered members.
func (s *SQLiteStore) GetRoster(ctx context.Context, name string) (*models.Roster, error) {
	roster := &models.Roster{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, start_date, pick_count, created_at FROM rosters WHERE name = ?",
		name,
	).Scan(&roster.ID, &roster.Name, &roster.StartDate, &roster.PickCount, &roster.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrRosterNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	members, err := s.getMembers(ctx, roster.ID)
	if err != nil {
		return nil, err
	}
	roster.Members = members

	return roster, nil
}

// ListRosters retrieves all rosters ordered by name.
func (s *SQLiteStore) ListRosters(ctx context.Context) ([]*models.Roster, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, start_date, pick_count, created_at FROM rosters ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var rosters []*models.Roster
	for rows.Next() {
		roster := &models.Roster{}
		if err := rows.Scan(&roster.ID, &roster.Name, &roster.StartDate, &roster.PickCount, &roster.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}
		rosters = append(rosters, roster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rosters: %w", err)
	}

	for _, roster := range rosters {
		members, err := s.getMembers(ctx, roster.ID)
		if err != nil {
			return nil, err
		}
		roster.Members = members
	}

	return rosters, nil
}

// DeleteRoster removes a roster and its members.
func (s *SQLiteStore) DeleteRoster(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// foreign_keys is per connection, so members are deleted explicitly
	// rather than relying on the cascade.
	_, err = tx.ExecContext(ctx,
		"DELETE FROM roster_members WHERE roster_id IN (SELECT id FROM rosters WHERE name = ?)",
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete roster members: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM rosters WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrRosterNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *SQLiteStore) getMembers(ctx context.Context, rosterID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM roster_members WHERE roster_id = ? ORDER BY position",
		rosterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan roster member: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster members: %w", err)
	}

	return members, nil
}
