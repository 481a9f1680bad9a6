// Package config loads the dailypick configuration from a YAML file with
// environment overrides.
//
// Rosters are configuration: they are read once at start-up and never change
// for the life of the process.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/dailypick/internal/calendar"
	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/picker"
)

const (
	// DefaultPath is used when CONFIG_PATH is not set.
	DefaultPath = "./dailypick.yaml"

	defaultPort     = 8080
	defaultTimezone = "Asia/Shanghai"
)

var (
	ErrNoRosters       = errors.New("no rosters configured")
	ErrUnnamedRoster   = errors.New("roster name is required")
	ErrDuplicateRoster = errors.New("roster name used more than once")
	ErrStartAfterToday = errors.New("roster start date is after today")
	ErrUnknownDefault  = errors.New("default roster is not configured")
	ErrInvalidPort     = errors.New("port must be between 1 and 65535")
)

// RosterConfig declares one roster inside the config file.
type RosterConfig struct {
	Name      string   `yaml:"name"`
	StartDate string   `yaml:"start_date"`
	PickCount int      `yaml:"pick_count"`
	Members   []string `yaml:"members"`
}

// Config models dailypick.yaml.
type Config struct {
	Port          int            `yaml:"port"`
	Timezone      string         `yaml:"timezone"`
	DBPath        string         `yaml:"db_path,omitempty"`
	DefaultRoster string         `yaml:"default_roster,omitempty"`
	Rosters       []RosterConfig `yaml:"rosters"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port:     defaultPort,
		Timezone: defaultTimezone,
	}
}

// Load reads path (a missing file is not an error) and applies environment
// overrides: PORT, TIMEZONE, DB_PATH, DEFAULT_ROSTER.
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT=%q: %w", v, ErrInvalidPort)
		}
		c.Port = port
	}
	c.Timezone = getEnv(getenv, "TIMEZONE", c.Timezone)
	c.DBPath = getEnv(getenv, "DB_PATH", c.DBPath)
	c.DefaultRoster = getEnv(getenv, "DEFAULT_ROSTER", c.DefaultRoster)
	return nil
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

// Location resolves the configured civil timezone.
func (c *Config) Location() (*time.Location, error) {
	return calendar.LoadLocation(c.Timezone)
}

// AddRosters appends stored rosters to the configured ones.
func (c *Config) AddRosters(rosters []*models.Roster) {
	for _, r := range rosters {
		c.Rosters = append(c.Rosters, RosterConfig{
			Name:      r.Name,
			StartDate: r.StartDate,
			PickCount: r.PickCount,
			Members:   append([]string(nil), r.Members...),
		})
	}
}

// Roster converts a RosterConfig to the domain model.
func (r RosterConfig) Roster() *models.Roster {
	return &models.Roster{
		Name:      r.Name,
		Members:   append([]string(nil), r.Members...),
		StartDate: r.StartDate,
		PickCount: r.PickCount,
	}
}

// RosterModels returns every configured roster as a domain model.
func (c *Config) RosterModels() []*models.Roster {
	out := make([]*models.Roster, len(c.Rosters))
	for i, r := range c.Rosters {
		out[i] = r.Roster()
	}
	return out
}

// DefaultRosterName returns the explicit default or, failing that, the first
// configured roster.
func (c *Config) DefaultRosterName() string {
	if c.DefaultRoster != "" {
		return c.DefaultRoster
	}
	if len(c.Rosters) > 0 {
		return c.Rosters[0].Name
	}
	return ""
}

// Validate reports every configuration error at once. now is the start-up
// instant; a roster whose start date is after today's civil date in the
// configured zone is rejected.
func (c *Config) Validate(now time.Time) error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidPort, c.Port))
	}

	loc, err := c.Location()
	if err != nil {
		errs = append(errs, err)
		loc = time.UTC
	}
	today := calendar.Today(now, loc)

	if len(c.Rosters) == 0 {
		errs = append(errs, ErrNoRosters)
	}

	seen := make(map[string]bool, len(c.Rosters))
	for i, r := range c.Rosters {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("roster #%d: %w", i+1, ErrUnnamedRoster))
			continue
		}
		if seen[r.Name] {
			errs = append(errs, fmt.Errorf("roster %q: %w", r.Name, ErrDuplicateRoster))
			continue
		}
		seen[r.Name] = true

		if err := ValidateRoster(r.Roster(), today); err != nil {
			errs = append(errs, fmt.Errorf("roster %q: %w", r.Name, err))
		}
	}

	if c.DefaultRoster != "" && !seen[c.DefaultRoster] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDefault, c.DefaultRoster))
	}

	return errors.Join(errs...)
}

// ValidateRoster checks a single roster's start date, members and pick count
// against today.
func ValidateRoster(r *models.Roster, today calendar.Date) error {
	start, err := calendar.Parse(r.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if _, err := picker.NewSelector(r.Members, start, r.PickCount); err != nil {
		return err
	}
	if start.After(today) {
		return fmt.Errorf("%w: %s > %s", ErrStartAfterToday, start, today)
	}
	return nil
}
