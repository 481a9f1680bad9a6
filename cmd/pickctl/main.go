// Command pickctl computes daily selections and statistics locally and
// manages the rosters stored in the SQLite database.
//
// Usage:
//
//	pickctl day --roster standup --date 2026-02-12
//	pickctl stats --roster standup
//	pickctl roster import rosters.yaml --db ./data/dailypick.db
//	pickctl roster list --db ./data/dailypick.db
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/dailypick/internal/config"
	"github.com/mmynk/dailypick/internal/service"
	"github.com/mmynk/dailypick/internal/storage/sqlite"
	"github.com/mmynk/dailypick/pkg/logging"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	dbPath     string
	timezone   string
	verbose    bool

	now func() time.Time
}

func newRootCmd() *cobra.Command {
	return newRootCmdAt(time.Now)
}

// newRootCmdAt builds the command tree with now deciding which day is today.
func newRootCmdAt(now func() time.Time) *cobra.Command {
	opts := &globalOptions{now: now}

	rootCmd := &cobra.Command{
		Use:           "pickctl",
		Short:         "Deterministic daily picks from a roster",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelFromEnv()
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.SetupWithOptions(level, os.Getenv("LOG_FORMAT"))
			return nil
		},
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = config.DefaultPath
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfig, "Config file (or set CONFIG_PATH env)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", os.Getenv("DB_PATH"), "SQLite roster database (or set DB_PATH env)")
	rootCmd.PersistentFlags().StringVar(&opts.timezone, "timezone", "", "Timezone deciding which day is today (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newDayCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newRosterCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadSelectionService builds the same selection service the server runs,
// from the config file plus any stored rosters.
func (o *globalOptions) loadSelectionService(ctx context.Context) (*service.SelectionService, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.timezone != "" {
		cfg.Timezone = o.timezone
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}

	if cfg.DBPath != "" {
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize storage: %w", err)
		}
		defer store.Close()

		stored, err := store.ListRosters(ctx)
		if err != nil {
			return nil, fmt.Errorf("load stored rosters: %w", err)
		}
		cfg.AddRosters(stored)
	}

	if err := cfg.Validate(o.now()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	registry, err := service.NewRegistry(cfg.RosterModels(), cfg.DefaultRosterName())
	if err != nil {
		return nil, err
	}
	slog.Debug("Rosters loaded", "config", o.configPath, "db", cfg.DBPath, "default", registry.DefaultName())

	return service.NewSelectionService(registry, loc, service.WithClock(o.now)), nil
}

// openStore opens the roster database named by --db.
func (o *globalOptions) openStore() (*sqlite.SQLiteStore, error) {
	if o.dbPath == "" {
		return nil, errors.New("--db is required (or set DB_PATH env)")
	}
	store, err := sqlite.New(o.dbPath)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	return store, nil
}
