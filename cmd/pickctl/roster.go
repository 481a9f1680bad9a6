package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/dailypick/internal/config"
	"github.com/mmynk/dailypick/internal/storage"
)

func newRosterCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage rosters stored in the SQLite database",
	}

	cmd.AddCommand(newRosterImportCmd(opts))
	cmd.AddCommand(newRosterListCmd(opts))
	cmd.AddCommand(newRosterDeleteCmd(opts))
	return cmd
}

func newRosterImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Validate the rosters in a config file and store them",
		Long: `Reads the rosters section of a dailypick YAML file, validates every roster
and stores them. Stored rosters are immutable: re-importing a name that
already exists fails; delete it first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if opts.timezone != "" {
				cfg.Timezone = opts.timezone
			}
			// DEFAULT_ROSTER selects among served rosters, not the ones in this file.
			cfg.DefaultRoster = ""
			if err := cfg.Validate(opts.now()); err != nil {
				return fmt.Errorf("invalid rosters in %s: %w", path, err)
			}

			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			var errs []error
			for _, r := range cfg.RosterModels() {
				if err := store.CreateRoster(cmd.Context(), r); err != nil {
					errs = append(errs, fmt.Errorf("roster %q: %w", r.Name, err))
					continue
				}
				slog.Debug("Roster stored", "name", r.Name, "id", r.ID)
				fmt.Fprintf(out, "Imported %s (%d members)\n", r.Name, len(r.Members))
			}
			return errors.Join(errs...)
		},
	}
}

func newRosterListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored rosters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			rosters, err := store.ListRosters(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rosters) == 0 {
				fmt.Fprintln(out, "No rosters stored.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "START", "PICK", "MEMBERS").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, r := range rosters {
				t.Row(r.Name, r.StartDate, strconv.Itoa(r.PickCount), strings.Join(r.Members, ", "))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
}

func newRosterDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteRoster(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, storage.ErrRosterNotFound) {
					return fmt.Errorf("roster %q: %w", args[0], err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
