package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/dailypick/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	todayStyle  = cellStyle.Foreground(lipgloss.Color("#2E8B57")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func newDayCmd(opts *globalOptions) *cobra.Command {
	var roster, date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Print the picks for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadSelectionService(cmd.Context())
			if err != nil {
				return err
			}
			day, err := svc.Day(roster, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", day.Date, dimStyle.Render(day.Roster))
			for _, name := range day.Picks {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&roster, "roster", "r", "", "Roster name (default: configured default)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

func newStatsCmd(opts *globalOptions) *cobra.Command {
	var roster, through string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print how often each member was picked since the start date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadSelectionService(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := svc.Stats(roster, through)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s .. %s  (%d days)\n", stats.Roster, stats.StartDate, stats.Through, stats.Days)
			fmt.Fprintf(out, "Today: %s\n", strings.Join(stats.Today, ", "))
			fmt.Fprintln(out, renderCounts(stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&roster, "roster", "r", "", "Roster name (default: configured default)")
	cmd.Flags().StringVarP(&through, "through", "t", "", "Last day counted as YYYY-MM-DD (default: today)")
	return cmd
}

// renderCounts draws the ranked count table, highlighting today's picks.
func renderCounts(stats *models.Stats) string {
	today := make(map[string]bool, len(stats.Today))
	for _, name := range stats.Today {
		today[name] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "COUNT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(stats.Counts) && today[stats.Counts[row].Name] {
				return todayStyle
			}
			return cellStyle
		})

	for i, c := range stats.Counts {
		t.Row(strconv.Itoa(i+1), c.Name, strconv.Itoa(c.Count))
	}
	return t.Render()
}
