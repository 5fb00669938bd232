package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindmap/internal/application/commands"
	"mindmap/internal/domain"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Create or refresh today's daily note and open it",
	Long: `Write today's note to the daily folder from the "Daily Template" and
open it. Today's note is rewritten from the template every time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPeriod(cmd, domain.PeriodDaily)
	},
}

var periodCmd = &cobra.Command{
	Use:   "period <week|month|quarter|year>",
	Short: "Create the note for the current period and open it",
	Long: `Create the weekly, monthly, quarterly or yearly note for the current
date from its template, unless it already exists, and open it.

Examples:
  mindmap period week
  mindmap period quarter`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"day", "week", "month", "quarter", "year"},
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := domain.ParsePeriod(args[0])
		if err != nil {
			return err
		}
		return openPeriod(cmd, period)
	},
}

func openPeriod(cmd *cobra.Command, period domain.Period) error {
	ws, _ := newWorkspace(false)
	var (
		result *commands.OpenPeriodicResult
		err    error
	)
	if period == domain.PeriodDaily {
		result, err = ws.OpenToday(cmd.Context())
	} else {
		result, err = ws.OpenPeriod(cmd.Context(), period)
	}
	if err != nil {
		return reported{err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	return copyLink(result.Path)
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(periodCmd)
	todayCmd.Flags().BoolVar(&copyURI, "copy", false, "copy the obsidian:// link of the note to the clipboard")
	periodCmd.Flags().BoolVar(&copyURI, "copy", false, "copy the obsidian:// link of the note to the clipboard")
}
