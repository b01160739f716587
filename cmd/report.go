package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadlog/internal/report"
	"leadlog/internal/timeutil"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a coaching log report",
	Long: `Generate a plain-text report of entries grouped by person.

By default the report covers the current month. Use --from/--to for a
custom range, or --person to restrict it to one person.

Examples:
  leadlog report
  leadlog report --from 2026-01-01 --to 2026-03-31
  leadlog report --person 'Alex'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	reportCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	reportCmd.Flags().String("person", "", "Restrict to one person (name or id)")
}

func runReport(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	now := deps.Now()
	from, to := timeutil.ThisMonth(now)

	if v, _ := cmd.Flags().GetString("from"); v != "" {
		parsed, err := timeutil.ParseDate(v)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		from = timeutil.StartOfDay(parsed)
	}
	if v, _ := cmd.Flags().GetString("to"); v != "" {
		parsed, err := timeutil.ParseDate(v)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		to = timeutil.EndOfDay(parsed)
	}

	opts := report.Options{From: from, To: to}
	if v, _ := cmd.Flags().GetString("person"); v != "" {
		p, ok := mustResolvePerson(s, v)
		if !ok {
			return
		}
		opts.PersonID = p.ID
	}

	entries := report.Filter(s.Entries(), opts)
	_, _ = fmt.Fprint(deps.Stdout, report.Text(entries, s.People(), s.Categories(), from, to))
}
