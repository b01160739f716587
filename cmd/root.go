package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leadlog/internal/store"
	"leadlog/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "leadlog",
	Short: "A coaching and incident journal for team leads",
	Long: `leadlog is a journal for tracking team members: log structured entries
(arrivals, no-shows, coaching notes) with optional durations, notices and
follow-ups, keep per-person important dates with reminders, and generate
text or CSV reports.

Usage:
  leadlog                                       List today's entries and due reminders
  leadlog log --person 'Alex' --category no_show   Log a new entry
  leadlog person add --name 'Alex' --team t1    Add a person
  leadlog reminders                             Show due and upcoming reminders
  leadlog report --from 2025-01-01 --to 2025-01-31   Text report for a range
  leadlog export json > backup.json             Full backup
  leadlog archive 2024 --out archive-2024.json  Archive a year of entries`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(entriesCmd)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"leadlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore opens the store or exits with a hint. Shared by all commands.
func openStore() *store.Store {
	s, err := deps.OpenStore()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the journal store")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil
	}
	return s
}

// showToday prints the reminder banner followed by today's entries.
func showToday() {
	s := openStore()
	if s == nil {
		return
	}

	printReminderBanner(s)

	start, end := timeutil.Today(deps.Now())
	listEntries(s, "today", start, end)
}

// listEntries prints entries in the given time range, newest first.
func listEntries(s *store.Store, period string, start, end time.Time) {
	var filtered []entryRow
	idx := 0
	for _, e := range s.Entries() {
		if !timeutil.IsInRange(e.Timestamp, start, end) {
			continue
		}
		idx++
		filtered = append(filtered, entryRow{Index: idx, Entry: e})
	}

	if len(filtered) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries for %s\n", period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries for %s:\n", period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	maxIndexWidth := len(fmt.Sprintf("%d", len(filtered)))
	for _, row := range filtered {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", maxIndexWidth, row.Index, formatEntry(s, row.Entry))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s\n", len(filtered), pluralize("entry", len(filtered)))
}

// pluralize returns the singular or plural form of a word based on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	switch word {
	case "entry":
		return "entries"
	case "person":
		return "people"
	}
	return word + "s"
}
