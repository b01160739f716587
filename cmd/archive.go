package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive <year>",
	Short: "Archive a year's entries",
	Long: `Remove all entries logged in the given year and write them to a file.

The removed entries are written as json to the --out file (default
leadlog-archive-<year>.json). If writing the file fails, the entries
are printed to stdout so they are not lost.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runArchive(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().String("out", "", "Archive file (default leadlog-archive-<year>.json)")
	archiveCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func runArchive(cmd *cobra.Command, args []string) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid year %q\n", args[0])
		deps.Exit(1)
		return
	}

	s := openStore()
	if s == nil {
		return
	}

	count := 0
	for _, e := range s.Entries() {
		if e.Timestamp.Year() == year {
			count++
		}
	}
	if count == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries from %d\n", year)
		return
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = fmt.Sprintf("leadlog-archive-%d.json", year)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		prompt := fmt.Sprintf("Archive %d %s from %d to %s? [y/N]: ",
			count, pluralize("entry", count), year, out)
		if !promptConfirmation(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Archive cancelled")
			return
		}
	}

	archived, err := s.ArchiveYear(year)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Archive failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	data, err := json.MarshalIndent(archived, "", "  ")
	if err == nil {
		err = os.WriteFile(out, data, 0o644)
	}
	if err != nil {
		// The entries are already removed from the journal. Dump them to
		// stdout rather than lose them.
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write %s, printing archived entries instead\n", out)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stdout, string(data))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Archived %d %s from %d to %s\n",
		len(archived), pluralize("entry", len(archived)), year, out)
}
