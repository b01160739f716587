package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leadlog/internal/model"
	"leadlog/internal/store"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing entry",
	Long: `Edit fields of an existing journal entry.

The index refers to the entry number shown by 'leadlog' or
'leadlog entries' (starting from 1, newest first). The original creation
timestamp is always preserved.

Examples:
  leadlog edit 2 --notes 'updated context'
  leadlog edit 1 --subtype Late --duration 20
  leadlog edit 3 --followup 72`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args)
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete an entry",
	Long: `Delete a journal entry by its display index.

A confirmation prompt is shown unless --yes is specified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)

	editCmd.Flags().String("subtype", "", "New sub-type")
	editCmd.Flags().Int("duration", 0, "New duration in minutes")
	editCmd.Flags().String("notice", "", "New notice value: yes or no")
	editCmd.Flags().Int("followup", 0, "Reschedule the follow-up this many hours from now")
	editCmd.Flags().String("notes", "", "New notes")

	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

// entryByIndex resolves a 1-based display index (newest first) to an entry.
func entryByIndex(s *store.Store, arg string) (model.Entry, bool) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index %q. Index must be a positive number\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'leadlog' to see available indices")
		deps.Exit(1)
		return model.Entry{}, false
	}

	entries := s.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No entries found")
		deps.Exit(1)
		return model.Entry{}, false
	}
	if index > len(entries) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Index %d is out of range\n", index)
		_, _ = fmt.Fprintf(deps.Stderr, "Valid range: 1-%d\n", len(entries))
		deps.Exit(1)
		return model.Entry{}, false
	}

	return entries[index-1], true
}

// editEntry modifies an existing entry, preserving id and timestamp.
func editEntry(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	e, ok := entryByIndex(s, args[0])
	if !ok {
		return
	}

	changed := false

	if cmd.Flags().Changed("subtype") {
		e.SubType, _ = cmd.Flags().GetString("subtype")
		changed = true
	}
	if cmd.Flags().Changed("duration") {
		d, _ := cmd.Flags().GetInt("duration")
		if d > 0 {
			e.Duration = &d
		} else {
			e.Duration = nil
		}
		changed = true
	}
	if cmd.Flags().Changed("notice") {
		noticeArg, _ := cmd.Flags().GetString("notice")
		switch strings.ToLower(noticeArg) {
		case "yes", "y", "true":
			e.Notice = model.NoticeGiven
		case "no", "n", "false":
			e.Notice = model.NoticeNotGiven
		case "":
			e.Notice = model.NoticeNotTracked
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid notice value %q (use yes or no)\n", noticeArg)
			deps.Exit(1)
			return
		}
		changed = true
	}
	if cmd.Flags().Changed("followup") {
		hours, _ := cmd.Flags().GetInt("followup")
		if hours > 0 {
			e.Followup = &model.Followup{
				Hours: hours,
				Due:   deps.Now().Add(time.Duration(hours) * time.Hour),
			}
		} else {
			e.Followup = nil
		}
		changed = true
	}
	if cmd.Flags().Changed("notes") {
		e.Notes, _ = cmd.Flags().GetString("notes")
		changed = true
	}

	if !changed {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag is required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: leadlog edit <index> [--subtype s] [--duration m] [--notice yes|no] [--followup h] [--notes text]")
		deps.Exit(1)
		return
	}

	if err := s.UpdateEntry(e); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save updated entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated entry %s: %s\n", args[0], formatEntry(s, e))
}

// deleteEntry removes an entry after confirmation.
func deleteEntry(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	e, ok := entryByIndex(s, args[0])
	if !ok {
		return
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatEntry(s, e))
		if !promptConfirmation("Delete this entry? [y/N]: ") {
			_, _ = fmt.Fprintln(deps.Stdout, "Delete cancelled")
			return
		}
	}

	if err := s.DeleteEntry(e.ID); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to delete entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Deleted")
}

// promptConfirmation asks the user to confirm. Returns true on 'y' or 'Y'.
func promptConfirmation(prompt string) bool {
	_, _ = fmt.Fprint(deps.Stdout, prompt)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
