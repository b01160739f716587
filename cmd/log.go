package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leadlog/internal/model"
	"leadlog/internal/store"
	"leadlog/internal/timeutil"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a new journal entry",
	Long: `Log a new journal entry for a person.

The category determines which optional fields apply: some categories track
a duration, some track whether notice was given, some have sub-types.

Examples:
  leadlog log --person 'Alex' --category arrival --subtype Late --duration 15 --notice no
  leadlog log --person 'Alex' --category no_show --subtype 'No Notice'
  leadlog log --person 'Alex' --category coaching --followup 48 --notes 'discussed escalation'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logEntry(cmd)
	},
}

func init() {
	logCmd.Flags().String("person", "", "Person name or id (required)")
	logCmd.Flags().String("category", "", "Category id (required)")
	logCmd.Flags().String("subtype", "", "Sub-type, for categories that have them")
	logCmd.Flags().Int("duration", 0, "Duration in minutes, for categories that track one")
	logCmd.Flags().String("notice", "", "Whether notice was given: yes or no")
	logCmd.Flags().Int("followup", 0, "Schedule a follow-up this many hours from now")
	logCmd.Flags().String("notes", "", "Free-form notes")
	_ = logCmd.MarkFlagRequired("person")
	_ = logCmd.MarkFlagRequired("category")
}

// logEntry builds and saves a new entry from the command flags.
func logEntry(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	personArg, _ := cmd.Flags().GetString("person")
	categoryID, _ := cmd.Flags().GetString("category")
	subType, _ := cmd.Flags().GetString("subtype")
	duration, _ := cmd.Flags().GetInt("duration")
	noticeArg, _ := cmd.Flags().GetString("notice")
	followupHours, _ := cmd.Flags().GetInt("followup")
	notes, _ := cmd.Flags().GetString("notes")

	person, ok := resolvePerson(s, personArg)
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No person matching %q\n", personArg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List people with 'leadlog people', add one with 'leadlog person add'")
		deps.Exit(1)
		return
	}

	category, ok := s.CategoryByID(categoryID)
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown category %q\n", categoryID)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Valid categories: %s\n", categoryIDs(s))
		deps.Exit(1)
		return
	}

	if subType != "" && !category.HasSubType {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Category %q has no sub-types\n", category.Label)
		deps.Exit(1)
		return
	}

	notice := model.NoticeNotTracked
	if category.HasNotice && noticeArg != "" {
		switch strings.ToLower(noticeArg) {
		case "yes", "y", "true":
			notice = model.NoticeGiven
		case "no", "n", "false":
			notice = model.NoticeNotGiven
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid notice value %q (use yes or no)\n", noticeArg)
			deps.Exit(1)
			return
		}
	}

	e := model.Entry{
		ID:         model.NewID(),
		PersonID:   person.ID,
		PersonName: person.Name,
		Category:   category.ID,
		Notes:      notes,
		Notice:     notice,
		Timestamp:  deps.Now(),
	}

	if subType != "" {
		e.SubType = subType
	}
	if category.HasDuration && duration > 0 {
		d := duration
		e.Duration = &d
	}
	if followupHours > 0 {
		e.Followup = &model.Followup{
			Hours: followupHours,
			Due:   deps.Now().Add(time.Duration(followupHours) * time.Hour),
		}
	}

	if err := s.AddEntry(e); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s %s for %s\n", category.Icon, category.Label, person.Name)
}

// resolvePerson finds a person by id or case-insensitive name.
func resolvePerson(s *store.Store, arg string) (model.Person, bool) {
	if p, ok := s.PersonByID(arg); ok {
		return p, true
	}
	for _, p := range s.People() {
		if strings.EqualFold(p.Name, arg) {
			return p, true
		}
	}
	return model.Person{}, false
}

func categoryIDs(s *store.Store) string {
	var ids []string
	for _, c := range s.Categories() {
		ids = append(ids, c.ID)
	}
	return strings.Join(ids, ", ")
}

// entriesCmd represents the entries listing command
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List entries in a date range",
	Long: `List journal entries, newest first.

Defaults to the current month. Use --from and --to for explicit ranges.

Examples:
  leadlog entries
  leadlog entries --from 2025-01-01 --to 2025-01-31`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntriesCmd(cmd)
	},
}

func init() {
	entriesCmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY)")
	entriesCmd.Flags().String("to", "", "End date (YYYY-MM-DD or DD/MM/YYYY)")
}

func listEntriesCmd(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	start, end := timeutil.ThisMonth(deps.Now())
	period := "this month"

	if fromStr != "" || toStr != "" {
		var err error
		if fromStr != "" {
			start, err = timeutil.ParseDate(fromStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
				deps.Exit(1)
				return
			}
		}
		if toStr != "" {
			end, err = timeutil.ParseDate(toStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
				deps.Exit(1)
				return
			}
			end = timeutil.EndOfDay(end)
		}
		period = fmt.Sprintf("%s to %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	}

	listEntries(s, period, start, end)
}
