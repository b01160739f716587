package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leadlog/internal/model"
	"leadlog/internal/store"
	"leadlog/internal/timeutil"
)

// peopleCmd represents the people listing command
var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List tracked people",
	Long:  `List all tracked people with their team and important dates.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listPeople()
	},
}

// personCmd represents the person parent command
var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage tracked people",
	Long: `Manage the people being tracked in the journal.

Examples:
  leadlog person add --name 'Alex' --team t1
  leadlog person edit 'Alex' --team t2
  leadlog person delete 'Alex'
  leadlog person date add 'Alex' --label Birthday --date 1990-06-15 --recurring
  leadlog person date remove 'Alex' Birthday`,
}

var personAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addPerson(cmd)
	},
}

var personEditCmd = &cobra.Command{
	Use:   "edit <name|id>",
	Short: "Edit a person",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editPerson(cmd, args)
	},
}

var personDeleteCmd = &cobra.Command{
	Use:   "delete <name|id>",
	Short: "Delete a person and all their entries",
	Long: `Delete a person from the journal.

Deleting a person also deletes every entry logged for them. This cannot
be undone. A confirmation prompt is shown unless --yes is specified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deletePerson(cmd, args)
	},
}

var personDateCmd = &cobra.Command{
	Use:   "date",
	Short: "Manage a person's important dates",
}

var personDateAddCmd = &cobra.Command{
	Use:   "add <name|id>",
	Short: "Add an important date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addImportantDate(cmd, args)
	},
}

var personDateRemoveCmd = &cobra.Command{
	Use:   "remove <name|id> <label>",
	Short: "Remove an important date",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		removeImportantDate(args)
	},
}

func init() {
	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(personCmd)
	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personEditCmd)
	personCmd.AddCommand(personDeleteCmd)
	personCmd.AddCommand(personDateCmd)
	personDateCmd.AddCommand(personDateAddCmd)
	personDateCmd.AddCommand(personDateRemoveCmd)

	personAddCmd.Flags().String("name", "", "Person name (required)")
	personAddCmd.Flags().String("team", "", "Team id")
	_ = personAddCmd.MarkFlagRequired("name")

	personEditCmd.Flags().String("name", "", "New name")
	personEditCmd.Flags().String("team", "", "New team id")

	personDeleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")

	personDateAddCmd.Flags().String("label", "", "Date label, e.g. Birthday (required)")
	personDateAddCmd.Flags().String("date", "", "Date (YYYY-MM-DD or DD/MM/YYYY) (required)")
	personDateAddCmd.Flags().String("remind", "", `Reminder lead time: "48 hours", "1 week" or "2 weeks"`)
	personDateAddCmd.Flags().Bool("recurring", false, "Fires every year on this month/day")
	_ = personDateAddCmd.MarkFlagRequired("label")
	_ = personDateAddCmd.MarkFlagRequired("date")
}

func listPeople() {
	s := openStore()
	if s == nil {
		return
	}

	people := s.People()
	if len(people) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No people tracked yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'leadlog person add --name NAME --team t1'")
		return
	}

	for _, p := range people {
		teamName := "no team"
		if t, ok := s.TeamByID(p.TeamID); ok {
			teamName = t.Name
			if !t.Active {
				teamName += " (inactive)"
			}
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s  [%s]\n", p.Name, teamName)

		for _, d := range p.Dates {
			recurring := ""
			if d.Recurring {
				recurring = ", yearly"
			}
			_, _ = fmt.Fprintf(deps.Stdout, "    %s: %s (remind %s%s)\n",
				d.Label, d.Date.Format("Jan 2, 2006"), d.Remind, recurring)
		}
	}
}

func addPerson(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	name, _ := cmd.Flags().GetString("name")
	teamID, _ := cmd.Flags().GetString("team")

	if teamID != "" {
		if _, ok := s.TeamByID(teamID); !ok {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown team %q\n", teamID)
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Valid teams: %s\n", teamIDs(s))
			deps.Exit(1)
			return
		}
	}

	p := model.Person{
		ID:     model.NewID(),
		Name:   name,
		TeamID: teamID,
		Dates:  []model.ImportantDate{},
	}

	if err := s.AddPerson(p); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save person")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added %s\n", name)
}

func editPerson(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	p, ok := mustResolvePerson(s, args[0])
	if !ok {
		return
	}

	changed := false
	if cmd.Flags().Changed("name") {
		p.Name, _ = cmd.Flags().GetString("name")
		changed = true
	}
	if cmd.Flags().Changed("team") {
		teamID, _ := cmd.Flags().GetString("team")
		if teamID != "" {
			if _, ok := s.TeamByID(teamID); !ok {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown team %q\n", teamID)
				deps.Exit(1)
				return
			}
		}
		p.TeamID = teamID
		changed = true
	}

	if !changed {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--name or --team) is required")
		deps.Exit(1)
		return
	}

	if err := s.UpdatePerson(p); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save person")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated %s\n", p.Name)
}

func deletePerson(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	p, ok := mustResolvePerson(s, args[0])
	if !ok {
		return
	}

	entryCount := 0
	for _, e := range s.Entries() {
		if e.PersonID == p.ID {
			entryCount++
		}
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		prompt := fmt.Sprintf("Delete %s and their %d %s? This cannot be undone. [y/N]: ",
			p.Name, entryCount, pluralize("entry", entryCount))
		if !promptConfirmation(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Delete cancelled")
			return
		}
	}

	if err := s.DeletePerson(p.ID); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to delete person")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted %s and %d %s\n", p.Name, entryCount, pluralize("entry", entryCount))
}

func addImportantDate(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	p, ok := mustResolvePerson(s, args[0])
	if !ok {
		return
	}

	label, _ := cmd.Flags().GetString("label")
	dateStr, _ := cmd.Flags().GetString("date")
	remind, _ := cmd.Flags().GetString("remind")
	recurring, _ := cmd.Flags().GetBool("recurring")

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if remind == "" {
		remind = deps.Config.DefaultRemind
	}
	switch remind {
	case model.Remind48Hours, model.Remind1Week, model.Remind2Weeks:
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid remind value %q\n", remind)
		_, _ = fmt.Fprintf(deps.Stderr, "Valid values: %q, %q, %q\n",
			model.Remind48Hours, model.Remind1Week, model.Remind2Weeks)
		deps.Exit(1)
		return
	}

	p.Dates = append(p.Dates, model.ImportantDate{
		ID:        model.NewID(),
		Label:     label,
		Date:      date,
		Remind:    remind,
		Recurring: recurring,
	})

	if err := s.UpdatePerson(p); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save person")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added %s for %s\n", label, p.Name)
}

func removeImportantDate(args []string) {
	s := openStore()
	if s == nil {
		return
	}

	p, ok := mustResolvePerson(s, args[0])
	if !ok {
		return
	}

	label := args[1]
	kept := p.Dates[:0]
	removed := 0
	for _, d := range p.Dates {
		if strings.EqualFold(d.Label, label) {
			removed++
			continue
		}
		kept = append(kept, d)
	}

	if removed == 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s has no date labelled %q\n", p.Name, label)
		deps.Exit(1)
		return
	}

	p.Dates = kept
	if err := s.UpdatePerson(p); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save person")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed %s from %s\n", label, p.Name)
}

// mustResolvePerson resolves a person argument or exits with a hint.
func mustResolvePerson(s *store.Store, arg string) (model.Person, bool) {
	p, ok := resolvePerson(s, arg)
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No person matching %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List people with 'leadlog people'")
		deps.Exit(1)
		return model.Person{}, false
	}
	return p, true
}

func teamIDs(s *store.Store) string {
	var ids []string
	for _, t := range s.Teams() {
		if t.Active {
			ids = append(ids, t.ID)
		}
	}
	return strings.Join(ids, ", ")
}
