package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// remindersCmd represents the reminders command
var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show upcoming reminders",
	Long: `Show upcoming reminders for important dates and entry follow-ups.

Important dates remind within their configured lead time. Follow-ups
remind from a day before they are due until two days after.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showReminders()
	},
}

func showReminders() {
	s := openStore()
	if s == nil {
		return
	}

	reminders := s.Reminders(deps.Now())
	if len(reminders) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No upcoming reminders")
		return
	}

	for _, r := range reminders {
		_, _ = fmt.Fprintln(deps.Stdout, formatReminder(r))
	}
}
