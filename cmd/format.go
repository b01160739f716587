package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leadlog/internal/model"
	"leadlog/internal/store"
)

// entryRow pairs an entry with its 1-based display index.
type entryRow struct {
	Index int
	Entry model.Entry
}

var (
	bannerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	bannerTodayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	bannerSoonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// formatEntry renders one entry line with resolved category icon and label.
// Unresolvable categories degrade to the raw stored id.
func formatEntry(s *store.Store, e model.Entry) string {
	label := e.Category
	icon := ""
	hasNotice := false
	if c, ok := s.CategoryByID(e.Category); ok {
		label = c.Label
		icon = c.Icon + " "
		hasNotice = c.HasNotice
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s%s", e.Timestamp.Format("Jan 2 15:04"), icon, label)
	if e.SubType != "" {
		fmt.Fprintf(&b, " - %s", e.SubType)
	}
	fmt.Fprintf(&b, "  %s", e.PersonName)
	if e.Duration != nil {
		fmt.Fprintf(&b, " (%dm)", *e.Duration)
	}
	switch {
	case e.Notice == model.NoticeGiven:
		b.WriteString(" (Notice)")
	case e.Notice == model.NoticeNotGiven && hasNotice:
		b.WriteString(" (No notice)")
	}
	if e.Followup != nil {
		fmt.Fprintf(&b, " [follow-up %s]", e.Followup.Due.Format("Jan 2"))
	}
	return b.String()
}

// formatReminder renders one reminder line. Day zero renders as "Today!".
func formatReminder(r model.Reminder) string {
	when := fmt.Sprintf("in %d %s", r.Days, pluralize("day", r.Days))
	if r.Days == 0 {
		when = "Today!"
	}

	line := fmt.Sprintf("%s: %s - %s", r.Person, r.Label, when)
	if r.Days == 0 {
		return bannerTodayStyle.Render(line)
	}
	return bannerSoonStyle.Render(line)
}

// printReminderBanner prints the due/upcoming notices, if any.
func printReminderBanner(s *store.Store) {
	reminders := s.Reminders(deps.Now())
	if len(reminders) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, bannerTitleStyle.Render("Reminders"))
	for _, r := range reminders {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatReminder(r))
	}
	_, _ = fmt.Fprintln(deps.Stdout)
}
