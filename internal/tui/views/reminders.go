package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"leadlog/internal/model"
	"leadlog/internal/store"
	"leadlog/internal/tui/ui"
)

// RemindersModel shows the upcoming reminders from the engine.
type RemindersModel struct {
	store  *store.Store
	styles ui.Styles
	keys   ui.KeyMap
	now    func() time.Time

	reminders []model.Reminder
	width     int
	height    int
}

// NewRemindersModel creates the reminders view.
func NewRemindersModel(s *store.Store, styles ui.Styles, keys ui.KeyMap, now func() time.Time) RemindersModel {
	return RemindersModel{
		store:     s,
		styles:    styles,
		keys:      keys,
		now:       now,
		reminders: s.Reminders(now()),
	}
}

// Init implements tea.Model
func (m RemindersModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (m *RemindersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m RemindersModel) Update(msg tea.Msg) (RemindersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RefreshMsg:
		m.reminders = m.store.Reminders(m.now())

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			m.reminders = m.store.Reminders(m.now())
		}
	}

	return m, nil
}

// View implements tea.Model
func (m RemindersModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Reminders"))
	b.WriteString("\n")

	if len(m.reminders) == 0 {
		b.WriteString(m.styles.RowDetail.Render("No upcoming reminders"))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range m.reminders {
		personCol := m.styles.RowPerson.Render(r.Person)
		plural := "days"
		if r.Days == 1 {
			plural = "day"
		}
		var when string
		switch {
		case r.Days == 0:
			when = m.styles.ReminderToday.Render("Today!")
		case r.Days <= 2:
			when = m.styles.ReminderSoon.Render(fmt.Sprintf("in %d %s", r.Days, plural))
		default:
			when = m.styles.RowDetail.Render(fmt.Sprintf("in %d %s", r.Days, plural))
		}

		b.WriteString(fmt.Sprintf("  %s: %s - %s\n", personCol, r.Label, when))
	}

	return b.String()
}
