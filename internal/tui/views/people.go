package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"leadlog/internal/model"
	"leadlog/internal/store"
	"leadlog/internal/tui/ui"
)

// PeopleModel is the read-only browser over tracked people.
type PeopleModel struct {
	store  *store.Store
	styles ui.Styles
	keys   ui.KeyMap

	people []model.Person
	cursor int
	width  int
	height int
}

// NewPeopleModel creates the people view.
func NewPeopleModel(s *store.Store, styles ui.Styles, keys ui.KeyMap) PeopleModel {
	return PeopleModel{
		store:  s,
		styles: styles,
		keys:   keys,
		people: s.People(),
	}
}

// Init implements tea.Model
func (m PeopleModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (m *PeopleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m PeopleModel) Update(msg tea.Msg) (PeopleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RefreshMsg:
		m.people = m.store.People()
		m.cursor = clampCursor(m.cursor, len(m.people))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = clampCursor(m.cursor-1, len(m.people))
		case key.Matches(msg, m.keys.Down):
			m.cursor = clampCursor(m.cursor+1, len(m.people))
		case key.Matches(msg, m.keys.Refresh):
			m.people = m.store.People()
			m.cursor = clampCursor(m.cursor, len(m.people))
		}
	}

	return m, nil
}

// View implements tea.Model
func (m PeopleModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("People"))
	b.WriteString("\n")

	if len(m.people) == 0 {
		b.WriteString(m.styles.RowDetail.Render("No people tracked yet"))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range m.people {
		teamName := "no team"
		if t, ok := m.store.TeamByID(p.TeamID); ok {
			teamName = t.Name
		}

		nameCol := m.styles.RowPerson.Render(p.Name)
		teamCol := m.styles.RowDetail.Render("[" + teamName + "]")

		line := fmt.Sprintf("%s %s", nameCol, teamCol)
		if i == m.cursor {
			line = m.styles.RowSelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.cursor {
			for _, d := range p.Dates {
				recurring := ""
				if d.Recurring {
					recurring = ", yearly"
				}
				b.WriteString(m.styles.RowDetail.Render(fmt.Sprintf(
					"      %s: %s (remind %s%s)",
					d.Label, d.Date.Format("Jan 2, 2006"), d.Remind, recurring)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
