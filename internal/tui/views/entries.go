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

// EntriesModel is the read-only journal browser, newest first.
type EntriesModel struct {
	store  *store.Store
	styles ui.Styles
	keys   ui.KeyMap

	entries []model.Entry
	cursor  int
	width   int
	height  int
}

// NewEntriesModel creates the entries view.
func NewEntriesModel(s *store.Store, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	return EntriesModel{
		store:   s,
		styles:  styles,
		keys:    keys,
		entries: s.Entries(),
	}
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RefreshMsg:
		m.entries = m.store.Entries()
		m.cursor = clampCursor(m.cursor, len(m.entries))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = clampCursor(m.cursor-1, len(m.entries))
		case key.Matches(msg, m.keys.Down):
			m.cursor = clampCursor(m.cursor+1, len(m.entries))
		case key.Matches(msg, m.keys.Refresh):
			m.entries = m.store.Entries()
			m.cursor = clampCursor(m.cursor, len(m.entries))
		}
	}

	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Entries"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.RowDetail.Render("No entries yet"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visibleRange()
	for i, e := range m.entries {
		if i < visible.start || i >= visible.end {
			continue
		}

		cat, catOK := m.store.CategoryByID(e.Category)

		person := e.PersonName
		if p, ok := m.store.PersonByID(e.PersonID); ok {
			person = p.Name
		}

		timeCol := m.styles.RowTime.Render(e.Timestamp.Format("Jan 02 15:04"))
		personCol := m.styles.RowPerson.Render(person)
		detail := entryLine(e, cat, catOK)
		if m.width > 40 {
			detail = truncate(detail, m.width-30)
		}

		line := fmt.Sprintf("%s  %s  %s", timeCol, personCol, detail)
		if i == m.cursor {
			line = m.styles.RowSelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.cursor && e.Notes != "" {
			b.WriteString(m.styles.RowDetail.Render("      " + e.Notes))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.RowDetail.Render(fmt.Sprintf("%d total", len(m.entries))))
	b.WriteString("\n")

	return b.String()
}

type listRange struct {
	start, end int
}

// visibleRange returns the slice of entries that fits the view height,
// keeping the cursor in view.
func (m EntriesModel) visibleRange() listRange {
	capacity := m.height - 5
	if capacity < 1 {
		capacity = len(m.entries)
	}
	if capacity >= len(m.entries) {
		return listRange{0, len(m.entries)}
	}

	start := m.cursor - capacity/2
	if start < 0 {
		start = 0
	}
	end := start + capacity
	if end > len(m.entries) {
		end = len(m.entries)
		start = end - capacity
	}
	return listRange{start, end}
}
