package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"leadlog/internal/model"
	"leadlog/internal/store"
	"leadlog/internal/tui/ui"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func emptyStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(t.TempDir(), zap.NewNop())
}

// populatedStore seeds a store with one person and two entries.
func populatedStore(t *testing.T) (*store.Store, model.Person) {
	t.Helper()
	s := emptyStore(t)

	p := model.Person{ID: model.NewID(), Name: "Alex", TeamID: "t1"}
	if err := s.AddPerson(p); err != nil {
		t.Fatal(err)
	}

	duration := 15
	// Added oldest first; the journal keeps newest first.
	entries := []model.Entry{
		{
			ID:         model.NewID(),
			PersonID:   p.ID,
			PersonName: p.Name,
			Category:   "note",
			Notes:      "good week",
			Timestamp:  testNow.Add(-time.Hour),
		},
		{
			ID:         model.NewID(),
			PersonID:   p.ID,
			PersonName: p.Name,
			Category:   "arrival",
			SubType:    "Late",
			Duration:   &duration,
			Notice:     model.NoticeGiven,
			Notes:      "traffic",
			Timestamp:  testNow,
		},
	}
	for _, e := range entries {
		if err := s.AddEntry(e); err != nil {
			t.Fatal(err)
		}
	}

	return s, p
}

func testStyles() ui.Styles {
	return ui.StylesFor(model.ThemeLight)
}

func TestEntriesView_Empty(t *testing.T) {
	s := emptyStore(t)
	m := NewEntriesModel(s, testStyles(), ui.DefaultKeyMap())

	if !strings.Contains(m.View(), "No entries yet") {
		t.Errorf("expected empty placeholder, got: %s", m.View())
	}
}

func TestEntriesView_RendersEntries(t *testing.T) {
	s, _ := populatedStore(t)
	m := NewEntriesModel(s, testStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 24)

	view := m.View()

	if !strings.Contains(view, "Alex") {
		t.Error("expected person name in view")
	}
	if !strings.Contains(view, "Arrival") {
		t.Error("expected category label in view")
	}
	if !strings.Contains(view, "2 total") {
		t.Errorf("expected total count, got: %s", view)
	}
	// Notes of the selected row are expanded.
	if !strings.Contains(view, "traffic") {
		t.Errorf("expected cursor row notes, got: %s", view)
	}
	if strings.Contains(view, "good week") {
		t.Error("expected non-cursor notes hidden")
	}
}

func TestEntriesView_CursorMoves(t *testing.T) {
	s, _ := populatedStore(t)
	m := NewEntriesModel(s, testStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	view := m.View()
	if !strings.Contains(view, "good week") {
		t.Errorf("expected second row notes after moving down, got: %s", view)
	}

	// Down at the bottom stays put.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.cursor)
	}
}

func TestEntriesView_Refresh(t *testing.T) {
	s, p := populatedStore(t)
	m := NewEntriesModel(s, testStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 24)

	e := model.Entry{
		ID:         model.NewID(),
		PersonID:   p.ID,
		PersonName: p.Name,
		Category:   "highlight",
		Timestamp:  testNow,
	}
	if err := s.AddEntry(e); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(m.View(), "3 total") {
		t.Fatal("expected stale cache before refresh")
	}

	m, _ = m.Update(ui.RefreshMsg{})
	if !strings.Contains(m.View(), "3 total") {
		t.Errorf("expected refreshed view, got: %s", m.View())
	}
}

func TestPeopleView_Empty(t *testing.T) {
	s := emptyStore(t)
	m := NewPeopleModel(s, testStyles(), ui.DefaultKeyMap())

	if !strings.Contains(m.View(), "No people tracked yet") {
		t.Errorf("expected empty placeholder, got: %s", m.View())
	}
}

func TestPeopleView_RendersTeamAndDates(t *testing.T) {
	s := emptyStore(t)
	p := model.Person{
		ID:     model.NewID(),
		Name:   "Alex",
		TeamID: "t1",
		Dates: []model.ImportantDate{{
			ID:        model.NewID(),
			Label:     "Birthday",
			Date:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Remind:    model.Remind1Week,
			Recurring: true,
		}},
	}
	if err := s.AddPerson(p); err != nil {
		t.Fatal(err)
	}

	m := NewPeopleModel(s, testStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(ui.RefreshMsg{})
	view := m.View()

	if !strings.Contains(view, "Alex") {
		t.Error("expected person name in view")
	}
	// Cursor row expands the important dates.
	if !strings.Contains(view, "Birthday") {
		t.Errorf("expected important date, got: %s", view)
	}
	if !strings.Contains(view, "yearly") {
		t.Errorf("expected recurring marker, got: %s", view)
	}
}

func TestRemindersView_Empty(t *testing.T) {
	s := emptyStore(t)
	m := NewRemindersModel(s, testStyles(), ui.DefaultKeyMap(), fixedNow)

	if !strings.Contains(m.View(), "No upcoming reminders") {
		t.Errorf("expected empty placeholder, got: %s", m.View())
	}
}

func TestRemindersView_UpcomingAndToday(t *testing.T) {
	s := emptyStore(t)
	p := model.Person{
		ID:     model.NewID(),
		Name:   "Alex",
		TeamID: "t1",
		Dates: []model.ImportantDate{{
			ID:     model.NewID(),
			Label:  "Anniversary",
			Date:   testNow.AddDate(0, 0, 3),
			Remind: model.Remind1Week,
		}},
	}
	if err := s.AddPerson(p); err != nil {
		t.Fatal(err)
	}

	// A follow-up two hours overdue renders as due today.
	e := model.Entry{
		ID:         model.NewID(),
		PersonID:   p.ID,
		PersonName: p.Name,
		Category:   "coaching",
		Followup:   &model.Followup{Hours: 24, Due: testNow.Add(-2 * time.Hour)},
		Timestamp:  testNow.Add(-26 * time.Hour),
	}
	if err := s.AddEntry(e); err != nil {
		t.Fatal(err)
	}

	m := NewRemindersModel(s, testStyles(), ui.DefaultKeyMap(), fixedNow)
	m, _ = m.Update(ui.RefreshMsg{})
	view := m.View()

	if !strings.Contains(view, "Follow-up: Coaching") || !strings.Contains(view, "Today!") {
		t.Errorf("expected due follow-up, got: %s", view)
	}
	if !strings.Contains(view, "Anniversary") || !strings.Contains(view, "in 3 days") {
		t.Errorf("expected upcoming reminder, got: %s", view)
	}
}

func TestEntryLine(t *testing.T) {
	duration := 30
	tests := []struct {
		name     string
		entry    model.Entry
		category model.Category
		catOK    bool
		expected string
	}{
		{
			name:     "unknown category falls back to id",
			entry:    model.Entry{Category: "mystery"},
			expected: "mystery",
		},
		{
			name:     "label and icon",
			entry:    model.Entry{Category: "note"},
			category: model.Category{ID: "note", Label: "Note", Icon: "📝"},
			catOK:    true,
			expected: "📝 Note",
		},
		{
			name:  "full detail",
			entry: model.Entry{Category: "arrival", SubType: "Late", Duration: &duration, Notice: model.NoticeNotGiven},
			category: model.Category{
				ID: "arrival", Label: "Arrival", Icon: "🚶", HasSubType: true, HasDuration: true, HasNotice: true,
			},
			catOK:    true,
			expected: "🚶 Arrival - Late - 30 min - no notice",
		},
		{
			name:     "notice skipped when category does not track it",
			entry:    model.Entry{Category: "note", Notice: model.NoticeGiven},
			category: model.Category{ID: "note", Label: "Note", Icon: "📝"},
			catOK:    true,
			expected: "📝 Note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entryLine(tt.entry, tt.category, tt.catOK)
			if got != tt.expected {
				t.Errorf("entryLine() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"shorter than width", "short", 10, "short"},
		{"exactly width", "12345", 5, "12345"},
		{"truncated", "1234567890", 5, "1234…"},
		{"multibyte runes", "héllo wörld", 6, "héllo…"},
		{"width too small", "hello", 1, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		length   int
		expected int
	}{
		{"empty list", 3, 0, 0},
		{"negative", -1, 5, 0},
		{"past end", 7, 5, 4},
		{"in range", 2, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampCursor(tt.cursor, tt.length)
			if got != tt.expected {
				t.Errorf("clampCursor(%d, %d) = %d, expected %d", tt.cursor, tt.length, got, tt.expected)
			}
		})
	}
}
