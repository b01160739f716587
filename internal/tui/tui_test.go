package tui

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

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(t.TempDir(), zap.NewNop())
}

func TestNew(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	if m.activeTab != TabEntries {
		t.Errorf("expected initial tab to be Entries, got %d", m.activeTab)
	}
	if m.store == nil {
		t.Error("expected store to be set")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	got := newModel.(Model)

	if got.width != 100 {
		t.Errorf("expected width 100, got %d", got.width)
	}
	if got.height != 50 {
		t.Errorf("expected height 50, got %d", got.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := newModel.(Model)

	if got.activeTab != TabPeople {
		t.Errorf("expected TabPeople after pressing tab, got %d", got.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'1', TabEntries},
		{'2', TabPeople},
		{'3', TabReminders},
	}

	for _, tt := range tests {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		got := newModel.(Model)

		if got.activeTab != tt.expected {
			t.Errorf("pressing %c: expected tab %d, got %d", tt.key, tt.expected, got.activeTab)
		}
	}
}

func TestUpdate_PrevTab_Wraparound(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)
	m.activeTab = TabEntries

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	got := newModel.(Model)

	if got.activeTab != TabReminders {
		t.Errorf("expected TabReminders after shift+tab from TabEntries, got %d", got.activeTab)
	}
}

func TestUpdate_NextTab_Wraparound(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)
	m.activeTab = TabReminders

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := newModel.(Model)

	if got.activeTab != TabEntries {
		t.Errorf("expected TabEntries after tab from TabReminders, got %d", got.activeTab)
	}
}

func TestView_Loading(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	view := m.View()

	if !strings.Contains(view, "Loading") {
		t.Errorf("expected 'Loading...' when width is 0, got %q", view)
	}
}

func TestView_WithSize(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := newModel.(Model)

	view := got.View()

	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected %q tab in view", name)
		}
	}
	if !strings.Contains(view, "quit") {
		t.Error("expected 'quit' in status bar")
	}
}

func TestView_AllTabs(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := newModel.(Model)

	for _, tab := range []Tab{TabEntries, TabPeople, TabReminders} {
		got.activeTab = tab
		if got.View() == "" {
			t.Errorf("expected non-empty view for tab %d", tab)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)
	m.width = 80

	statusBar := m.renderStatusBar()

	for _, want := range []string{"1-3", "navigate", "refresh", "quit"} {
		if !strings.Contains(statusBar, want) {
			t.Errorf("expected %q in status bar", want)
		}
	}
}

func TestRefreshMsg_ReachesAllViews(t *testing.T) {
	s := setupTestStore(t)
	m := New(s, fixedNow)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := newModel.(Model)

	// An entry added after the views cached their data only shows up
	// once a refresh lands.
	p := model.Person{ID: model.NewID(), Name: "Alex", TeamID: "t1"}
	if err := s.AddPerson(p); err != nil {
		t.Fatal(err)
	}
	e := model.Entry{
		ID:         model.NewID(),
		PersonID:   p.ID,
		PersonName: p.Name,
		Category:   "note",
		Timestamp:  testNow,
		Notes:      "fresh",
	}
	if err := s.AddEntry(e); err != nil {
		t.Fatal(err)
	}

	refreshed, _ := got.Update(ui.RefreshMsg{})
	got = refreshed.(Model)

	if !strings.Contains(got.View(), "Alex") {
		t.Error("expected refreshed entries view to show the new entry")
	}

	got.activeTab = TabPeople
	if !strings.Contains(got.View(), "Alex") {
		t.Error("expected refreshed people view to show the new person")
	}
}

func TestTabNames(t *testing.T) {
	expected := []string{"Entries", "People", "Reminders"}

	if len(tabNames) != len(expected) {
		t.Fatalf("expected %d tab names, got %d", len(expected), len(tabNames))
	}
	for i, name := range expected {
		if tabNames[i] != name {
			t.Errorf("expected tab name %d to be %s, got %s", i, name, tabNames[i])
		}
	}
}
