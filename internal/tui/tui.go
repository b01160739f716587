// Package tui provides the interactive terminal interface for leadlog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadlog/internal/store"
	"leadlog/internal/tui/ui"
	"leadlog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabPeople
	TabReminders
)

var tabNames = []string{"Entries", "People", "Reminders"}

// Model is the root TUI model
type Model struct {
	store *store.Store

	// UI state
	activeTab Tab
	width     int
	height    int

	// View models
	entriesView   views.EntriesModel
	peopleView    views.PeopleModel
	remindersView views.RemindersModel

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model
func New(s *store.Store, now func() time.Time) Model {
	styles := ui.StylesFor(s.Theme())
	keys := ui.DefaultKeyMap()

	return Model{
		store:         s,
		activeTab:     TabEntries,
		styles:        styles,
		keys:          keys,
		entriesView:   views.NewEntriesModel(s, styles, keys),
		peopleView:    views.NewPeopleModel(s, styles, keys),
		remindersView: views.NewRemindersModel(s, styles, keys, now),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabEntries
			return m, nil

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabPeople
			return m, nil

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabReminders
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4
		m.entriesView.SetSize(m.width, contentHeight)
		m.peopleView.SetSize(m.width, contentHeight)
		m.remindersView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.RefreshMsg:
		// Broadcast so every view re-reads, not just the active one.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.entriesView, cmd = m.entriesView.Update(msg)
		cmds = append(cmds, cmd)
		m.peopleView, cmd = m.peopleView.Update(msg)
		cmds = append(cmds, cmd)
		m.remindersView, cmd = m.remindersView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabPeople:
		m.peopleView, cmd = m.peopleView.Update(msg)
	case TabReminders:
		m.remindersView, cmd = m.remindersView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabPeople:
		b.WriteString(m.peopleView.View())
	case TabReminders:
		b.WriteString(m.remindersView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	parts := []string{
		m.renderKeyHelp("tab/1-3", "views"),
		m.renderKeyHelp("j/k", "navigate"),
		m.renderKeyHelp("r", "refresh"),
		m.renderKeyHelp("q", "quit"),
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// Run starts the TUI application. The journal's change notification is
// forwarded into the program so open views stay current.
func Run(s *store.Store, now func() time.Time) error {
	p := tea.NewProgram(New(s, now), tea.WithAltScreen())

	cancel := s.Subscribe(func() {
		p.Send(ui.RefreshMsg{})
	})
	defer cancel()

	_, err := p.Run()
	return err
}
