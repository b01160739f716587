package ui

import (
	"github.com/charmbracelet/lipgloss"

	"leadlog/internal/model"
)

// Palette is the set of colours a theme contributes to the styles.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// PaletteFor returns the colour palette for a journal theme. Unknown
// themes fall back to the light palette.
func PaletteFor(theme model.Theme) Palette {
	switch theme {
	case model.ThemeDark:
		return Palette{
			Primary:   lipgloss.Color("99"),  // purple
			Secondary: lipgloss.Color("39"),  // cyan
			Accent:    lipgloss.Color("212"), // pink
			Muted:     lipgloss.Color("240"),
			Text:      lipgloss.Color("252"),
			Warning:   lipgloss.Color("214"),
			Error:     lipgloss.Color("196"),
		}
	case model.ThemeRainbow:
		return Palette{
			Primary:   lipgloss.Color("201"), // magenta
			Secondary: lipgloss.Color("51"),  // bright cyan
			Accent:    lipgloss.Color("226"), // yellow
			Muted:     lipgloss.Color("244"),
			Text:      lipgloss.Color("255"),
			Warning:   lipgloss.Color("208"),
			Error:     lipgloss.Color("197"),
		}
	default:
		return Palette{
			Primary:   lipgloss.Color("25"), // blue
			Secondary: lipgloss.Color("30"), // teal
			Accent:    lipgloss.Color("93"), // violet
			Muted:     lipgloss.Color("245"),
			Text:      lipgloss.Color("235"),
			Warning:   lipgloss.Color("130"),
			Error:     lipgloss.Color("124"),
		}
	}
}

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Lists
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowTime     lipgloss.Style
	RowPerson   lipgloss.Style
	RowDetail   lipgloss.Style

	// Reminders
	ReminderToday lipgloss.Style
	ReminderSoon  lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles builds the TUI styles from a theme palette.
func NewStyles(p Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.Muted),

		RowSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowTime: lipgloss.NewStyle().
			Foreground(p.Secondary),
		RowPerson: lipgloss.NewStyle().
			Foreground(p.Primary),
		RowDetail: lipgloss.NewStyle().
			Foreground(p.Muted),

		ReminderToday: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		ReminderSoon: lipgloss.NewStyle().
			Foreground(p.Warning),

		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),
	}
}

// StylesFor is a convenience combining PaletteFor and NewStyles.
func StylesFor(theme model.Theme) Styles {
	return NewStyles(PaletteFor(theme))
}
