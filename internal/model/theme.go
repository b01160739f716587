package model

// Theme selects the display palette. Stored as a plain string so unknown
// values from older backups degrade to the default instead of failing decode.
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeRainbow Theme = "rainbow"
)

// DefaultTheme is used when no theme has been persisted.
const DefaultTheme = ThemeLight

// Known reports whether the theme is one of the built-in palettes.
func (t Theme) Known() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeRainbow:
		return true
	}
	return false
}

// DisplayName returns the user-facing name of the theme.
func (t Theme) DisplayName() string {
	switch t {
	case ThemeDark:
		return "Dark"
	case ThemeRainbow:
		return "Rainbow"
	default:
		return "Light"
	}
}
