package styles

import "github.com/opencode-ai/themetoggle/internal/theme"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	AccentText string
	Focus      string
	Rating     string
	Track      string
	Knob       string
}

// Theme bundles a palette with the root marker that selects it.
type Theme struct {
	Name   string
	Marker theme.Mode
	Tokens ThemeTokens
}

// Themes lists available palettes by marker.
var Themes = map[theme.Mode]Theme{
	theme.ModeDark:  DarkTheme,
	theme.ModeLight: LightTheme,
}

// ForMode returns the palette for mode, falling back to dark.
func ForMode(mode theme.Mode) Theme {
	if t, ok := Themes[mode]; ok {
		return t
	}
	return DarkTheme
}
