package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themetoggle/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme     Theme
	App       lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Panel     lipgloss.Style
	Border    lipgloss.Style
	Focus     lipgloss.Style
	Rating    lipgloss.Style
	Price     lipgloss.Style
	Button    lipgloss.Style
	SwitchOn  lipgloss.Style
	SwitchOff lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles builds styles from the dark theme.
func DefaultStyles() Styles {
	return BuildStyles(DarkTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(t Theme) Styles {
	tokens := t.Tokens

	return Styles{
		Theme:     t,
		App:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Background)),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Rating:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Rating)),
		Price:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.AccentText)).Background(lipgloss.Color(tokens.Accent)).Padding(0, 2),
		SwitchOn:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Knob)).Background(lipgloss.Color(tokens.Accent)),
		SwitchOff: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Knob)).Background(lipgloss.Color(tokens.Track)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Rating)).Bold(true),
	}
}

// ForMarkers selects the style set whose marker is present in classes.
// Dark applies when neither or both markers are present.
func ForMarkers(classes []string) Styles {
	present := make(map[string]bool, len(classes))
	for _, c := range classes {
		present[c] = true
	}

	if present[theme.ModeLight.String()] && !present[theme.ModeDark.String()] {
		return BuildStyles(ForMode(theme.ModeLight))
	}
	return BuildStyles(ForMode(theme.ModeDark))
}
