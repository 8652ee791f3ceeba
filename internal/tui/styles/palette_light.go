package styles

import "github.com/opencode-ai/themetoggle/internal/theme"

// LightTheme is selected by the "light" root marker.
var LightTheme = Theme{
	Name:   "light",
	Marker: theme.ModeLight,
	Tokens: ThemeTokens{
		Background: "#FFFFFF",
		Panel:      "#F9FAFB",
		Text:       "#111827",
		TextMuted:  "#4B5563",
		Border:     "#E5E7EB",
		Accent:     "#1D4ED8",
		AccentText: "#FFFFFF",
		Focus:      "#1E40AF",
		Rating:     "#CA8A04",
		Track:      "#D1D5DB",
		Knob:       "#FFFFFF",
	},
}
