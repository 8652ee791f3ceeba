package styles

import "github.com/opencode-ai/themetoggle/internal/theme"

// DarkTheme is selected by the "dark" root marker.
var DarkTheme = Theme{
	Name:   "dark",
	Marker: theme.ModeDark,
	Tokens: ThemeTokens{
		Background: "#1F2937",
		Panel:      "#111827",
		Text:       "#F9FAFB",
		TextMuted:  "#9CA3AF",
		Border:     "#374151",
		Accent:     "#2563EB",
		AccentText: "#FFFFFF",
		Focus:      "#93C5FD",
		Rating:     "#FACC15",
		Track:      "#4B5563",
		Knob:       "#FFFFFF",
	},
}
