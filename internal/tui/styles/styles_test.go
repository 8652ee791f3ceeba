package styles

import (
	"testing"

	"github.com/opencode-ai/themetoggle/internal/theme"
)

func TestThemesCoverEveryMode(t *testing.T) {
	for _, mode := range theme.Modes() {
		th, ok := Themes[mode]
		if !ok {
			t.Fatalf("missing palette for %q", mode)
		}
		if th.Marker != mode {
			t.Fatalf("palette %q has marker %q", th.Name, th.Marker)
		}
	}
	if len(Themes) != len(theme.Modes()) {
		t.Fatalf("palette count mismatch: %d", len(Themes))
	}
}

func TestForMarkers(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{name: "dark", classes: []string{"dark"}, want: "dark"},
		{name: "light", classes: []string{"app", "light"}, want: "light"},
		{name: "none", classes: nil, want: "dark"},
		{name: "both", classes: []string{"dark", "light"}, want: "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForMarkers(tt.classes)
			if got.Theme.Name != tt.want {
				t.Fatalf("ForMarkers(%v) = %q, want %q", tt.classes, got.Theme.Name, tt.want)
			}
		})
	}
}

func TestForModeFallsBackToDark(t *testing.T) {
	if ForMode(theme.Mode("sepia")).Name != "dark" {
		t.Fatalf("expected dark fallback")
	}
	if ForMode(theme.ModeLight).Name != "light" {
		t.Fatalf("expected light palette")
	}
}

func TestPalettesDiffer(t *testing.T) {
	if DarkTheme.Tokens.Background == LightTheme.Tokens.Background {
		t.Fatalf("dark and light backgrounds must differ")
	}
	if DarkTheme.Tokens.Text == LightTheme.Tokens.Text {
		t.Fatalf("dark and light text colors must differ")
	}
}
