package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/themetoggle/internal/theme"
	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

type mutatorCounter struct {
	dark  int
	light int
}

func (c *mutatorCounter) context(mode theme.Mode) theme.Context {
	return theme.Context{
		Mode:     mode,
		SetDark:  func() { c.dark++ },
		SetLight: func() { c.light++ },
	}
}

func TestThemeToggleCallsExactlyOneMutator(t *testing.T) {
	tests := []struct {
		name      string
		mode      theme.Mode
		want      theme.Mode
		wantDark  int
		wantLight int
	}{
		{name: "dark to light", mode: theme.ModeDark, want: theme.ModeLight, wantLight: 1},
		{name: "light to dark", mode: theme.ModeLight, want: theme.ModeDark, wantDark: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &mutatorCounter{}
			got := NewThemeToggle().Activate(counter.context(tt.mode))
			if got != tt.want {
				t.Fatalf("Activate() = %q, want %q", got, tt.want)
			}
			if counter.dark != tt.wantDark || counter.light != tt.wantLight {
				t.Fatalf("mutator calls dark=%d light=%d", counter.dark, counter.light)
			}
		})
	}
}

func TestThemeToggleAgainstStore(t *testing.T) {
	store := theme.NewStore()
	toggle := NewThemeToggle()

	toggle.Activate(store.Context())
	if store.Mode() != theme.ModeLight {
		t.Fatalf("expected light, got %q", store.Mode())
	}
	toggle.Activate(store.Context())
	if store.Mode() != theme.ModeDark {
		t.Fatalf("expected dark, got %q", store.Mode())
	}
}

func TestThemeToggleRender(t *testing.T) {
	styleSet := styles.DefaultStyles()
	counter := &mutatorCounter{}

	dark := NewThemeToggle().Render(styleSet, counter.context(theme.ModeDark), false)
	if !strings.Contains(dark, "Toggle Theme") || !strings.Contains(dark, "(dark)") {
		t.Errorf("unexpected dark render: %s", dark)
	}

	light := ThemeToggle{}.Render(styles.BuildStyles(styles.LightTheme), counter.context(theme.ModeLight), true)
	if !strings.Contains(light, "Toggle Theme") || !strings.Contains(light, "(light)") {
		t.Errorf("unexpected light render: %s", light)
	}
	if counter.dark != 0 || counter.light != 0 {
		t.Errorf("render must not mutate theme")
	}
}
