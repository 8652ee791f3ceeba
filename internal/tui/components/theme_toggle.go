// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/opencode-ai/themetoggle/internal/theme"
	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

// ThemeToggle is the switch that flips between dark and light.
type ThemeToggle struct {
	// Label is shown next to the switch.
	Label string
}

// NewThemeToggle returns a toggle with the default label.
func NewThemeToggle() ThemeToggle {
	return ThemeToggle{Label: "Toggle Theme"}
}

// Activate calls exactly one mutator: SetLight when ctx is dark, SetDark otherwise.
// It returns the mode that was requested.
func (t ThemeToggle) Activate(ctx theme.Context) theme.Mode {
	if ctx.IsDark() {
		if ctx.SetLight != nil {
			ctx.SetLight()
		}
		return theme.ModeLight
	}
	if ctx.SetDark != nil {
		ctx.SetDark()
	}
	return theme.ModeDark
}

// Render draws the switch. The knob sits right while dark is active.
func (t ThemeToggle) Render(styleSet styles.Styles, ctx theme.Context, focused bool) string {
	var track string
	if ctx.IsDark() {
		track = styleSet.SwitchOn.Render("    ●")
	} else {
		track = styleSet.SwitchOff.Render("●    ")
	}

	label := t.Label
	if label == "" {
		label = "Toggle Theme"
	}
	labelStyle := styleSet.Text
	if focused {
		labelStyle = styleSet.Focus
	}

	var b strings.Builder
	b.WriteString(track)
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(styleSet.Muted.Render("(" + ctx.Mode.String() + ")"))
	return b.String()
}
