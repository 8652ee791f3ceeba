package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

// Notice is a short status message with optional key hints.
type Notice struct {
	Title    string
	Subtitle string
	Hints    []Hint
}

// Hint pairs a key with what it does.
type Hint struct {
	Key         string
	Description string
}

// Render renders the notice with the given styles.
func (n Notice) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Warning.Render(n.Title)}
	if n.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(n.Subtitle))
	}
	for _, h := range n.Hints {
		line := "Press " + styleSet.Accent.Render(h.Key)
		if h.Description != "" {
			line += styleSet.Muted.Render(" to " + h.Description)
		}
		lines = append(lines, line+styleSet.Muted.Render("."))
	}
	return strings.Join(lines, "\n")
}

// TooSmall is shown instead of the switcher when the terminal is below minWidth x minHeight.
func TooSmall(width, height, minWidth, minHeight int) Notice {
	return Notice{
		Title:    fmt.Sprintf("Terminal too small (%dx%d).", width, height),
		Subtitle: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Hints:    []Hint{{Key: "q", Description: "quit"}},
	}
}
