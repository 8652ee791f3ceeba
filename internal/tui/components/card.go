package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

const maxRating = 5

// Card is a product card. It renders from the style set and has no theme logic.
type Card struct {
	Title  string
	Image  string
	Rating float64
	Price  string
	Action string
	Width  int
}

// SampleCard returns the showcase card rendered below the toggle.
func SampleCard() Card {
	return Card{
		Title:  "Apple Watch Series 7 GPS, Aluminium Case, Starlight Sport",
		Image:  "[ product image ]",
		Rating: 4.0,
		Price:  "$599",
		Action: "Add to cart",
		Width:  44,
	}
}

// Render draws the card inside a bordered panel.
func (c Card) Render(styleSet styles.Styles) string {
	width := c.Width
	if width <= 0 {
		width = 40
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	lines := []string{
		styleSet.Muted.Render(center(c.Image, inner)),
		"",
		styleSet.Title.Width(inner).Render(c.Title),
		"",
		c.renderRating(styleSet),
		"",
		c.renderFooter(styleSet, inner),
	}

	return styleSet.Panel.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (c Card) renderRating(styleSet styles.Styles) string {
	full := int(c.Rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > maxRating {
		full = maxRating
	}
	stars := strings.Repeat("★", full) + strings.Repeat("☆", maxRating-full)
	return styleSet.Rating.Render(stars) + " " + styleSet.Accent.Render(fmt.Sprintf("%.1f", c.Rating))
}

func (c Card) renderFooter(styleSet styles.Styles, inner int) string {
	price := styleSet.Price.Render(c.Price)
	button := styleSet.Button.Render(c.Action)
	gap := inner - lipgloss.Width(price) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	return price + strings.Repeat(" ", gap) + button
}

func center(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text
}
