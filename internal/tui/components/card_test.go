package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

func TestCardRender(t *testing.T) {
	styleSet := styles.DefaultStyles()
	result := SampleCard().Render(styleSet)

	for _, want := range []string{"Apple Watch", "$599", "Add to cart", "4.0", "★★★★☆"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in output, got: %s", want, result)
		}
	}
}

func TestCardRatingClamped(t *testing.T) {
	styleSet := styles.DefaultStyles()

	high := Card{Title: "x", Rating: 9, Price: "$1", Action: "Buy"}.Render(styleSet)
	if !strings.Contains(high, "★★★★★") || strings.Contains(high, "☆") {
		t.Errorf("expected five full stars, got: %s", high)
	}

	low := Card{Title: "x", Rating: -2, Price: "$1", Action: "Buy"}.Render(styleSet)
	if !strings.Contains(low, "☆☆☆☆☆") {
		t.Errorf("expected five empty stars, got: %s", low)
	}
}

func TestCardRendersInBothThemes(t *testing.T) {
	card := SampleCard()
	for _, th := range []styles.Theme{styles.DarkTheme, styles.LightTheme} {
		if out := card.Render(styles.BuildStyles(th)); !strings.Contains(out, "Add to cart") {
			t.Errorf("%s: missing call to action: %s", th.Name, out)
		}
	}
}
