// Package theme holds the dark/light theme mode and the observable store that
// broadcasts it to consumers.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the visual theme selection.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// DefaultMode is the mode a store starts in.
const DefaultMode = ModeDark

// ErrInvalidMode is returned when a value is neither dark nor light.
var ErrInvalidMode = errors.New("invalid theme mode")

var modes = [...]Mode{ModeDark, ModeLight}

// Modes returns every known mode in canonical order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes[:])
	return out
}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}
	return mode, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeDark || m == ModeLight
}

func (m Mode) String() string {
	return string(m)
}
