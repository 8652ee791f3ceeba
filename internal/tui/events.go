package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themetoggle/internal/theme"
)

// ThemeChangedMsg carries a committed theme change into the event loop.
type ThemeChangedMsg struct {
	Change theme.Change
}

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// programBridge forwards store changes to the running program.
// Initial deliveries are dropped: the model is built from the same snapshot,
// and Send would block before the program starts reading messages.
type programBridge struct {
	program sender
}

var _ theme.Subscriber = (*programBridge)(nil)

// OnThemeChange implements theme.Subscriber.
func (b *programBridge) OnThemeChange(change theme.Change) {
	if change.Initial || b.program == nil {
		return
	}
	b.program.Send(ThemeChangedMsg{Change: change})
}

// activate returns a command that runs fn off the event loop. The store then
// notifies the bridge, which delivers ThemeChangedMsg back to Update.
func activate(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}
