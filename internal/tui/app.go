// Package tui implements the theme toggle terminal user interface.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themetoggle/internal/logging"
	"github.com/opencode-ai/themetoggle/internal/surface"
	"github.com/opencode-ai/themetoggle/internal/theme"
	"github.com/opencode-ai/themetoggle/internal/themesync"
	"github.com/opencode-ai/themetoggle/internal/tui/components"
	"github.com/opencode-ai/themetoggle/internal/tui/styles"
)

// Config wires the TUI to its collaborators.
type Config struct {
	// Store is the theme store. A new dark store is created when nil.
	Store *theme.Store

	// Root is the rendering surface root. A new one is created when nil.
	Root *surface.Root

	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool

	// Logger overrides the component logger.
	Logger *zerolog.Logger
}

// Run launches the TUI and blocks until it exits.
func Run(cfg Config) error {
	store := cfg.Store
	if store == nil {
		store = theme.NewStore()
	}
	root := cfg.Root
	if root == nil {
		root = surface.NewRoot()
	}
	logger := logging.Component("tui")
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	if err := themesync.New(root).Attach(store); err != nil && !errors.Is(err, theme.ErrSubscriberExists) {
		return fmt.Errorf("attach theme sync: %w", err)
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(newModel(store.Context, root), opts...)

	bridgeID := "tui-" + uuid.NewString()
	if err := store.Subscribe(bridgeID, &programBridge{program: program}); err != nil {
		return fmt.Errorf("subscribe tui: %w", err)
	}
	defer func() {
		_ = store.Unsubscribe(bridgeID)
	}()

	logger.Debug().Str("mode", store.Mode().String()).Int("subscribers", store.SubscriberCount()).Msg("starting tui")
	_, err := program.Run()
	return err
}

const (
	minWidth  = 50
	minHeight = 18
	cardWidth = 44
)

type model struct {
	width  int
	height int

	context func() theme.Context
	ctx     theme.Context
	root    *surface.Root
	styles  styles.Styles

	// styledAt is the root version the styles were derived from.
	styledAt uint64
	styled   bool

	toggle components.ThemeToggle
	card   components.Card
	keys   keyMap
	help   help.Model
	seq    uint64
}

func newModel(context func() theme.Context, root *surface.Root) model {
	m := model{
		context: context,
		root:    root,
		toggle:  components.NewThemeToggle(),
		card:    components.SampleCard(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// refresh re-reads the context snapshot and restyles from the root markers
// when the root class list changed since the last styling.
func (m *model) refresh() {
	m.ctx = m.context()
	version := m.root.Version()
	if m.styled && version == m.styledAt {
		return
	}
	m.styles = styles.ForMarkers(m.root.Classes())
	m.styledAt, m.styled = version, true
	m.help.Styles.ShortKey = m.styles.Accent
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Border
	m.help.Styles.FullKey = m.styles.Accent
	m.help.Styles.FullDesc = m.styles.Muted
	m.help.Styles.FullSeparator = m.styles.Border
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			context, toggle := m.context, m.toggle
			return m, activate(func() { toggle.Activate(context()) })
		case key.Matches(msg, m.keys.Dark):
			return m, activate(m.ctx.SetDark)
		case key.Matches(msg, m.keys.Light):
			return m, activate(m.ctx.SetLight)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case ThemeChangedMsg:
		if msg.Change.Seq < m.seq {
			return m, nil
		}
		m.seq = msg.Change.Seq
		m.refresh()
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return components.TooSmall(m.width, m.height, minWidth, minHeight).Render(m.styles) + "\n"
		}
	}

	toggleLine := m.toggle.Render(m.styles, m.ctx, true)
	if pad := cardWidth - lipgloss.Width(toggleLine); pad > 0 {
		toggleLine = strings.Repeat(" ", pad) + toggleLine
	}

	lines := []string{
		m.styles.Title.Render("Theme Switcher"),
		"",
		toggleLine,
		"",
		m.card.Render(m.styles),
		"",
		m.styles.Muted.Render(fmt.Sprintf("root class=%q", m.root.String())),
		"",
		m.help.View(m.keys),
	}

	body := strings.Join(lines, "\n")
	if m.width > 0 && m.height > 0 {
		return m.styles.App.Width(m.width).Height(m.height).Render(body)
	}
	return fmt.Sprintf("%s\n", body)
}
