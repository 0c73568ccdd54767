package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kweitzel/clockface/cmd/cli/config/settings"
	"github.com/kweitzel/clockface/cmd/cli/config/settings/icons"
	"github.com/kweitzel/clockface/internal/battery"
	"github.com/kweitzel/clockface/internal/clock"
	"github.com/kweitzel/clockface/internal/prefs"
	"github.com/kweitzel/clockface/internal/speech"
)

// TickMsg carries the engine's formatted readouts into the update loop.
type TickMsg clock.State

// BatteryMsg carries a fresh battery reading into the update loop.
type BatteryMsg battery.Reading

type keyMap struct {
	Theme key.Binding
	Hours key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Hours, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Hours},
		{k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Hours: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "12/24 hour"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the whole screen: the latest tick's readouts, the battery
// reading, and the two preference toggles. Preference toggles mutate the
// injected store; the theme is re-read on every View, so a toggle shows up
// without waiting for the next tick.
type Model struct {
	ctx       context.Context
	prefs     *prefs.Store
	announcer *speech.Announcer

	state clock.State
	batt  battery.Reading

	keys   keyMap
	help   help.Model
	width  int
	height int
}

func NewModel(
	ctx context.Context,
	store *prefs.Store,
	announcer *speech.Announcer,
	initial battery.Reading,
) Model {
	return Model{
		ctx:       ctx,
		prefs:     store,
		announcer: announcer,
		batt:      initial,
		keys:      newKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.state = clock.State(msg)

	case BatteryMsg:
		m.batt = battery.Reading(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Theme):
			m.prefs.SetDarkMode(!m.prefs.DarkMode())

		case key.Matches(msg, m.keys.Hours):
			if m.prefs.HourFormat() == clock.FormatTwentyFour {
				m.prefs.SetHourFormat(clock.FormatTwelve)
			} else {
				m.prefs.SetHourFormat(clock.FormatTwentyFour)
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	// Every rebuild offers the readout to the announcer; it only speaks
	// when the string actually changed.
	if m.announcer != nil {
		m.announcer.Announce(m.ctx, m.state.Time)
	}

	return m, nil
}

func (m Model) View() string {
	theme := settings.ForDarkMode(m.prefs.DarkMode())

	timeStyle := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	dateStyle := lipgloss.NewStyle().
		Foreground(theme.Foreground)

	battStyle := lipgloss.NewStyle().
		Foreground(theme.Faint)

	battLine := icons.Battery(m.batt.Percent, m.batt.Charging && m.batt.Known) + " " + m.batt.String()

	m.help.Styles.ShortKey = m.help.Styles.ShortKey.Foreground(theme.Foreground)
	m.help.Styles.ShortDesc = m.help.Styles.ShortDesc.Foreground(theme.Faint)

	face := lipgloss.JoinVertical(
		lipgloss.Center,
		timeStyle.Render(m.state.Time),
		dateStyle.Render(m.state.Date),
		"",
		battStyle.Render(battLine),
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return face
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		face,
		lipgloss.WithWhitespaceBackground(theme.Background),
	)
}
