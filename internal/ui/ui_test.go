package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kweitzel/clockface/internal/battery"
	"github.com/kweitzel/clockface/internal/clock"
	"github.com/kweitzel/clockface/internal/prefs"
)

func testModel(store *prefs.Store) Model {
	return NewModel(context.Background(), store, nil, battery.Reading{Percent: 87, Known: true})
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTickUpdatesReadouts(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	updated, _ := model.Update(TickMsg{Time: "13:05:09", Date: "Thursday, 07 March 2024"})
	view := updated.(Model).View()

	assert.Contains(t, view, "13:05:09")
	assert.Contains(t, view, "Thursday, 07 March 2024")
}

func TestViewShowsBattery(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	assert.Contains(t, model.View(), "87%")
}

func TestViewShowsUnknownBatteryPlaceholder(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := NewModel(context.Background(), store, nil, battery.Reading{})

	assert.Contains(t, model.View(), "--%")
}

func TestBatteryMsgReplacesReading(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	updated, _ := model.Update(BatteryMsg{Percent: 42, Known: true})

	assert.Contains(t, updated.(Model).View(), "42%")
}

func TestThemeKeyTogglesDarkMode(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	// The toggle lands in the store immediately, no tick involved.
	model.Update(keyMsg('t'))
	assert.False(t, store.DarkMode())

	model.Update(keyMsg('t'))
	assert.True(t, store.DarkMode())
}

func TestHourKeyTogglesFormat(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	model.Update(keyMsg('h'))
	assert.Equal(t, clock.FormatTwelve, store.HourFormat())

	model.Update(keyMsg('h'))
	assert.Equal(t, clock.FormatTwentyFour, store.HourFormat())
}

func TestQuitKeyQuits(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	_, cmd := model.Update(keyMsg('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeIsRemembered(t *testing.T) {
	store := prefs.New(true, clock.FormatTwentyFour)
	model := testModel(store)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := updated.(Model)

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}
