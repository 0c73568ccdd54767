package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kweitzel/clockface/internal/clock"
)

func TestStoreDefaults(t *testing.T) {
	store := New(true, clock.FormatTwentyFour)

	assert.True(t, store.DarkMode())
	assert.Equal(t, clock.FormatTwentyFour, store.HourFormat())
}

func TestSetDarkModeOverwrites(t *testing.T) {
	store := New(true, clock.FormatTwentyFour)

	store.SetDarkMode(false)
	assert.False(t, store.DarkMode())

	// Unconditional overwrite: setting the same value again is fine.
	store.SetDarkMode(false)
	assert.False(t, store.DarkMode())
}

func TestSetHourFormatOverwrites(t *testing.T) {
	store := New(true, clock.FormatTwentyFour)

	store.SetHourFormat(clock.FormatTwelve)
	assert.Equal(t, clock.FormatTwelve, store.HourFormat())
}

func TestSubscribeNotifiesOnEveryOverwrite(t *testing.T) {
	store := New(true, clock.FormatTwentyFour)

	notified := 0
	store.Subscribe(func() {
		notified++
	})

	store.SetDarkMode(false)
	store.SetDarkMode(false)
	store.SetHourFormat(clock.FormatTwelve)

	assert.Equal(t, 3, notified)
}

func TestSubscriberMayReadTheStore(t *testing.T) {
	store := New(true, clock.FormatTwentyFour)

	var seenDark bool
	var seenFormat clock.Format

	store.Subscribe(func() {
		seenDark = store.DarkMode()
		seenFormat = store.HourFormat()
	})

	store.SetDarkMode(false)
	assert.False(t, seenDark)

	store.SetHourFormat(clock.FormatTwelve)
	assert.Equal(t, clock.FormatTwelve, seenFormat)
}

func TestMultipleSubscribers(t *testing.T) {
	store := New(false, clock.FormatTwelve)

	first := 0
	second := 0
	store.Subscribe(func() { first++ })
	store.Subscribe(func() { second++ })

	store.SetDarkMode(true)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
