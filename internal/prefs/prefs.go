package prefs

import (
	"sync"

	"github.com/kweitzel/clockface/internal/clock"
)

// Store holds the two user toggles for the screen. It is injected where
// needed instead of living in a process-wide global, and notifies
// subscribers on every overwrite so the display can re-render.
//
// Reads are safe from the engine goroutine while toggles happen on the
// UI loop.
type Store struct {
	mu         sync.RWMutex
	darkMode   bool
	hourFormat clock.Format
	subs       []func()
}

func New(darkMode bool, hourFormat clock.Format) *Store {
	return &Store{
		darkMode:   darkMode,
		hourFormat: hourFormat,
	}
}

func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.darkMode
}

// SetDarkMode overwrites the theme toggle unconditionally and notifies.
func (s *Store) SetDarkMode(value bool) {
	s.mu.Lock()
	s.darkMode = value
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()

	notify(subs)
}

func (s *Store) HourFormat() clock.Format {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hourFormat
}

// SetHourFormat overwrites the hour-format toggle unconditionally and
// notifies. The engine reads the store on every tick, so the new format
// shows up on the next tick.
func (s *Store) SetHourFormat(value clock.Format) {
	s.mu.Lock()
	s.hourFormat = value
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()

	notify(subs)
}

// Subscribe registers a callback invoked after every overwrite. Callbacks
// run outside the store lock, so they may read the store freely.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
