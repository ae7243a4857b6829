package settings

import (
	"sync"

	"github.com/iiroan/moderntranslator/internal/i18n"
)

// Dispatcher is the set of mutations the settings screen may issue.
type Dispatcher interface {
	ToggleSetting(name Name) error
	UpdateSetting(name Name, value any) error
	UpdateShouldShowAd(show bool)
	UpdateStrings(langID string) error
	OpenSnackbar(message string)
}

// State is an immutable view of everything the settings screen renders.
type State struct {
	Settings     Record
	ShouldShowAd bool
	Strings      i18n.Strings
}

// Store is the process-wide preferences container. All mutation is serialised.
type Store struct {
	publishMu sync.Mutex
	mu        sync.Mutex

	state         State
	notifications []string
	subscribers   []func(State)
}

var _ Dispatcher = (*Store)(nil)

// NewStore creates a store holding initial. A nil string table is loaded
// from the record's display language.
func NewStore(initial State) *Store {
	initial.Settings = initial.Settings.Normalize()
	if initial.Strings == nil {
		initial.Strings = i18n.MustLoad(initial.Settings.DisplayLanguage)
	}
	return &Store{state: initial}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every mutation.
// fn must not mutate the store.
func (s *Store) Subscribe(fn func(State)) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) mutate(fn func(*State) error) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	next := s.state
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()

	for _, sub := range s.subscribers {
		sub(next)
	}
	return nil
}

// ToggleSetting flips a boolean setting.
func (s *Store) ToggleSetting(name Name) error {
	return s.mutate(func(st *State) error {
		rec, err := st.Settings.Toggle(name)
		if err != nil {
			return err
		}
		st.Settings = rec
		return nil
	})
}

// UpdateSetting replaces a setting value.
func (s *Store) UpdateSetting(name Name, value any) error {
	return s.mutate(func(st *State) error {
		rec, err := st.Settings.Update(name, value)
		if err != nil {
			return err
		}
		st.Settings = rec
		return nil
	})
}

// UpdateShouldShowAd sets the ad visibility flag.
func (s *Store) UpdateShouldShowAd(show bool) {
	_ = s.mutate(func(st *State) error {
		st.ShouldShowAd = show
		return nil
	})
}

// UpdateStrings swaps the active string table for langID.
func (s *Store) UpdateStrings(langID string) error {
	table, err := i18n.Load(langID)
	if err != nil {
		return err
	}
	return s.mutate(func(st *State) error {
		st.Strings = table
		return nil
	})
}

// OpenSnackbar queues a transient notification.
func (s *Store) OpenSnackbar(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, message)
}

// Notifications drains the queued notifications in arrival order.
func (s *Store) Notifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}
