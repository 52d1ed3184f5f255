// Package tracker holds per-session user state: workout history, goals,
// and progress snapshots. State lives in memory for the process lifetime;
// there is no persistence layer and the store is not safe for concurrent
// use.
package tracker

import (
	"log/slog"
	"sort"

	"github.com/claude/fitlog/internal/models"
)

// NotifyFunc is called exactly once when a goal transitions to achieved.
type NotifyFunc func(userName string, goal Goal)

// Store is the session's user registry, keyed by normalized user name.
// It is constructed by the caller and passed into the surfaces that need
// it; nothing in this package keeps package-level state.
type Store struct {
	users map[string]*User
	log   *slog.Logger

	// Notify, when set, receives goal-achievement events. The slog record
	// is emitted either way.
	Notify NotifyFunc
}

// NewStore creates an empty session store.
func NewStore(log *slog.Logger) *Store {
	return &Store{
		users: make(map[string]*User),
		log:   log,
	}
}

// Get returns the user with the given name, matched case-insensitively.
func (s *Store) Get(name string) (*User, bool) {
	u, ok := s.users[models.NormalizeKey(name)]
	return u, ok
}

// GetOrCreate returns the existing user with the given name or creates
// one with the supplied profile. Creation validates the profile.
func (s *Store) GetOrCreate(name string, weightKg float64, level models.FitnessLevel) (*User, error) {
	if u, ok := s.Get(name); ok {
		return u, nil
	}
	u, err := newUser(name, weightKg, level, s)
	if err != nil {
		return nil, err
	}
	s.users[models.NormalizeKey(name)] = u
	s.log.Info("user created", "name", name, "weight_kg", weightKg, "fitness_level", string(level))
	return u, nil
}

// Names returns all registered user display names, sorted.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered users.
func (s *Store) Len() int { return len(s.users) }
