// Package session holds per-session scenario snapshots: an opaque
// key-value store with last-write-wins semantics, created when a
// session first saves and discarded when the session ends. Nothing
// here survives a process restart.
package session

import (
	"sort"
	"sync"
	"time"
)

// Snapshot is one saved scenario.
type Snapshot struct {
	Name            string    `json:"name"`
	Domain          string    `json:"domain"`
	Issue           string    `json:"issue"`
	TimeToAttention string    `json:"time_to_attention"`
	RULDays         int       `json:"rul_days"`
	SavedAt         time.Time `json:"saved_at"`
}

// Store is safe for concurrent use by API handlers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]Snapshot
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]map[string]Snapshot),
	}
}

// Save records a snapshot under (session, snapshot.Name), replacing
// any previous snapshot with the same name.
func (s *Store) Save(session string, snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[session] == nil {
		s.sessions[session] = make(map[string]Snapshot)
	}
	s.sessions[session][snap.Name] = snap
}

// Get returns the named snapshot, if present.
func (s *Store) Get(session, name string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.sessions[session][name]
	return snap, ok
}

// List returns the session's snapshots ordered by save time.
func (s *Store) List(session string) []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snaps := make([]Snapshot, 0, len(s.sessions[session]))
	for _, snap := range s.sessions[session] {
		snaps = append(snaps, snap)
	}
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].SavedAt.Before(snaps[j].SavedAt)
	})
	return snaps
}

// Clear ends a session and drops all of its snapshots.
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
}
