package search

import (
	"strings"
	"sync"
)

// CollectionPath marks the pages where the search bar may appear.
const CollectionPath = "/collection"

// Snapshot is a copy of the search state.
type Snapshot struct {
	Query   string `json:"query"`
	Visible bool   `json:"visible"`
}

// State holds a shopper's free-text query and whether the search bar is shown.
type State struct {
	mu      sync.RWMutex
	query   string
	visible bool
}

// New returns an empty, hidden search state.
func New() *State {
	return &State{}
}

// SetQuery replaces the query text.
func (s *State) SetQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

// Clear resets the query to empty.
func (s *State) Clear() {
	s.SetQuery("")
}

// Show marks the search bar visible.
func (s *State) Show() {
	s.setVisible(true)
}

// Hide marks the search bar hidden.
func (s *State) Hide() {
	s.setVisible(false)
}

func (s *State) setVisible(v bool) {
	s.mu.Lock()
	s.visible = v
	s.mu.Unlock()
}

// Query returns the current query text.
func (s *State) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Snapshot returns query and visibility read together.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Query: s.query, Visible: s.visible}
}

// VisibleOn reports whether the search bar renders on path: the flag must be
// set and the path must belong to the collection page.
func (s *State) VisibleOn(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible && strings.Contains(path, CollectionPath)
}
