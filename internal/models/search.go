package models

import "sync"

// SearchState tracks the confirmed filter query. It is a view over the
// catalog and never mutates the underlying entries.
type SearchState struct {
	mu     sync.RWMutex
	query  string
	active bool
}

// NewSearchState creates an inactive search state.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// SetQuery confirms a query. An empty query deactivates the filter.
func (s *SearchState) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.active = query != ""
}

// Clear resets the state to inactive and restores the full list.
func (s *SearchState) Clear() {
	s.SetQuery("")
}

// Query returns the confirmed query and whether filtering is active.
func (s *SearchState) Query() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.active
}
