package models

import (
	"sort"
	"strings"
	"sync"
)

// FontSource identifies where a font entry came from.
type FontSource int

const (
	// SourceSystem marks fonts enumerated from the operating system.
	SourceSystem FontSource = iota
	// SourceCustom marks fonts loaded from a user-selected folder.
	SourceCustom
)

func (s FontSource) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "system"
}

// FontEntry describes one previewable font family. Entries are immutable
// once stored in the catalog.
type FontEntry struct {
	Family string
	Source FontSource
	Path   string
	Index  int
}

// Catalog is the append-only repository of font entries. It is built once at
// startup and extended by folder loads; entries are never removed during a
// session. Uniqueness is by family name within a source.
type Catalog struct {
	mu      sync.RWMutex
	entries []FontEntry
	seen    map[string]struct{}
}

// NewCatalog creates an empty font catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make([]FontEntry, 0, 256),
		seen:    make(map[string]struct{}),
	}
}

func catalogKey(family string, source FontSource) string {
	return source.String() + "\x00" + strings.ToLower(family)
}

// Add stores an entry unless an entry with the same family and source is
// already present. It reports whether the entry was added.
func (c *Catalog) Add(entry FontEntry) bool {
	if entry.Family == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := catalogKey(entry.Family, entry.Source)
	if _, exists := c.seen[key]; exists {
		return false
	}
	c.seen[key] = struct{}{}
	c.entries = append(c.entries, entry)
	return true
}

// AddBatch stores all new entries from a scan and returns how many were
// actually added.
func (c *Catalog) AddBatch(entries []FontEntry) int {
	added := 0
	for _, entry := range entries {
		if c.Add(entry) {
			added++
		}
	}
	return added
}

// Entries returns a snapshot of the catalog sorted case-insensitively by
// family name.
func (c *Catalog) Entries() []FontEntry {
	c.mu.RLock()
	snapshot := make([]FontEntry, len(c.entries))
	copy(snapshot, c.entries)
	c.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return strings.ToLower(snapshot[i].Family) < strings.ToLower(snapshot[j].Family)
	})
	return snapshot
}

// Filter returns the entries whose family name contains the query,
// case-insensitively. An empty query returns the full sorted snapshot.
func (c *Catalog) Filter(query string) []FontEntry {
	all := c.Entries()
	if query == "" {
		return all
	}

	needle := strings.ToLower(query)
	matched := make([]FontEntry, 0, len(all))
	for _, entry := range all {
		if strings.Contains(strings.ToLower(entry.Family), needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Len reports the number of stored entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CatalogStats contains counts about stored entries.
type CatalogStats struct {
	SystemCount int
	CustomCount int
}

// GetStats returns per-source entry counts.
func (c *Catalog) GetStats() CatalogStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CatalogStats{}
	for _, entry := range c.entries {
		if entry.Source == SourceCustom {
			stats.CustomCount++
		} else {
			stats.SystemCount++
		}
	}
	return stats
}
