package models

import "sync"

// Direction selects the text flow used when rendering previews.
type Direction int

const (
	// LeftToRight lays the sample text out left to right.
	LeftToRight Direction = iota
	// RightToLeft lays the sample text out right to left.
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// DirectionFromString parses a direction name, defaulting to LTR.
func DirectionFromString(name string) Direction {
	if name == "RTL" {
		return RightToLeft
	}
	return LeftToRight
}

const (
	// MinPreviewSize is the smallest accepted preview point size.
	MinPreviewSize = 6
	// MaxPreviewSize is the largest accepted preview point size.
	MaxPreviewSize = 96
	// DefaultPreviewSize is the initial preview point size.
	DefaultPreviewSize = 24
	// DefaultSampleText mixes LTR and RTL script so both flows are visible.
	DefaultSampleText = "Hello مرحبا"
)

// ClampSize forces a point size into [MinPreviewSize, MaxPreviewSize].
func ClampSize(size int) int {
	if size < MinPreviewSize {
		return MinPreviewSize
	}
	if size > MaxPreviewSize {
		return MaxPreviewSize
	}
	return size
}

// PreviewSettings is the process-wide rendering configuration read by every
// visible preview row.
type PreviewSettings struct {
	SampleText string
	Size       int
	Direction  Direction
}

// SettingsStore holds the current PreviewSettings and notifies observers on
// every change. Mutation happens on the UI goroutine; reads may come from
// render workers.
type SettingsStore struct {
	mu        sync.RWMutex
	settings  PreviewSettings
	observers []func(PreviewSettings)
}

// NewSettingsStore creates a store with the given initial settings; zero
// values fall back to the defaults.
func NewSettingsStore(initial PreviewSettings) *SettingsStore {
	if initial.SampleText == "" {
		initial.SampleText = DefaultSampleText
	}
	if initial.Size == 0 {
		initial.Size = DefaultPreviewSize
	}
	initial.Size = ClampSize(initial.Size)

	return &SettingsStore{settings: initial}
}

// Get returns the current settings.
func (s *SettingsStore) Get() PreviewSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSampleText replaces the sample text. An empty string restores the
// default sample.
func (s *SettingsStore) SetSampleText(text string) {
	if text == "" {
		text = DefaultSampleText
	}
	s.mu.Lock()
	s.settings.SampleText = text
	current := s.settings
	s.mu.Unlock()

	s.notify(current)
}

// SetSize applies a new point size, clamped to the valid range.
func (s *SettingsStore) SetSize(size int) {
	s.mu.Lock()
	s.settings.Size = ClampSize(size)
	current := s.settings
	s.mu.Unlock()

	s.notify(current)
}

// SetDirection switches the text flow direction.
func (s *SettingsStore) SetDirection(direction Direction) {
	s.mu.Lock()
	s.settings.Direction = direction
	current := s.settings
	s.mu.Unlock()

	s.notify(current)
}

// Observe registers a callback invoked after every settings change.
func (s *SettingsStore) Observe(observer func(PreviewSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *SettingsStore) notify(current PreviewSettings) {
	s.mu.RLock()
	observers := make([]func(PreviewSettings), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, observer := range observers {
		observer(current)
	}
}
