package fonts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"font-previewer/internal/debug/timing"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"github.com/go-text/typesetting/fontscan"
)

// Scanner enumerates the font families installed on the host system.
type Scanner struct {
	logger  logger.Logger
	tracker *timing.Tracker
}

func NewScanner(log logger.Logger, tracker *timing.Tracker) *Scanner {
	return &Scanner{
		logger:  log,
		tracker: tracker,
	}
}

// ScanSystem walks the OS font directories via fontscan and collapses the
// discovered faces to one entry per distinguishable family name. The index
// built by fontscan is cached under the user cache directory, so repeat
// launches are fast.
func (s *Scanner) ScanSystem(ctx context.Context) ([]models.FontEntry, error) {
	tctx := s.tracker.StartTiming("system_scan")
	defer func() {
		s.logger.Debug("FontScanner", "system scan finished", map[string]interface{}{
			"duration_ms": s.tracker.EndTiming(tctx).Milliseconds(),
		})
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	footprints, err := fontscan.SystemFonts(nil, s.cacheDir())
	if err != nil {
		return nil, fmt.Errorf("system font enumeration failed: %w", err)
	}

	entries := make([]models.FontEntry, 0, len(footprints))
	seen := make(map[string]struct{}, len(footprints))

	for _, footprint := range footprints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		family := strings.TrimSpace(footprint.Family)
		if family == "" {
			continue
		}
		key := strings.ToLower(family)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		entries = append(entries, models.FontEntry{
			Family: family,
			Source: models.SourceSystem,
			Path:   footprint.Location.File,
			Index:  int(footprint.Location.Index),
		})
	}

	s.logger.Info("FontScanner", "system fonts enumerated", map[string]interface{}{
		"faces":    len(footprints),
		"families": len(entries),
	})

	return entries, nil
}

// cacheDir returns the directory fontscan uses for its index cache. Falling
// back to the temp dir keeps scanning functional on systems without a user
// cache directory.
func (s *Scanner) cacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		s.logger.Warning("FontScanner", "user cache dir unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return filepath.Join(os.TempDir(), "font-previewer")
	}
	return filepath.Join(base, "font-previewer")
}
