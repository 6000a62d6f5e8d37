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

	"golang.org/x/image/font/sfnt"
)

// FolderResult summarizes one custom folder load.
type FolderResult struct {
	Entries []models.FontEntry
	Skipped int
}

// FolderLoader reads user-selected directories and turns every parseable
// font file into a catalog entry. Files that fail to parse are skipped and
// counted, never fatal.
type FolderLoader struct {
	logger  logger.Logger
	tracker *timing.Tracker
}

func NewFolderLoader(log logger.Logger, tracker *timing.Tracker) *FolderLoader {
	return &FolderLoader{
		logger:  log,
		tracker: tracker,
	}
}

// LoadFolder scans a directory (non-recursively, matching the file dialog's
// view of it) for .ttf, .otf and .ttc files and extracts one entry per file.
func (l *FolderLoader) LoadFolder(ctx context.Context, dir string) (*FolderResult, error) {
	tctx := l.tracker.StartTiming("folder_load")
	defer func() {
		l.logger.Debug("FolderLoader", "folder load finished", map[string]interface{}{
			"path":        dir,
			"duration_ms": l.tracker.EndTiming(tctx).Milliseconds(),
		})
	}()

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %q: %w", dir, err)
	}

	result := &FolderResult{}
	for _, dirEntry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if dirEntry.IsDir() || !recognizedFontFile(dirEntry.Name()) {
			continue
		}

		path := filepath.Join(dir, dirEntry.Name())
		family, err := readFamilyName(path)
		if err != nil {
			result.Skipped++
			l.logger.Warning("FolderLoader", "font file skipped", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}

		result.Entries = append(result.Entries, models.FontEntry{
			Family: family,
			Source: models.SourceCustom,
			Path:   path,
		})
	}

	l.logger.Info("FolderLoader", "folder loaded", map[string]interface{}{
		"path":    dir,
		"fonts":   len(result.Entries),
		"skipped": result.Skipped,
	})

	return result, nil
}

// recognizedFontFile reports whether the file name carries a supported font
// extension. The comparison is case-insensitive.
func recognizedFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc":
		return true
	default:
		return false
	}
}

// readFamilyName parses a font file and extracts the family name from its
// name table. A font whose name table lacks a family entry falls back to the
// file name without extension.
func readFamilyName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read font file: %w", err)
	}

	parsed, err := parseFontData(data)
	if err != nil {
		return "", err
	}

	family, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil || strings.TrimSpace(family) == "" {
		base := filepath.Base(path)
		return strings.TrimSuffix(base, filepath.Ext(base)), nil
	}
	return strings.TrimSpace(family), nil
}

// parseFontData parses either a single font or the first face of a
// collection.
func parseFontData(data []byte) (*sfnt.Font, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font data: %w", err)
	}
	parsed, err := collection.Font(0)
	if err != nil {
		return nil, fmt.Errorf("failed to open first collection face: %w", err)
	}
	return parsed, nil
}
