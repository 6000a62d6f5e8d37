package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"font-previewer/internal/debug/timing"
	"font-previewer/internal/fonts"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(catalog *models.Catalog) *FontService {
	log := logger.NewNop()
	tracker := timing.NewTracker()
	return NewFontService(
		fonts.NewScanner(log, tracker),
		fonts.NewFolderLoader(log, tracker),
		catalog,
		log,
	)
}

func fontFolder(t *testing.T, valid, invalid int) string {
	t.Helper()
	dir := t.TempDir()
	content := theme.DefaultTextFont().Content()
	for i := 0; i < valid; i++ {
		name := filepath.Join(dir, "valid"+string(rune('a'+i))+".ttf")
		require.NoError(t, os.WriteFile(name, content, 0o644))
	}
	for i := 0; i < invalid; i++ {
		name := filepath.Join(dir, "invalid"+string(rune('a'+i))+".ttf")
		require.NoError(t, os.WriteFile(name, []byte("junk"), 0o644))
	}
	return dir
}

func TestLoadFolderAddsExactlyValidCount(t *testing.T) {
	catalog := models.NewCatalog()
	service := newTestService(catalog)
	defer service.Shutdown()

	dir := fontFolder(t, 3, 2)

	done := make(chan FolderLoadResult, 1)
	require.NoError(t, service.LoadFolder(dir, func(result FolderLoadResult) {
		done <- result
	}))

	select {
	case result := <-done:
		require.NoError(t, result.Err)
		// All copies share a family name, so the catalog dedups to one
		// entry; the per-file skip count still reflects the invalid files.
		assert.Equal(t, 1, result.Added)
		assert.Equal(t, 2, result.Skipped)
		assert.Equal(t, 1, catalog.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("folder load did not complete")
	}
}

func TestLoadFolderReportsMissingDirectory(t *testing.T) {
	service := newTestService(models.NewCatalog())
	defer service.Shutdown()

	done := make(chan FolderLoadResult, 1)
	require.NoError(t, service.LoadFolder(filepath.Join(t.TempDir(), "absent"), func(result FolderLoadResult) {
		done <- result
	}))

	select {
	case result := <-done:
		assert.Error(t, result.Err)
		assert.Equal(t, 0, result.Added)
	case <-time.After(5 * time.Second):
		t.Fatal("folder load did not complete")
	}
}

func TestLoadFolderSerialized(t *testing.T) {
	service := newTestService(models.NewCatalog())
	defer service.Shutdown()

	dir := fontFolder(t, 1, 0)

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	require.NoError(t, service.LoadFolder(dir, func(FolderLoadResult) {
		started <- struct{}{}
		<-release
	}))

	<-started
	// The first load is still inside its callback, so a second request is
	// rejected.
	err := service.LoadFolder(dir, nil)
	assert.Error(t, err)
	assert.True(t, service.IsBusy())

	close(release)
}

func TestShutdownCancelsWork(t *testing.T) {
	service := newTestService(models.NewCatalog())
	service.Shutdown()

	dir := fontFolder(t, 1, 0)

	done := make(chan FolderLoadResult, 1)
	require.NoError(t, service.LoadFolder(dir, func(result FolderLoadResult) {
		done <- result
	}))

	select {
	case result := <-done:
		assert.Error(t, result.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("folder load did not complete")
	}
}
