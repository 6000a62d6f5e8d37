package gui

import (
	"os"
	"path/filepath"
	"testing"

	"font-previewer/internal/debug/timing"
	"font-previewer/internal/fonts"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"
	"font-previewer/internal/render"
	"font-previewer/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUI struct {
	controller *Controller
	view       *View
	catalog    *models.Catalog
	window     fyne.Window
}

func newTestUI(t *testing.T) *testUI {
	t.Helper()

	testApp := test.NewApp()
	window := testApp.NewWindow("test")

	log := logger.NewNop()
	tracker := timing.NewTracker()

	catalog := models.NewCatalog()
	settings := models.NewSettingsStore(models.PreviewSettings{})
	search := models.NewSearchState()

	fontService := services.NewFontService(
		fonts.NewScanner(log, tracker),
		fonts.NewFolderLoader(log, tracker),
		catalog,
		log,
	)
	renderer := render.NewRenderer(fonts.NewProvider(log), log)

	controller := NewController(catalog, settings, search, fontService, renderer, log)
	view := NewView(window)
	view.SetController(controller)
	controller.SetView(view)
	view.Show()

	t.Cleanup(fontService.Shutdown)

	return &testUI{
		controller: controller,
		view:       view,
		catalog:    catalog,
		window:     window,
	}
}

func seedCatalog(t *testing.T, catalog *models.Catalog) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.ttf")
	require.NoError(t, os.WriteFile(path, theme.DefaultTextFont().Content(), 0o644))

	catalog.Add(models.FontEntry{Family: "DejaVu Sans", Source: models.SourceSystem, Path: path})
	catalog.Add(models.FontEntry{Family: "DejaVu Serif", Source: models.SourceSystem, Path: path})
	catalog.Add(models.FontEntry{Family: "Liberation Mono", Source: models.SourceSystem, Path: path})
}

func TestSearchFiltersVisibleRows(t *testing.T) {
	ui := newTestUI(t)
	seedCatalog(t, ui.catalog)

	ui.controller.Search("")
	assert.Equal(t, 3, ui.view.previewList.Length())

	ui.controller.Search("dejavu")
	assert.Equal(t, 2, ui.view.previewList.Length())

	ui.controller.Search("MONO")
	assert.Equal(t, 1, ui.view.previewList.Length())

	// Clearing restores the full list.
	ui.controller.Search("")
	assert.Equal(t, 3, ui.view.previewList.Length())
}

func TestSearchNeverMutatesCatalog(t *testing.T) {
	ui := newTestUI(t)
	seedCatalog(t, ui.catalog)

	ui.controller.Search("nothing matches this")
	assert.Equal(t, 0, ui.view.previewList.Length())
	assert.Equal(t, 3, ui.catalog.Len())
}

func TestCopyFontNameSetsClipboard(t *testing.T) {
	ui := newTestUI(t)
	seedCatalog(t, ui.catalog)

	ui.controller.CopyFontName("DejaVu Sans")
	assert.Equal(t, "DejaVu Sans", ui.window.Clipboard().Content())

	ui.controller.CopyFontName("Liberation Mono")
	assert.Equal(t, "Liberation Mono", ui.window.Clipboard().Content())
}

func TestDirectionChangeKeepsEntrySet(t *testing.T) {
	ui := newTestUI(t)
	seedCatalog(t, ui.catalog)
	ui.controller.Search("")

	before := ui.catalog.Entries()

	ui.controller.ChangeDirection(models.RightToLeft)
	assert.Equal(t, before, ui.catalog.Entries())
	assert.Equal(t, 3, ui.view.previewList.Length())

	ui.controller.ChangeDirection(models.LeftToRight)
	assert.Equal(t, before, ui.catalog.Entries())
}

func TestChangeSizeClampsThroughSettings(t *testing.T) {
	ui := newTestUI(t)

	ui.controller.ChangeSize(500)
	assert.Equal(t, models.MaxPreviewSize, ui.controller.settings.Get().Size)

	ui.controller.ChangeSize(1)
	assert.Equal(t, models.MinPreviewSize, ui.controller.settings.Get().Size)
}

func TestLoadedFoldersDeduplicated(t *testing.T) {
	ui := newTestUI(t)

	ui.controller.recordFolder("/home/u/fonts")
	ui.controller.recordFolder("/home/u/fonts")
	ui.controller.recordFolder("/srv/fonts")

	assert.Equal(t, []string{"/home/u/fonts", "/srv/fonts"}, ui.controller.LoadedFolders())
}
