package gui

import (
	"fmt"
	"image"

	"font-previewer/internal/logger"
	"font-previewer/internal/models"
	"font-previewer/internal/render"
	"font-previewer/internal/services"

	"fyne.io/fyne/v2"
)

// Controller coordinates between the view and the font catalog, search
// state, preview settings and background font service. All view mutation it
// triggers from worker callbacks goes through fyne.Do.
type Controller struct {
	view        *View
	catalog     *models.Catalog
	settings    *models.SettingsStore
	search      *models.SearchState
	fontService *services.FontService
	renderer    *render.Renderer
	logger      logger.Logger

	pendingFolders []string
	folderHistory  []string
}

func NewController(
	catalog *models.Catalog,
	settings *models.SettingsStore,
	search *models.SearchState,
	fontService *services.FontService,
	renderer *render.Renderer,
	log logger.Logger,
) *Controller {
	return &Controller{
		catalog:     catalog,
		settings:    settings,
		search:      search,
		fontService: fontService,
		renderer:    renderer,
		logger:      log,
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view
	view.ApplySettings(c.settings.Get())
	view.SetRowHeight(c.rowHeight())

	c.settings.Observe(c.onSettingsChanged)
}

// Start kicks off the initial system scan and, once it completes, loads any
// font directories remembered in the configuration.
func (c *Controller) Start(configuredFolders []string) {
	c.pendingFolders = append([]string(nil), configuredFolders...)

	c.view.SetStatus("Scanning system fonts...")
	c.view.SetProgress("[working]")

	c.fontService.ScanSystemFonts(func(result services.ScanResult) {
		fyne.Do(func() {
			c.view.SetProgress("")

			if result.Err != nil {
				c.handleError("System font scan failed", result.Err)
				c.view.SetStatus("System scan failed")
			} else {
				c.view.SetStatus(fmt.Sprintf("%d font families", c.catalog.Len()))
				c.logger.Info("Controller", "system scan completed", map[string]interface{}{
					"added": result.Added,
				})
			}

			c.refreshList()
			c.loadNextConfiguredFolder()
		})
	})
}

// loadNextConfiguredFolder chains the remembered folders one at a time,
// since folder loads are serialized.
func (c *Controller) loadNextConfiguredFolder() {
	if len(c.pendingFolders) == 0 {
		return
	}
	folder := c.pendingFolders[0]
	c.pendingFolders = c.pendingFolders[1:]

	err := c.fontService.LoadFolder(folder, func(result services.FolderLoadResult) {
		fyne.Do(func() {
			if result.Err != nil {
				c.logger.Warning("Controller", "configured folder load failed", map[string]interface{}{
					"folder": result.Folder,
					"error":  result.Err.Error(),
				})
			} else {
				c.recordFolder(result.Folder)
				c.refreshList()
			}
			c.loadNextConfiguredFolder()
		})
	})
	if err != nil {
		c.logger.Warning("Controller", "configured folder load rejected", map[string]interface{}{
			"folder": folder,
			"error":  err.Error(),
		})
	}
}

// LoadFolder opens the folder dialog and loads its fonts in the background.
func (c *Controller) LoadFolder() {
	c.view.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			c.handleError("Folder selection error", err)
			return
		}
		if uri == nil {
			return
		}

		folder := uri.Path()
		c.view.SetStatus("Loading fonts from folder...")
		c.view.SetProgress("[working]")
		c.view.SetFolderLoadEnabled(false)

		loadErr := c.fontService.LoadFolder(folder, func(result services.FolderLoadResult) {
			fyne.Do(func() {
				c.view.SetProgress("")
				c.view.SetFolderLoadEnabled(true)

				if result.Err != nil {
					c.handleError("Folder load error", result.Err)
					c.view.SetStatus("Folder load failed")
					return
				}

				c.view.SetStatus(fmt.Sprintf("Loaded %d fonts, skipped %d files", result.Added, result.Skipped))
				c.recordFolder(result.Folder)
				c.refreshList()

				c.logger.Info("Controller", "folder loaded", map[string]interface{}{
					"folder":  result.Folder,
					"added":   result.Added,
					"skipped": result.Skipped,
				})
			})
		})
		if loadErr != nil {
			c.view.SetProgress("")
			c.view.SetFolderLoadEnabled(true)
			c.view.SetStatus(loadErr.Error())
		}
	})
}

// UpdatePreviewText confirms the sample text from the entry field.
func (c *Controller) UpdatePreviewText(text string) {
	c.settings.SetSampleText(text)
}

// ChangeSize applies a new preview point size.
func (c *Controller) ChangeSize(size int) {
	c.settings.SetSize(size)
}

// ChangeDirection switches the text flow direction. Only rendering changes;
// the catalog never does.
func (c *Controller) ChangeDirection(direction models.Direction) {
	c.settings.SetDirection(direction)
}

// Search confirms a filter query; empty restores the full list.
func (c *Controller) Search(query string) {
	c.search.SetQuery(query)
	c.refreshList()

	if _, active := c.search.Query(); active {
		c.view.SetStatus(fmt.Sprintf("%d of %d families match %q",
			len(c.catalog.Filter(query)), c.catalog.Len(), query))
	} else {
		c.view.SetStatus(fmt.Sprintf("%d font families", c.catalog.Len()))
	}
}

// CopyFontName places a family name on the system clipboard.
func (c *Controller) CopyFontName(family string) {
	c.view.Clipboard().SetContent(family)
	c.view.SetStatus(fmt.Sprintf("Copied %q to clipboard", family))

	c.logger.Debug("Controller", "font name copied", map[string]interface{}{
		"family": family,
	})
}

// RequestPreview supplies a row's preview image: synchronously when cached,
// otherwise rendered on a worker goroutine and delivered via fyne.Do.
func (c *Controller) RequestPreview(entry models.FontEntry, deliver func(image.Image)) {
	settings := c.settings.Get()

	if img, ok := c.renderer.Cached(entry, settings); ok {
		deliver(img)
		return
	}

	go func() {
		img, err := c.renderer.Preview(entry, settings)
		if err != nil {
			c.logger.Warning("Controller", "preview render failed", map[string]interface{}{
				"family": entry.Family,
				"error":  err.Error(),
			})
			return
		}

		fyne.Do(func() {
			deliver(img)
		})
	}()
}

// onSettingsChanged reacts to any PreviewSettings mutation: stale previews
// are dropped and visible rows re-render with the new settings.
func (c *Controller) onSettingsChanged(settings models.PreviewSettings) {
	c.renderer.Invalidate()
	c.view.SetRowHeight(c.rowHeight())
	c.view.RefreshList()

	c.logger.Debug("Controller", "preview settings changed", map[string]interface{}{
		"size":      settings.Size,
		"direction": settings.Direction.String(),
	})
}

// recordFolder remembers a successfully loaded folder so it can be persisted
// and reloaded on the next launch. Runs on the UI goroutine.
func (c *Controller) recordFolder(folder string) {
	for _, known := range c.folderHistory {
		if known == folder {
			return
		}
	}
	c.folderHistory = append(c.folderHistory, folder)
}

// LoadedFolders returns the folders loaded during this session.
func (c *Controller) LoadedFolders() []string {
	return append([]string(nil), c.folderHistory...)
}

func (c *Controller) refreshList() {
	query, _ := c.search.Query()
	c.view.SetEntries(c.catalog.Filter(query))
}

func (c *Controller) rowHeight() float32 {
	return float32(render.RowHeight(c.settings.Get().Size))
}

func (c *Controller) handleError(title string, err error) {
	c.logger.Error("Controller", err, map[string]interface{}{
		"title": title,
	})

	c.view.ShowError(err)
}

// Shutdown releases controller resources.
func (c *Controller) Shutdown() {
	c.logger.Info("Controller", "shutdown completed", nil)
}
