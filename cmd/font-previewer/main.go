package main

import (
	"log"

	"font-previewer/internal/config"
	"font-previewer/internal/debug/timing"
	"font-previewer/internal/fonts"
	"font-previewer/internal/gui"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"
	"font-previewer/internal/render"
	"font-previewer/internal/services"
	"font-previewer/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
)

const (
	AppName = "Font Previewer"
	AppID   = "com.fontpreviewer.font-previewer"
)

// Application bundles every wired component for lifecycle management.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     config.Config

	catalog     *models.Catalog
	settings    *models.SettingsStore
	controller  *gui.Controller
	view        *gui.View
	fontService *services.FontService
	faces       *fonts.Provider

	shutdownManager *shutdown.Manager
}

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnvironment())

	application, err := NewApplication(appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication wires models, services, controller and view together.
func NewApplication(appLogger logger.Logger) (*Application, error) {
	cfg := config.Load(appLogger)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	direction := models.DirectionFromString(cfg.Direction)
	if cfg.Direction == "" {
		direction = render.DetectDirection(cfg.SampleText)
	}

	tracker := timing.NewTracker()
	catalog := models.NewCatalog()
	settings := models.NewSettingsStore(models.PreviewSettings{
		SampleText: cfg.SampleText,
		Size:       cfg.PreviewSize,
		Direction:  direction,
	})
	search := models.NewSearchState()

	scanner := fonts.NewScanner(appLogger, tracker)
	loader := fonts.NewFolderLoader(appLogger, tracker)
	faces := fonts.NewProvider(appLogger)

	renderer := render.NewRenderer(faces, appLogger)
	renderer.SetForeground(theme.Color(theme.ColorNameForeground))

	fontService := services.NewFontService(scanner, loader, catalog, appLogger)

	controller := gui.NewController(catalog, settings, search, fontService, renderer, appLogger)
	view := gui.NewView(window)
	view.SetController(controller)
	controller.SetView(view)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		logger:      appLogger,
		cfg:         cfg,
		catalog:     catalog,
		settings:    settings,
		controller:  controller,
		view:        view,
		fontService: fontService,
		faces:       faces,
	}

	application.setupShutdown()
	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"window":    AppName,
		"sample":    cfg.SampleText,
		"size":      cfg.PreviewSize,
		"direction": direction.String(),
	})

	return application, nil
}

// Run shows the window, starts the background system scan and enters the
// Fyne event loop.
func (a *Application) Run() {
	a.shutdownManager.Listen(func() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	})

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.controller.Start(a.cfg.FontDirectories)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupShutdown() {
	manager := shutdown.NewManager(a.logger)
	manager.Register("controller", a.controller)
	manager.Register("font service", a.fontService)
	manager.Register("face provider", a.faces)
	manager.RegisterFunc("config", a.saveConfig)

	a.shutdownManager = manager
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.view.ShowConfirm(
			"Exit Application",
			"Are you sure you want to exit?",
			func(confirmed bool) {
				if confirmed {
					a.window.Close()
				}
			},
		)
	})

	a.window.SetOnClosed(func() {
		size := a.window.Canvas().Size()
		if size.Width > 0 && size.Height > 0 {
			a.cfg.WindowWidth = size.Width
			a.cfg.WindowHeight = size.Height
		}

		a.shutdownManager.Shutdown()
	})
}

// saveConfig persists the session's settings and loaded folders for the next
// launch.
func (a *Application) saveConfig() {
	settings := a.settings.Get()
	a.cfg.SampleText = settings.SampleText
	a.cfg.PreviewSize = settings.Size
	a.cfg.Direction = settings.Direction.String()
	a.cfg.FontDirectories = a.controller.LoadedFolders()

	if err := a.cfg.Save(); err != nil {
		a.logger.Warning("Application", "config save failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	a.logger.Debug("Application", "config saved", nil)
}
