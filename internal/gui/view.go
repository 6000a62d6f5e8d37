package gui

import (
	"font-previewer/internal/gui/widgets"
	"font-previewer/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// View handles all UI components and their layout.
type View struct {
	window     fyne.Window
	controller *Controller

	toolbar       *widgets.Toolbar
	previewList   *widgets.PreviewList
	mainContainer *fyne.Container
}

func NewView(window fyne.Window) *View {
	view := &View{
		window: window,
	}

	view.setupComponents()
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
}

func (v *View) setupComponents() {
	v.toolbar = widgets.NewToolbar()
	v.previewList = widgets.NewPreviewList()
}

func (v *View) setupLayout() {
	v.mainContainer = container.NewBorder(
		v.toolbar.GetContainer(),
		nil, nil, nil,
		v.previewList.GetWidget(),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.toolbar.SetUpdateHandler(v.controller.UpdatePreviewText)
	v.toolbar.SetLoadFolderHandler(v.controller.LoadFolder)
	v.toolbar.SetSearchHandler(v.controller.Search)
	v.toolbar.SetSizeChangeHandler(v.controller.ChangeSize)
	v.toolbar.SetDirectionChangeHandler(v.controller.ChangeDirection)

	v.previewList.SetCopyHandler(v.controller.CopyFontName)
	v.previewList.SetRenderRequest(v.controller.RequestPreview)
}

// List state passed through from the controller
func (v *View) SetEntries(entries []models.FontEntry) {
	v.previewList.SetEntries(entries)
}

func (v *View) SetRowHeight(height float32) {
	v.previewList.SetRowHeight(height)
}

func (v *View) RefreshList() {
	v.previewList.Refresh()
}

func (v *View) ApplySettings(settings models.PreviewSettings) {
	v.toolbar.ApplySettings(settings)
}

func (v *View) SetStatus(status string) {
	v.toolbar.SetStatus(status)
}

func (v *View) SetProgress(progress string) {
	v.toolbar.SetProgress(progress)
}

func (v *View) SetFolderLoadEnabled(enabled bool) {
	if enabled {
		v.toolbar.EnableFolderLoad()
	} else {
		v.toolbar.DisableFolderLoad()
	}
}

// Dialogs
func (v *View) ShowError(err error) {
	dialog.ShowError(err, v.window)
}

func (v *View) ShowFolderOpen(callback func(fyne.ListableURI, error)) {
	dialog.ShowFolderOpen(callback, v.window)
}

func (v *View) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, v.window)
}

// Window management
func (v *View) GetWindow() fyne.Window {
	return v.window
}

func (v *View) Clipboard() fyne.Clipboard {
	return v.window.Clipboard()
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}
