package widgets

import (
	"strconv"

	"font-previewer/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds every control of the main window except the preview list:
// sample text, size, direction, search, folder loading and status.
type Toolbar struct {
	container *fyne.Container

	textEntry       *widget.Entry
	sizeSlider      *widget.Slider
	sizeLabel       *widget.Label
	directionSelect *widget.Select
	searchEntry     *widget.Entry
	loadButton      *widget.Button
	updateButton    *widget.Button
	statusLabel     *widget.Label
	progressLabel   *widget.Label

	updateHandler          func(sampleText string)
	loadFolderHandler      func()
	searchHandler          func(query string)
	sizeChangeHandler      func(size int)
	directionChangeHandler func(direction models.Direction)
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.textEntry = widget.NewEntry()
	t.textEntry.SetPlaceHolder("Enter text to preview...")
	t.textEntry.SetText(models.DefaultSampleText)
	t.textEntry.OnSubmitted = func(string) { t.onUpdateClicked() }

	t.sizeLabel = widget.NewLabel("Size: " + strconv.Itoa(models.DefaultPreviewSize) + "pt")
	t.sizeSlider = widget.NewSlider(models.MinPreviewSize, models.MaxPreviewSize)
	t.sizeSlider.Step = 1
	t.sizeSlider.SetValue(models.DefaultPreviewSize)
	t.sizeSlider.OnChanged = t.onSizeChanged

	t.directionSelect = widget.NewSelect(
		[]string{models.LeftToRight.String(), models.RightToLeft.String()},
		t.onDirectionChanged,
	)
	t.directionSelect.SetSelected(models.LeftToRight.String())

	t.searchEntry = widget.NewEntry()
	t.searchEntry.SetPlaceHolder("Filter by family name...")
	t.searchEntry.OnSubmitted = t.onSearchSubmitted
	t.searchEntry.OnChanged = func(query string) {
		// Clearing the field restores the full list without needing Enter.
		if query == "" {
			t.onSearchSubmitted("")
		}
	}

	t.loadButton = widget.NewButton("Load Fonts from Folder", t.onLoadFolderClicked)
	t.loadButton.Importance = widget.HighImportance

	t.updateButton = widget.NewButton("Update Preview", t.onUpdateClicked)
	t.updateButton.Importance = widget.HighImportance

	t.statusLabel = widget.NewLabel("Ready")
	t.progressLabel = widget.NewLabel("")
}

func (t *Toolbar) buildLayout() {
	inputRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(t.sizeLabel, t.directionSelect, t.updateButton),
		t.textEntry,
	)

	sizeRow := t.sizeSlider

	searchRow := container.NewBorder(nil, nil, nil, t.loadButton, t.searchEntry)

	statusRow := container.NewHBox(t.statusLabel, t.progressLabel)

	t.container = container.NewVBox(
		inputRow,
		sizeRow,
		searchRow,
		widget.NewSeparator(),
		statusRow,
	)
}

func (t *Toolbar) onUpdateClicked() {
	if t.updateHandler != nil {
		t.updateHandler(t.textEntry.Text)
	}
}

func (t *Toolbar) onLoadFolderClicked() {
	if t.loadFolderHandler != nil {
		t.loadFolderHandler()
	}
}

func (t *Toolbar) onSearchSubmitted(query string) {
	if t.searchHandler != nil {
		t.searchHandler(query)
	}
}

func (t *Toolbar) onSizeChanged(value float64) {
	size := models.ClampSize(int(value))
	t.sizeLabel.SetText("Size: " + strconv.Itoa(size) + "pt")

	if t.sizeChangeHandler != nil {
		t.sizeChangeHandler(size)
	}
}

func (t *Toolbar) onDirectionChanged(name string) {
	if t.directionChangeHandler != nil {
		t.directionChangeHandler(models.DirectionFromString(name))
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// Event handler setters
func (t *Toolbar) SetUpdateHandler(handler func(string)) {
	t.updateHandler = handler
}

func (t *Toolbar) SetLoadFolderHandler(handler func()) {
	t.loadFolderHandler = handler
}

func (t *Toolbar) SetSearchHandler(handler func(string)) {
	t.searchHandler = handler
}

func (t *Toolbar) SetSizeChangeHandler(handler func(int)) {
	t.sizeChangeHandler = handler
}

func (t *Toolbar) SetDirectionChangeHandler(handler func(models.Direction)) {
	t.directionChangeHandler = handler
}

// UI state management
func (t *Toolbar) SetStatus(status string) {
	fyne.Do(func() {
		t.statusLabel.SetText(status)
	})
}

func (t *Toolbar) SetProgress(progress string) {
	fyne.Do(func() {
		t.progressLabel.SetText(progress)
	})
}

// ApplySettings reflects externally loaded settings (config file) into the
// controls without firing change handlers twice.
func (t *Toolbar) ApplySettings(settings models.PreviewSettings) {
	fyne.Do(func() {
		t.textEntry.SetText(settings.SampleText)
		t.sizeSlider.SetValue(float64(settings.Size))
		t.sizeLabel.SetText("Size: " + strconv.Itoa(settings.Size) + "pt")
		t.directionSelect.SetSelected(settings.Direction.String())
	})
}

// SampleText returns the current content of the preview text entry.
func (t *Toolbar) SampleText() string {
	return t.textEntry.Text
}

func (t *Toolbar) DisableFolderLoad() {
	fyne.Do(func() {
		t.loadButton.Disable()
	})
}

func (t *Toolbar) EnableFolderLoad() {
	fyne.Do(func() {
		t.loadButton.Enable()
	})
}
