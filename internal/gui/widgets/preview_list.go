package widgets

import (
	"image"
	"sync"

	"font-previewer/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// RenderRequest asks the controller for a preview image. The deliver
// callback must be invoked on the UI goroutine.
type RenderRequest func(entry models.FontEntry, deliver func(image.Image))

// PreviewList is the virtualized list of font preview rows. It only ever
// holds widgets for the visible slice, so catalogs with hundreds of system
// fonts scroll without stalling.
type PreviewList struct {
	list *widget.List

	mu          sync.RWMutex
	entries     []models.FontEntry
	rowHeight   float32
	labelHeight float32

	renderRequest RenderRequest
	copyHandler   func(family string)
}

func NewPreviewList() *PreviewList {
	pl := &PreviewList{
		rowHeight:   40,
		labelHeight: widget.NewLabel("Ag").MinSize().Height,
	}
	pl.list = widget.NewList(pl.length, pl.createRow, pl.updateRow)
	return pl
}

func (pl *PreviewList) length() int {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return len(pl.entries)
}

func (pl *PreviewList) createRow() fyne.CanvasObject {
	return NewPreviewRow()
}

func (pl *PreviewList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	pl.mu.RLock()
	if id < 0 || id >= len(pl.entries) {
		pl.mu.RUnlock()
		return
	}
	entry := pl.entries[id]
	height := pl.rowHeight
	request := pl.renderRequest
	pl.mu.RUnlock()

	row := obj.(*PreviewRow)
	row.SetCopyHandler(pl.copyHandler)
	row.ShowEntry(entry.Family, height)

	if request != nil {
		request(entry, func(img image.Image) {
			row.ShowPreview(entry.Family, img)
		})
	}
}

// SetRenderRequest installs the preview image source.
func (pl *PreviewList) SetRenderRequest(request RenderRequest) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.renderRequest = request
}

// SetCopyHandler installs the context-menu copy action for all rows.
func (pl *PreviewList) SetCopyHandler(handler func(string)) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.copyHandler = handler
}

// SetEntries replaces the visible entry set and refreshes the list.
func (pl *PreviewList) SetEntries(entries []models.FontEntry) {
	pl.mu.Lock()
	pl.entries = entries
	pl.mu.Unlock()

	pl.list.Refresh()
	pl.applyRowHeights()
}

// SetRowHeight adjusts the placeholder height used before a preview image
// arrives, following the configured point size.
func (pl *PreviewList) SetRowHeight(height float32) {
	pl.mu.Lock()
	pl.rowHeight = height
	pl.mu.Unlock()

	pl.list.Refresh()
	pl.applyRowHeights()
}

// applyRowHeights sizes every list item to fit the label plus the preview
// image; the list otherwise sizes rows from the empty row template.
func (pl *PreviewList) applyRowHeights() {
	pl.mu.RLock()
	count := len(pl.entries)
	total := pl.labelHeight + pl.rowHeight + 3*theme.Padding()
	pl.mu.RUnlock()

	for i := 0; i < count; i++ {
		pl.list.SetItemHeight(i, total)
	}
}

// Refresh redraws the visible rows, re-requesting their previews.
func (pl *PreviewList) Refresh() {
	pl.list.Refresh()
}

// Length reports the number of entries currently shown.
func (pl *PreviewList) Length() int {
	return pl.length()
}

// GetWidget returns the underlying canvas object for layout.
func (pl *PreviewList) GetWidget() fyne.CanvasObject {
	return pl.list
}
