package widgets

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PreviewRow is one list row: the family name in bold above the rendered
// sample. Right-click opens a context menu with a copy action.
type PreviewRow struct {
	widget.BaseWidget

	nameLabel *widget.Label
	preview   *canvas.Image

	family      string
	copyHandler func(family string)
}

func NewPreviewRow() *PreviewRow {
	row := &PreviewRow{
		nameLabel: widget.NewLabel(""),
		preview:   canvas.NewImageFromImage(nil),
	}
	row.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.preview.FillMode = canvas.ImageFillContain
	row.preview.ScaleMode = canvas.ImageScaleSmooth

	row.ExtendBaseWidget(row)
	return row
}

func (r *PreviewRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(r.nameLabel, r.preview)
	return widget.NewSimpleRenderer(container.NewPadded(content))
}

// SetCopyHandler installs the action behind "Copy Font Name".
func (r *PreviewRow) SetCopyHandler(handler func(string)) {
	r.copyHandler = handler
}

// ShowEntry binds the row to a family and clears any previous preview image;
// rows are recycled by the list.
func (r *PreviewRow) ShowEntry(family string, rowHeight float32) {
	r.family = family
	r.nameLabel.SetText(family)
	r.preview.Image = nil
	r.preview.SetMinSize(fyne.NewSize(10, rowHeight))
	r.preview.Refresh()
}

// ShowPreview applies a rendered image, but only if the row is still bound
// to the same family the render was requested for.
func (r *PreviewRow) ShowPreview(family string, img image.Image) {
	if family != r.family || img == nil {
		return
	}

	bounds := img.Bounds()
	r.preview.Image = img
	r.preview.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	r.preview.Refresh()
}

// Family returns the family the row currently shows.
func (r *PreviewRow) Family() string {
	return r.family
}

// TappedSecondary pops the context menu on right-click.
func (r *PreviewRow) TappedSecondary(event *fyne.PointEvent) {
	if r.copyHandler == nil {
		return
	}

	family := r.family
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Copy Font Name", func() {
			r.copyHandler(family)
		}),
	)

	targetCanvas := fyne.CurrentApp().Driver().CanvasForObject(r)
	if targetCanvas == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(menu, targetCanvas, event.AbsolutePosition)
}
