package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"font-previewer/internal/fonts"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const previewPadding = 4

type previewKey struct {
	path      string
	index     int
	text      string
	size      int
	direction models.Direction
}

// Renderer rasterizes the sample text for one font entry into an RGBA image.
// Rendered previews are cached per settings combination; the cache is cleared
// whenever settings change so stale sizes don't accumulate.
type Renderer struct {
	faces  *fonts.Provider
	logger logger.Logger

	mu         sync.Mutex
	cache      map[previewKey]*image.RGBA
	foreground color.Color
}

func NewRenderer(faces *fonts.Provider, log logger.Logger) *Renderer {
	return &Renderer{
		faces:      faces,
		logger:     log,
		cache:      make(map[previewKey]*image.RGBA),
		foreground: color.Black,
	}
}

// SetForeground sets the text color used for subsequently rendered previews.
func (r *Renderer) SetForeground(fg color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fg != nil {
		r.foreground = fg
	}
}

// Invalidate drops all cached previews.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[previewKey]*image.RGBA)
}

// Cached returns the cached preview for the entry under the given settings,
// if one exists. It never renders.
func (r *Renderer) Cached(entry models.FontEntry, settings models.PreviewSettings) (image.Image, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.cache[keyFor(entry, settings)]
	return img, ok
}

// Preview renders the sample text with the entry's face. Safe to call from
// worker goroutines.
func (r *Renderer) Preview(entry models.FontEntry, settings models.PreviewSettings) (image.Image, error) {
	key := keyFor(entry, settings)

	r.mu.Lock()
	if img, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return img, nil
	}
	fg := r.foreground
	r.mu.Unlock()

	face, err := r.faces.Face(entry, settings.Size)
	if err != nil {
		return nil, fmt.Errorf("no face for %q: %w", entry.Family, err)
	}

	text := VisualOrder(settings.SampleText, settings.Direction)

	measurer := font.Drawer{Face: face}
	advance := measurer.MeasureString(text)
	metrics := face.Metrics()

	width := advance.Ceil() + 2*previewPadding
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*previewPadding
	if width < 2*previewPadding+1 {
		width = 2*previewPadding + 1
	}
	if height < 2*previewPadding+1 {
		height = 2*previewPadding + 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	x := previewPadding
	if settings.Direction == models.RightToLeft {
		x = width - previewPadding - advance.Ceil()
	}

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, previewPadding+metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)

	r.mu.Lock()
	r.cache[key] = img
	r.mu.Unlock()

	return img, nil
}

func keyFor(entry models.FontEntry, settings models.PreviewSettings) previewKey {
	return previewKey{
		path:      entry.Path,
		index:     entry.Index,
		text:      settings.SampleText,
		size:      settings.Size,
		direction: settings.Direction,
	}
}

// RowHeight reports the pixel height previews have at a given point size, so
// the list can size rows before any image arrives.
func RowHeight(size int) int {
	// Ascent plus descent of common faces stays within ~1.4em.
	return int(float64(models.ClampSize(size))*1.4) + 2*previewPadding
}
