package fonts

import (
	"fmt"
	"os"
	"sync"

	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const maxCachedFaces = 64

type faceKey struct {
	path  string
	index int
	size  int
}

// Provider lazily parses font files and builds sized faces for rendering.
// Parsed fonts are kept for the session; sized faces are bounded and evicted
// least-recently-used, since every size change would otherwise pile up faces
// for hundreds of families.
type Provider struct {
	logger logger.Logger

	mu     sync.Mutex
	fonts  map[string]*sfnt.Font
	faces  map[faceKey]font.Face
	recent []faceKey
}

func NewProvider(log logger.Logger) *Provider {
	return &Provider{
		logger: log,
		fonts:  make(map[string]*sfnt.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Face returns a rendering face for the entry at the given point size,
// clamped to the valid preview range.
func (p *Provider) Face(entry models.FontEntry, size int) (font.Face, error) {
	size = models.ClampSize(size)
	key := faceKey{path: entry.Path, index: entry.Index, size: size}

	p.mu.Lock()
	defer p.mu.Unlock()

	if face, ok := p.faces[key]; ok {
		p.touch(key)
		return face, nil
	}

	parsed, err := p.parsedFont(entry)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build face for %q at %dpt: %w", entry.Family, size, err)
	}

	p.store(key, face)
	return face, nil
}

// parsedFont returns the cached sfnt parse of the entry's file, reading it on
// first use. Caller holds p.mu.
func (p *Provider) parsedFont(entry models.FontEntry) (*sfnt.Font, error) {
	cacheKey := fmt.Sprintf("%s#%d", entry.Path, entry.Index)
	if parsed, ok := p.fonts[cacheKey]; ok {
		return parsed, nil
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %q: %w", entry.Path, err)
	}

	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font file %q: %w", entry.Path, err)
	}
	parsed, err := collection.Font(entry.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to open face %d of %q: %w", entry.Index, entry.Path, err)
	}

	p.fonts[cacheKey] = parsed

	p.logger.Debug("FaceProvider", "font parsed", map[string]interface{}{
		"path":  entry.Path,
		"index": entry.Index,
	})

	return parsed, nil
}

// store caches a face, evicting the least recently used one when the cache
// is full. Caller holds p.mu.
func (p *Provider) store(key faceKey, face font.Face) {
	if len(p.faces) >= maxCachedFaces && len(p.recent) > 0 {
		oldest := p.recent[0]
		p.recent = p.recent[1:]
		if evicted, ok := p.faces[oldest]; ok {
			_ = evicted.Close()
			delete(p.faces, oldest)
		}
	}

	p.faces[key] = face
	p.recent = append(p.recent, key)
}

// touch marks a face as recently used. Caller holds p.mu.
func (p *Provider) touch(key faceKey) {
	for i, existing := range p.recent {
		if existing == key {
			p.recent = append(p.recent[:i], p.recent[i+1:]...)
			p.recent = append(p.recent, key)
			return
		}
	}
}

// Shutdown closes all cached faces.
func (p *Provider) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, face := range p.faces {
		_ = face.Close()
		delete(p.faces, key)
	}
	p.recent = nil
	p.fonts = make(map[string]*sfnt.Font)
}
