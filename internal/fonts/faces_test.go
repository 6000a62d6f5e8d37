package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderBuildsAndCachesFaces(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "sample.ttf")
	entry := models.FontEntry{Family: "Sample", Source: models.SourceCustom, Path: path}

	provider := NewProvider(logger.NewNop())
	defer provider.Shutdown()

	face1, err := provider.Face(entry, 24)
	require.NoError(t, err)
	require.NotNil(t, face1)

	face2, err := provider.Face(entry, 24)
	require.NoError(t, err)
	assert.Same(t, face1, face2, "same size should reuse the cached face")

	face3, err := provider.Face(entry, 36)
	require.NoError(t, err)
	assert.NotSame(t, face1, face3, "different size builds a different face")
}

func TestProviderClampsSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "sample.ttf")
	entry := models.FontEntry{Family: "Sample", Source: models.SourceCustom, Path: path}

	provider := NewProvider(logger.NewNop())
	defer provider.Shutdown()

	clamped, err := provider.Face(entry, 1000)
	require.NoError(t, err)

	atMax, err := provider.Face(entry, models.MaxPreviewSize)
	require.NoError(t, err)
	assert.Same(t, atMax, clamped)
}

func TestProviderErrors(t *testing.T) {
	provider := NewProvider(logger.NewNop())
	defer provider.Shutdown()

	_, err := provider.Face(models.FontEntry{Family: "Missing", Path: "/does/not/exist.ttf"}, 24)
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(badPath, []byte("garbage"), 0o644))

	_, err = provider.Face(models.FontEntry{Family: "Bad", Path: badPath}, 24)
	assert.Error(t, err)
}
