package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSize(t *testing.T) {
	assert.Equal(t, MinPreviewSize, ClampSize(1))
	assert.Equal(t, MinPreviewSize, ClampSize(-10))
	assert.Equal(t, MaxPreviewSize, ClampSize(97))
	assert.Equal(t, MaxPreviewSize, ClampSize(1000))
	assert.Equal(t, 24, ClampSize(24))
	assert.Equal(t, MinPreviewSize, ClampSize(MinPreviewSize))
	assert.Equal(t, MaxPreviewSize, ClampSize(MaxPreviewSize))
}

func TestSettingsStoreDefaults(t *testing.T) {
	store := NewSettingsStore(PreviewSettings{})

	settings := store.Get()
	assert.Equal(t, DefaultSampleText, settings.SampleText)
	assert.Equal(t, DefaultPreviewSize, settings.Size)
	assert.Equal(t, LeftToRight, settings.Direction)
}

func TestSettingsStoreClampsOnSet(t *testing.T) {
	store := NewSettingsStore(PreviewSettings{})

	store.SetSize(200)
	assert.Equal(t, MaxPreviewSize, store.Get().Size)

	store.SetSize(2)
	assert.Equal(t, MinPreviewSize, store.Get().Size)
}

func TestSettingsStoreEmptyTextFallsBackToDefault(t *testing.T) {
	store := NewSettingsStore(PreviewSettings{})

	store.SetSampleText("custom sample")
	assert.Equal(t, "custom sample", store.Get().SampleText)

	store.SetSampleText("")
	assert.Equal(t, DefaultSampleText, store.Get().SampleText)
}

func TestSettingsStoreNotifiesObservers(t *testing.T) {
	store := NewSettingsStore(PreviewSettings{})

	var seen []PreviewSettings
	store.Observe(func(s PreviewSettings) {
		seen = append(seen, s)
	})

	store.SetSize(30)
	store.SetDirection(RightToLeft)
	store.SetSampleText("abc")

	assert.Len(t, seen, 3)
	assert.Equal(t, 30, seen[0].Size)
	assert.Equal(t, RightToLeft, seen[1].Direction)
	assert.Equal(t, "abc", seen[2].SampleText)
}

func TestDirectionRoundTrip(t *testing.T) {
	assert.Equal(t, "LTR", LeftToRight.String())
	assert.Equal(t, "RTL", RightToLeft.String())
	assert.Equal(t, RightToLeft, DirectionFromString("RTL"))
	assert.Equal(t, LeftToRight, DirectionFromString("LTR"))
	assert.Equal(t, LeftToRight, DirectionFromString("nonsense"))
}

func TestSearchState(t *testing.T) {
	search := NewSearchState()

	query, active := search.Query()
	assert.Empty(t, query)
	assert.False(t, active)

	search.SetQuery("mono")
	query, active = search.Query()
	assert.Equal(t, "mono", query)
	assert.True(t, active)

	search.Clear()
	query, active = search.Query()
	assert.Empty(t, query)
	assert.False(t, active)
}
