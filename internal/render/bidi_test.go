package render

import (
	"testing"

	"font-previewer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestVisualOrderLeavesLatinTextAlone(t *testing.T) {
	assert.Equal(t, "Hello world", VisualOrder("Hello world", models.LeftToRight))
	assert.Equal(t, "Hello world", VisualOrder("Hello world", models.RightToLeft))
}

func TestVisualOrderReversesRTLRuns(t *testing.T) {
	// A purely RTL string comes out reversed rune-by-rune for left-to-right
	// drawing.
	arabic := "مرحبا"
	reordered := VisualOrder(arabic, models.RightToLeft)

	runes := []rune(arabic)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	assert.Equal(t, string(runes), reordered)
}

func TestVisualOrderMixedKeepsLatinReadable(t *testing.T) {
	mixed := "Hello مرحبا"
	reordered := VisualOrder(mixed, models.LeftToRight)
	assert.Contains(t, reordered, "Hello")
	assert.NotEqual(t, "", reordered)
}

func TestVisualOrderEmpty(t *testing.T) {
	assert.Equal(t, "", VisualOrder("", models.RightToLeft))
}

func TestDetectDirection(t *testing.T) {
	assert.Equal(t, models.LeftToRight, DetectDirection("Hello"))
	assert.Equal(t, models.RightToLeft, DetectDirection("مرحبا"), "Arabic is RTL")
	assert.Equal(t, models.RightToLeft, DetectDirection("שלום"), "Hebrew is RTL")
	assert.Equal(t, models.RightToLeft, DetectDirection("Hello مرحبا"), "any RTL rune wins")
	assert.Equal(t, models.LeftToRight, DetectDirection(""))
}
