package render

import (
	"strings"

	"font-previewer/internal/models"

	"golang.org/x/text/unicode/bidi"
)

// VisualOrder reorders the text's bidi runs into visual order for drawing,
// using the configured direction as the paragraph base direction. RTL runs
// are reversed since the drawer lays glyphs out strictly left to right.
// Shaping (ligatures, joining) is left to the font; only run order changes.
func VisualOrder(text string, direction models.Direction) string {
	if text == "" {
		return text
	}

	base := bidi.LeftToRight
	if direction == models.RightToLeft {
		base = bidi.RightToLeft
	}

	var paragraph bidi.Paragraph
	paragraph.SetString(text, bidi.DefaultDirection(base))

	ordering, err := paragraph.Order()
	if err != nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(bidi.ReverseString(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

// DetectDirection inspects the text for right-to-left characters, the same
// Arabic-or-Hebrew sniffing users expect from the sample default.
func DetectDirection(text string) models.Direction {
	for _, r := range text {
		properties, _ := bidi.LookupRune(r)
		switch properties.Class() {
		case bidi.R, bidi.AL:
			return models.RightToLeft
		}
	}
	return models.LeftToRight
}
