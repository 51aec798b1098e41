/*
Package display prepares right-to-left text for left-to-right terminals.

Most terminal emulators render glyphs strictly left to right, so Hebrew or
Arabic strings arrive on screen mirrored and, for Arabic, with isolated
letter forms. Visual applies the two fixes the original ecosystem tools do:
contextual glyph shaping (joining forms) followed by the Unicode
bidirectional algorithm to emit runs in visual order.
*/
package display

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
	"golang.org/x/text/unicode/bidi"
)

// Visual returns s ready for terminal display. With rtl false it is the
// identity. With rtl true the string is shaped and reordered; the result
// is deterministic for a given input.
func Visual(s string, rtl bool) string {
	if !rtl || s == "" {
		return s
	}

	// Joining forms first: shaping operates on logical order.
	shaped := garabic.Shape(s)

	var p bidi.Paragraph
	if _, err := p.SetString(shaped, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return shaped
	}
	order, err := p.Order()
	if err != nil {
		return shaped
	}

	var b strings.Builder
	b.Grow(len(shaped))
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = reverseRunes(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
