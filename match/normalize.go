package match

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// control matches the C0 control characters that OCR and PDF text
// extraction leak into strings, except '\n' (0x0A), which separates lines
// in multi-line labels and is handled by the caller.
var control = runes.Remove(runes.Predicate(func(r rune) bool {
	return (r >= 0x00 && r <= 0x09) || (r >= 0x0B && r <= 0x1F)
}))

// Clean strips control characters from s. The input is returned unchanged
// if the transform fails, which cannot happen for a pure removal.
func Clean(s string) string {
	out, _, err := transform.String(control, s)
	if err != nil {
		return s
	}
	return out
}
