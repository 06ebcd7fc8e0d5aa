package segmenta

import (
	"fmt"
	"strings"
)

// Warning codes produced by the engine.
const (
	// WarnSkippedSegment marks a segment the engine could not anchor to an
	// OCR block and therefore left out of the table.
	WarnSkippedSegment = "skipped-segment"

	// WarnDuplicateKey marks a detected segment whose block key was already
	// classified by an earlier detector; the later classification is
	// dropped.
	WarnDuplicateKey = "duplicate-key"

	// WarnNoTitle marks a run where the geometry provider reported no title
	// text, so the Title segment and the passes depending on it are skipped.
	WarnNoTitle = "no-title"
)

// Warning represents a non-fatal issue encountered during segmentation.
// The run succeeded, but a segment was skipped or dropped and the table may
// be sparser than the document warrants.
type Warning struct {
	// Code identifies the warning category.
	Code string

	// Page is the 1-based page the warning concerns, or 0 when the warning
	// is not page-scoped.
	Page int

	// Message is a human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
