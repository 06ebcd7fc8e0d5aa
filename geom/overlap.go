package geom

import (
	"sort"
	"strings"

	"github.com/tsawler/segmenta/model"
)

// MatcherConfig holds the caption tokens used when anchoring regions to
// blocks. Both tests are literal, case-sensitive substring matches against
// the caption record's text.
type MatcherConfig struct {
	// TableCaptionToken marks a record immediately following a table region
	// as the table's caption. Default: "Table".
	TableCaptionToken string

	// FigureCaptionToken marks the first record below an image region as
	// the figure's caption. Default: "Figure".
	FigureCaptionToken string
}

// DefaultMatcherConfig returns the caption tokens of English academic
// papers.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		TableCaptionToken:  "Table",
		FigureCaptionToken: "Figure",
	}
}

// Matcher derives the OCR blocks covered by a vector-detected region. Both
// operations expect the target rectangle already mapped into pixel space
// and the records of the region's page in the OCR engine's emission order;
// the caption checks are positional in that order, not geometric.
type Matcher struct {
	config MatcherConfig
}

// NewMatcher creates a matcher with default caption tokens.
func NewMatcher() *Matcher {
	return NewMatcherWithConfig(DefaultMatcherConfig())
}

// NewMatcherWithConfig creates a matcher with the specified configuration.
func NewMatcherWithConfig(config MatcherConfig) *Matcher {
	return &Matcher{config: config}
}

// BlocksOverlapping returns the blocks whose words overlap the target
// rectangle (pixel space, open-interval test), as a sorted set of block
// numbers. When a word overlaps and the very next record in emission order
// contains the table caption token, that record's block is included too:
// table captions sit immediately after the table's rows in the OCR stream
// even when the caption box itself lies outside the detected region.
//
// Zero matching words yield an empty set, not an error.
func (m *Matcher) BlocksOverlapping(records model.Records, target model.Rect) []int {
	set := make(map[int]bool)
	for i, r := range records {
		if !r.Rect().Overlaps(target) {
			continue
		}
		set[r.Block] = true

		if i+1 < len(records) && strings.Contains(records[i+1].Text, m.config.TableCaptionToken) {
			set[records[i+1].Block] = true
		}
	}
	return sortedSet(set)
}

// BlockBelow scans the page's records in emission order for the first one
// whose top edge lies below targetBottom (pixel space). If that record
// contains the figure caption token its block is returned; otherwise the
// result is empty. Scanning stops at that first record either way: figure
// captions sit immediately below the image, not elsewhere on the page.
func (m *Matcher) BlockBelow(records model.Records, targetBottom float64) []int {
	for _, r := range records {
		if r.Top <= targetBottom {
			continue
		}
		if strings.Contains(r.Text, m.config.FigureCaptionToken) {
			return []int{r.Block}
		}
		return nil
	}
	return nil
}

// sortedSet converts a block set to a sorted slice for deterministic
// results.
func sortedSet(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}
