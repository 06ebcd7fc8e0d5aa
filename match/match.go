// Package match anchors free text to OCR blocks by approximate string
// matching. There is no shared key between the vector side of a document
// (outline labels, largest-font title runs) and its OCR blocks, so the
// anchor is the block whose concatenated text is closest under edit
// distance.
package match

import (
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/tsawler/segmenta/model"
)

// ErrNoRecords is returned when BestBlock is called with an empty record
// set. This is a precondition violation by the caller, not a retryable
// condition.
var ErrNoRecords = errors.New("no OCR records to match against")

// BestBlock returns the block whose text is closest to query under edit
// distance.
//
// Each block's text is its words joined with single spaces in emission
// order; both sides are cleaned of control characters and lower-cased
// before comparison. Ties break toward the smaller (block, page) key, the
// order the grouped keys are iterated in, so results are reproducible
// regardless of map iteration order.
func BestBlock(query string, records model.Records) (model.BlockKey, error) {
	if len(records) == 0 {
		return model.BlockKey{}, ErrNoRecords
	}

	needle := strings.ToLower(Clean(query))
	texts := records.BlockText()

	var best model.BlockKey
	bestDistance := -1
	for _, key := range groupedKeys(records) {
		haystack := strings.ToLower(Clean(texts[key]))
		d := levenshtein.ComputeDistance(needle, haystack)
		if bestDistance < 0 || d < bestDistance {
			bestDistance = d
			best = key
		}
	}
	return best, nil
}

// groupedKeys returns the distinct block keys sorted ascending by
// (block, page). Blocks are the grouping unit here, so the tie-break runs
// block-first, unlike the document order used elsewhere.
func groupedKeys(records model.Records) []model.BlockKey {
	keys := records.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Block != keys[j].Block {
			return keys[i].Block < keys[j].Block
		}
		return keys[i].Page < keys[j].Page
	})
	return keys
}
