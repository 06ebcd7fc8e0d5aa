package geom

import (
	"errors"

	"github.com/tsawler/segmenta/model"
)

// ErrBlockNotFound is returned when no OCR record matches a requested
// (block, page) key. Callers should treat it as "no such block" and skip
// the lookup rather than abort.
var ErrBlockNotFound = errors.New("no OCR records for block")

// BlockBBox computes the enclosing rectangle, in pixel space, of all word
// records sharing the given block key: min over lefts and tops, max over
// rights and bottoms. It returns ErrBlockNotFound when the key matches no
// record, so an empty aggregate can never masquerade as a rectangle.
func BlockBBox(records model.Records, key model.BlockKey) (model.Rect, error) {
	var bbox model.Rect
	found := false
	for _, r := range records {
		if r.Block != key.Block || r.Page != key.Page {
			continue
		}
		if !found {
			bbox = r.Rect()
			found = true
			continue
		}
		bbox = bbox.Union(r.Rect())
	}
	if !found {
		return model.Rect{}, ErrBlockNotFound
	}
	return bbox, nil
}
