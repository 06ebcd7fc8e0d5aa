package model

import (
	"sort"
	"strings"
)

// WordRecord is a single OCR word with its tight bounding box in pixel
// space, as emitted by the OCR engine. Page is 1-based; Block is the OCR
// engine's block identifier, scoped per page. Left/Top/Width/Height are
// non-negative pixel offsets on the reference OCR canvas.
type WordRecord struct {
	Page   int     // 1-based page number
	Block  int     // OCR block number, scoped per page
	Left   float64 // Distance of the word's left edge from the page's left
	Top    float64 // Distance of the word's top edge from the page's top
	Width  float64 // Word box width in pixels
	Height float64 // Word box height in pixels
	Text   string  // Recognized text, non-empty after trimming
}

// Rect returns the word's tight bounding box in pixel space.
func (w WordRecord) Rect() Rect {
	return Rect{
		X0:     w.Left,
		Top:    w.Top,
		X1:     w.Left + w.Width,
		Bottom: w.Top + w.Height,
	}
}

// Key returns the block identity the word belongs to.
func (w WordRecord) Key() BlockKey {
	return BlockKey{Block: w.Block, Page: w.Page}
}

// BlockKey identifies one physical text block: the set of word records
// sharing a (block_num, page_num) pair. It is also the segment identity
// key; a segmentation table never holds two segments with the same key.
type BlockKey struct {
	Block int
	Page  int
}

// Less orders keys by (page, block) ascending, the canonical document
// order used throughout the engine.
func (k BlockKey) Less(other BlockKey) bool {
	if k.Page != other.Page {
		return k.Page < other.Page
	}
	return k.Block < other.Block
}

// Records is an ordered collection of OCR word records.
//
// Order matters: the caption-adjacency and below-region checks in the geom
// package are positional, so a Records value must preserve the OCR engine's
// native emission order. All methods below preserve that order.
type Records []WordRecord

// ByPage returns the records on the given 1-based page, in emission order.
func (rs Records) ByPage(page int) Records {
	var out Records
	for _, r := range rs {
		if r.Page == page {
			out = append(out, r)
		}
	}
	return out
}

// ByBlock returns the records forming the block identified by key, in
// emission order.
func (rs Records) ByBlock(key BlockKey) Records {
	var out Records
	for _, r := range rs {
		if r.Block == key.Block && r.Page == key.Page {
			out = append(out, r)
		}
	}
	return out
}

// Pages returns the distinct page numbers present, ascending.
func (rs Records) Pages() []int {
	seen := make(map[int]bool)
	var pages []int
	for _, r := range rs {
		if !seen[r.Page] {
			seen[r.Page] = true
			pages = append(pages, r.Page)
		}
	}
	sort.Ints(pages)
	return pages
}

// Keys returns the distinct block keys present, in first-appearance
// (emission) order.
func (rs Records) Keys() []BlockKey {
	seen := make(map[BlockKey]bool)
	var keys []BlockKey
	for _, r := range rs {
		k := r.Key()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// SortedKeys returns the distinct block keys present, sorted ascending by
// (page, block). Used where a reproducible iteration order is required
// instead of emission order.
func (rs Records) SortedKeys() []BlockKey {
	keys := rs.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// BlockText returns the text of every block: the words of each block joined
// with single spaces in emission order.
func (rs Records) BlockText() map[BlockKey]string {
	parts := make(map[BlockKey][]string)
	for _, r := range rs {
		k := r.Key()
		parts[k] = append(parts[k], r.Text)
	}
	out := make(map[BlockKey]string, len(parts))
	for k, p := range parts {
		out[k] = strings.Join(p, " ")
	}
	return out
}
