// Package augment densifies a sparse segmentation: starting from the
// segments the detectors anchored directly, it infers Headline, Author and
// additional Section segments for OCR blocks no detector classified.
package augment

import (
	"github.com/tsawler/segmenta/geom"
	"github.com/tsawler/segmenta/model"
)

// Config controls the gap-filling passes.
type Config struct {
	// NumericSectionRanges restores the legacy section fill: block numbers
	// of consecutive Section segments are compared numerically across
	// pages, even though block numbers restart on every page. Off by
	// default; the default fill is page-qualified, comparing (page, block)
	// keys lexicographically so that "between two sections" is meaningful
	// when the sections sit on different pages.
	NumericSectionRanges bool
}

// DefaultConfig returns the page-qualified section fill.
func DefaultConfig() Config {
	return Config{NumericSectionRanges: false}
}

// Augmenter runs the gap-filling passes over a segmentation table.
type Augmenter struct {
	config Config
}

// NewAugmenter creates an augmenter with the default configuration.
func NewAugmenter() *Augmenter {
	return NewAugmenterWithConfig(DefaultConfig())
}

// NewAugmenterWithConfig creates an augmenter with the specified
// configuration.
func NewAugmenterWithConfig(config Config) *Augmenter {
	return &Augmenter{config: config}
}

// Apply runs three passes over the table, in order, each committing its
// additions before the next runs:
//
//  1. Headline: on every page, any unclassified block whose bounding box
//     starts above the title block's top edge becomes a Headline. All
//     pages are considered, not just the title's: running titles and
//     headers on later pages sit above the title position too.
//  2. Author: on page 1, any unclassified block numbered strictly between
//     the title block and the next classified block becomes an Author.
//  3. Section fill: any unclassified block lying strictly between two
//     consecutive Section segments becomes a Section, without level,
//     label or index.
//
// No pass ever removes or re-types an existing segment, and every pass
// skips keys already present, so the result is a superset of the input
// with unique keys. The returned table is sorted ascending by
// (page, block); the input table is not modified.
func (a *Augmenter) Apply(table model.SegmentTable, records model.Records) model.SegmentTable {
	out := table.Clone()
	present := out.KeySet()

	out = a.headlinePass(out, present, records)
	out = a.authorPass(out, present, records)
	out = a.sectionPass(out, present, records)

	out.Sort()
	return out
}

// headlinePass adds a Headline for every unclassified block, on any page,
// whose bounding box top lies strictly above the title's top edge.
func (a *Augmenter) headlinePass(table model.SegmentTable, present map[model.BlockKey]bool, records model.Records) model.SegmentTable {
	for _, title := range table.OfType(model.SegmentTypeTitle) {
		titleBBox, err := geom.BlockBBox(records, title.Key())
		if err != nil {
			continue // title block absent from the OCR universe
		}

		for _, key := range records.SortedKeys() {
			if present[key] {
				continue
			}
			bbox, err := geom.BlockBBox(records, key)
			if err != nil || bbox.Top >= titleBBox.Top {
				continue
			}
			table = append(table, model.Segment{
				Type:  model.SegmentTypeHeadline,
				Block: key.Block,
				Page:  key.Page,
			})
			present[key] = true
		}
	}
	return table
}

// authorPass adds an Author for every unclassified page-1 block numbered
// strictly between the title block and the next classified page-1 block.
// The pass is skipped when there is no title or when nothing on page 1 is
// classified after the title.
func (a *Augmenter) authorPass(table model.SegmentTable, present map[model.BlockKey]bool, records model.Records) model.SegmentTable {
	title, ok := table.First(model.SegmentTypeTitle)
	if !ok {
		return table
	}

	nextBlock, ok := nextClassifiedBlock(table, title.Block)
	if !ok {
		return table
	}

	for _, key := range records.SortedKeys() {
		if present[key] || key.Page != 1 {
			continue
		}
		if key.Block > title.Block && key.Block < nextBlock {
			table = append(table, model.Segment{
				Type:  model.SegmentTypeAuthor,
				Block: key.Block,
				Page:  key.Page,
			})
			present[key] = true
		}
	}
	return table
}

// nextClassifiedBlock returns the smallest block number on page 1 strictly
// greater than titleBlock among already-classified segments.
func nextClassifiedBlock(table model.SegmentTable, titleBlock int) (int, bool) {
	next := 0
	found := false
	for _, s := range table {
		if s.Page != 1 || s.Block <= titleBlock {
			continue
		}
		if !found || s.Block < next {
			next = s.Block
			found = true
		}
	}
	return next, found
}

// sectionPass adds an untyped Section for every unclassified block lying
// strictly between two consecutive Section segments. With the default
// page-qualified fill, the sections are ordered by (page, block) and a
// block qualifies when its key falls strictly inside a consecutive pair's
// key interval. In legacy numeric mode the sections keep their table order
// and bare block numbers are compared regardless of page.
func (a *Augmenter) sectionPass(table model.SegmentTable, present map[model.BlockKey]bool, records model.Records) model.SegmentTable {
	sections := table.OfType(model.SegmentTypeSection)
	if !a.config.NumericSectionRanges {
		sections.Sort()
	}

	for i := 0; i+1 < len(sections); i++ {
		lo, hi := sections[i], sections[i+1]
		for _, key := range records.SortedKeys() {
			if present[key] {
				continue
			}
			if !a.between(key, lo, hi) {
				continue
			}
			table = append(table, model.Segment{
				Type:  model.SegmentTypeSection,
				Block: key.Block,
				Page:  key.Page,
			})
			present[key] = true
		}
	}
	return table
}

func (a *Augmenter) between(key model.BlockKey, lo, hi model.Segment) bool {
	if a.config.NumericSectionRanges {
		return key.Block > lo.Block && key.Block < hi.Block
	}
	return lo.Key().Less(key) && key.Less(hi.Key())
}
