package detect

import (
	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/outline"
)

// Provider supplies the vector-level view of the document: page geometry,
// the structural outline, detected table regions, embedded image regions,
// and the title text. It abstracts the external PDF rendering/analysis
// library; implementations wrap whatever produces these signals.
//
// All page numbers are 1-based. All rectangles are in the page's native
// point space with the origin at the top-left corner. Provider handles are
// scoped per call: the engine acquires, uses, and releases them within one
// run and never caches geometry across runs, so a changed source document
// cannot leak stale geometry into a later segmentation.
type Provider interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)

	// PageSize returns the native width and height of a page in points.
	PageSize(page int) (width, height float64, err error)

	// Outline returns the document's structural outline in declared
	// document order. An empty outline is valid and yields no sections.
	Outline() ([]outline.Entry, error)

	// TableRegions returns the bounding rectangles of tables detected on a
	// page, in point space.
	TableRegions(page int) ([]model.Rect, error)

	// ImageRegions returns the bounding rectangles of embedded images on a
	// page, in point space.
	ImageRegions(page int) ([]model.Rect, error)

	// TitleText returns the document's title text, typically the
	// largest-font character run on the first page. An empty string means
	// no title could be determined.
	TitleText() (string, error)
}
