// Package geom reconciles the two coordinate systems the engine works in:
// the fixed pixel canvas the OCR engine rasterized pages at, and the native
// point space of each PDF page.
//
// [Mapper] converts rectangles between the two spaces per page. The
// reference canvas size and the outward padding applied on the pixel-to-
// point direction are configuration, not constants: they are tied to how
// the external OCR step rasterizes pages and must change together with it.
//
// The package also provides the geometric block matching used to anchor
// vector-detected regions to OCR blocks: [BlockBBox] aggregates a block's
// word boxes, and [Matcher] maps a region to the set of blocks it covers,
// including the caption lookups for tables and figures.
package geom
