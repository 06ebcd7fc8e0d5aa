// Package model provides the data types shared by all segmentation
// components.
//
// The package defines the two tabular inputs and the one tabular output of
// the engine, plus the geometric primitives used to reconcile them:
//
//   - [WordRecord] / [Records] - OCR word records in pixel space, grouped
//     into physical text blocks by (block_num, page_num)
//   - [Rect] - axis-aligned rectangle in either pixel or point space
//   - [Segment] / [SegmentTable] - classified, block-anchored units of
//     document structure, the engine's output
//
// # Coordinate spaces
//
// A [Rect] carries no unit of its own. OCR records live on a fixed pixel
// canvas (the resolution the OCR engine rasterized pages at), while PDF
// geometry uses the page's native point space. Every function that accepts
// a Rect documents which space it expects; conversion between the two is
// the job of the geom package and must never be implicit.
//
// # Block identity
//
// Many word records share a (block_num, page_num) pair and together define
// one physical text block. [BlockKey] is that identity, and it is the
// segment identity key as well: a SegmentTable never contains two segments
// with the same key.
package model
