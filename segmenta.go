// Package segmenta provides a fluent API for reconciling OCR word records
// with a document's vector-level geometry into an ordered segmentation
// table.
//
// Basic usage:
//
//	table, warnings, err := segmenta.FromCSV("records.csv").
//	    WithGeometry(provider).
//	    Segment()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", segmenta.FormatWarnings(warnings))
//	}
//
// Records may equally come from memory, and a pre-built sparse table can be
// densified without any geometry provider:
//
//	table, _, err := segmenta.FromRecords(records).
//	    WithSparse(sparse).
//	    Segment()
//
// For advanced use cases, the lower-level geom, match, outline, detect and
// augment packages are also available.
package segmenta

import (
	"github.com/tsawler/segmenta/model"
)

// FromRecords creates an Engine over an in-memory record table. The records
// must be in the OCR engine's emission order; the caption-adjacency checks
// are positional in that order.
//
// Example:
//
//	table, warnings, err := segmenta.FromRecords(records).WithGeometry(p).Segment()
func FromRecords(records model.Records) *Engine {
	return &Engine{
		records:       records,
		recordsLoaded: true,
		config:        DefaultConfig(),
	}
}

// FromCSV creates an Engine that loads its record table from a CSV file
// when a terminal operation runs. The file must carry a header row with the
// columns page_num, block_num, left, top, width, height and text.
//
// Example:
//
//	table, warnings, err := segmenta.FromCSV("records.csv").WithGeometry(p).Segment()
func FromCSV(path string) *Engine {
	return &Engine{
		csvPath: path,
		config:  DefaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	records := segmenta.Must(segmenta.LoadRecordsCSV("records.csv"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTable is a helper that wraps a call to Segment() and panics if the
// error is non-nil. It discards warnings and returns just the table.
// It is intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	table := segmenta.MustTable(segmenta.FromRecords(records).Segment())
func MustTable[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
