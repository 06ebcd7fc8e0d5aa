// segmenta is a command-line tool for densifying a document segmentation.
//
// It loads an OCR word record table and an optional sparse segmentation
// table from CSV, runs the augmentation passes (Headline, Author, Section
// gap fill), and writes the dense, ordered segmentation table back to CSV.
// Vector-level detection (title, outline sections, tables, figures) needs a
// geometry provider and is available through the library API only.
//
// Usage:
//
//	segmenta -records records.csv -output segments.csv [options]
//
// Flags:
//
//	-records string   Path to the OCR record CSV (header: page_num,
//	                  block_num, left, top, width, height, text)
//	-sparse string    Path to a sparse segmentation CSV to densify
//	-output string    Output segmentation CSV path
//	-config string    Path to a YAML config file
//	-numeric-sections Use the legacy numeric section gap fill
//
// Paths given on the command line override records_path/segments_path from
// the config file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tsawler/segmenta"
)

func main() {
	recordsPath := flag.String("records", "", "Path to the OCR record CSV")
	sparsePath := flag.String("sparse", "", "Path to a sparse segmentation CSV to densify")
	outputPath := flag.String("output", "", "Output segmentation CSV path")
	configPath := flag.String("config", "", "Path to a YAML config file")
	numericSections := flag.Bool("numeric-sections", false, "Use the legacy numeric section gap fill")
	flag.Parse()

	config := segmenta.DefaultConfig()
	if *configPath != "" {
		loaded, err := segmenta.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		config = loaded
	}

	if *recordsPath == "" {
		*recordsPath = config.RecordsPath
	}
	if *outputPath == "" {
		*outputPath = config.SegmentsPath
	}
	if *recordsPath == "" {
		fmt.Println("Error: Must provide -records path")
		os.Exit(1)
	}
	if *outputPath == "" {
		fmt.Println("Error: Must provide -output path")
		os.Exit(1)
	}

	engine := segmenta.FromCSV(*recordsPath).
		WithConfig(config).
		WithLogger(os.Stderr)

	if *sparsePath != "" {
		sparse, err := segmenta.LoadSegmentsCSV(*sparsePath)
		if err != nil {
			fmt.Printf("Failed to load sparse segments: %v\n", err)
			os.Exit(1)
		}
		engine = engine.WithSparse(sparse)
	}
	if *numericSections {
		engine = engine.NumericSectionRanges()
	}

	table, warnings, err := engine.Segment()
	if err != nil {
		fmt.Printf("Segmentation failed: %v\n", err)
		os.Exit(1)
	}

	if err := segmenta.SaveSegmentsCSV(*outputPath, table); err != nil {
		fmt.Printf("Failed to write segments: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d segments to %s", len(table), *outputPath)
	if len(warnings) > 0 {
		fmt.Printf(" (%d warnings)", len(warnings))
	}
	fmt.Println()
}
