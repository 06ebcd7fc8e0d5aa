package segmenta

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tsawler/segmenta/augment"
	"github.com/tsawler/segmenta/detect"
	"github.com/tsawler/segmenta/geom"
	"github.com/tsawler/segmenta/match"
	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/outline"
)

// Engine provides a fluent interface for running the segmentation pipeline.
// Each configuration method returns a new Engine instance, making it safe
// for concurrent use and allowing method chaining. A single in-progress run
// is single-threaded; callers segmenting the same document concurrently
// must use separate chains.
type Engine struct {
	// Source
	records       model.Records
	csvPath       string
	recordsLoaded bool

	// Vector-level geometry, optional
	provider detect.Provider

	// Pre-classified segments seeding the run
	sparse model.SegmentTable

	// Configuration
	config          Config
	numericSections bool

	// Warnings are mirrored here as they occur, when set
	logger io.Writer

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Engine with its own sparse table and
// warning list. This ensures immutability: each chain method returns a new
// instance.
func (e *Engine) clone() *Engine {
	return &Engine{
		records:         e.records,
		csvPath:         e.csvPath,
		recordsLoaded:   e.recordsLoaded,
		provider:        e.provider,
		sparse:          e.sparse.Clone(),
		config:          e.config,
		numericSections: e.numericSections,
		logger:          e.logger,
		err:             e.err,
		warnings:        append([]Warning(nil), e.warnings...),
	}
}

// ensureRecords loads the record table if not already loaded and validates
// that it is non-empty.
func (e *Engine) ensureRecords() error {
	if !e.recordsLoaded {
		if e.csvPath == "" {
			return fmt.Errorf("no record source specified")
		}
		records, err := LoadRecordsCSV(e.csvPath)
		if err != nil {
			return err
		}
		e.records = records
		e.recordsLoaded = true
	}
	if len(e.records) == 0 {
		return ErrEmptyTable
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Engine instance)
// ============================================================================

// WithGeometry attaches the document's vector-level geometry provider. With
// a provider, the engine detects Title, Abstract, Keywords, Section, Table
// and Figure segments itself; without one, only the sparse table and the
// augmentation passes contribute.
//
// Example:
//
//	table, _, err := segmenta.FromCSV("records.csv").WithGeometry(p).Segment()
func (e *Engine) WithGeometry(p detect.Provider) *Engine {
	newEng := e.clone()
	newEng.provider = p
	return newEng
}

// WithConfig replaces the engine's configuration.
//
// Example:
//
//	cfg := segmenta.Must(segmenta.LoadConfig("segmenta.yaml"))
//	table, _, err := segmenta.FromCSV("records.csv").WithConfig(cfg).Segment()
func (e *Engine) WithConfig(config Config) *Engine {
	newEng := e.clone()
	newEng.config = config
	return newEng
}

// WithSparse seeds the run with pre-classified segments. Detector output is
// added around them; a detected segment whose key is already present in the
// seed is dropped with a warning.
//
// Example:
//
//	table, _, err := segmenta.FromRecords(records).WithSparse(sparse).Segment()
func (e *Engine) WithSparse(table model.SegmentTable) *Engine {
	newEng := e.clone()
	newEng.sparse = table.Clone()
	return newEng
}

// NumericSectionRanges restores the legacy section gap fill, comparing bare
// block numbers across pages instead of page-qualified (page, block) keys.
//
// Example:
//
//	table, _, err := segmenta.FromRecords(records).NumericSectionRanges().Segment()
func (e *Engine) NumericSectionRanges() *Engine {
	newEng := e.clone()
	newEng.numericSections = true
	return newEng
}

// WithLogger mirrors warnings to w as they occur, in addition to returning
// them from the terminal operation.
//
// Example:
//
//	table, _, err := segmenta.FromCSV("records.csv").WithLogger(os.Stderr).Segment()
func (e *Engine) WithLogger(w io.Writer) *Engine {
	newEng := e.clone()
	newEng.logger = w
	return newEng
}

// ============================================================================
// Terminal Operation
// ============================================================================

// Segment runs the full pipeline and returns the dense, ordered
// segmentation table.
//
// The pipeline anchors the provider's signals to OCR blocks in a fixed
// order: title, abstract, keywords, outline sections, tables, figures. Each
// anchor is added only if its (block, page) key is still unclassified. The
// sparse result then flows through the augmentation passes (Headline,
// Author, Section fill) and a final stable sort by (page, block).
//
// Returns the table, any warnings encountered, and an error if the run
// failed. Warnings indicate recoverable skips: a segment that could not be
// anchored is left out rather than aborting the run. Geometry provider
// failures and record-table precondition violations are fatal.
//
// Example:
//
//	table, warnings, err := segmenta.FromCSV("records.csv").
//	    WithGeometry(provider).
//	    Segment()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", segmenta.FormatWarnings(warnings))
//	}
func (e *Engine) Segment() (model.SegmentTable, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureRecords(); err != nil {
		return nil, nil, err
	}

	table := e.sparse.Clone()
	present := table.KeySet()

	if e.provider != nil {
		mapper := geom.NewMapperWithConfig(e.config.mapperConfig())
		matcher := geom.NewMatcherWithConfig(e.config.matcherConfig())
		detector := detect.NewDetectorWithConfig(e.config.detectConfig(), mapper, matcher)

		table = e.detectTitle(table, present)
		table = e.detectTokenBlocks(detector, table, present)

		var err error
		table, err = e.detectSections(table, present)
		if err != nil {
			return nil, e.warnings, err
		}
		table, err = e.detectRegions(detector, table, present)
		if err != nil {
			return nil, e.warnings, err
		}
	}

	augmenter := augment.NewAugmenterWithConfig(augment.Config{
		NumericSectionRanges: e.numericSections,
	})
	dense := augmenter.Apply(table, e.records)

	return dense, e.warnings, nil
}

// detectTitle anchors the provider's title text to its closest OCR block.
// A missing title is a warning, not an error: the headline and author
// passes simply find nothing to work from.
func (e *Engine) detectTitle(table model.SegmentTable, present map[model.BlockKey]bool) model.SegmentTable {
	text, err := e.provider.TitleText()
	if err != nil {
		e.warn(Warning{Code: WarnSkippedSegment, Message: fmt.Sprintf("title text unavailable: %v", err)})
		return table
	}
	if text == "" {
		e.warn(Warning{Code: WarnNoTitle, Message: "no title text in document"})
		return table
	}

	key, err := match.BestBlock(text, e.records)
	if err != nil {
		e.warn(Warning{Code: WarnSkippedSegment, Message: fmt.Sprintf("title not matched: %v", err)})
		return table
	}
	return e.add(table, present, model.Segment{
		Type:  model.SegmentTypeTitle,
		Block: key.Block,
		Page:  key.Page,
	})
}

// detectTokenBlocks runs the first-page abstract and keywords scans.
func (e *Engine) detectTokenBlocks(d *detect.Detector, table model.SegmentTable, present map[model.BlockKey]bool) model.SegmentTable {
	for _, block := range d.AbstractBlocks(e.records) {
		table = e.add(table, present, model.Segment{
			Type:  model.SegmentTypeAbstract,
			Block: block,
			Page:  1,
		})
	}
	for _, block := range d.KeywordBlocks(e.records) {
		table = e.add(table, present, model.Segment{
			Type:  model.SegmentTypeKeywords,
			Block: block,
			Page:  1,
		})
	}
	return table
}

// detectSections numbers the outline and anchors each entry to the closest
// block on the entry's own page. An entry whose page has no OCR records is
// skipped with a warning; the outline itself failing to load is fatal.
func (e *Engine) detectSections(table model.SegmentTable, present map[model.BlockKey]bool) (model.SegmentTable, error) {
	entries, err := e.provider.Outline()
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	for _, entry := range outline.AssignIndices(entries) {
		// Outline labels often carry stray surrounding spaces that would
		// inflate the edit distance.
		label := strings.TrimSpace(entry.Label)

		key, err := match.BestBlock(label, e.records.ByPage(entry.Page))
		if errors.Is(err, match.ErrNoRecords) {
			e.warn(Warning{
				Code:    WarnSkippedSegment,
				Page:    entry.Page,
				Message: fmt.Sprintf("section %q: no OCR records on page", label),
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", label, err)
		}

		table = e.add(table, present, model.Segment{
			Type:     model.SegmentTypeSection,
			Block:    key.Block,
			Page:     key.Page,
			Level:    entry.Level - 1,
			Label:    label,
			Index:    entry.Index,
			HasLevel: true,
		})
	}
	return table, nil
}

// detectRegions anchors the provider's table and image regions to blocks.
func (e *Engine) detectRegions(d *detect.Detector, table model.SegmentTable, present map[model.BlockKey]bool) (model.SegmentTable, error) {
	tables, err := d.TableBlocks(e.provider, e.records)
	if err != nil {
		return nil, fmt.Errorf("table regions: %w", err)
	}
	table = e.addRegionBlocks(table, present, model.SegmentTypeTable, tables)

	figures, err := d.FigureBlocks(e.provider, e.records)
	if err != nil {
		return nil, fmt.Errorf("image regions: %w", err)
	}
	table = e.addRegionBlocks(table, present, model.SegmentTypeFigure, figures)

	return table, nil
}

func (e *Engine) addRegionBlocks(table model.SegmentTable, present map[model.BlockKey]bool, st model.SegmentType, byPage map[int][]int) model.SegmentTable {
	for _, page := range sortedPages(byPage) {
		for _, block := range byPage[page] {
			table = e.add(table, present, model.Segment{
				Type:  st,
				Block: block,
				Page:  page,
			})
		}
	}
	return table
}

// add appends a segment unless its key is already classified, in which case
// the segment is dropped with a warning. Detectors run in a fixed order, so
// the earlier classification wins deterministically.
func (e *Engine) add(table model.SegmentTable, present map[model.BlockKey]bool, s model.Segment) model.SegmentTable {
	key := s.Key()
	if present[key] {
		e.warn(Warning{
			Code:    WarnDuplicateKey,
			Page:    s.Page,
			Message: fmt.Sprintf("block %d already classified; dropping %s", s.Block, s.Type),
		})
		return table
	}
	present[key] = true
	return append(table, s)
}

func (e *Engine) warn(w Warning) {
	e.warnings = append(e.warnings, w)
	if e.logger != nil {
		fmt.Fprintln(e.logger, w.String())
	}
}

func sortedPages(byPage map[int][]int) []int {
	pages := make([]int, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
