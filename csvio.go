package segmenta

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/segmenta/model"
)

// ErrEmptyTable is returned when a record table holds no records. An empty
// table is a precondition failure: nothing can be segmented.
var ErrEmptyTable = errors.New("record table is empty")

// ErrMissingColumns is returned when a record file's header lacks required
// columns. The wrapped message names the missing columns.
var ErrMissingColumns = errors.New("record file missing required columns")

// recordColumns is the required header of a record file, in canonical
// order. Files may order columns differently; lookup is by name.
var recordColumns = []string{"page_num", "block_num", "left", "top", "width", "height", "text"}

// segmentColumns is the header of a segmentation file. The level, label and
// index fields are populated for outline-anchored Section rows only.
var segmentColumns = []string{"Type", "block_num", "page_num", "level", "label", "index"}

// ReadRecords parses a record table from CSV with a header row. Column
// order is free but all of page_num, block_num, left, top, width, height
// and text must be present. Rows whose text is empty after trimming are
// dropped; remaining rows keep their file order, which stands in for the
// OCR engine's emission order.
func ReadRecords(r io.Reader) (model.Records, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records model.Records
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.Text == "" {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	return records, nil
}

// LoadRecordsCSV reads a record table from a CSV file.
func LoadRecordsCSV(path string) (model.Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteRecords writes a record table as CSV with the canonical header, one
// row per word, preserving order.
func WriteRecords(w io.Writer, records model.Records) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordColumns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Page),
			strconv.Itoa(r.Block),
			formatNum(r.Left),
			formatNum(r.Top),
			formatNum(r.Width),
			formatNum(r.Height),
			r.Text,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSegments writes a segmentation table as CSV. The level, label and
// index cells are filled for Section rows carrying outline data and left
// empty otherwise, including Sections added by the gap fill.
func WriteSegments(w io.Writer, table model.SegmentTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(segmentColumns); err != nil {
		return err
	}
	for _, s := range table {
		row := []string{s.Type.String(), strconv.Itoa(s.Block), strconv.Itoa(s.Page), "", "", ""}
		if s.Type == model.SegmentTypeSection && s.HasLevel {
			row[3] = strconv.Itoa(s.Level)
			row[4] = s.Label
			row[5] = s.Index
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveSegmentsCSV writes a segmentation table to a CSV file.
func SaveSegmentsCSV(path string, table model.SegmentTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create segments: %w", err)
	}
	if err := WriteSegments(f, table); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// ReadSegments parses a segmentation table from CSV as written by
// WriteSegments. An empty level cell marks a Section without outline data.
func ReadSegments(r io.Reader) (model.SegmentTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := headerIndex(header, segmentColumns)
	if err != nil {
		return nil, err
	}

	var table model.SegmentTable
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		s := model.Segment{
			Type:  model.ParseSegmentType(row[index["Type"]]),
			Label: row[index["label"]],
			Index: row[index["index"]],
		}
		if s.Block, err = strconv.Atoi(row[index["block_num"]]); err != nil {
			return nil, fmt.Errorf("line %d: block_num: %w", line, err)
		}
		if s.Page, err = strconv.Atoi(row[index["page_num"]]); err != nil {
			return nil, fmt.Errorf("line %d: page_num: %w", line, err)
		}
		if level := row[index["level"]]; level != "" {
			if s.Level, err = strconv.Atoi(level); err != nil {
				return nil, fmt.Errorf("line %d: level: %w", line, err)
			}
			s.HasLevel = true
		}
		table = append(table, s)
	}
	return table, nil
}

// LoadSegmentsCSV reads a segmentation table from a CSV file.
func LoadSegmentsCSV(path string) (model.SegmentTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open segments: %w", err)
	}
	defer f.Close()

	table, err := ReadSegments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// columnIndex maps required record columns to their positions in the
// header, failing with the full set of missing names.
func columnIndex(header []string) (map[string]int, error) {
	return headerIndex(header, recordColumns)
}

// headerIndex maps the required column names to their positions in the
// header, failing with the full set of missing names.
func headerIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(row []string, index map[string]int) (model.WordRecord, error) {
	cell := func(name string) (string, error) {
		i := index[name]
		if i >= len(row) {
			return "", fmt.Errorf("short row: no %s cell", name)
		}
		return row[i], nil
	}

	var rec model.WordRecord
	var err error

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"page_num", &rec.Page},
		{"block_num", &rec.Block},
	} {
		raw, cellErr := cell(f.name)
		if cellErr != nil {
			return model.WordRecord{}, cellErr
		}
		if *f.dst, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
			return model.WordRecord{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"left", &rec.Left},
		{"top", &rec.Top},
		{"width", &rec.Width},
		{"height", &rec.Height},
	} {
		raw, cellErr := cell(f.name)
		if cellErr != nil {
			return model.WordRecord{}, cellErr
		}
		if *f.dst, err = strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
			return model.WordRecord{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	text, cellErr := cell("text")
	if cellErr != nil {
		return model.WordRecord{}, cellErr
	}
	rec.Text = strings.TrimSpace(text)
	return rec, nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
