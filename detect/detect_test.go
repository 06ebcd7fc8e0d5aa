package detect

import (
	"reflect"
	"testing"

	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/outline"
)

// fakeProvider serves canned geometry for a document whose pages are
// 500x1000 points against the default 1654x2339 pixel canvas.
type fakeProvider struct {
	pages   int
	tables  map[int][]model.Rect
	images  map[int][]model.Rect
	toc     []outline.Entry
	title   string
	pageW   float64
	pageH   float64
}

func (f *fakeProvider) PageCount() (int, error) { return f.pages, nil }

func (f *fakeProvider) PageSize(page int) (float64, float64, error) {
	return f.pageW, f.pageH, nil
}

func (f *fakeProvider) Outline() ([]outline.Entry, error) { return f.toc, nil }

func (f *fakeProvider) TableRegions(page int) ([]model.Rect, error) {
	return f.tables[page], nil
}

func (f *fakeProvider) ImageRegions(page int) ([]model.Rect, error) {
	return f.images[page], nil
}

func (f *fakeProvider) TitleText() (string, error) { return f.title, nil }

func word(page, block int, left, top float64, text string) model.WordRecord {
	return model.WordRecord{Page: page, Block: block, Left: left, Top: top, Width: 50, Height: 20, Text: text}
}

func TestAbstractBlocks(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name    string
		records model.Records
		want    []int
	}{
		{
			name: "inline abstract",
			records: model.Records{
				word(1, 0, 0, 0, "Title"),
				word(1, 2, 0, 100, "Abstract:"),
				word(1, 2, 60, 100, "This"),
			},
			want: []int{2},
		},
		{
			name: "bare heading pulls next block",
			records: model.Records{
				word(1, 2, 0, 100, "Abstract"),
				word(1, 3, 0, 130, "This"),
				word(1, 3, 60, 130, "paper"),
			},
			want: []int{2, 3},
		},
		{
			name: "first occurrence only",
			records: model.Records{
				word(1, 2, 0, 100, "Abstract:"),
				word(1, 9, 0, 700, "abstract"),
			},
			want: []int{2},
		},
		{
			name: "only first page scanned",
			records: model.Records{
				word(2, 4, 0, 100, "Abstract"),
			},
			want: nil,
		},
		{
			name:    "no abstract",
			records: model.Records{word(1, 0, 0, 0, "Title")},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.AbstractBlocks(tt.records)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AbstractBlocks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordBlocks(t *testing.T) {
	d := NewDetector()
	records := model.Records{
		word(1, 4, 0, 200, "Keywords"),
		word(1, 5, 0, 230, "segmentation,"),
		word(1, 5, 80, 230, "OCR"),
	}

	got := d.KeywordBlocks(records)
	if want := []int{4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordBlocks = %v, want %v", got, want)
	}
}

func TestTableBlocks(t *testing.T) {
	// Page is 827x1169.5 points: exactly half the canvas, so pixel
	// coordinates are double the point coordinates.
	p := &fakeProvider{
		pages: 2,
		pageW: 827,
		pageH: 1169.5,
		tables: map[int][]model.Rect{
			2: {model.NewRect(50, 50, 200, 100)},
		},
	}

	// In pixel space the region is (100,100)-(400,200).
	records := model.Records{
		word(2, 3, 120, 120, "cell"),
		word(2, 4, 120, 220, "Table 1: caption"),
		word(2, 8, 120, 800, "body"),
	}

	d := NewDetector()
	got, err := d.TableBlocks(p, records)
	if err != nil {
		t.Fatalf("TableBlocks returned error: %v", err)
	}

	want := map[int][]int{2: {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TableBlocks = %v, want %v", got, want)
	}
}

func TestFigureBlocks(t *testing.T) {
	p := &fakeProvider{
		pages: 1,
		pageW: 827,
		pageH: 1169.5,
		images: map[int][]model.Rect{
			1: {model.NewRect(50, 100, 300, 250)},
		},
	}

	// Image bottom in pixel space is 500; the first record below it holds
	// the caption.
	records := model.Records{
		word(1, 2, 100, 120, "inside"),
		word(1, 6, 100, 520, "Figure 1: overview"),
	}

	d := NewDetector()
	got, err := d.FigureBlocks(p, records)
	if err != nil {
		t.Fatalf("FigureBlocks returned error: %v", err)
	}

	want := map[int][]int{1: {6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FigureBlocks = %v, want %v", got, want)
	}
}

func TestRegionBlocksSkipsEmptyPages(t *testing.T) {
	p := &fakeProvider{pages: 3, pageW: 827, pageH: 1169.5}
	d := NewDetector()

	got, err := d.TableBlocks(p, model.Records{word(1, 0, 0, 0, "a")})
	if err != nil {
		t.Fatalf("TableBlocks returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("TableBlocks = %v, want empty map", got)
	}
}
