package geom

import (
	"reflect"
	"testing"

	"github.com/tsawler/segmenta/model"
)

func TestBlocksOverlapping(t *testing.T) {
	m := NewMatcher()

	// A table region covering blocks 2 and 3; block 5 sits elsewhere.
	records := model.Records{
		rec(1, 2, 100, 100, 50, 20, "cell"),
		rec(1, 2, 160, 100, 50, 20, "cell"),
		rec(1, 3, 100, 130, 50, 20, "cell"),
		rec(1, 5, 400, 600, 50, 20, "body"),
	}
	target := model.NewRect(90, 90, 300, 160)

	got := m.BlocksOverlapping(records, target)
	if want := []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("BlocksOverlapping = %v, want %v", got, want)
	}
}

func TestBlocksOverlappingEmpty(t *testing.T) {
	m := NewMatcher()
	records := model.Records{rec(1, 0, 0, 0, 10, 10, "a")}

	// Zero matched words is an empty result, not an error.
	got := m.BlocksOverlapping(records, model.NewRect(500, 500, 600, 600))
	if len(got) != 0 {
		t.Errorf("BlocksOverlapping = %v, want empty", got)
	}
	if got := m.BlocksOverlapping(nil, model.NewRect(0, 0, 10, 10)); len(got) != 0 {
		t.Errorf("BlocksOverlapping(nil) = %v, want empty", got)
	}
}

func TestBlocksOverlappingTouchingEdges(t *testing.T) {
	m := NewMatcher()
	records := model.Records{rec(1, 0, 100, 100, 50, 20, "word")}

	// Word box is (100,100)-(150,120); target shares the right edge only.
	got := m.BlocksOverlapping(records, model.NewRect(150, 100, 200, 120))
	if len(got) != 0 {
		t.Errorf("touching edges must not overlap, got %v", got)
	}
}

func TestBlocksOverlappingCaptionAdjacency(t *testing.T) {
	m := NewMatcher()

	// The last row of the table overlaps; the caption record follows it in
	// emission order but sits below the detected region.
	records := model.Records{
		rec(1, 4, 100, 100, 80, 20, "value"),
		rec(1, 6, 100, 140, 120, 20, "Table 2: results"),
		rec(1, 7, 100, 180, 120, 20, "Body text continues"),
	}
	target := model.NewRect(90, 90, 300, 130)

	got := m.BlocksOverlapping(records, target)
	if want := []int{4, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("BlocksOverlapping = %v, want %v (caption block included)", got, want)
	}
}

func TestBlocksOverlappingCaptionNotAdjacent(t *testing.T) {
	m := NewMatcher()

	// The record after the overlapping one has no caption token, so the
	// later caption-looking record elsewhere is not pulled in.
	records := model.Records{
		rec(1, 4, 100, 100, 80, 20, "value"),
		rec(1, 7, 100, 400, 120, 20, "Body text"),
		rec(1, 9, 100, 600, 120, 20, "Table 3: unrelated"),
	}
	target := model.NewRect(90, 90, 300, 130)

	got := m.BlocksOverlapping(records, target)
	if want := []int{4}; !reflect.DeepEqual(got, want) {
		t.Errorf("BlocksOverlapping = %v, want %v", got, want)
	}
}

func TestBlockBelowFindsFigureCaption(t *testing.T) {
	m := NewMatcher()
	records := model.Records{
		rec(1, 1, 100, 50, 80, 20, "above"),
		rec(1, 8, 100, 520, 160, 20, "Figure 1: architecture"),
		rec(1, 9, 100, 560, 160, 20, "Figure 2: elsewhere"),
	}

	got := m.BlockBelow(records, 500)
	if want := []int{8}; !reflect.DeepEqual(got, want) {
		t.Errorf("BlockBelow = %v, want %v", got, want)
	}
}

func TestBlockBelowStopsAtFirstRecord(t *testing.T) {
	m := NewMatcher()

	// The first record past the threshold is body text: scanning stops
	// there even though a caption exists further down.
	records := model.Records{
		rec(1, 8, 100, 520, 160, 20, "Body text"),
		rec(1, 9, 100, 560, 160, 20, "Figure 1: too far"),
	}

	if got := m.BlockBelow(records, 500); got != nil {
		t.Errorf("BlockBelow = %v, want nil", got)
	}
}

func TestBlockBelowNoRecordBelow(t *testing.T) {
	m := NewMatcher()
	records := model.Records{rec(1, 1, 100, 50, 80, 20, "above")}

	if got := m.BlockBelow(records, 500); got != nil {
		t.Errorf("BlockBelow = %v, want nil", got)
	}
	if got := m.BlockBelow(nil, 0); got != nil {
		t.Errorf("BlockBelow(nil) = %v, want nil", got)
	}
}

func TestMatcherCustomTokens(t *testing.T) {
	m := NewMatcherWithConfig(MatcherConfig{TableCaptionToken: "Tabelle", FigureCaptionToken: "Abbildung"})
	records := model.Records{
		rec(1, 4, 100, 100, 80, 20, "wert"),
		rec(1, 6, 100, 140, 120, 20, "Tabelle 1"),
	}

	got := m.BlocksOverlapping(records, model.NewRect(90, 90, 300, 130))
	if want := []int{4, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("BlocksOverlapping = %v, want %v", got, want)
	}
}
