package model

import "sort"

// SegmentType classifies one block-anchored unit of document structure.
type SegmentType int

const (
	SegmentTypeUnknown SegmentType = iota
	SegmentTypeTitle
	SegmentTypeAuthor
	SegmentTypeAbstract
	SegmentTypeKeywords
	SegmentTypeSection
	SegmentTypeHeadline
	SegmentTypeTable
	SegmentTypeFigure
)

func (st SegmentType) String() string {
	switch st {
	case SegmentTypeTitle:
		return "Title"
	case SegmentTypeAuthor:
		return "Author"
	case SegmentTypeAbstract:
		return "Abstract"
	case SegmentTypeKeywords:
		return "Keywords"
	case SegmentTypeSection:
		return "Section"
	case SegmentTypeHeadline:
		return "Headline"
	case SegmentTypeTable:
		return "Table"
	case SegmentTypeFigure:
		return "Figure"
	default:
		return "Unknown"
	}
}

// ParseSegmentType converts a type name as it appears in a segmentation
// table back into a SegmentType. Unrecognized names map to
// SegmentTypeUnknown.
func ParseSegmentType(s string) SegmentType {
	switch s {
	case "Title":
		return SegmentTypeTitle
	case "Author":
		return SegmentTypeAuthor
	case "Abstract":
		return SegmentTypeAbstract
	case "Keywords":
		return SegmentTypeKeywords
	case "Section":
		return SegmentTypeSection
	case "Headline":
		return SegmentTypeHeadline
	case "Table":
		return SegmentTypeTable
	case "Figure":
		return SegmentTypeFigure
	default:
		return SegmentTypeUnknown
	}
}

// Segment is one classified unit of document structure anchored to an OCR
// block. Level, Label and Index are meaningful for Section segments only
// and are zero-valued otherwise. Level is 0-based; Index is the dotted
// hierarchical number assigned from the document outline ("1", "1.1", ...).
// Sections inferred by the gap-filling pass carry no level, label or index.
type Segment struct {
	Type  SegmentType
	Block int
	Page  int

	// Section-only fields
	Level    int
	Label    string
	Index    string
	HasLevel bool // distinguishes an assigned level 0 from absence
}

// Key returns the segment's identity key.
func (s Segment) Key() BlockKey {
	return BlockKey{Block: s.Block, Page: s.Page}
}

// SegmentTable is an ordered sequence of segments. After the engine's final
// ordering pass it is sorted ascending by (page, block) and contains no
// duplicate keys.
type SegmentTable []Segment

// KeySet returns the set of block keys present in the table.
func (t SegmentTable) KeySet() map[BlockKey]bool {
	set := make(map[BlockKey]bool, len(t))
	for _, s := range t {
		set[s.Key()] = true
	}
	return set
}

// Contains reports whether the table already holds a segment for key.
func (t SegmentTable) Contains(key BlockKey) bool {
	for _, s := range t {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// OfType returns the segments of the given type, preserving table order.
func (t SegmentTable) OfType(st SegmentType) SegmentTable {
	var out SegmentTable
	for _, s := range t {
		if s.Type == st {
			out = append(out, s)
		}
	}
	return out
}

// First returns the first segment of the given type, or false if none
// exists.
func (t SegmentTable) First(st SegmentType) (Segment, bool) {
	for _, s := range t {
		if s.Type == st {
			return s, true
		}
	}
	return Segment{}, false
}

// Sort orders the table ascending by (page, block). The sort is stable so
// that equal keys, which the engine never produces, would keep their
// relative order.
func (t SegmentTable) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Key().Less(t[j].Key())
	})
}

// Clone returns a copy of the table sharing no backing storage.
func (t SegmentTable) Clone() SegmentTable {
	out := make(SegmentTable, len(t))
	copy(out, t)
	return out
}
