// Package outline assigns dotted hierarchical numbers (1, 1.1, 1.1.1, ...)
// to a document's structural outline.
package outline

import (
	"strconv"
	"strings"
)

// Entry is one outline (table-of-contents) entry as supplied by the PDF's
// structural outline. Level is 1-based nesting depth, Page is the 1-based
// page the heading appears on. Entries arrive and stay in the outline's
// declared document order.
type Entry struct {
	Level int
	Label string
	Page  int
}

// IndexedEntry is an outline entry with its assigned dotted index.
type IndexedEntry struct {
	Entry
	Index string
}

// AssignIndices walks the entries in document order and assigns each a
// dotted index:
//
//   - the first entry is "1"
//   - a level-1 entry increments the leading component and drops the rest
//   - an entry deeper than its predecessor appends ".1"
//   - an entry at the same or a shallower level truncates the index to its
//     own level and increments the last remaining component
//
// The truncation step keeps indices well formed when the level drops by
// more than one step at once and when components reach two digits. The
// input slice is not modified.
func AssignIndices(entries []Entry) []IndexedEntry {
	out := make([]IndexedEntry, 0, len(entries))

	var comps []int // dotted components of the previous index
	prevLevel := 0
	for i, e := range entries {
		switch {
		case i == 0:
			comps = []int{1}
		case e.Level == 1:
			comps = []int{comps[0] + 1}
		case e.Level > prevLevel:
			comps = append(comps, 1)
		default:
			if e.Level >= 1 && e.Level < len(comps) {
				comps = comps[:e.Level]
			}
			comps[len(comps)-1]++
		}
		prevLevel = e.Level

		out = append(out, IndexedEntry{Entry: e, Index: formatIndex(comps)})
	}
	return out
}

func formatIndex(comps []int) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}
