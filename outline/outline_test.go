package outline

import "testing"

func indicesOf(entries []IndexedEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Index
	}
	return out
}

func TestAssignIndices(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []string
	}{
		{
			name: "flat outline",
			entries: []Entry{
				{Level: 1, Label: "Intro", Page: 1},
				{Level: 1, Label: "Method", Page: 2},
				{Level: 1, Label: "Results", Page: 4},
			},
			want: []string{"1", "2", "3"},
		},
		{
			name: "one nested level",
			entries: []Entry{
				{Level: 1, Label: "Intro", Page: 1},
				{Level: 2, Label: "Background", Page: 1},
				{Level: 1, Label: "Method", Page: 2},
			},
			want: []string{"1", "1.1", "2"},
		},
		{
			name: "siblings at depth",
			entries: []Entry{
				{Level: 1, Label: "Intro", Page: 1},
				{Level: 2, Label: "Background", Page: 1},
				{Level: 2, Label: "Related Work", Page: 2},
				{Level: 3, Label: "Datasets", Page: 2},
				{Level: 3, Label: "Metrics", Page: 3},
			},
			want: []string{"1", "1.1", "1.2", "1.2.1", "1.2.2"},
		},
		{
			name: "single step decrease",
			entries: []Entry{
				{Level: 1, Label: "A", Page: 1},
				{Level: 2, Label: "A.1", Page: 1},
				{Level: 3, Label: "A.1.1", Page: 1},
				{Level: 2, Label: "A.2", Page: 2},
			},
			want: []string{"1", "1.1", "1.1.1", "1.2"},
		},
		{
			name: "multi step decrease stays well formed",
			entries: []Entry{
				{Level: 1, Label: "A", Page: 1},
				{Level: 2, Label: "A.1", Page: 1},
				{Level: 3, Label: "A.1.1", Page: 1},
				{Level: 4, Label: "A.1.1.1", Page: 1},
				{Level: 2, Label: "A.2", Page: 2},
			},
			want: []string{"1", "1.1", "1.1.1", "1.1.1.1", "1.2"},
		},
		{
			name: "two digit components",
			entries: []Entry{
				{Level: 1, Label: "A", Page: 1},
				{Level: 2, Label: "s1", Page: 1},
				{Level: 2, Label: "s2", Page: 1},
				{Level: 2, Label: "s3", Page: 1},
				{Level: 2, Label: "s4", Page: 1},
				{Level: 2, Label: "s5", Page: 1},
				{Level: 2, Label: "s6", Page: 1},
				{Level: 2, Label: "s7", Page: 1},
				{Level: 2, Label: "s8", Page: 1},
				{Level: 2, Label: "s9", Page: 1},
				{Level: 2, Label: "s10", Page: 2},
				{Level: 2, Label: "s11", Page: 2},
			},
			want: []string{"1", "1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "1.8", "1.9", "1.10", "1.11"},
		},
		{
			name:    "empty outline",
			entries: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indicesOf(AssignIndices(tt.entries))
			if len(got) != len(tt.want) {
				t.Fatalf("AssignIndices returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAssignIndicesPreservesEntries(t *testing.T) {
	entries := []Entry{
		{Level: 1, Label: "Intro", Page: 1},
		{Level: 2, Label: "Background", Page: 3},
	}

	indexed := AssignIndices(entries)
	for i, e := range indexed {
		if e.Level != entries[i].Level || e.Label != entries[i].Label || e.Page != entries[i].Page {
			t.Errorf("entry %d mutated: got %+v, want %+v", i, e.Entry, entries[i])
		}
	}
}
