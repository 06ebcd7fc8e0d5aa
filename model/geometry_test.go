package model

import "testing"

func TestRectWidthHeight(t *testing.T) {
	r := NewRect(10, 20, 110, 220)
	if got := r.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := r.Height(); got != 200 {
		t.Errorf("Height() = %v, want 200", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 15, 15),
			want: true,
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 20, 30, 30),
			want: false,
		},
		{
			name: "touching vertical edge",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 20, 10),
			want: false,
		},
		{
			name: "touching horizontal edge",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 10, 10, 20),
			want: false,
		},
		{
			name: "touching corner",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 20, 20),
			want: false,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(25, 25, 75, 75),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The predicate must be symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 30)
	got := a.Union(b)
	want := NewRect(0, 0, 20, 30)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	got := r.Expand(3)
	want := NewRect(7, 7, 23, 23)
	if got != want {
		t.Errorf("Expand(3) = %+v, want %+v", got, want)
	}
}

func TestRectValidity(t *testing.T) {
	valid := NewRect(0, 0, 10, 10)
	if !valid.IsValid() {
		t.Error("expected rect to be valid")
	}

	inverted := NewRect(10, 10, 0, 0)
	if inverted.IsValid() {
		t.Error("expected inverted rect to be invalid")
	}
	if inverted.Area() != 0 {
		t.Errorf("Area() of invalid rect = %v, want 0", inverted.Area())
	}

	line := NewRect(0, 0, 10, 0)
	if !line.IsValid() {
		t.Error("degenerate rect should still be valid")
	}
	if !line.IsEmpty() {
		t.Error("degenerate rect should be empty")
	}
}
