package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name      string
		additions Stock
		size      int
		want      []Chunk
	}{
		{
			name:      "nothing to deliver",
			additions: Stock{},
			size:      ChunkSize,
			want:      []Chunk{},
		},
		{
			name:      "single small chunk",
			additions: Stock{0, 7, 0},
			size:      ChunkSize,
			want:      []Chunk{{ItemB, 7}},
		},
		{
			name:      "round robin skips finished tools",
			additions: Stock{25, 0, 3},
			size:      ChunkSize,
			want:      []Chunk{{ItemA, 10}, {ItemC, 3}, {ItemA, 10}, {ItemA, 5}},
		},
		{
			name:      "exact multiples",
			additions: Stock{10, 20, 10},
			size:      ChunkSize,
			want:      []Chunk{{ItemA, 10}, {ItemB, 10}, {ItemC, 10}, {ItemB, 10}},
		},
		{
			name:      "non-positive size falls back to default",
			additions: Stock{12, 0, 0},
			size:      0,
			want:      []Chunk{{ItemA, 10}, {ItemA, 2}},
		},
		{
			name:      "custom size",
			additions: Stock{5, 5, 0},
			size:      3,
			want:      []Chunk{{ItemA, 3}, {ItemB, 3}, {ItemA, 2}, {ItemB, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitChunks(tt.additions, tt.size)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitChunks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitChunks_Bounds(t *testing.T) {
	for a := 0; a <= 35; a += 7 {
		for b := 0; b <= 35; b += 5 {
			for c := 0; c <= 35; c += 11 {
				adds := Stock{a, b, c}
				chunks := SplitChunks(adds, ChunkSize)
				for _, ch := range chunks {
					if ch.Amount < 1 || ch.Amount > ChunkSize {
						t.Fatalf("SplitChunks(%v) produced chunk amount %d", adds, ch.Amount)
					}
				}
				if got := ChunkTotals(chunks); got != adds {
					t.Fatalf("SplitChunks(%v) totals = %v", adds, got)
				}
			}
		}
	}
}

func TestSortedForDisplay(t *testing.T) {
	names := [NumItems]string{"Bolt", "Plank", "Duct Tape"}
	chunks := []Chunk{
		{ItemA, 10}, {ItemB, 10}, {ItemC, 10},
		{ItemA, 6}, {ItemB, 3},
	}
	original := append([]Chunk(nil), chunks...)

	got := SortedForDisplay(chunks, names)

	want := []Chunk{
		{ItemB, 3},
		{ItemA, 6},
		{ItemA, 10}, // Bolt
		{ItemC, 10}, // Duct Tape
		{ItemB, 10}, // Plank
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedForDisplay() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, chunks); diff != "" {
		t.Errorf("SortedForDisplay() modified its input (-want +got):\n%s", diff)
	}
}

func TestItem_String(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{ItemA, "A"},
		{ItemB, "B"},
		{ItemC, "C"},
		{Item(7), "?"},
	}

	for _, tt := range tests {
		if got := tt.item.String(); got != tt.want {
			t.Errorf("Item(%d).String() = %q, want %q", int(tt.item), got, tt.want)
		}
	}
}
