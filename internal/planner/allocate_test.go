package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name      string
		current   Stock
		target    int
		cap       int
		wantAdds  Stock
		wantUsed  int
		wantAfter Stock
	}{
		{
			name:      "equalizable within budget",
			current:   Stock{9, 12, 25},
			target:    100,
			cap:       DailyCap,
			wantAdds:  Stock{36, 33, 20},
			wantUsed:  89,
			wantAfter: Stock{45, 45, 45},
		},
		{
			name:      "level start leaves partial round unspent",
			current:   Stock{0, 0, 0},
			target:    1000,
			cap:       DailyCap,
			wantAdds:  Stock{29, 29, 29},
			wantUsed:  87,
			wantAfter: Stock{29, 29, 29},
		},
		{
			name:      "expansion preset",
			current:   Stock{14, 6, 10},
			target:    45,
			cap:       DailyCap,
			wantAdds:  Stock{25, 33, 29},
			wantUsed:  87,
			wantAfter: Stock{39, 39, 39},
		},
		{
			name:      "deficit below cap finishes",
			current:   Stock{0, 0, 0},
			target:    10,
			cap:       DailyCap,
			wantAdds:  Stock{10, 10, 10},
			wantUsed:  30,
			wantAfter: Stock{10, 10, 10},
		},
		{
			name:      "single laggard",
			current:   Stock{98, 100, 100},
			target:    100,
			cap:       DailyCap,
			wantAdds:  Stock{2, 0, 0},
			wantUsed:  2,
			wantAfter: Stock{100, 100, 100},
		},
		{
			name:      "already at target",
			current:   Stock{100, 100, 100},
			target:    100,
			cap:       DailyCap,
			wantAdds:  Stock{},
			wantUsed:  0,
			wantAfter: Stock{100, 100, 100},
		},
		{
			name:      "leader out of reach raises lower group",
			current:   Stock{0, 0, 500},
			target:    1000,
			cap:       DailyCap,
			wantAdds:  Stock{44, 44, 0},
			wantUsed:  88,
			wantAfter: Stock{44, 44, 500},
		},
		{
			name:      "uneven lower group is trimmed to budget",
			current:   Stock{0, 95, 100},
			target:    1000,
			cap:       DailyCap,
			wantAdds:  Stock{89, 0, 0},
			wantUsed:  89,
			wantAfter: Stock{89, 95, 100},
		},
		{
			name:      "tool above target gets nothing",
			current:   Stock{1200, 0, 0},
			target:    1000,
			cap:       DailyCap,
			wantAdds:  Stock{0, 44, 44},
			wantUsed:  88,
			wantAfter: Stock{1200, 44, 44},
		},
		{
			name:      "tool above target with small remaining deficit",
			current:   Stock{1200, 990, 995},
			target:    1000,
			cap:       DailyCap,
			wantAdds:  Stock{0, 10, 5},
			wantUsed:  15,
			wantAfter: Stock{1200, 1000, 1000},
		},
		{
			name:      "zero cap makes no progress",
			current:   Stock{0, 0, 0},
			target:    10,
			cap:       0,
			wantAdds:  Stock{},
			wantUsed:  0,
			wantAfter: Stock{0, 0, 0},
		},
		{
			name:      "negative cap makes no progress",
			current:   Stock{5, 0, 0},
			target:    10,
			cap:       -3,
			wantAdds:  Stock{},
			wantUsed:  0,
			wantAfter: Stock{5, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.current, tt.target, tt.cap)

			if diff := cmp.Diff(tt.wantAdds, got.Additions); diff != "" {
				t.Errorf("Additions mismatch (-want +got):\n%s", diff)
			}
			if got.Used != tt.wantUsed {
				t.Errorf("Used = %d, want %d", got.Used, tt.wantUsed)
			}
			if diff := cmp.Diff(tt.wantAfter, got.After); diff != "" {
				t.Errorf("After mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(got.Additions, ChunkTotals(got.Chunks)); diff != "" {
				t.Errorf("chunks do not sum to additions (-adds +chunks):\n%s", diff)
			}
		})
	}
}

func TestAllocate_ChunkOrder(t *testing.T) {
	got := Allocate(Stock{9, 12, 25}, 100, DailyCap)

	want := []Chunk{
		{ItemA, 10}, {ItemB, 10}, {ItemC, 10},
		{ItemA, 10}, {ItemB, 10}, {ItemC, 10},
		{ItemA, 10}, {ItemB, 10},
		{ItemA, 6}, {ItemB, 3},
	}
	if diff := cmp.Diff(want, got.Chunks); diff != "" {
		t.Errorf("Chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	current := Stock{9, 12, 25}
	_ = Allocate(current, 100, DailyCap)

	if current != (Stock{9, 12, 25}) {
		t.Errorf("input stock was modified: %v", current)
	}
}

func TestCostToReach(t *testing.T) {
	current := Stock{9, 12, 25}

	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{9, 0},
		{12, 3},
		{25, 29},
		{45, 89},
		{100, 254},
		{150, 254}, // capped at target
	}

	for _, tt := range tests {
		if got := costToReach(current, tt.level, 100); got != tt.want {
			t.Errorf("costToReach(%v, %d) = %d, want %d", current, tt.level, got, tt.want)
		}
	}
}

func TestTrimToBudget(t *testing.T) {
	tests := []struct {
		name   string
		adds   Stock
		budget int
		want   Stock
	}{
		{"under budget", Stock{1, 2, 3}, 10, Stock{1, 2, 3}},
		{"exact budget", Stock{1, 2, 3}, 6, Stock{1, 2, 3}},
		{"trim from first", Stock{5, 2, 3}, 8, Stock{3, 2, 3}},
		{"trim spans tools", Stock{2, 4, 3}, 4, Stock{0, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adds := tt.adds
			trimToBudget(&adds, tt.budget)
			if adds != tt.want {
				t.Errorf("trimToBudget(%v, %d) = %v, want %v", tt.adds, tt.budget, adds, tt.want)
			}
		})
	}
}
