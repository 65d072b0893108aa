package planner

import (
	"cmp"
	"slices"
)

// SplitChunks splits additions into deliveries of at most size units.
// Tools are visited round-robin in slot order, so the result reads
// A, B, C, A, B, C, ... until every tool's additions are used up.
// A non-positive size is treated as ChunkSize.
func SplitChunks(additions Stock, size int) []Chunk {
	if size <= 0 {
		size = ChunkSize
	}

	left := additions
	chunks := []Chunk{}
	for pending(left) {
		for i, item := range Items {
			if left[i] <= 0 {
				continue
			}
			take := min(size, left[i])
			chunks = append(chunks, Chunk{Item: item, Amount: take})
			left[i] -= take
		}
	}
	return chunks
}

func pending(s Stock) bool {
	for _, v := range s {
		if v > 0 {
			return true
		}
	}
	return false
}

// SortedForDisplay returns a copy of chunks ordered by amount, smallest
// first, then by tool name. names maps each slot to its display name.
func SortedForDisplay(chunks []Chunk, names [NumItems]string) []Chunk {
	sorted := slices.Clone(chunks)
	slices.SortStableFunc(sorted, func(a, b Chunk) int {
		if c := cmp.Compare(a.Amount, b.Amount); c != 0 {
			return c
		}
		return cmp.Compare(names[a.Item], names[b.Item])
	})
	return sorted
}

// ChunkTotals sums chunk amounts per tool.
func ChunkTotals(chunks []Chunk) Stock {
	var totals Stock
	for _, c := range chunks {
		totals[c.Item] += c.Amount
	}
	return totals
}
