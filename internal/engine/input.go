package engine

import (
	"math"
	"strconv"
	"strings"
)

// maxQuantity bounds coerced quantities so sums cannot overflow.
const maxQuantity = math.MaxInt32

// MaxDirectTarget is the largest per-tool count accepted in direct modes.
// Capacity modes top out at 518 each; direct targets get generous headroom
// while keeping the day loop bounded.
const MaxDirectTarget = 100000

// ParseQuantity coerces typed text into a non-negative integer.
//
// Blank text is absent. Text that is not a finite number is also absent,
// never zero. Numbers are floored and negatives become 0.
func ParseQuantity(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	f = math.Floor(f)
	switch {
	case f < 0:
		return 0, true
	case f > maxQuantity:
		return maxQuantity, true
	default:
		return int(f), true
	}
}
