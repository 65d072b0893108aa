package planner

// Allocation is the result of planning a single day.
type Allocation struct {
	// Additions is the number of units added to each tool
	Additions Stock `json:"additions"`

	// Used is the sum of Additions
	Used int `json:"used"`

	// After is current plus Additions
	After Stock `json:"after"`

	// Chunks is Additions split into deliveries of at most ChunkSize
	Chunks []Chunk `json:"chunks"`
}

// Allocate decides how many units each tool receives today.
//
// The day's budget is the smaller of dailyCap and the total remaining
// deficit. When the budget can bring every tool up to the current leader,
// all tools are raised to the highest common level the budget affords
// (case A). Otherwise only the tools below the leader are raised, as evenly
// as possible, without passing it (case B). In both cases leftover units are
// spent only in whole rounds across the raised group, so the group ends the
// day level. Tools at or above targetEach never receive units.
func Allocate(current Stock, targetEach, dailyCap int) Allocation {
	totalDeficit := current.Deficit(targetEach).Sum()
	if totalDeficit == 0 {
		return Allocation{After: current, Chunks: []Chunk{}}
	}

	budget := max(0, min(dailyCap, totalDeficit))
	lo := current.Max()

	var adds Stock
	if costToReach(current, lo, targetEach) <= budget {
		adds = raiseAll(current, lo, targetEach, budget)
	} else {
		adds = raiseLower(current, min(lo, targetEach), budget)
	}

	trimToBudget(&adds, budget)

	var after Stock
	for i := range current {
		after[i] = current[i] + adds[i]
	}

	return Allocation{
		Additions: adds,
		Used:      adds.Sum(),
		After:     after,
		Chunks:    SplitChunks(adds, ChunkSize),
	}
}

// costToReach returns the units needed to bring every tool up to level,
// never counting units above targetEach.
func costToReach(current Stock, level, targetEach int) int {
	ceiling := min(level, targetEach)
	cost := 0
	for _, v := range current {
		cost += max(0, ceiling-v)
	}
	return cost
}

// raiseAll levels every tool at the highest common level within budget.
func raiseAll(current Stock, lo, targetEach, budget int) Stock {
	best := lo
	for l, r := lo, targetEach; l <= r; {
		mid := l + (r-l)/2
		if costToReach(current, mid, targetEach) <= budget {
			best = mid
			l = mid + 1
		} else {
			r = mid - 1
		}
	}

	var adds Stock
	level := min(best, targetEach)
	for i, v := range current {
		adds[i] = max(0, level-v)
	}

	// A remainder smaller than one full round stays unspent.
	room := budget - adds.Sum()
	if extra := min(room/NumItems, targetEach-best); extra > 0 {
		for i := range adds {
			adds[i] += extra
		}
	}
	return adds
}

// raiseLower lifts the tools below ceiling toward a common level without
// passing ceiling. Tools at or above ceiling receive nothing.
func raiseLower(current Stock, ceiling, budget int) Stock {
	var lower []int
	sumLower := 0
	for i, v := range current {
		if v < ceiling {
			lower = append(lower, i)
			sumLower += v
		}
	}

	var adds Stock
	m := len(lower)
	if m == 0 {
		return adds
	}

	x := min((sumLower+budget)/m, ceiling)
	used := 0
	for _, i := range lower {
		adds[i] = max(0, x-current[i])
		used += adds[i]
	}

	rem := budget - used
	if rem >= m && x < ceiling {
		if bump := min(rem/m, ceiling-x); bump > 0 {
			for _, i := range lower {
				adds[i] += bump
			}
		}
	}
	return adds
}

// trimToBudget removes any excess over budget, taking from the first
// tools first.
func trimToBudget(adds *Stock, budget int) {
	over := adds.Sum() - budget
	for i := 0; i < NumItems && over > 0; i++ {
		cut := min(over, adds[i])
		adds[i] -= cut
		over -= cut
	}
}
