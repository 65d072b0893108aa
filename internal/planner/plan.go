package planner

const (
	// NumItems is the number of tools tracked by a plan.
	NumItems = 3

	// DailyCap is the maximum number of units added across all tools in one day.
	DailyCap = 89

	// ChunkSize is the largest amount carried by a single delivery chunk.
	ChunkSize = 10
)

// Item identifies one of the three tool slots.
type Item int

// Tool slots, in delivery order.
const (
	ItemA Item = iota
	ItemB
	ItemC
)

// Items lists the tool slots in delivery order.
var Items = [NumItems]Item{ItemA, ItemB, ItemC}

// String returns the slot letter.
func (i Item) String() string {
	switch i {
	case ItemA:
		return "A"
	case ItemB:
		return "B"
	case ItemC:
		return "C"
	default:
		return "?"
	}
}

// Stock holds one level per tool slot.
type Stock [NumItems]int

// Sum returns the total across all slots.
func (s Stock) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Max returns the highest level.
func (s Stock) Max() int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Deficit returns how far each slot is below target. Slots at or above
// target report zero.
func (s Stock) Deficit(target int) Stock {
	var d Stock
	for i, v := range s {
		d[i] = max(0, target-v)
	}
	return d
}

// Reached reports whether every slot is at or above target.
func (s Stock) Reached(target int) bool {
	for _, v := range s {
		if v < target {
			return false
		}
	}
	return true
}

// Chunk is a single delivery of up to ChunkSize units of one tool.
type Chunk struct {
	Item   Item `json:"item"`
	Amount int  `json:"amount"`
}

// DayRecord describes one planned day.
type DayRecord struct {
	// Day is the 1-based day index
	Day int `json:"day"`

	// Start is the stock at the beginning of the day
	Start Stock `json:"start"`

	// Additions is the number of units added to each tool
	Additions Stock `json:"additions"`

	// Used is the total added this day (never above DailyCap)
	Used int `json:"used"`

	// After is the stock at the end of the day
	After Stock `json:"after"`

	// Chunks is the day's delivery list, in emission order
	Chunks []Chunk `json:"chunks"`

	// TargetEach is the per-tool target the day works toward
	TargetEach int `json:"target_each"`
}

// Remaining returns each tool's deficit after the day.
func (d DayRecord) Remaining() Stock {
	return d.After.Deficit(d.TargetEach)
}

// Plan is the ordered sequence of days produced by BuildPlan.
type Plan struct {
	// Initial is the stock the plan starts from
	Initial Stock `json:"initial"`

	// TargetEach is the per-tool target
	TargetEach int `json:"target_each"`

	// Days is the ordered list of planned days, day 1 first
	Days []DayRecord `json:"days"`
}

// NewPlan creates an empty plan.
func NewPlan(initial Stock, targetEach int) *Plan {
	return &Plan{
		Initial:    initial,
		TargetEach: targetEach,
		Days:       []DayRecord{},
	}
}

// AddDay appends a day to the plan.
func (p *Plan) AddDay(day DayRecord) {
	p.Days = append(p.Days, day)
}

// Final returns the stock after the last planned day, or the initial stock
// if no day was planned.
func (p *Plan) Final() Stock {
	if len(p.Days) == 0 {
		return p.Initial
	}
	return p.Days[len(p.Days)-1].After
}

// Complete reports whether the plan brings every tool up to target.
func (p *Plan) Complete() bool {
	return p.Final().Reached(p.TargetEach)
}

// Stalled reports whether planning stopped with a deficit remaining.
func (p *Plan) Stalled() bool {
	return !p.Complete()
}

// TotalUsed returns the units added over the whole plan.
func (p *Plan) TotalUsed() int {
	total := 0
	for _, d := range p.Days {
		total += d.Used
	}
	return total
}
