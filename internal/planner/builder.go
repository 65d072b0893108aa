package planner

// BuildPlan plans day after day, at DailyCap units per day, until every tool
// reaches targetEach. Planning stops early if a day makes no progress; the
// returned plan then reports Stalled.
func BuildPlan(initial Stock, targetEach int) *Plan {
	return buildPlan(initial, targetEach, DailyCap)
}

func buildPlan(initial Stock, targetEach, dailyCap int) *Plan {
	plan := NewPlan(initial, targetEach)

	cur := initial
	for day := 1; !cur.Reached(targetEach); day++ {
		step := Allocate(cur, targetEach, dailyCap)
		if step.Used == 0 {
			break
		}

		plan.AddDay(DayRecord{
			Day:        day,
			Start:      cur,
			Additions:  step.Additions,
			Used:       step.Used,
			After:      step.After,
			Chunks:     step.Chunks,
			TargetEach: targetEach,
		})
		cur = step.After
	}

	return plan
}
