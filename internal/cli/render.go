package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danieljhkim/toolplan/internal/clock"
	"github.com/danieljhkim/toolplan/internal/engine"
	"github.com/danieljhkim/toolplan/internal/hash"
	"github.com/danieljhkim/toolplan/internal/planner"
	"github.com/danieljhkim/toolplan/internal/toolset"
)

// modeTitle returns the localized tab title for a mode, or its ID when the
// locale has none.
func modeTitle(tr *toolset.Translator, id string) string {
	key := "tabs." + id
	if title := tr.T(key); title != key {
		return title
	}
	return id
}

// requirement returns the localized "each tool requires" sentence.
func requirement(tr *toolset.Translator, res *engine.CalculateResult) string {
	if res.Direct {
		return tr.Tf("msg.require_expansion", res.TargetEach)
	}
	return tr.Tf("msg.require_capacity", res.TargetEach, res.PreviousCapacity)
}

func renderResult(w io.Writer, tr *toolset.Translator, res *engine.CalculateResult) {
	PrintSection(w, fmt.Sprintf("%s · %s", tr.T("title"), modeTitle(tr, res.Mode)))
	PrintInfo(w, requirement(tr, res))

	if res.Incomplete {
		PrintWarning(w, tr.T("msg.enter_stock"))
		return
	}

	deficits := make([]string, 0, planner.NumItems)
	for i, name := range res.Items {
		deficits = append(deficits, fmt.Sprintf("%s %d", name, res.Deficits[i]))
	}
	PrintLabelValue(w, tr.T("kpi.need_each"), strings.Join(deficits, " · "))
	PrintBadge(w, tr.T("kpi.balanced"))
	PrintBadge(w, tr.Tf("kpi.cap", res.Summary.DailyCap))
	_, _ = fmt.Fprintln(w)

	for i, day := range res.Plan.Days {
		renderDay(w, tr, res.Items, day, res.Summary.DayUtilization[i])
	}

	_, _ = fmt.Fprintln(w)
	if res.Summary.Complete {
		PrintSuccess(w, tr.Tf("msg.generated", res.Summary.Days))
	} else {
		PrintWarning(w, tr.Tf("msg.stalled", res.Summary.Days))
	}
	_, _ = dimColor.Fprintf(w, "  %s · %s · %s%%\n",
		hash.Short(res.Summary.Digest),
		clock.Stamp(res.GeneratedAt),
		res.Summary.Utilization.String())
}

func renderDay(w io.Writer, tr *toolset.Translator, names [planner.NumItems]string, day planner.DayRecord, util decimal.Decimal) {
	_, _ = fmt.Fprintln(w)
	_, _ = headerColor.Fprint(w, tr.Tf("plan.day", day.Day))
	PrintBadge(w, fmt.Sprintf("%s · %s%%", tr.Tf("plan.used", day.Used, planner.DailyCap), util.String()))
	PrintBadge(w, tr.Tf("plan.end_total", day.After[planner.ItemA]))
	_, _ = fmt.Fprintln(w)

	PrintSubsection(w, tr.T("plan.slots"))
	PrintTable(w,
		[]string{tr.T("table.slot"), tr.T("table.tool"), tr.T("table.amount")},
		slotRows(tr, names, day),
		len(day.Chunks) > 0)

	PrintSubsection(w, tr.T("plan.tracking"))
	PrintTable(w,
		[]string{
			tr.T("table.tool"), tr.T("table.start"), tr.T("table.added"), tr.T("table.total"),
			tr.T("table.remaining"), tr.T("table.target"), tr.T("table.check"),
		},
		trackingRows(names, day),
		false)
}

// slotRows lists the day's deliveries, smallest first, followed by a total
// row. A day without deliveries gets a single placeholder row.
func slotRows(tr *toolset.Translator, names [planner.NumItems]string, day planner.DayRecord) [][]string {
	if len(day.Chunks) == 0 {
		return [][]string{{"", tr.T("plan.no_distribution"), ""}}
	}

	chunks := planner.SortedForDisplay(day.Chunks, names)
	rows := make([][]string, 0, len(chunks)+1)
	for i, c := range chunks {
		rows = append(rows, []string{strconv.Itoa(i + 1), names[c.Item], strconv.Itoa(c.Amount)})
	}
	total := planner.ChunkTotals(chunks).Sum()
	rows = append(rows, []string{"", tr.T("table.total"), strconv.Itoa(total)})
	return rows
}

func trackingRows(names [planner.NumItems]string, day planner.DayRecord) [][]string {
	remaining := day.Remaining()
	rows := make([][]string, 0, planner.NumItems)
	for _, item := range planner.Items {
		check := ""
		if remaining[item] == 0 {
			check = "✓"
		}
		rows = append(rows, []string{
			names[item],
			strconv.Itoa(day.Start[item]),
			"+" + strconv.Itoa(day.Additions[item]),
			strconv.Itoa(day.After[item]),
			strconv.Itoa(remaining[item]),
			strconv.Itoa(day.TargetEach),
			check,
		})
	}
	return rows
}
