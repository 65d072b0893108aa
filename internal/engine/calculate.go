package engine

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/danieljhkim/toolplan/internal/planner"
	"github.com/danieljhkim/toolplan/internal/tier"
	"github.com/danieljhkim/toolplan/internal/toolset"
)

// Calculate builds the plan for one set of inputs.
//
// An invalid target or unknown mode returns a nil result. When any stock
// value is missing, Calculate returns a result carrying the requirement
// together with an error wrapping ErrIncompleteInput.
func (e *Engine) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode, err := e.catalog.Mode(req.Mode)
	if err != nil {
		return nil, err
	}

	target, each, err := resolveTarget(mode, req.Target)
	if err != nil {
		e.logger.Debug("Rejected target",
			zap.String("mode", mode.ID),
			zap.String("target", req.Target),
			zap.Error(err))
		return nil, err
	}

	result := &CalculateResult{
		Mode:        mode.ID,
		Direct:      mode.Direct,
		Items:       e.catalog.Names(mode, req.Lang),
		Target:      target,
		TargetEach:  each,
		GeneratedAt: e.clock.Now(),
	}
	if !mode.Direct {
		result.PreviousCapacity = tier.PreviousCapacity(target)
	}

	e.logger.Debug("Resolved target",
		zap.String("mode", mode.ID),
		zap.Int("target", target),
		zap.Int("target_each", each))

	stock, missing := parseStock(req.Stock)
	if len(missing) > 0 {
		result.Incomplete = true
		e.logger.Debug("Stock incomplete", zap.Strings("missing", missing))
		return result, fmt.Errorf("%w: missing stock for %v", ErrIncompleteInput, missing)
	}

	result.Initial = stock
	result.Deficits = stock.Deficit(each)

	plan := planner.BuildPlan(stock, each)
	summary, err := e.summarize(plan)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Summary = summary

	if plan.Stalled() {
		final := plan.Final()
		e.logger.Warn("Plan stalled before reaching target",
			zap.Int("days", summary.Days),
			zap.Ints("final", final[:]))
	}
	e.logger.Debug("Plan built",
		zap.Int("days", summary.Days),
		zap.Int("total_used", summary.TotalUsed),
		zap.String("digest", summary.Digest))

	return result, nil
}

// resolveTarget coerces the raw target and resolves the per-tool requirement.
func resolveTarget(mode toolset.Mode, raw string) (target, each int, err error) {
	target, ok := ParseQuantity(raw)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTarget, raw)
	}

	if mode.Direct {
		each, err = tier.Direct(target)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}
		if each > MaxDirectTarget {
			return 0, 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidTarget, each, MaxDirectTarget)
		}
		return target, each, nil
	}

	each, err = tier.Resolve(target)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	return target, each, nil
}

// parseStock coerces the three stock fields, reporting the slots that are
// missing.
func parseStock(raw [planner.NumItems]string) (planner.Stock, []string) {
	var stock planner.Stock
	var missing []string
	for i, s := range raw {
		v, ok := ParseQuantity(s)
		if !ok {
			missing = append(missing, planner.Items[i].String())
			continue
		}
		stock[i] = v
	}
	return stock, missing
}

var hundred = decimal.NewFromInt(100)

// summarize aggregates a plan and fingerprints it.
func (e *Engine) summarize(plan *planner.Plan) (*PlanSummary, error) {
	digest, err := e.hasher.Digest(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint plan: %w", err)
	}

	summary := &PlanSummary{
		Days:           len(plan.Days),
		Complete:       plan.Complete(),
		TotalUsed:      plan.TotalUsed(),
		DailyCap:       planner.DailyCap,
		Utilization:    decimal.Zero,
		DayUtilization: make([]decimal.Decimal, 0, len(plan.Days)),
		Digest:         digest,
	}

	for _, d := range plan.Days {
		summary.DayUtilization = append(summary.DayUtilization, percent(d.Used, planner.DailyCap))
	}
	if summary.Days > 0 {
		summary.Utilization = percent(summary.TotalUsed, summary.Days*planner.DailyCap)
	}

	return summary, nil
}

// percent returns part/whole as a percentage rounded to one decimal place.
func percent(part, whole int) decimal.Decimal {
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(whole)), 1)
}
