package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/danieljhkim/toolplan/internal/planner"
	"github.com/danieljhkim/toolplan/internal/toolset"
)

// CalculateResult represents the outcome of a calculation.
type CalculateResult struct {
	// Mode is the resolved mode ID
	Mode string `json:"mode"`

	// Direct is true when the target was taken as the per-tool count
	Direct bool `json:"direct"`

	// Items holds the (localized) tool names in slot order
	Items [planner.NumItems]string `json:"items"`

	// Target is the coerced target value as entered
	Target int `json:"target"`

	// TargetEach is the per-tool requirement
	TargetEach int `json:"target_each"`

	// PreviousCapacity is the capacity being upgraded from (capacity modes only)
	PreviousCapacity int `json:"previous_capacity,omitempty"`

	// Incomplete is true when stock was missing and no plan was built
	Incomplete bool `json:"incomplete"`

	// Initial is the coerced starting stock
	Initial planner.Stock `json:"initial"`

	// Deficits is how many of each tool are still needed
	Deficits planner.Stock `json:"deficits"`

	// Plan is the day-by-day plan (nil when Incomplete)
	Plan *planner.Plan `json:"plan,omitempty"`

	// Summary aggregates the plan (nil when Incomplete)
	Summary *PlanSummary `json:"summary,omitempty"`

	// GeneratedAt is when the result was produced
	GeneratedAt time.Time `json:"generated_at"`
}

// PlanSummary aggregates a plan for display.
type PlanSummary struct {
	// Days is the number of planned days
	Days int `json:"days"`

	// Complete is true when every tool reaches the requirement
	Complete bool `json:"complete"`

	// TotalUsed is the number of units delivered over the plan
	TotalUsed int `json:"total_used"`

	// DailyCap is the per-day limit the plan was built under
	DailyCap int `json:"daily_cap"`

	// Utilization is TotalUsed as a percentage of Days * DailyCap
	Utilization decimal.Decimal `json:"utilization"`

	// DayUtilization is each day's usage as a percentage of DailyCap
	DayUtilization []decimal.Decimal `json:"day_utilization"`

	// Digest fingerprints the plan
	Digest string `json:"digest"`
}

// TierResult represents a resolved capacity.
type TierResult struct {
	// Capacity is the capacity that was resolved
	Capacity int `json:"capacity"`

	// Each is the number of each tool required
	Each int `json:"each"`

	// PreviousCapacity is the capacity being upgraded from
	PreviousCapacity int `json:"previous_capacity"`
}

// ModeInfo describes a mode for listing.
type ModeInfo struct {
	ID     string                   `json:"id"`
	Direct bool                     `json:"direct"`
	Items  [planner.NumItems]string `json:"items"`
	Preset toolset.Preset           `json:"preset"`
}
