package engine

import "github.com/danieljhkim/toolplan/internal/planner"

// CalculateRequest represents a request to build a plan.
//
// Quantities are given as the user typed them. A blank string means the
// field was left empty.
type CalculateRequest struct {
	// Mode is the catalog mode ID ("barn", "silo", "expansion", ...)
	Mode string

	// Target is the capacity (capacity modes) or per-tool count (direct modes)
	Target string

	// Stock is the current amount of each tool, in slot order
	Stock [planner.NumItems]string

	// Lang selects localized tool names; empty uses the catalog default
	Lang string
}

// TierRequest represents a request to resolve a capacity without stock.
type TierRequest struct {
	// Capacity is the target capacity as typed
	Capacity string
}
