// Package engine provides the calculation entry points used by the CLI.
//
// The engine sits between raw user input and the pure planner. It resolves
// the mode, coerces typed text into quantities, turns a capacity into a
// per-tool requirement, builds the plan, and decorates it with summaries.
//
// Key components:
//   - Engine: Main orchestrator holding the catalog and injected services
//   - Calculate: Full plan calculation for one set of inputs
//   - ResolveTier/Tiers/Modes: Lookups that need no stock
package engine

import (
	"go.uber.org/zap"

	"github.com/danieljhkim/toolplan/internal/clock"
	"github.com/danieljhkim/toolplan/internal/hash"
	"github.com/danieljhkim/toolplan/internal/toolset"
)

// Engine orchestrates all toolplan operations.
// It is the main API surface called by the CLI.
type Engine struct {
	catalog *toolset.Catalog
	hasher  hash.Hasher
	clock   clock.Clock
	logger  *zap.Logger
}

// New creates a new Engine with the given dependencies. A nil logger is
// replaced with a no-op logger.
func New(
	catalog *toolset.Catalog,
	hasher hash.Hasher,
	clk clock.Clock,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: catalog,
		hasher:  hasher,
		clock:   clk,
		logger:  logger,
	}
}

// Catalog returns the engine's mode catalog.
func (e *Engine) Catalog() *toolset.Catalog {
	return e.catalog
}
