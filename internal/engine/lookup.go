package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danieljhkim/toolplan/internal/tier"
)

// ResolveTier answers how many of each tool a capacity requires.
func (e *Engine) ResolveTier(ctx context.Context, req *TierRequest) (*TierResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	capacity, ok := ParseQuantity(req.Capacity)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidTarget, req.Capacity)
	}

	each, err := tier.Resolve(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	return &TierResult{
		Capacity:         capacity,
		Each:             each,
		PreviousCapacity: tier.PreviousCapacity(capacity),
	}, nil
}

// Tiers lists every valid capacity and its requirement.
func (e *Engine) Tiers() []tier.Tier {
	return tier.Tiers()
}

// Modes lists the catalog's modes with tool names localized for lang.
func (e *Engine) Modes(lang string) []ModeInfo {
	modes := e.catalog.Modes()
	infos := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		infos = append(infos, ModeInfo{
			ID:     m.ID,
			Direct: m.Direct,
			Items:  e.catalog.Names(m, lang),
			Preset: m.Preset,
		})
	}
	return infos
}

// PresetRequest returns a CalculateRequest filled with mode's sample inputs.
func (e *Engine) PresetRequest(modeID, lang string) (*CalculateRequest, error) {
	mode, err := e.catalog.Mode(modeID)
	if err != nil {
		return nil, err
	}

	req := &CalculateRequest{
		Mode:   mode.ID,
		Target: strconv.Itoa(mode.Preset.Target),
		Lang:   lang,
	}
	stock := mode.PresetStock()
	for i, v := range stock {
		req.Stock[i] = strconv.Itoa(v)
	}
	return req, nil
}
