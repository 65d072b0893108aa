package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/toolplan/internal/planner"
	"github.com/danieljhkim/toolplan/internal/tier"
)

func TestResolveTier(t *testing.T) {
	eng, _ := newTestEngine(t)

	result, err := eng.ResolveTier(context.Background(), &TierRequest{Capacity: "1000"})
	require.NoError(t, err)
	assert.Equal(t, &TierResult{Capacity: 1000, Each: 38, PreviousCapacity: 975}, result)

	for _, raw := range []string{"", "abc", "1001", "76"} {
		_, err := eng.ResolveTier(context.Background(), &TierRequest{Capacity: raw})
		assert.ErrorIs(t, err, ErrInvalidTarget, "capacity %q", raw)
	}
}

func TestTiers(t *testing.T) {
	eng, _ := newTestEngine(t)

	tiers := eng.Tiers()
	require.Len(t, tiers, tier.MaxTier)
	assert.Equal(t, tier.Tier{Capacity: 75, Each: 1}, tiers[0])
	assert.Equal(t, tier.Tier{Capacity: 25000, Each: 518}, tiers[len(tiers)-1])
}

func TestModes(t *testing.T) {
	eng, _ := newTestEngine(t)

	modes := eng.Modes("es")
	require.Len(t, modes, 3)
	assert.Equal(t, "barn", modes[0].ID)
	assert.Equal(t, [planner.NumItems]string{"Perno", "Tabla", "Cinta adhesiva"}, modes[0].Items)
	assert.True(t, modes[2].Direct)
	assert.Equal(t, 45, modes[2].Preset.Target)
}

func TestPresetRequest(t *testing.T) {
	eng, _ := newTestEngine(t)

	req, err := eng.PresetRequest("expansion", "en")
	require.NoError(t, err)
	assert.Equal(t, &CalculateRequest{
		Mode:   "expansion",
		Target: "45",
		Stock:  stock("14", "6", "10"),
		Lang:   "en",
	}, req)

	result, err := eng.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Summary.Complete)

	_, err = eng.PresetRequest("castle", "en")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
