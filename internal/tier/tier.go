// Package tier maps storage capacity values onto per-tool upgrade requirements.
//
// Capacities live on two arithmetic grids. The first runs from 75 to 1000 in
// steps of 25 and covers tiers 1 through 38; the second runs from 1050 to
// 25000 in steps of 50 and covers tiers 39 through 518. A tier number is the
// count of each tool needed to reach that capacity. Values off both grids are
// rejected; there is no interpolation between grid points.
package tier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity indicates a capacity value that is not on either grid.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidTarget indicates a direct target that is not a positive integer.
	ErrInvalidTarget = errors.New("invalid target")
)

// Grid bounds.
const (
	SmallMin  = 75
	SmallMax  = 1000
	SmallStep = 25

	LargeMin  = 1050
	LargeMax  = 25000
	LargeStep = 50

	// FirstLargeTier is the tier number of LargeMin.
	FirstLargeTier = 39

	// MaxTier is the tier number of LargeMax.
	MaxTier = FirstLargeTier + (LargeMax-LargeMin)/LargeStep
)

// Tier pairs a valid capacity with the per-tool requirement it resolves to.
type Tier struct {
	Capacity int `json:"capacity"`
	Each     int `json:"each"`
}

// Resolve returns the number of each tool required to upgrade to capacity v.
func Resolve(v int) (int, error) {
	if v >= SmallMin && v <= SmallMax && (v-SmallMin)%SmallStep == 0 {
		return 1 + (v-SmallMin)/SmallStep, nil
	}
	if v >= LargeMin && v <= LargeMax && (v-LargeMin)%LargeStep == 0 {
		return FirstLargeTier + (v-LargeMin)/LargeStep, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidCapacity, v)
}

// Direct validates a target given as the per-tool count itself.
func Direct(v int) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTarget, v)
	}
	return v, nil
}

// PreviousCapacity returns the capacity one grid step below v. It does not
// validate v.
func PreviousCapacity(v int) int {
	if v <= SmallMax {
		return v - SmallStep
	}
	return v - LargeStep
}

// Tiers lists every valid capacity in ascending order.
func Tiers() []Tier {
	tiers := make([]Tier, 0, MaxTier)
	for v := SmallMin; v <= SmallMax; v += SmallStep {
		tiers = append(tiers, Tier{Capacity: v, Each: 1 + (v-SmallMin)/SmallStep})
	}
	for v := LargeMin; v <= LargeMax; v += LargeStep {
		tiers = append(tiers, Tier{Capacity: v, Each: FirstLargeTier + (v-LargeMin)/LargeStep})
	}
	return tiers
}
