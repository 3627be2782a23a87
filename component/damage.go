package component

import "github.com/milk9111/mechplatformer/common"

// DamageCalculator turns raw attack damage into applied damage. Defense or
// critical-hit rules would hook in here. The zero value deals no damage;
// start from DefaultDamageCalculator.
type DamageCalculator struct {
	Multiplier float64
}

// NewDamageCalculator returns a calculator with the given multiplier.
// Negative multipliers are treated as zero.
func NewDamageCalculator(multiplier float64) DamageCalculator {
	if multiplier < 0 {
		multiplier = 0
	}
	return DamageCalculator{Multiplier: multiplier}
}

// DefaultDamageCalculator applies damage unchanged.
func DefaultDamageCalculator() DamageCalculator {
	return DamageCalculator{Multiplier: 1}
}

// Calculate returns round(raw * multiplier), never negative.
func (c DamageCalculator) Calculate(raw int) int {
	m := c.Multiplier
	if m < 0 {
		m = 0
	}
	out := common.RoundToInt(float64(raw) * m)
	if out < 0 {
		return 0
	}
	return out
}
