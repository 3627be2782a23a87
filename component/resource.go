package component

import (
	"math"

	"github.com/milk9111/mechplatformer/common"
)

// ResourceState holds the health and energy pools owned by one entity.
// Both pools are clamped on every mutation.
type ResourceState struct {
	Health          int
	MaxHealth       int
	Energy          int
	MaxEnergy       int
	EnergyRegenRate float64

	dead bool

	// OnDeath fires once, on the hit that takes health to zero.
	OnDeath func(r *ResourceState)
}

// NewResourceState creates a full resource pool.
func NewResourceState(maxHealth, maxEnergy int, regenRate float64) *ResourceState {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	if maxEnergy < 0 {
		maxEnergy = 0
	}
	if regenRate < 0 {
		regenRate = 0
	}
	return &ResourceState{
		Health:          maxHealth,
		MaxHealth:       maxHealth,
		Energy:          maxEnergy,
		MaxEnergy:       maxEnergy,
		EnergyRegenRate: regenRate,
	}
}

// IsDead reports whether health has reached zero.
func (r *ResourceState) IsDead() bool {
	return r == nil || r.dead
}

// TakeDamage subtracts amount from health. It returns true only on the call
// that crosses health to zero; later lethal hits return false.
func (r *ResourceState) TakeDamage(amount int) bool {
	if r == nil || r.dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	r.Health = common.ClampInt(r.Health-amount, 0, r.MaxHealth)
	if r.Health > 0 {
		return false
	}
	r.dead = true
	if r.OnDeath != nil {
		r.OnDeath(r)
	}
	return true
}

// UseEnergy deducts amount if the pool can cover it. Nothing is deducted
// on failure.
func (r *ResourceState) UseEnergy(amount int) bool {
	if r == nil || amount < 0 {
		return false
	}
	if r.Energy < amount {
		return false
	}
	r.Energy -= amount
	return true
}

// RegenerateEnergy restores ceil(rate*dt) energy, capped at MaxEnergy.
func (r *ResourceState) RegenerateEnergy(dt float64) {
	if r == nil || dt <= 0 || r.EnergyRegenRate <= 0 || r.Energy >= r.MaxEnergy {
		return
	}
	gain := int(math.Ceil(r.EnergyRegenRate * dt))
	r.Energy = common.ClampInt(r.Energy+gain, 0, r.MaxEnergy)
}

// Reset refills both pools and clears the death latch.
func (r *ResourceState) Reset() {
	if r == nil {
		return
	}
	r.Health = r.MaxHealth
	r.Energy = r.MaxEnergy
	r.dead = false
}

// SetMaxHealth changes the health cap and clamps the current value.
func (r *ResourceState) SetMaxHealth(v int) {
	if r == nil {
		return
	}
	if v <= 0 {
		v = 1
	}
	r.MaxHealth = v
	if r.Health > r.MaxHealth {
		r.Health = r.MaxHealth
	}
}

// SetMaxEnergy changes the energy cap and clamps the current value.
func (r *ResourceState) SetMaxEnergy(v int) {
	if r == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	r.MaxEnergy = v
	if r.Energy > r.MaxEnergy {
		r.Energy = r.MaxEnergy
	}
}
