package component

import (
	"github.com/google/uuid"
	"github.com/milk9111/mechplatformer/common"
)

// LayerMask selects collision layers for oracle queries.
type LayerMask uint

// Identified is implemented by every simulated entity.
type Identified interface {
	ID() uuid.UUID
	Name() string
}

// Respawnable is an entity the game state machine can bring back after a
// death.
type Respawnable interface {
	Identified
	Respawn(at common.Vec2)
}

// AttackIntent is a fire request that passed cooldown and energy checks.
type AttackIntent struct {
	Damage    int
	Origin    common.Vec2
	Direction int
}

// Contact is one overlap reported by the collision oracle. Target is nil
// when the contact is terrain.
type Contact struct {
	Target Damageable
	Name   string
}

// Terrain reports whether the contact has no damageable capability.
func (c Contact) Terrain() bool {
	return c.Target == nil
}
