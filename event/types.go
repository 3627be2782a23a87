package event

import "github.com/milk9111/mechplatformer/component"

// Kind identifies an event variant.
type Kind int

const (
	KindPlayerDied Kind = iota + 1
	KindEnemyDestroyed
	KindGameStateChanged
	KindProjectileHit
)

func (k Kind) String() string {
	switch k {
	case KindPlayerDied:
		return "player_died"
	case KindEnemyDestroyed:
		return "enemy_destroyed"
	case KindGameStateChanged:
		return "game_state_changed"
	case KindProjectileHit:
		return "projectile_hit"
	}
	return "unknown"
}

// Event is the closed set of values the bus carries. Only types in this
// package implement it.
type Event interface {
	Kind() Kind
	isEvent()
}

// PlayerDied is published once per player death.
type PlayerDied struct {
	Player component.Respawnable
}

// EnemyDestroyed is published once per enemy death.
type EnemyDestroyed struct {
	Enemy component.Identified
}

// GameStateChanged is published on every SetGameState call.
type GameStateChanged struct {
	Previous component.GameState
	Next     component.GameState
}

// ProjectileHit is published when a projectile resolves a contact.
type ProjectileHit struct {
	Projectile component.Identified
	Contact    component.Contact
}

func (PlayerDied) Kind() Kind       { return KindPlayerDied }
func (EnemyDestroyed) Kind() Kind   { return KindEnemyDestroyed }
func (GameStateChanged) Kind() Kind { return KindGameStateChanged }
func (ProjectileHit) Kind() Kind    { return KindProjectileHit }

func (PlayerDied) isEvent()       {}
func (EnemyDestroyed) isEvent()   {}
func (GameStateChanged) isEvent() {}
func (ProjectileHit) isEvent()    {}
