package obj

import (
	"log"

	"github.com/google/uuid"
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/event"
)

type EnemyConfig struct {
	MaxHealth int
	Size      common.Vec2
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{MaxHealth: 30, Size: common.Vec2{X: 1, Y: 1}}
}

// Enemy is a passive damage sink. It publishes EnemyDestroyed once, on the
// hit that kills it.
type Enemy struct {
	id       uuid.UUID
	Position common.Vec2
	Size     common.Vec2

	spawn     common.Vec2
	resources *component.ResourceState
	bus       *event.Bus
}

func NewEnemy(cfg EnemyConfig, pos common.Vec2, bus *event.Bus) *Enemy {
	e := &Enemy{
		id:       uuid.New(),
		Position: pos,
		Size:     cfg.Size,
		spawn:    pos,
		bus:      bus,
	}
	e.resources = component.NewResourceState(cfg.MaxHealth, 0, 0)
	e.resources.OnDeath = e.die
	return e
}

func (e *Enemy) ID() uuid.UUID { return e.id }
func (e *Enemy) Name() string  { return "enemy" }

func (e *Enemy) Resources() *component.ResourceState { return e.resources }

func (e *Enemy) Bounds() common.Rect {
	return common.RectAround(e.Position, e.Size)
}

// TakeDamage implements component.Damageable.
func (e *Enemy) TakeDamage(amount int) {
	if e.IsDead() {
		return
	}
	e.resources.TakeDamage(amount)
	log.Printf("combat: enemy %s took %d damage, health %d/%d", e.id, amount, e.resources.Health, e.resources.MaxHealth)
}

func (e *Enemy) IsDead() bool {
	return e == nil || e.resources.IsDead()
}

// Reset revives the enemy at its spawn point.
func (e *Enemy) Reset() {
	if e == nil {
		return
	}
	e.resources.Reset()
	e.Position = e.spawn
}

func (e *Enemy) die(_ *component.ResourceState) {
	log.Printf("combat: enemy %s destroyed", e.id)
	if e.bus != nil {
		e.bus.Publish(event.EnemyDestroyed{Enemy: e})
	}
}
