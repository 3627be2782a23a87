package obj

import (
	"log"

	"github.com/google/uuid"
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/event"
)

// PlayerConfig bundles everything needed to build the mech.
type PlayerConfig struct {
	MaxHealth       int
	MaxEnergy       int
	EnergyRegenRate float64
	Size            common.Vec2
	Movement        MovementConfig
	GroundCheck     GroundCheck
	Weapon          WeaponConfig
	FirePoint       common.Vec2
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MaxHealth:       100,
		MaxEnergy:       100,
		EnergyRegenRate: 5,
		Size:            common.Vec2{X: 1, Y: 1},
		Movement:        DefaultMovementConfig(),
		GroundCheck:     DefaultGroundCheck(),
		Weapon:          DefaultWeaponConfig(),
		FirePoint:       DefaultFirePoint,
	}
}

// Player is the controllable mech. It owns its resources, movement machine
// and weapon, and publishes PlayerDied on the lethal hit.
type Player struct {
	id   uuid.UUID
	size common.Vec2

	resources *component.ResourceState
	movement  *MovementMachine
	weapon    *Weapon
	bus       *event.Bus

	active bool
}

// NewPlayer builds an active player at the origin. bus may be nil.
func NewPlayer(cfg PlayerConfig, bus *event.Bus, gate component.StateReader) *Player {
	p := &Player{
		id:     uuid.New(),
		size:   cfg.Size,
		bus:    bus,
		active: true,
	}
	p.resources = component.NewResourceState(cfg.MaxHealth, cfg.MaxEnergy, cfg.EnergyRegenRate)
	p.resources.OnDeath = p.die
	p.movement = NewMovementMachine(cfg.Movement, cfg.GroundCheck, p.resources, gate)
	p.weapon = NewWeapon(cfg.Weapon, p.resources, p, gate)
	p.weapon.SetFirePoint(cfg.FirePoint)
	return p
}

func (p *Player) ID() uuid.UUID { return p.id }
func (p *Player) Name() string  { return "player" }

func (p *Player) Resources() *component.ResourceState { return p.resources }
func (p *Player) Movement() *MovementMachine          { return p.movement }
func (p *Player) Weapon() *Weapon                     { return p.weapon }

// Active is false between death and respawn.
func (p *Player) Active() bool { return p != nil && p.active }

func (p *Player) Position() common.Vec2 { return p.movement.Position }
func (p *Player) Facing() int           { return p.movement.Facing() }
func (p *Player) ScaleX() float64       { return p.movement.ScaleX() }
func (p *Player) Speed() float64        { return p.movement.Speed() }
func (p *Player) Grounded() bool        { return p.movement.Grounded() }

func (p *Player) Bounds() common.Rect {
	return common.RectAround(p.movement.Position, p.size)
}

// SetFaultSink routes configuration faults from movement and weapon.
func (p *Player) SetFaultSink(fn func(error)) {
	p.movement.OnFault = fn
	p.weapon.OnFault = fn
}

// Apply swaps in new tuning without resetting the current pools.
func (p *Player) Apply(cfg PlayerConfig) {
	if p == nil {
		return
	}
	p.size = cfg.Size
	p.resources.SetMaxHealth(cfg.MaxHealth)
	p.resources.SetMaxEnergy(cfg.MaxEnergy)
	p.resources.EnergyRegenRate = cfg.EnergyRegenRate
	p.movement.SetConfig(cfg.Movement)
	p.movement.SetGroundCheck(cfg.GroundCheck)
	p.weapon.SetConfig(cfg.Weapon)
	p.weapon.SetFirePoint(cfg.FirePoint)
}

// TakeDamage implements component.Damageable.
func (p *Player) TakeDamage(amount int) {
	if p == nil || !p.active {
		return
	}
	p.resources.TakeDamage(amount)
}

func (p *Player) IsDead() bool {
	return p == nil || p.resources.IsDead()
}

// Respawn refills the pools and puts the player back at pos.
func (p *Player) Respawn(at common.Vec2) {
	if p == nil {
		return
	}
	p.resources.Reset()
	p.movement.Reset(at)
	p.weapon.Reset()
	p.active = true
	log.Printf("player: respawned %s at (%.2f, %.2f)", p.id, at.X, at.Y)
}

func (p *Player) die(_ *component.ResourceState) {
	p.active = false
	p.movement.Velocity = common.Vec2{}
	log.Printf("player: %s died", p.id)
	if p.bus != nil {
		p.bus.Publish(event.PlayerDied{Player: p})
	}
}
