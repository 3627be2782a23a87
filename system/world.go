package system

import (
	"log"
	"math"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/ecs"
	"github.com/milk9111/mechplatformer/event"
	"github.com/milk9111/mechplatformer/obj"
)

// WorldConfig wires a World. Zero collaborators are allowed: a nil ground
// oracle is reported as a fault, a nil contact oracle means projectiles
// only expire.
type WorldConfig struct {
	Game       GameConfig
	Player     obj.PlayerConfig
	Enemy      obj.EnemyConfig
	Projectile obj.ProjectileConfig
	// Damage defaults to an identity calculator when nil.
	Damage *component.DamageCalculator

	FixedDelta    float64
	MaxFixedSteps int

	Bus       *event.Bus
	Ground    obj.GroundOracle
	Contacts  ContactOracle
	Colliders ColliderRegistry

	// OnFault receives configuration faults from the player. Defaults to
	// log.Printf.
	OnFault func(err error)
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Game:          DefaultGameConfig(),
		Player:        obj.DefaultPlayerConfig(),
		Enemy:         obj.DefaultEnemyConfig(),
		Projectile:    obj.DefaultProjectileConfig(),
		FixedDelta:    0.02,
		MaxFixedSteps: 8,
	}
}

// World runs the simulation. Step is its only entry point.
type World struct {
	cfg WorldConfig

	bus      *event.Bus
	game     *GameStateMachine
	player   *obj.Player
	enemies  []*obj.Enemy
	resolver *component.CombatResolver

	registry    *ecs.Registry
	projectiles *ecs.SparseSet[*obj.Projectile]

	variable *ecs.Scheduler[*World]
	fixed    *ecs.Scheduler[*World]

	input       component.InputFrame
	clock       float64
	accumulator float64

	subs []event.Subscription
}

func NewWorld(cfg WorldConfig) *World {
	if cfg.FixedDelta <= 0 {
		cfg.FixedDelta = 0.02
	}
	if cfg.MaxFixedSteps <= 0 {
		cfg.MaxFixedSteps = 8
	}
	bus := cfg.Bus
	if bus == nil {
		bus = event.NewBus()
	}
	calc := component.DefaultDamageCalculator()
	if cfg.Damage != nil {
		calc = *cfg.Damage
	}

	w := &World{
		cfg:         cfg,
		bus:         bus,
		resolver:    component.NewCombatResolver(calc),
		registry:    ecs.NewRegistry(),
		projectiles: ecs.NewSparseSet[*obj.Projectile](),
	}
	w.game = NewGameStateMachine(cfg.Game, bus)
	w.player = obj.NewPlayer(cfg.Player, bus, w.game)
	if cfg.OnFault != nil {
		w.player.SetFaultSink(cfg.OnFault)
	}
	if cfg.Ground != nil {
		w.player.Movement().SetGroundOracle(cfg.Ground)
	}
	w.player.Movement().Reset(cfg.Game.RespawnPoint)
	w.subs = append(w.subs, event.On(bus, w.onEnemyDestroyed))

	w.variable = ecs.NewScheduler[*World](
		regenSystem{},
		movementSystem{},
		projectileLifetimeSystem{},
		weaponSystem{},
	)
	w.fixed = ecs.NewScheduler[*World](
		bodySystem{},
		projectileMotionSystem{},
	)
	return w
}

// Step advances the simulation by dt seconds of wall time.
func (w *World) Step(dt float64, in component.InputFrame) {
	if w == nil {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	w.input = in
	if in.PausePressed {
		w.game.TogglePause()
	}
	w.game.Advance(dt)
	if !w.game.Playing() {
		return
	}

	w.clock += dt
	w.variable.Update(w, dt)

	w.accumulator += dt
	fd := w.cfg.FixedDelta
	for steps := 0; w.accumulator >= fd; steps++ {
		if steps >= w.cfg.MaxFixedSteps {
			// drop the backlog instead of spiralling
			w.accumulator = math.Mod(w.accumulator, fd)
			break
		}
		if !w.game.Playing() {
			break
		}
		w.fixed.Update(w, fd)
		w.accumulator -= fd
	}
}

// SpawnEnemy places an enemy and registers it with the collider registry.
func (w *World) SpawnEnemy(pos common.Vec2) *obj.Enemy {
	e := obj.NewEnemy(w.cfg.Enemy, pos, w.bus)
	w.enemies = append(w.enemies, e)
	if w.cfg.Colliders != nil {
		w.cfg.Colliders.AddDamageable(e, e.Name(), e.Bounds())
	}
	return e
}

// SpawnProjectile consumes an accepted attack intent.
func (w *World) SpawnProjectile(intent component.AttackIntent) *obj.Projectile {
	p := obj.NewProjectile(intent, w.cfg.Projectile)
	w.projectiles.Set(w.registry.Create(), p)
	return p
}

// Projectiles returns a copy of the live projectiles.
func (w *World) Projectiles() []*obj.Projectile {
	return append([]*obj.Projectile(nil), w.projectiles.Values()...)
}

func (w *World) Enemies() []*obj.Enemy {
	return append([]*obj.Enemy(nil), w.enemies...)
}

func (w *World) Player() *obj.Player                 { return w.player }
func (w *World) Game() *GameStateMachine             { return w.game }
func (w *World) Bus() *event.Bus                     { return w.bus }
func (w *World) Resolver() *component.CombatResolver { return w.resolver }

// Clock is the accumulated Playing time in seconds.
func (w *World) Clock() float64 { return w.clock }

// Restart resets the game, the player, every enemy and clears projectiles.
func (w *World) Restart() {
	w.projectiles.Clear()
	w.registry = ecs.NewRegistry()
	w.accumulator = 0
	for _, e := range w.enemies {
		dead := e.IsDead()
		e.Reset()
		if dead && w.cfg.Colliders != nil {
			w.cfg.Colliders.AddDamageable(e, e.Name(), e.Bounds())
		}
	}
	w.player.Respawn(w.cfg.Game.RespawnPoint)
	w.game.Restart()
}

// ApplyPlayerConfig swaps player tuning on the fly.
func (w *World) ApplyPlayerConfig(cfg obj.PlayerConfig) {
	w.cfg.Player = cfg
	w.player.Apply(cfg)
	log.Printf("game: player tuning reloaded")
}

// ApplyProjectileConfig affects projectiles fired from now on; live ones
// keep their speed and remaining lifetime.
func (w *World) ApplyProjectileConfig(cfg obj.ProjectileConfig) {
	w.cfg.Projectile = cfg
	log.Printf("game: projectile tuning reloaded (speed %.2f, lifetime %.2fs)", cfg.Speed, cfg.Lifetime)
}

// ApplyDamageMultiplier replaces the calculator multiplier.
func (w *World) ApplyDamageMultiplier(m float64) {
	w.resolver.Calculator = component.NewDamageCalculator(m)
	log.Printf("combat: damage multiplier set to %.2f", w.resolver.Calculator.Multiplier)
}

func (w *World) ApplyGameConfig(cfg GameConfig) {
	w.cfg.Game = cfg
	w.game.SetConfig(cfg)
}

// Close detaches the world from the bus.
func (w *World) Close() {
	for _, s := range w.subs {
		w.bus.Unsubscribe(s)
	}
	w.subs = nil
	w.game.Close()
}

// onEnemyDestroyed drops the dead enemy's collider; Restart registers it
// again.
func (w *World) onEnemyDestroyed(e event.EnemyDestroyed) {
	if w.cfg.Colliders == nil {
		return
	}
	if d, ok := e.Enemy.(component.Damageable); ok {
		w.cfg.Colliders.RemoveDamageable(d)
	}
}

func (w *World) destroyProjectile(e ecs.Entity) {
	w.projectiles.Remove(e)
	w.registry.Destroy(e)
}

// resolveHit applies the first contact of a projectile. It is terminal.
func (w *World) resolveHit(e ecs.Entity, p *obj.Projectile, c component.Contact) {
	if !p.Resolve() {
		return
	}
	if !c.Terrain() {
		w.resolver.Apply(p.Damage, c.Target)
	}
	w.destroyProjectile(e)
	w.bus.Publish(event.ProjectileHit{Projectile: p, Contact: c})
}
