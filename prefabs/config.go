package prefabs

import (
	"fmt"

	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/obj"
	"github.com/milk9111/mechplatformer/physics"
	"github.com/milk9111/mechplatformer/system"
)

func layerMask(names []string) (component.LayerMask, error) {
	if len(names) == 0 {
		return physics.LayerTerrain, nil
	}
	return physics.ParseLayers(names)
}

func (s GameSpec) Config() system.GameConfig {
	return system.GameConfig{
		Lives:        s.Lives,
		RespawnDelay: s.RespawnDelay,
		EnemyReward:  s.EnemyReward,
		RespawnPoint: s.RespawnPoint.Vec2(),
	}
}

func (s PlayerSpec) Config() (obj.PlayerConfig, error) {
	mask, err := layerMask(s.GroundCheck.Layers)
	if err != nil {
		return obj.PlayerConfig{}, err
	}
	return obj.PlayerConfig{
		MaxHealth:       s.Stats.MaxHealth,
		MaxEnergy:       s.Stats.MaxEnergy,
		EnergyRegenRate: s.Stats.EnergyRegenRate,
		Size:            s.Size.Vec2(),
		Movement: obj.MovementConfig{
			MoveSpeed:      s.Movement.MoveSpeed,
			JumpForce:      s.Movement.JumpForce,
			DashSpeed:      s.Movement.DashSpeed,
			DashDuration:   s.Movement.DashDuration,
			DashEnergyCost: s.Movement.DashEnergyCost,
			Gravity:        s.Movement.Gravity,
		},
		GroundCheck: obj.GroundCheck{
			Offset: s.GroundCheck.Offset.Vec2(),
			Radius: s.GroundCheck.Radius,
			Layers: mask,
		},
		Weapon: obj.WeaponConfig{
			FireRate:   s.Weapon.FireRate,
			Damage:     s.Weapon.Damage,
			EnergyCost: s.Weapon.EnergyCost,
		},
		FirePoint: s.Weapon.FirePoint.Vec2(),
	}, nil
}

func (s PlayerSpec) ProjectileConfig() obj.ProjectileConfig {
	p := s.Weapon.Projectile
	return obj.ProjectileConfig{Speed: p.Speed, Lifetime: p.Lifetime, Size: p.Size.Vec2()}
}

func (s EnemySpec) Config() obj.EnemyConfig {
	return obj.EnemyConfig{MaxHealth: s.MaxHealth, Size: s.Size.Vec2()}
}

// Calculator builds the damage calculator, running the modifier script when
// one is configured.
func (s CombatSpec) Calculator() (component.DamageCalculator, error) {
	m := s.Multiplier()
	if s.ModifierScript != "" {
		var err error
		m, err = EvalDamageMultiplier(s.ModifierScript, m)
		if err != nil {
			return component.DamageCalculator{}, err
		}
	}
	return component.NewDamageCalculator(m), nil
}

// Bundle is every spec the game reads at startup.
type Bundle struct {
	Game   GameSpec
	Player PlayerSpec
	Enemy  EnemySpec
	Combat CombatSpec
	Arena  ArenaSpec
}

type validator interface {
	Validate() error
}

func loadValid[T validator](name string) (T, error) {
	spec, err := LoadSpec[T](name)
	if err != nil {
		return spec, err
	}
	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

// LoadBundle loads and validates all specs.
func LoadBundle() (Bundle, error) {
	var b Bundle
	var err error
	if b.Game, err = loadValid[GameSpec]("game.yaml"); err != nil {
		return b, err
	}
	if b.Player, err = loadValid[PlayerSpec]("player.yaml"); err != nil {
		return b, err
	}
	if b.Enemy, err = loadValid[EnemySpec]("enemy.yaml"); err != nil {
		return b, err
	}
	if b.Combat, err = loadValid[CombatSpec]("combat.yaml"); err != nil {
		return b, err
	}
	if b.Arena, err = loadValid[ArenaSpec]("arena.yaml"); err != nil {
		return b, err
	}
	return b, nil
}

// WorldConfig converts the bundle. Collaborators (oracles, bus, fault
// sink) are left for the caller to wire.
func (b Bundle) WorldConfig() (system.WorldConfig, error) {
	player, err := b.Player.Config()
	if err != nil {
		return system.WorldConfig{}, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	calc, err := b.Combat.Calculator()
	if err != nil {
		return system.WorldConfig{}, err
	}
	cfg := system.DefaultWorldConfig()
	cfg.Game = b.Game.Config()
	cfg.Player = player
	cfg.Enemy = b.Enemy.Config()
	cfg.Projectile = b.Player.ProjectileConfig()
	cfg.Damage = &calc
	cfg.FixedDelta = b.Game.FixedDelta
	cfg.MaxFixedSteps = b.Game.MaxFixedSteps
	return cfg, nil
}
