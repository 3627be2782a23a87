package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/mechplatformer/common"
	"gopkg.in/yaml.v3"
)

// LoadSpec reads and decodes one yaml spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec[T](filename, data)
}

// ParseSpec decodes yaml bytes. filename is only used in errors.
func ParseSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec2() common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) Rect() common.Rect {
	return common.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type GameSpec struct {
	Lives         int      `yaml:"lives"`
	RespawnDelay  float64  `yaml:"respawn_delay"`
	EnemyReward   int      `yaml:"enemy_reward"`
	RespawnPoint  Vec2Spec `yaml:"respawn_point"`
	FixedDelta    float64  `yaml:"fixed_delta"`
	MaxFixedSteps int      `yaml:"max_fixed_steps"`
}

func (s GameSpec) Validate() error {
	var errs []error
	if s.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", s.Lives))
	}
	if s.RespawnDelay < 0 {
		errs = append(errs, fmt.Errorf("respawn_delay must not be negative"))
	}
	if s.FixedDelta <= 0 {
		errs = append(errs, fmt.Errorf("fixed_delta must be positive"))
	}
	if s.MaxFixedSteps < 1 {
		errs = append(errs, fmt.Errorf("max_fixed_steps must be at least 1"))
	}
	return wrapInvalid("game.yaml", errs)
}

type StatsSpec struct {
	MaxHealth       int     `yaml:"max_health"`
	MaxEnergy       int     `yaml:"max_energy"`
	EnergyRegenRate float64 `yaml:"energy_regen_rate"`
}

type MovementSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpForce      float64 `yaml:"jump_force"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashDuration   float64 `yaml:"dash_duration"`
	DashEnergyCost int     `yaml:"dash_energy_cost"`
	Gravity        float64 `yaml:"gravity"`
}

type GroundCheckSpec struct {
	Offset Vec2Spec `yaml:"offset"`
	Radius float64  `yaml:"radius"`
	Layers []string `yaml:"layers"`
}

type ProjectileSpec struct {
	Speed    float64  `yaml:"speed"`
	Lifetime float64  `yaml:"lifetime"`
	Size     Vec2Spec `yaml:"size"`
}

type WeaponSpec struct {
	FireRate   float64        `yaml:"fire_rate"`
	Damage     int            `yaml:"damage"`
	EnergyCost int            `yaml:"energy_cost"`
	FirePoint  Vec2Spec       `yaml:"fire_point"`
	Projectile ProjectileSpec `yaml:"projectile"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Size        Vec2Spec        `yaml:"size"`
	Stats       StatsSpec       `yaml:"stats"`
	Movement    MovementSpec    `yaml:"movement"`
	GroundCheck GroundCheckSpec `yaml:"ground_check"`
	Weapon      WeaponSpec      `yaml:"weapon"`
}

func (s PlayerSpec) Validate() error {
	var errs []error
	if s.Stats.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("stats.max_health must be positive"))
	}
	if s.Stats.MaxEnergy < 0 || s.Stats.EnergyRegenRate < 0 {
		errs = append(errs, fmt.Errorf("stats energy values must not be negative"))
	}
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive"))
	}
	if s.Movement.DashDuration <= 0 {
		errs = append(errs, fmt.Errorf("movement.dash_duration must be positive"))
	}
	if s.Movement.DashEnergyCost < 0 || s.Weapon.EnergyCost < 0 {
		errs = append(errs, fmt.Errorf("energy costs must not be negative"))
	}
	if s.GroundCheck.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ground_check.radius must be positive"))
	}
	if _, err := layerMask(s.GroundCheck.Layers); err != nil {
		errs = append(errs, err)
	}
	if s.Weapon.FireRate < 0 || s.Weapon.Damage < 0 {
		errs = append(errs, fmt.Errorf("weapon fire_rate and damage must not be negative"))
	}
	if s.Weapon.Projectile.Speed <= 0 || s.Weapon.Projectile.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("weapon.projectile speed and lifetime must be positive"))
	}
	return wrapInvalid("player.yaml", errs)
}

type EnemySpec struct {
	Name      string   `yaml:"name"`
	MaxHealth int      `yaml:"max_health"`
	Size      Vec2Spec `yaml:"size"`
}

func (s EnemySpec) Validate() error {
	var errs []error
	if s.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("max_health must be positive"))
	}
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive"))
	}
	return wrapInvalid("enemy.yaml", errs)
}

// CombatSpec leaves DamageMultiplier nil when the key is omitted, which reads
// as x1. An explicit 0 is kept.
type CombatSpec struct {
	DamageMultiplier *float64 `yaml:"damage_multiplier"`
	ModifierScript   string   `yaml:"modifier_script"`
}

func (s CombatSpec) Multiplier() float64 {
	if s.DamageMultiplier == nil {
		return 1
	}
	return *s.DamageMultiplier
}

func (s CombatSpec) Validate() error {
	var errs []error
	if s.Multiplier() < 0 {
		errs = append(errs, fmt.Errorf("damage_multiplier must not be negative"))
	}
	return wrapInvalid("combat.yaml", errs)
}

type ArenaSpec struct {
	Terrain []RectSpec `yaml:"terrain"`
	Enemies []Vec2Spec `yaml:"enemies"`
}

func (s ArenaSpec) Validate() error {
	var errs []error
	for i, r := range s.Terrain {
		if r.Width <= 0 || r.Height <= 0 {
			errs = append(errs, fmt.Errorf("terrain[%d] must have a positive size", i))
		}
	}
	return wrapInvalid("arena.yaml", errs)
}

func wrapInvalid(name string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("prefabs: invalid %s: %w", name, errors.Join(errs...))
}
