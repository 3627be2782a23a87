package obj

import (
	"github.com/google/uuid"
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

// expiryEpsilon absorbs float drift when the lifetime is summed from
// uneven frame deltas.
const expiryEpsilon = 1e-9

type ProjectileConfig struct {
	Speed    float64
	Lifetime float64
	Size     common.Vec2
}

func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{Speed: 10, Lifetime: 3, Size: common.Vec2{X: 0.25, Y: 0.25}}
}

// Projectile is a straight-line, gravity-free shot that resolves at most one
// hit.
type Projectile struct {
	id uuid.UUID

	Position  common.Vec2
	Velocity  common.Vec2
	Remaining float64
	Damage    int
	Direction int
	Size      common.Vec2

	resolved bool
}

// NewProjectile spawns a projectile from an accepted attack intent.
func NewProjectile(intent component.AttackIntent, cfg ProjectileConfig) *Projectile {
	dir := common.Sign(float64(intent.Direction))
	if dir == 0 {
		dir = 1
	}
	return &Projectile{
		id:        uuid.New(),
		Position:  intent.Origin,
		Velocity:  common.Vec2{X: float64(dir) * cfg.Speed},
		Remaining: cfg.Lifetime,
		Damage:    intent.Damage,
		Direction: dir,
		Size:      cfg.Size,
	}
}

func (p *Projectile) ID() uuid.UUID { return p.id }
func (p *Projectile) Name() string  { return "projectile" }

// Bounds is the collision box centered on the projectile.
func (p *Projectile) Bounds() common.Rect {
	return common.RectAround(p.Position, p.Size)
}

// Move integrates position over dt.
func (p *Projectile) Move(dt float64) {
	if p == nil || p.resolved {
		return
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Tick counts the lifetime down and reports whether it has run out.
func (p *Projectile) Tick(dt float64) bool {
	if p == nil {
		return true
	}
	p.Remaining -= dt
	return p.Expired()
}

func (p *Projectile) Expired() bool {
	return p.Remaining <= expiryEpsilon
}

// Resolve marks the projectile as spent. Only the first call returns true.
func (p *Projectile) Resolve() bool {
	if p == nil || p.resolved {
		return false
	}
	p.resolved = true
	return true
}

func (p *Projectile) Resolved() bool { return p != nil && p.resolved }
