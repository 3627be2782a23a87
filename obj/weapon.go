package obj

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

// ErrNoFirePoint is reported when a weapon is asked to fire before a fire
// point has been wired.
var ErrNoFirePoint = errors.New("fire point not wired")

// Mount is the body a weapon is attached to.
type Mount interface {
	Position() common.Vec2
	Facing() int
}

type WeaponConfig struct {
	FireRate   float64
	Damage     int
	EnergyCost int
}

func DefaultWeaponConfig() WeaponConfig {
	return WeaponConfig{FireRate: 0.5, Damage: 10, EnergyCost: 5}
}

// DefaultFirePoint is the muzzle offset used when none is configured.
var DefaultFirePoint = common.Vec2{X: 0.5}

// Weapon gates fire requests on cooldown and energy.
type Weapon struct {
	cfg       WeaponConfig
	resources *component.ResourceState
	gate      component.StateReader
	mount     Mount

	firePoint    *common.Vec2
	nextFireTime float64

	faultReported bool

	// OnFault receives configuration faults. Defaults to log.Printf.
	OnFault func(err error)
}

func NewWeapon(cfg WeaponConfig, resources *component.ResourceState, mount Mount, gate component.StateReader) *Weapon {
	return &Weapon{cfg: cfg, resources: resources, mount: mount, gate: gate}
}

// SetFirePoint wires the muzzle at offset from the mount, in facing-right
// space.
func (w *Weapon) SetFirePoint(offset common.Vec2) {
	if w == nil {
		return
	}
	w.firePoint = &offset
	w.faultReported = false
}

// ClearFirePoint unwires the muzzle.
func (w *Weapon) ClearFirePoint() {
	if w == nil {
		return
	}
	w.firePoint = nil
	w.faultReported = false
}

func (w *Weapon) SetConfig(cfg WeaponConfig) {
	if w == nil {
		return
	}
	w.cfg = cfg
}

func (w *Weapon) Config() WeaponConfig { return w.cfg }

// NextFireTime is the earliest clock value at which a shot is accepted.
func (w *Weapon) NextFireTime() float64 { return w.nextFireTime }

// GetAttackDamage returns the raw damage of one shot.
func (w *Weapon) GetAttackDamage() int {
	if w == nil {
		return 0
	}
	return w.cfg.Damage
}

// TryFire returns an attack intent when the shot is accepted. The cooldown
// restarts from now, so early requests never stack.
func (w *Weapon) TryFire(now float64) (component.AttackIntent, bool) {
	if w == nil {
		return component.AttackIntent{}, false
	}
	if w.gate != nil && w.gate.State() != component.GameStatePlaying {
		return component.AttackIntent{}, false
	}
	if w.firePoint == nil || w.mount == nil {
		w.fault(fmt.Errorf("weapon: %w", ErrNoFirePoint))
		return component.AttackIntent{}, false
	}
	if now < w.nextFireTime {
		return component.AttackIntent{}, false
	}
	if w.resources == nil || !w.resources.UseEnergy(w.cfg.EnergyCost) {
		return component.AttackIntent{}, false
	}
	w.nextFireTime = now + w.cfg.FireRate

	facing := w.mount.Facing()
	if facing == 0 {
		facing = 1
	}
	offset := common.Vec2{X: w.firePoint.X * float64(facing), Y: w.firePoint.Y}
	return component.AttackIntent{
		Damage:    w.cfg.Damage,
		Origin:    w.mount.Position().Add(offset),
		Direction: facing,
	}, true
}

// Reset clears the cooldown.
func (w *Weapon) Reset() {
	if w == nil {
		return
	}
	w.nextFireTime = 0
}

func (w *Weapon) fault(err error) {
	if w.faultReported {
		return
	}
	w.faultReported = true
	if w.OnFault != nil {
		w.OnFault(err)
		return
	}
	log.Printf("%v", err)
}
