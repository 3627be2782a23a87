package system

import (
	"github.com/milk9111/mechplatformer/ecs"
)

type regenSystem struct{}

func (regenSystem) Update(w *World, dt float64) {
	if !w.player.Active() {
		return
	}
	w.player.Resources().RegenerateEnergy(dt)
}

type movementSystem struct{}

func (movementSystem) Update(w *World, dt float64) {
	if !w.player.Active() {
		return
	}
	w.player.Movement().Update(dt, w.input)
}

type weaponSystem struct{}

func (weaponSystem) Update(w *World, dt float64) {
	if !w.input.FirePressed || !w.player.Active() {
		return
	}
	if intent, ok := w.player.Weapon().TryFire(w.clock); ok {
		w.SpawnProjectile(intent)
	}
}

// projectileLifetimeSystem expires projectiles silently.
type projectileLifetimeSystem struct{}

func (projectileLifetimeSystem) Update(w *World, dt float64) {
	var expired []ecs.Entity
	entities := w.projectiles.Entities()
	for i, p := range w.projectiles.Values() {
		if p.Tick(dt) {
			expired = append(expired, entities[i])
		}
	}
	for _, e := range expired {
		w.destroyProjectile(e)
	}
}

type bodySystem struct{}

func (bodySystem) Update(w *World, dt float64) {
	if !w.player.Active() {
		return
	}
	w.player.Movement().FixedUpdate(dt, w.input)
}

// projectileMotionSystem moves projectiles and resolves the first contact
// of each.
type projectileMotionSystem struct{}

func (projectileMotionSystem) Update(w *World, dt float64) {
	entities := append([]ecs.Entity(nil), w.projectiles.Entities()...)
	for _, e := range entities {
		p, ok := w.projectiles.Get(e)
		if !ok {
			continue
		}
		p.Move(dt)
		if w.cfg.Contacts == nil {
			continue
		}
		contacts := w.cfg.Contacts.Contacts(p.Bounds())
		if len(contacts) == 0 {
			continue
		}
		w.resolveHit(e, p, contacts[0])
	}
}
