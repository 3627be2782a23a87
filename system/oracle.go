package system

import (
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

//go:generate go tool mockgen -destination=./mocks/oracle_mock.go -package=mocks . ContactOracle,ColliderRegistry

// ContactOracle lists what overlaps a box. The order is significant: the
// first contact is the one a projectile resolves against.
type ContactOracle interface {
	Contacts(bounds common.Rect) []component.Contact
}

// ColliderRegistry indexes spawned damageables for a contact oracle. Dead
// enemies are removed and added back on restart.
type ColliderRegistry interface {
	AddDamageable(target component.Damageable, name string, bounds common.Rect)
	RemoveDamageable(target component.Damageable) bool
}
