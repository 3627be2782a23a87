package component

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . Damageable,Attacker

// Damageable is anything combat can hurt.
type Damageable interface {
	TakeDamage(amount int)
	IsDead() bool
}

// Attacker exposes the raw damage of an attack source.
type Attacker interface {
	GetAttackDamage() int
}
