package component

// CombatResolver applies attacks to damageable targets.
type CombatResolver struct {
	Calculator DamageCalculator

	// OnApplied is called after every application, for debug overlays and
	// hit feedback.
	OnApplied func(target Damageable, amount int)
}

// NewCombatResolver creates a resolver around calc.
func NewCombatResolver(calc DamageCalculator) *CombatResolver {
	return &CombatResolver{Calculator: calc}
}

// Apply runs raw damage through the calculator and applies the result to
// target. It returns the amount applied.
func (r *CombatResolver) Apply(raw int, target Damageable) int {
	if r == nil || target == nil {
		return 0
	}
	final := r.Calculator.Calculate(raw)
	target.TakeDamage(final)
	if r.OnApplied != nil {
		r.OnApplied(target, final)
	}
	return final
}

// ApplyAttack reads the attacker's damage and applies it to target.
func (r *CombatResolver) ApplyAttack(attacker Attacker, target Damageable) int {
	if attacker == nil {
		return 0
	}
	return r.Apply(attacker.GetAttackDamage(), target)
}
