package component

import "testing"

func TestResourceStateTakeDamageClamps(t *testing.T) {
	cases := []struct {
		name   string
		max    int
		hits   []int
		health int
		dead   bool
	}{
		{"no_damage", 100, []int{0}, 100, false},
		{"partial", 100, []int{30}, 70, false},
		{"exact_kill", 50, []int{50}, 0, true},
		{"overkill", 10, []int{9999}, 0, true},
		{"negative_is_ignored", 40, []int{-15}, 40, false},
		{"two_hits_of_twenty", 30, []int{20, 20}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewResourceState(c.max, 0, 0)
			for _, h := range c.hits {
				r.TakeDamage(h)
				if r.Health < 0 || r.Health > r.MaxHealth {
					t.Fatalf("health %d escaped [0,%d]", r.Health, r.MaxHealth)
				}
			}
			if r.Health != c.health {
				t.Fatalf("expected health %d, got %d", c.health, r.Health)
			}
			if r.IsDead() != c.dead {
				t.Fatalf("expected dead=%v, got %v", c.dead, r.IsDead())
			}
		})
	}
}

func TestResourceStateDeathIsEdgeTriggered(t *testing.T) {
	r := NewResourceState(30, 0, 0)
	deaths := 0
	r.OnDeath = func(*ResourceState) { deaths++ }

	if r.TakeDamage(20) {
		t.Fatalf("first hit should not kill")
	}
	if r.Health != 10 || r.IsDead() {
		t.Fatalf("expected 10 hp alive, got %d dead=%v", r.Health, r.IsDead())
	}
	if !r.TakeDamage(20) {
		t.Fatalf("second hit should report the death edge")
	}
	if r.TakeDamage(20) || r.TakeDamage(1000) {
		t.Fatalf("hits after death must not report another edge")
	}
	if deaths != 1 {
		t.Fatalf("expected exactly one death callback, got %d", deaths)
	}

	r.Reset()
	if r.IsDead() || r.Health != 30 {
		t.Fatalf("reset should revive at full health, got %d dead=%v", r.Health, r.IsDead())
	}
	r.TakeDamage(30)
	if deaths != 2 {
		t.Fatalf("death after reset should fire again, got %d", deaths)
	}
}

func TestResourceStateUseEnergy(t *testing.T) {
	t.Run("fits_once_not_twice", func(t *testing.T) {
		r := NewResourceState(1, 30, 0)
		r.Energy = 20
		if !r.UseEnergy(15) {
			t.Fatalf("first spend should succeed")
		}
		if r.UseEnergy(15) {
			t.Fatalf("second spend should be rejected")
		}
		if r.Energy != 5 {
			t.Fatalf("expected 5 energy left, got %d", r.Energy)
		}
	})

	t.Run("dash_then_fire_contention", func(t *testing.T) {
		const dashCost, fireCost = 20, 25
		r := NewResourceState(1, 100, 0)
		r.Energy = dashCost
		if !r.UseEnergy(dashCost) {
			t.Fatalf("dash should be paid")
		}
		if r.UseEnergy(fireCost) {
			t.Fatalf("fire must be rejected after dash drained the pool")
		}
		if r.Energy != 0 {
			t.Fatalf("no overdraw expected, got %d", r.Energy)
		}
	})

	t.Run("twenty_shots_of_five", func(t *testing.T) {
		r := NewResourceState(1, 100, 0)
		for i := 1; i <= 20; i++ {
			if !r.UseEnergy(5) {
				t.Fatalf("shot %d should succeed", i)
			}
		}
		if r.UseEnergy(5) {
			t.Fatalf("21st shot should be rejected")
		}
		r.EnergyRegenRate = 5
		r.RegenerateEnergy(1)
		if !r.UseEnergy(5) {
			t.Fatalf("shot after regen should succeed")
		}
	})
}

func TestResourceStateRegenerateEnergy(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		rate   float64
		dt     float64
		expect int
	}{
		{"ceil_small_step", 50, 5, 0.016, 51},
		{"whole_second", 50, 5, 1, 55},
		{"caps_at_max", 98, 5, 1, 100},
		{"full_is_noop", 100, 5, 1, 100},
		{"zero_dt", 50, 5, 0, 50},
		{"zero_rate", 50, 0, 1, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewResourceState(1, 100, c.rate)
			r.Energy = c.start
			r.RegenerateEnergy(c.dt)
			if r.Energy != c.expect {
				t.Fatalf("expected %d, got %d", c.expect, r.Energy)
			}
		})
	}
}
