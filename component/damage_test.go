package component

import "testing"

func TestDamageCalculator(t *testing.T) {
	cases := []struct {
		name       string
		multiplier float64
		raw        int
		expect     int
	}{
		{"identity", 1, 10, 10},
		{"double", 2, 7, 14},
		{"half_rounds_to_even_down", 0.5, 5, 2},
		{"half_rounds_to_even_up", 0.5, 7, 4},
		{"fraction", 1.25, 10, 12},
		{"zero", 0, 50, 0},
		{"negative_multiplier_clamped", -3, 10, 0},
		{"negative_raw_clamped", 1, -10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := DamageCalculator{Multiplier: c.multiplier}
			if got := calc.Calculate(c.raw); got != c.expect {
				t.Fatalf("Calculate(%d) with x%.2f = %d, want %d", c.raw, c.multiplier, got, c.expect)
			}
		})
	}
}

func TestNewDamageCalculatorClampsMultiplier(t *testing.T) {
	if c := NewDamageCalculator(-1); c.Multiplier != 0 {
		t.Fatalf("expected clamp to 0, got %v", c.Multiplier)
	}
	if c := DefaultDamageCalculator(); c.Calculate(13) != 13 {
		t.Fatalf("default calculator should not change damage")
	}
}
