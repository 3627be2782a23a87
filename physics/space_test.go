package physics

import (
	"testing"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

type dummy struct {
	dead bool
}

func (d *dummy) TakeDamage(int) {}
func (d *dummy) IsDead() bool   { return d.dead }

func TestParseLayers(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    component.LayerMask
		wantErr bool
	}{
		{"empty", nil, 0, false},
		{"terrain", []string{"terrain"}, LayerTerrain, false},
		{"both_mixed_case", []string{"Terrain", " enemy "}, LayerTerrain | LayerEnemy, false},
		{"unknown", []string{"water"}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseLayers(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestIsGrounded(t *testing.T) {
	s := NewSpace()
	s.AddTerrain(common.Rect{X: -10, Y: -1, Width: 20, Height: 1})

	cases := []struct {
		name string
		pos  common.Vec2
		mask component.LayerMask
		want bool
	}{
		{"touching_floor", common.Vec2{X: 0, Y: 0.1}, LayerTerrain, true},
		{"inside_floor", common.Vec2{X: 0, Y: -0.5}, LayerTerrain, true},
		{"above_floor", common.Vec2{X: 0, Y: 1}, LayerTerrain, false},
		{"wrong_layer", common.Vec2{X: 0, Y: 0.1}, LayerEnemy, false},
		{"off_edge", common.Vec2{X: 11, Y: 0.1}, LayerTerrain, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.IsGrounded(c.pos, 0.2, c.mask); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestContactsOrderAndDeadSkip(t *testing.T) {
	s := NewSpace()
	first := &dummy{}
	second := &dummy{}
	s.AddDamageable(first, "enemy", common.Rect{X: 0, Y: 0, Width: 1, Height: 1})
	s.AddTerrain(common.Rect{X: 0, Y: 0, Width: 1, Height: 1})
	s.AddDamageable(second, "enemy", common.Rect{X: 0, Y: 0, Width: 1, Height: 1})

	area := common.Rect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}
	got := s.Contacts(area)
	if len(got) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(got))
	}
	if got[0].Target != first || !got[1].Terrain() || got[2].Target != second {
		t.Fatalf("contacts not in registration order: %+v", got)
	}

	first.dead = true
	got = s.Contacts(area)
	if len(got) != 2 || !got[0].Terrain() {
		t.Fatalf("dead target should be skipped: %+v", got)
	}

	if len(s.Contacts(common.Rect{X: 5, Y: 5, Width: 1, Height: 1})) != 0 {
		t.Fatalf("expected no contacts far away")
	}

	if !s.RemoveDamageable(second) || s.RemoveDamageable(second) {
		t.Fatalf("remove should succeed once")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 shapes left, got %d", s.Len())
	}
}
