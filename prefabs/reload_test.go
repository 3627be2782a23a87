package prefabs

import (
	"testing"

	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/system"
)

func TestReloadAppliesEmbeddedSpecs(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.Player.Movement.MoveSpeed = 99
	cfg.Game.Lives = 9
	w := system.NewWorld(cfg)
	defer w.Close()
	w.ApplyDamageMultiplier(3)

	cases := []struct {
		path  string
		check func(t *testing.T)
	}{
		{"prefabs/player.yaml", func(t *testing.T) {
			if got := w.Player().Movement().Config().MoveSpeed; got != 5 {
				t.Fatalf("expected move speed 5, got %v", got)
			}
		}},
		{"prefabs/scripts/damage.tengo", func(t *testing.T) {
			if got := w.Resolver().Calculator.Multiplier; got != 1 {
				t.Fatalf("expected multiplier 1, got %v", got)
			}
		}},
		{"game.yaml", func(t *testing.T) {
			if got := w.Game().Config().Lives; got != 3 {
				t.Fatalf("expected 3 lives, got %d", got)
			}
		}},
		{"arena.yaml", func(t *testing.T) {}},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if err := Reload(Change{Kind: KindOf(c.path), Path: c.path}, w); err != nil {
				t.Fatalf("Reload: %v", err)
			}
			c.check(t)
		})
	}
}

func TestReloadPlayerRetunesProjectiles(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.Projectile.Speed = 99
	w := system.NewWorld(cfg)
	defer w.Close()

	if err := Reload(Change{Kind: ReloadPlayer, Path: "player.yaml"}, w); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	w.Step(0.25, component.InputFrame{FirePressed: true})

	shots := w.Projectiles()
	if len(shots) != 1 {
		t.Fatalf("expected one projectile, got %d", len(shots))
	}
	if v := shots[0].Velocity.X; v != 10 {
		t.Fatalf("expected reloaded speed 10, got %v", v)
	}
}

func TestReloadRejectsUnknownKind(t *testing.T) {
	w := system.NewWorld(system.DefaultWorldConfig())
	defer w.Close()
	if err := Reload(Change{Kind: ReloadNone, Path: "notes.yaml"}, w); err == nil {
		t.Fatalf("expected an error for an unclassified file")
	}
}
