package system_test

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/event"
	"github.com/milk9111/mechplatformer/obj"
	"github.com/milk9111/mechplatformer/system"
	"github.com/milk9111/mechplatformer/system/mocks"
	"go.uber.org/mock/gomock"
)

type flatGround struct{}

func (flatGround) IsGrounded(pos common.Vec2, radius float64, mask component.LayerMask) bool {
	return true
}

func newTestWorld(contacts system.ContactOracle) *system.World {
	cfg := system.DefaultWorldConfig()
	cfg.FixedDelta = 0.05
	cfg.MaxFixedSteps = 10
	cfg.Ground = flatGround{}
	cfg.Contacts = contacts
	return system.NewWorld(cfg)
}

var fire = component.InputFrame{FirePressed: true}

func TestWorldFireCooldownAndRegen(t *testing.T) {
	w := newTestWorld(nil)
	for i := 0; i < 5; i++ {
		w.Step(0.25, fire)
	}
	// shots at 0.25, 0.75, 1.25; regen +2 on each non-full frame
	if got := len(w.Projectiles()); got != 3 {
		t.Fatalf("expected 3 projectiles, got %d", got)
	}
	if e := w.Player().Resources().Energy; e != 93 {
		t.Fatalf("expected energy 93, got %d", e)
	}
}

func TestWorldProjectileLifetime(t *testing.T) {
	w := newTestWorld(nil)
	w.Step(0.25, fire)
	for i := 0; i < 11; i++ {
		w.Step(0.25, component.InputFrame{})
	}
	if len(w.Projectiles()) != 1 {
		t.Fatalf("projectile should live until its full lifetime")
	}
	w.Step(0.25, component.InputFrame{})
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectile should expire exactly at its lifetime")
	}
}

func TestWorldProjectileHitsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	w := newTestWorld(oracle)
	enemy := w.SpawnEnemy(common.Vec2{X: 1, Y: 2})

	oracle.EXPECT().Contacts(gomock.Any()).Return([]component.Contact{{Target: enemy, Name: "enemy"}}).Times(1)

	hits := 0
	event.On(w.Bus(), func(e event.ProjectileHit) {
		hits++
		if e.Contact.Target != enemy {
			t.Fatalf("hit reported against the wrong target")
		}
	})

	w.Step(0.25, fire)
	w.Step(0.25, component.InputFrame{})

	if hits != 1 {
		t.Fatalf("expected one hit, got %d", hits)
	}
	if enemy.Resources().Health != 20 {
		t.Fatalf("expected health 20, got %d", enemy.Resources().Health)
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectile should be destroyed on hit")
	}
}

func TestWorldFirstContactWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	w := newTestWorld(oracle)
	a := w.SpawnEnemy(common.Vec2{X: 1, Y: 2})
	b := w.SpawnEnemy(common.Vec2{X: 1, Y: 2})

	oracle.EXPECT().Contacts(gomock.Any()).Return([]component.Contact{
		{Target: a, Name: "enemy"},
		{Target: b, Name: "enemy"},
	}).Times(1)

	w.Step(0.25, fire)

	if a.Resources().Health != 20 || b.Resources().Health != 30 {
		t.Fatalf("only the first contact should take damage, a=%d b=%d", a.Resources().Health, b.Resources().Health)
	}
}

func TestWorldTerrainStopsProjectile(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	w := newTestWorld(oracle)

	oracle.EXPECT().Contacts(gomock.Any()).Return([]component.Contact{{Name: "terrain"}}).Times(1)

	var got []event.ProjectileHit
	event.On(w.Bus(), func(e event.ProjectileHit) { got = append(got, e) })

	w.Step(0.25, fire)
	if len(got) != 1 || !got[0].Contact.Terrain() {
		t.Fatalf("expected one terrain hit, got %+v", got)
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("terrain should destroy the projectile")
	}
}

func TestWorldKillScoresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockContactOracle(ctrl)
	w := newTestWorld(oracle)
	enemy := w.SpawnEnemy(common.Vec2{X: 1, Y: 2})

	oracle.EXPECT().Contacts(gomock.Any()).DoAndReturn(func(common.Rect) []component.Contact {
		if enemy.IsDead() {
			return nil
		}
		return []component.Contact{{Target: enemy, Name: "enemy"}}
	}).AnyTimes()

	for i := 0; i < 8; i++ {
		w.Step(0.25, fire)
	}
	if !enemy.IsDead() {
		t.Fatalf("enemy should be dead")
	}
	if w.Game().Score() != 10 || w.Game().EnemiesDefeated() != 1 {
		t.Fatalf("expected one kill worth 10, got score=%d kills=%d", w.Game().Score(), w.Game().EnemiesDefeated())
	}
}

func TestWorldPauseFreezesRegen(t *testing.T) {
	w := newTestWorld(nil)
	w.Player().Resources().Energy = 50

	w.Step(0.1, component.InputFrame{PausePressed: true})
	if w.Game().State() != component.GameStatePaused {
		t.Fatalf("expected paused")
	}
	clock := w.Clock()
	for i := 0; i < 10; i++ {
		w.Step(1, fire)
	}
	if w.Player().Resources().Energy != 50 || w.Clock() != clock || len(w.Projectiles()) != 0 {
		t.Fatalf("paused world must not change, energy=%d", w.Player().Resources().Energy)
	}

	w.Step(0.1, component.InputFrame{PausePressed: true})
	if w.Player().Resources().Energy != 51 {
		t.Fatalf("resume should regen one frame only, got %d", w.Player().Resources().Energy)
	}
}

func TestWorldDeathAndRespawn(t *testing.T) {
	w := newTestWorld(nil)
	p := w.Player()

	p.TakeDamage(100)
	if p.Active() || w.Game().Lives() != 2 {
		t.Fatalf("expected inactive player and 2 lives")
	}
	w.Step(0.25, fire)
	if len(w.Projectiles()) != 0 {
		t.Fatalf("dead player must not fire")
	}
	for i := 0; i < 7; i++ {
		w.Step(0.25, component.InputFrame{})
	}
	if !p.Active() || p.Resources().Health != 100 {
		t.Fatalf("player should respawn after the delay")
	}
}

func TestWorldSpawnEnemyRegistersCollider(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockColliderRegistry(ctrl)

	cfg := system.DefaultWorldConfig()
	cfg.Ground = flatGround{}
	cfg.Colliders = reg
	w := system.NewWorld(cfg)

	reg.EXPECT().AddDamageable(gomock.Any(), "enemy", common.Rect{X: 3.5, Y: 0.5, Width: 1, Height: 1})
	w.SpawnEnemy(common.Vec2{X: 4, Y: 1})

	if len(w.Enemies()) != 1 {
		t.Fatalf("expected one enemy")
	}
}

func TestWorldRestart(t *testing.T) {
	w := newTestWorld(nil)
	e := w.SpawnEnemy(common.Vec2{X: 5})
	e.TakeDamage(100)
	w.Step(0.25, fire)
	w.Game().AddScore(40)

	w.Restart()

	if len(w.Projectiles()) != 0 || e.IsDead() || w.Game().Score() != 0 {
		t.Fatalf("restart should clear projectiles, revive enemies and reset score")
	}
	if w.Player().Resources().Energy != 100 || w.Player().Position() != (common.Vec2{X: 0, Y: 2}) {
		t.Fatalf("restart should respawn the player")
	}
}

func TestWorldFixedStepCap(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.Ground = flatGround{}
	w := system.NewWorld(cfg)

	w.Step(10, fire)
	ps := w.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("expected one projectile")
	}
	// 8 capped steps of 0.02s at speed 10 from x=0.5
	if math.Abs(ps[0].Position.X-2.1) > 1e-9 {
		t.Fatalf("expected x=2.1, got %v", ps[0].Position.X)
	}
}

func TestWorldMissingGroundOracle(t *testing.T) {
	var faults []error
	cfg := system.DefaultWorldConfig()
	cfg.OnFault = func(err error) { faults = append(faults, err) }
	w := system.NewWorld(cfg)

	w.Step(0.1, component.InputFrame{JumpPressed: true})
	w.Step(0.1, component.InputFrame{JumpPressed: true})

	if len(faults) != 1 || !errors.Is(faults[0], obj.ErrNoGroundCheck) {
		t.Fatalf("expected one ground check fault, got %v", faults)
	}
	if w.Player().Movement().State() != component.MovementAirborne {
		t.Fatalf("body without a ground check should be airborne")
	}
}

func TestWorldDashWinsEnergyContention(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.FixedDelta = 0.05
	cfg.Ground = flatGround{}
	cfg.Player.EnergyRegenRate = 0
	cfg.Player.Movement.DashEnergyCost = 5
	cfg.Player.Weapon.EnergyCost = 10
	w := system.NewWorld(cfg)
	w.Player().Resources().Energy = 5

	w.Step(0.05, component.InputFrame{DashPressed: true, FirePressed: true})

	if w.Player().Movement().State() != component.MovementDashing {
		t.Fatalf("expected dash to win, state=%s", w.Player().Movement().State())
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("shot should be rejected once the dash spent the pool")
	}
	if e := w.Player().Resources().Energy; e != 0 {
		t.Fatalf("expected energy 0, got %d", e)
	}
}

func TestWorldEnemyColliderLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockColliderRegistry(ctrl)

	cfg := system.DefaultWorldConfig()
	cfg.Ground = flatGround{}
	cfg.Colliders = reg
	w := system.NewWorld(cfg)
	defer w.Close()

	bounds := common.Rect{X: 3.5, Y: 0.5, Width: 1, Height: 1}
	var e *obj.Enemy
	gomock.InOrder(
		reg.EXPECT().AddDamageable(gomock.Any(), "enemy", bounds),
		reg.EXPECT().RemoveDamageable(gomock.Any()).DoAndReturn(func(target component.Damageable) bool {
			if target != e {
				t.Fatalf("removed the wrong collider")
			}
			return true
		}),
		reg.EXPECT().AddDamageable(gomock.Any(), "enemy", bounds),
	)

	e = w.SpawnEnemy(common.Vec2{X: 4, Y: 1})
	e.TakeDamage(100)
	w.Restart()

	if e.IsDead() {
		t.Fatalf("restart should revive the enemy")
	}
}

func TestWorldDamageCalculatorDefault(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.Ground = flatGround{}
	w := system.NewWorld(cfg)
	if m := w.Resolver().Calculator.Multiplier; m != 1 {
		t.Fatalf("nil calculator should default to x1, got %v", m)
	}

	none := component.NewDamageCalculator(0)
	cfg.Damage = &none
	w = system.NewWorld(cfg)
	if m := w.Resolver().Calculator.Multiplier; m != 0 {
		t.Fatalf("explicit zero multiplier should be kept, got %v", m)
	}
}

func TestWorldRespawnAndRestartShareSpawn(t *testing.T) {
	cfg := system.DefaultWorldConfig()
	cfg.FixedDelta = 0.05
	cfg.Ground = flatGround{}
	cfg.Game.RespawnPoint = common.Vec2{X: 3, Y: 2}
	w := system.NewWorld(cfg)
	right := component.InputFrame{Horizontal: 1}

	if w.Player().Position() != cfg.Game.RespawnPoint {
		t.Fatalf("player should start at the respawn point, got %v", w.Player().Position())
	}

	w.Step(0.25, right)
	w.Player().TakeDamage(1000)
	for i := 0; i < 20 && (w.Player().IsDead() || w.Game().RespawnPending()); i++ {
		w.Step(0.25, component.InputFrame{})
	}
	if w.Player().IsDead() || w.Player().Position().X != 3 {
		t.Fatalf("death respawn should use the respawn point, got %v", w.Player().Position())
	}

	w.Step(0.25, right)
	w.Restart()
	if w.Player().Position() != cfg.Game.RespawnPoint {
		t.Fatalf("restart should use the respawn point, got %v", w.Player().Position())
	}
}
