package system

import (
	"log"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/event"
)

// timerEpsilon absorbs float drift in countdowns summed from frame deltas.
const timerEpsilon = 1e-9

type GameConfig struct {
	Lives        int
	RespawnDelay float64
	EnemyReward  int
	RespawnPoint common.Vec2
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		Lives:        3,
		RespawnDelay: 2,
		EnemyReward:  10,
		RespawnPoint: common.Vec2{X: 0, Y: 2},
	}
}

// GameStateMachine owns the global game state, lives and score. It reacts
// to death events from the bus and schedules respawns.
type GameStateMachine struct {
	cfg GameConfig
	bus *event.Bus

	state           component.GameState
	lives           int
	score           int
	enemiesDefeated int

	pending      component.Respawnable
	respawnTimer float64

	subs []event.Subscription
}

// NewGameStateMachine starts in Playing and subscribes to bus.
func NewGameStateMachine(cfg GameConfig, bus *event.Bus) *GameStateMachine {
	g := &GameStateMachine{
		cfg:   cfg,
		bus:   bus,
		state: component.GameStatePlaying,
		lives: cfg.Lives,
	}
	if bus != nil {
		g.subs = append(g.subs,
			event.On(bus, g.onPlayerDied),
			event.On(bus, g.onEnemyDestroyed),
		)
	}
	return g
}

func (g *GameStateMachine) State() component.GameState { return g.state }
func (g *GameStateMachine) Playing() bool              { return g.state == component.GameStatePlaying }
func (g *GameStateMachine) Lives() int                 { return g.lives }
func (g *GameStateMachine) Score() int                 { return g.score }
func (g *GameStateMachine) EnemiesDefeated() int       { return g.enemiesDefeated }
func (g *GameStateMachine) Config() GameConfig         { return g.cfg }

// RespawnPending reports whether a dead player is waiting to come back.
func (g *GameStateMachine) RespawnPending() bool { return g.pending != nil }

// RespawnRemaining is the Playing time left before the pending respawn.
func (g *GameStateMachine) RespawnRemaining() float64 {
	if g.pending == nil {
		return 0
	}
	return g.respawnTimer
}

// SetConfig swaps tuning. Current lives and score are kept.
func (g *GameStateMachine) SetConfig(cfg GameConfig) {
	g.cfg = cfg
}

// SetGameState changes the state and always publishes GameStateChanged,
// even when next equals the current state.
func (g *GameStateMachine) SetGameState(next component.GameState) {
	prev := g.state
	g.state = next
	if prev != next {
		log.Printf("game: state %s -> %s", prev, next)
	}
	if g.bus != nil {
		g.bus.Publish(event.GameStateChanged{Previous: prev, Next: next})
	}
}

// TogglePause flips between Playing and Paused. It does nothing from any
// other state.
func (g *GameStateMachine) TogglePause() bool {
	switch g.state {
	case component.GameStatePlaying:
		g.SetGameState(component.GameStatePaused)
		return true
	case component.GameStatePaused:
		g.SetGameState(component.GameStatePlaying)
		return true
	}
	return false
}

func (g *GameStateMachine) Pause() bool {
	if g.state != component.GameStatePlaying {
		return false
	}
	g.SetGameState(component.GameStatePaused)
	return true
}

func (g *GameStateMachine) Resume() bool {
	if g.state != component.GameStatePaused {
		return false
	}
	g.SetGameState(component.GameStatePlaying)
	return true
}

// Advance counts down a pending respawn. Time only passes while Playing.
func (g *GameStateMachine) Advance(dt float64) {
	if g.pending == nil || g.state != component.GameStatePlaying || dt <= 0 {
		return
	}
	g.respawnTimer -= dt
	if g.respawnTimer > timerEpsilon {
		return
	}
	p := g.pending
	g.pending = nil
	g.respawnTimer = 0
	p.Respawn(g.cfg.RespawnPoint)
	g.SetGameState(component.GameStatePlaying)
}

// Restart reinitializes lives, score and counters and returns to Playing.
// Entities are reset by the owner of the world.
func (g *GameStateMachine) Restart() {
	g.lives = g.cfg.Lives
	g.score = 0
	g.enemiesDefeated = 0
	g.pending = nil
	g.respawnTimer = 0
	log.Printf("game: restart with %d lives", g.lives)
	g.SetGameState(component.GameStatePlaying)
}

func (g *GameStateMachine) AddScore(n int) {
	g.score += n
}

func (g *GameStateMachine) AddLife() {
	g.lives++
}

// Close drops the bus subscriptions.
func (g *GameStateMachine) Close() {
	for _, s := range g.subs {
		g.bus.Unsubscribe(s)
	}
	g.subs = nil
}

func (g *GameStateMachine) onPlayerDied(e event.PlayerDied) {
	if g.state == component.GameStateGameOver {
		return
	}
	g.lives--
	if g.lives > 0 {
		g.pending = e.Player
		g.respawnTimer = g.cfg.RespawnDelay
		log.Printf("game: player died, %d lives left, respawn in %.2fs", g.lives, g.respawnTimer)
		return
	}
	g.lives = 0
	g.pending = nil
	log.Printf("game: player died, no lives left")
	g.SetGameState(component.GameStateGameOver)
}

func (g *GameStateMachine) onEnemyDestroyed(e event.EnemyDestroyed) {
	g.score += g.cfg.EnemyReward
	g.enemiesDefeated++
}
