package component

// GameState is the global simulation gate.
type GameState int

const (
	GameStateMainMenu GameState = iota
	GameStatePlaying
	GameStatePaused
	GameStateGameOver
)

func (s GameState) String() string {
	switch s {
	case GameStateMainMenu:
		return "main_menu"
	case GameStatePlaying:
		return "playing"
	case GameStatePaused:
		return "paused"
	case GameStateGameOver:
		return "game_over"
	}
	return "unknown"
}

// StateReader exposes the current game state to gated subsystems.
type StateReader interface {
	State() GameState
}

// MovementState is the locomotion state of a controllable entity.
type MovementState int

const (
	MovementGrounded MovementState = iota
	MovementAirborne
	MovementDashing
)

func (s MovementState) String() string {
	switch s {
	case MovementGrounded:
		return "grounded"
	case MovementAirborne:
		return "airborne"
	case MovementDashing:
		return "dashing"
	}
	return "unknown"
}
