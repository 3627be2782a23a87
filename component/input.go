package component

// InputFrame is one sampled snapshot of player input.
type InputFrame struct {
	// Horizontal is in [-1, 1].
	Horizontal   float64
	JumpPressed  bool
	JumpHeld     bool
	FirePressed  bool
	DashPressed  bool
	PausePressed bool
}
