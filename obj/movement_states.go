package obj

import "github.com/milk9111/mechplatformer/component"

// movementState is implemented by each locomotion state.
type movementState interface {
	Name() string
	Kind() component.MovementState
	Enter(m *MovementMachine)
	Exit(m *MovementMachine)
	HandleInput(m *MovementMachine, in component.InputFrame)
	Update(m *MovementMachine, dt float64)
}

// singletons for each state to avoid allocating on every transition
var (
	stateGrounded movementState = &groundedState{}
	stateAirborne movementState = &airborneState{}
	stateDashing  movementState = &dashingState{}
)

type groundedState struct{}

func (groundedState) Name() string                  { return "grounded" }
func (groundedState) Kind() component.MovementState { return component.MovementGrounded }
func (groundedState) Enter(m *MovementMachine)      {}
func (groundedState) Exit(m *MovementMachine)       {}
func (groundedState) HandleInput(m *MovementMachine, in component.InputFrame) {
	if in.JumpPressed {
		m.Velocity.Y = m.cfg.JumpForce
		m.setState(stateAirborne)
	}
	if in.DashPressed {
		m.tryDash()
	}
}
func (groundedState) Update(m *MovementMachine, dt float64) {
	if !m.grounded {
		m.setState(stateAirborne)
	}
}

type airborneState struct{}

func (airborneState) Name() string                  { return "airborne" }
func (airborneState) Kind() component.MovementState { return component.MovementAirborne }
func (airborneState) Enter(m *MovementMachine)      {}
func (airborneState) Exit(m *MovementMachine)       {}
func (airborneState) HandleInput(m *MovementMachine, in component.InputFrame) {
	if in.DashPressed {
		m.tryDash()
	}
}
func (airborneState) Update(m *MovementMachine, dt float64) {
	// rising bodies stay airborne even while the ground check still hits
	if m.grounded && m.Velocity.Y <= 0 {
		m.setState(stateGrounded)
	}
}

type dashingState struct{}

func (dashingState) Name() string                  { return "dashing" }
func (dashingState) Kind() component.MovementState { return component.MovementDashing }
func (dashingState) Enter(m *MovementMachine) {
	m.dashDirection = m.facing
	m.dashRemaining = m.cfg.DashDuration
	m.Velocity.X = float64(m.dashDirection) * m.cfg.DashSpeed
}
func (dashingState) Exit(m *MovementMachine) {
	m.dashRemaining = 0
	m.preDash = nil
}

// HandleInput ignores dash requests; a dash cannot be re-triggered.
func (dashingState) HandleInput(m *MovementMachine, in component.InputFrame) {}
func (dashingState) Update(m *MovementMachine, dt float64) {
	m.dashRemaining -= dt
	if m.dashRemaining > 0 {
		return
	}
	next := m.preDash
	if next == nil || (next == stateGrounded && !m.grounded) {
		// dashed off a ledge
		next = stateAirborne
	}
	m.setState(next)
}
