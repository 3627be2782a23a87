package obj

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

//go:generate go tool mockgen -destination=./mocks/ground_mock.go -package=mocks . GroundOracle

// ErrNoGroundCheck is reported when a movement machine steps without a
// ground oracle.
var ErrNoGroundCheck = errors.New("ground check not wired")

// GroundOracle answers whether a circle overlaps any collider on the given
// layers.
type GroundOracle interface {
	IsGrounded(pos common.Vec2, radius float64, mask component.LayerMask) bool
}

// GroundCheck places the ground check relative to the body.
type GroundCheck struct {
	Offset common.Vec2
	Radius float64
	Layers component.LayerMask
}

// MovementConfig holds locomotion tuning in world units per second.
type MovementConfig struct {
	MoveSpeed      float64
	JumpForce      float64
	DashSpeed      float64
	DashDuration   float64
	DashEnergyCost int
	Gravity        float64
}

func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		MoveSpeed:      5,
		JumpForce:      12,
		DashSpeed:      15,
		DashDuration:   0.2,
		DashEnergyCost: 20,
		Gravity:        9.81,
	}
}

func DefaultGroundCheck() GroundCheck {
	return GroundCheck{Offset: common.Vec2{Y: -0.5}, Radius: 0.2, Layers: 1}
}

// MovementMachine drives one body through grounded, airborne and dashing.
// Transitions happen in Update; velocity integration in FixedUpdate.
type MovementMachine struct {
	Position common.Vec2
	Velocity common.Vec2

	cfg       MovementConfig
	check     GroundCheck
	oracle    GroundOracle
	resources *component.ResourceState
	gate      component.StateReader

	state   movementState
	preDash movementState

	dashRemaining float64
	dashDirection int
	facing        int
	scaleX        float64
	speed         float64
	grounded      bool

	faultReported bool

	// OnFault receives configuration faults. Defaults to log.Printf.
	OnFault func(err error)
}

// NewMovementMachine creates an airborne machine facing right; the first
// ground query decides whether it lands. resources pays for dashes; gate may
// be nil for an always-playing machine.
func NewMovementMachine(cfg MovementConfig, check GroundCheck, resources *component.ResourceState, gate component.StateReader) *MovementMachine {
	return &MovementMachine{
		cfg:       cfg,
		check:     check,
		resources: resources,
		gate:      gate,
		state:     stateAirborne,
		facing:    1,
		scaleX:    1,
	}
}

// SetGroundOracle wires the ground query. Passing nil unwires it.
func (m *MovementMachine) SetGroundOracle(o GroundOracle) {
	if m == nil {
		return
	}
	m.oracle = o
	m.faultReported = false
}

func (m *MovementMachine) SetGroundCheck(c GroundCheck) {
	if m == nil {
		return
	}
	m.check = c
}

func (m *MovementMachine) SetConfig(cfg MovementConfig) {
	if m == nil {
		return
	}
	m.cfg = cfg
}

func (m *MovementMachine) Config() MovementConfig {
	return m.cfg
}

// State returns the current movement state.
func (m *MovementMachine) State() component.MovementState {
	if m == nil || m.state == nil {
		return component.MovementAirborne
	}
	return m.state.Kind()
}

func (m *MovementMachine) DashTimeRemaining() float64 { return m.dashRemaining }
func (m *MovementMachine) DashDirection() int         { return m.dashDirection }

// Facing returns -1 or +1.
func (m *MovementMachine) Facing() int { return m.facing }

// ScaleX is the horizontal render scale; it mirrors with facing.
func (m *MovementMachine) ScaleX() float64 { return m.scaleX }

// Speed is the magnitude of the last horizontal input.
func (m *MovementMachine) Speed() float64 { return m.speed }

// Grounded is the result of the last ground query.
func (m *MovementMachine) Grounded() bool { return m.grounded }

// Reset places the body at pos, at rest and facing right. It starts
// airborne until a ground query says otherwise.
func (m *MovementMachine) Reset(pos common.Vec2) {
	if m == nil {
		return
	}
	m.Position = pos
	m.Velocity = common.Vec2{}
	m.state = stateAirborne
	m.preDash = nil
	m.dashRemaining = 0
	m.dashDirection = 0
	m.facing = 1
	m.scaleX = 1
	m.speed = 0
	m.grounded = false
}

// Update runs the variable-rate part of the machine: jump and dash
// requests, the ground query and state transitions.
func (m *MovementMachine) Update(dt float64, in component.InputFrame) {
	if m == nil || !m.playing() {
		return
	}
	if m.state == nil {
		m.state = stateAirborne
	}
	m.speed = math.Abs(in.Horizontal)
	if m.oracle == nil {
		m.fault(fmt.Errorf("movement: %w", ErrNoGroundCheck))
		if m.state == stateGrounded {
			m.setState(stateAirborne)
		}
	}

	m.state.HandleInput(m, in)
	m.grounded = m.queryGround()
	m.state.Update(m, dt)
}

// FixedUpdate applies horizontal input, facing, gravity and integrates the
// position.
func (m *MovementMachine) FixedUpdate(dt float64, in component.InputFrame) {
	if m == nil || !m.playing() || dt <= 0 {
		return
	}
	dashing := m.State() == component.MovementDashing
	if !dashing {
		m.Velocity.X = in.Horizontal * m.cfg.MoveSpeed
	}
	if dir := common.Sign(in.Horizontal); dir != 0 && dir != m.facing {
		m.flip()
	}

	if m.grounded && m.Velocity.Y < 0 {
		m.Velocity.Y = 0
	}
	if !m.grounded {
		m.Velocity.Y -= m.cfg.Gravity * dt
	}
	m.Position = m.Position.Add(m.Velocity.Scale(dt))
}

func (m *MovementMachine) flip() {
	m.facing = -m.facing
	m.scaleX = -m.scaleX
}

func (m *MovementMachine) playing() bool {
	return m.gate == nil || m.gate.State() == component.GameStatePlaying
}

func (m *MovementMachine) queryGround() bool {
	if m.oracle == nil {
		return false
	}
	return m.oracle.IsGrounded(m.Position.Add(m.check.Offset), m.check.Radius, m.check.Layers)
}

func (m *MovementMachine) fault(err error) {
	if m.faultReported {
		return
	}
	m.faultReported = true
	if m.OnFault != nil {
		m.OnFault(err)
		return
	}
	log.Printf("%v", err)
}

func (m *MovementMachine) setState(s movementState) {
	if s == nil || m.state == s {
		return
	}
	if m.state != nil {
		m.state.Exit(m)
	}
	m.state = s
	m.state.Enter(m)
}

// tryDash starts a dash from the current state if energy allows.
func (m *MovementMachine) tryDash() {
	if m.resources == nil || !m.resources.UseEnergy(m.cfg.DashEnergyCost) {
		return
	}
	m.preDash = m.state
	m.setState(stateDashing)
}
