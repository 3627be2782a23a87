package obj_test

import (
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

type stubGate struct {
	state component.GameState
}

func (g *stubGate) State() component.GameState { return g.state }

func playing() *stubGate { return &stubGate{state: component.GameStatePlaying} }

// groundFunc adapts a closure to obj.GroundOracle.
type groundFunc func(pos common.Vec2) bool

func (f groundFunc) IsGrounded(pos common.Vec2, radius float64, mask component.LayerMask) bool {
	return f(pos)
}

func always(v bool) groundFunc {
	return func(common.Vec2) bool { return v }
}

type stubMount struct {
	pos    common.Vec2
	facing int
}

func (m *stubMount) Position() common.Vec2 { return m.pos }
func (m *stubMount) Facing() int           { return m.facing }
