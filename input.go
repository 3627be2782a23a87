package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mechplatformer/component"
)

const stickDeadzone = 0.3

// Input samples keyboard, mouse and the first gamepad into one frame.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the devices for the current tick.
func (i *Input) Poll() component.InputFrame {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpJumpJustPressed, gpJumpHeld, gpFireJustPressed, gpDashJustPressed, gpPauseJustPressed bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			moveX = -1
		} else if leftX > stickDeadzone {
			moveX = 1
		}

		gpJumpJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpJumpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpFireJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		gpDashJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		gpPauseJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	fire := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyJ)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	return component.InputFrame{
		Horizontal:   moveX,
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJumpJustPressed,
		JumpHeld:     ebiten.IsKeyPressed(ebiten.KeySpace) || gpJumpHeld,
		FirePressed:  fire || gpFireJustPressed,
		DashPressed:  inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || gpDashJustPressed,
		PausePressed: pause || gpPauseJustPressed,
	}
}
