package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/brawler/entity"
)

const stickDeadzone = 0.2

// Input samples the keyboard and the first gamepad once per frame and maps
// them onto player commands.
type Input struct {
	commands entity.Commands

	pausePressed bool
	anyPressed   bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update() {
	var cmd entity.Commands

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	if left {
		cmd.MoveX -= 1
	}
	if right {
		cmd.MoveX += 1
	}

	cmd.Run = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	cmd.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	cmd.Dash = inpututil.IsKeyJustPressed(ebiten.KeyK)
	cmd.Attack = inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cmd.UltimateHeld = ebiten.IsKeyPressed(ebiten.KeyL)
	cmd.UltimateReleased = inpututil.IsKeyJustReleased(ebiten.KeyL)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]

		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			cmd.MoveX = leftX
		}

		cmd.Run = cmd.Run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		cmd.Jump = cmd.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		cmd.Dash = cmd.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		cmd.Attack = cmd.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		cmd.UltimateHeld = cmd.UltimateHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
		cmd.UltimateReleased = cmd.UltimateReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightTop)
	}

	in.commands = cmd
	in.pausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.anyPressed = cmd.MoveX != 0 || cmd.Jump || cmd.Dash || cmd.Attack ||
		cmd.UltimateHeld || cmd.Run || len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// Commands returns the frame's mapped player commands.
func (in *Input) Commands() entity.Commands { return in.commands }

// PausePressed reports the pause toggle edge.
func (in *Input) PausePressed() bool { return in.pausePressed }

// AnyPressed reports whether the user touched anything this frame; it wakes
// the game out of attract mode.
func (in *Input) AnyPressed() bool { return in.anyPressed }
