package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// InputSystem samples the move vector once per tick and writes it to every
// Input component.
type InputSystem struct {
	read func() mgl64.Vec2
}

func NewInputSystem() *InputSystem {
	return &InputSystem{read: readMoveVector}
}

// NewInputSystemWith uses read instead of the keyboard and gamepad.
func NewInputSystemWith(read func() mgl64.Vec2) *InputSystem {
	return &InputSystem{read: read}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.read == nil {
		return
	}

	move := i.read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = move.X()
		input.MoveY = move.Y()
	})
}

func readMoveVector() mgl64.Vec2 {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	moveX, moveY := 0.0, 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}
	if up {
		moveY += 1
	}
	if down {
		moveY -= 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// stick Y grows downwards on screen
			moveX, moveY = lx, -ly
		}

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			moveX = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			moveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			moveY = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			moveY = -1
		}
	}

	return mgl64.Vec2{moveX, moveY}
}
