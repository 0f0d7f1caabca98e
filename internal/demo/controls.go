package demo

import (
	"freelook/internal/camera"
	"freelook/internal/input"
)

var movementBindings = [...]struct {
	action input.Action
	move   camera.Movement
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
}

// heldMovements appends the movements whose actions are held to dst.
func heldMovements(im *input.Manager, dst []camera.Movement) []camera.Movement {
	for _, b := range movementBindings {
		if im.IsActive(b.action) {
			dst = append(dst, b.move)
		}
	}
	return dst
}

// stepCamera applies every held movement once per fixed update tick.
// Opposite keys held together cancel out.
func stepCamera(fl *camera.FreeLook, moves []camera.Movement, ticks int) {
	for range ticks {
		for _, m := range moves {
			fl.Move(m)
		}
	}
}
