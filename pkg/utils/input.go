package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MoveInput is the per-frame sample of the held movement keys.
type MoveInput struct {
	Left  bool
	Right bool
}

// SampleMoveInput reads the currently-held directional keys.
// Arrow keys and A/D are equivalent.
func SampleMoveInput() MoveInput {
	return MoveInput{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// IsPointerJustPressed reports whether a pointer (mouse left button or
// touch) was pressed this frame, and where. Touch is checked first so the
// same code path serves both desktop and touch devices.
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsAnyKeyJustPressed reports whether any keyboard key was pressed this
// frame.
func IsAnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
