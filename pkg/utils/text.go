package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText draws a single line with its top-left corner at (x, y).
// A nil face falls back to the ebitenutil debug font so text is never
// silently lost when a font asset is missing.
func DrawText(screen *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextCentered draws a single line centered on (cx, cy).
func DrawTextCentered(screen *ebiten.Image, face *text.GoTextFace, str string, cx, cy float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(cx)-len(str)*3, int(cy))
		return
	}

	w, h := text.Measure(str, face, 0)
	DrawText(screen, face, str, cx-w/2, cy-h/2, clr)
}

// DrawTextCenteredAlpha draws a centered line with the given opacity
// (0..255). Zero alpha draws nothing.
func DrawTextCenteredAlpha(screen *ebiten.Image, face *text.GoTextFace, str string, cx, cy float64, clr color.RGBA, alpha int) {
	if alpha <= 0 {
		return
	}
	if alpha > 255 {
		alpha = 255
	}
	// NRGBA so the alpha is applied without premultiplication surprises.
	faded := color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(alpha)}
	DrawTextCentered(screen, face, str, cx, cy, faded)
}
