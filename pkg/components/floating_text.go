package components

import "math"

// FloatingTextComponent is a short-lived text effect that fades out and
// drifts upward from its anchor. Opacity and position are derived from the
// query time on every call; nothing is cached.
type FloatingTextComponent struct {
	Text    string
	AnchorX float64 // text center at creation
	AnchorY float64
	Overlay TimedOverlay
	Rise    float64 // total upward travel over the full duration, in pixels
}

// Alpha returns the opacity in [0, 255]. It is exactly 0 at and after the
// overlay expires, and never increases over time.
func (f *FloatingTextComponent) Alpha(now float64) int {
	if f.Overlay.Expired(now) {
		return 0
	}
	a := int(math.Round(255 * (1 - f.Overlay.Progress(now))))
	if a < 0 {
		return 0
	}
	return a
}

// CenterY returns the drifted vertical center, clamped to the full travel
// once the overlay has expired.
func (f *FloatingTextComponent) CenterY(now float64) float64 {
	return f.AnchorY - math.Floor(f.Overlay.Progress(now)*f.Rise)
}

// Dead reports whether the effect has fully faded.
func (f *FloatingTextComponent) Dead(now float64) bool {
	return f.Alpha(now) <= 0
}
