package components

// FallingComponent marks a falling item. Speed is sampled once at spawn and
// never changes. Missed latches after the item exits the field bottom so
// the missed signal is emitted exactly once.
type FallingComponent struct {
	Speed  float64 // fall speed in pixels per 60 Hz tick
	Missed bool
}
