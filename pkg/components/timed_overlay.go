package components

// TimedOverlay is the shared expiry pattern behind short-lived visual
// states: a start timestamp plus a fixed duration, with all presentation
// derived from the query time. Both the catcher's reacting pose and the
// floating missed-text fade are built on it.
type TimedOverlay struct {
	Start    float64 // game time (seconds) of the most recent trigger
	Duration float64 // window length in seconds
}

// NewTimedOverlay returns an overlay that is already expired at time zero.
// Call Restart to arm it.
func NewTimedOverlay(duration float64) TimedOverlay {
	return TimedOverlay{Start: -duration, Duration: duration}
}

// Restart re-arms the overlay from now. Re-triggering extends the window
// from the most recent call; windows never stack.
func (o *TimedOverlay) Restart(now float64) {
	o.Start = now
}

// Progress returns the elapsed fraction of the window in [0, 1].
// A non-positive duration counts as fully elapsed.
func (o TimedOverlay) Progress(now float64) float64 {
	if o.Duration <= 0 {
		return 1
	}
	p := (now - o.Start) / o.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Expired reports whether the window has fully elapsed at now.
func (o TimedOverlay) Expired(now float64) bool {
	return now-o.Start >= o.Duration
}
