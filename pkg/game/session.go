package game

import "log"

// Phase is one of the three mutually exclusive session states. Transitions
// only ever move forward: Playing -> Ended -> Final.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnded
	PhaseFinal
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	case PhaseFinal:
		return "Final"
	default:
		return "Unknown"
	}
}

// GameSession is the single owner of all cross-system session state: the
// current phase, the score, the game clock, and the pause/quit flags. It is
// created once per run and passed explicitly into every system update, so
// components can be unit-tested without global state.
type GameSession struct {
	phase         Phase
	score         int
	now           float64
	paused        bool
	quitRequested bool
}

// NewGameSession starts a session in the Playing phase with a zero score.
func NewGameSession() *GameSession {
	return &GameSession{phase: PhasePlaying}
}

// Phase returns the current phase.
func (s *GameSession) Phase() Phase {
	return s.phase
}

// AdvanceTo moves the session to a later phase. Requests that would stay in
// place or regress are ignored; the phase machine never moves backwards.
// Returns whether the transition happened.
func (s *GameSession) AdvanceTo(p Phase) bool {
	if p <= s.phase {
		log.Printf("[Session] Ignoring phase transition %s -> %s", s.phase, p)
		return false
	}
	log.Printf("[Session] Phase %s -> %s (score %d)", s.phase, p, s.score)
	s.phase = p
	return true
}

// Score returns the current score.
func (s *GameSession) Score() int {
	return s.score
}

// AddScore increments the score by n captures. The score only moves while
// the session is Playing, and never decreases.
func (s *GameSession) AddScore(n int) {
	if s.phase != PhasePlaying || n <= 0 {
		return
	}
	s.score += n
}

// Now returns the game clock in seconds. The clock does not advance while
// the session is paused.
func (s *GameSession) Now() float64 {
	return s.now
}

// Tick advances the game clock.
func (s *GameSession) Tick(deltaTime float64) {
	s.now += deltaTime
}

// TogglePause flips the pause flag.
func (s *GameSession) TogglePause() {
	s.paused = !s.paused
	log.Printf("[Session] Paused=%v", s.paused)
}

// IsPaused reports whether the session is paused.
func (s *GameSession) IsPaused() bool {
	return s.paused
}

// RequestQuit asks the app to terminate after the current frame.
func (s *GameSession) RequestQuit() {
	s.quitRequested = true
}

// QuitRequested reports whether termination has been requested.
func (s *GameSession) QuitRequested() bool {
	return s.quitRequested
}
