package game

import "testing"

func TestNewGameSessionStartsPlaying(t *testing.T) {
	s := NewGameSession()

	if s.Phase() != PhasePlaying {
		t.Errorf("Expected initial phase Playing, got %v", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("Expected initial score 0, got %d", s.Score())
	}
}

func TestPhaseNeverRegresses(t *testing.T) {
	s := NewGameSession()

	if !s.AdvanceTo(PhaseEnded) {
		t.Fatal("Expected Playing -> Ended to succeed")
	}
	if s.AdvanceTo(PhasePlaying) {
		t.Error("Expected Ended -> Playing to be rejected")
	}
	if s.Phase() != PhaseEnded {
		t.Errorf("Expected phase to stay Ended, got %v", s.Phase())
	}

	if !s.AdvanceTo(PhaseFinal) {
		t.Fatal("Expected Ended -> Final to succeed")
	}
	for _, p := range []Phase{PhasePlaying, PhaseEnded, PhaseFinal} {
		if s.AdvanceTo(p) {
			t.Errorf("Expected Final -> %v to be rejected", p)
		}
	}
}

func TestPhaseSkipToFinal(t *testing.T) {
	// Forward jumps are forward transitions too; nothing requires passing
	// through Ended (not used by the game, but the invariant is one-way).
	s := NewGameSession()
	if !s.AdvanceTo(PhaseFinal) {
		t.Error("Expected a forward jump to succeed")
	}
}

func TestAddScoreOnlyWhilePlaying(t *testing.T) {
	s := NewGameSession()

	s.AddScore(3)
	s.AddScore(0)
	s.AddScore(-5)
	if s.Score() != 3 {
		t.Errorf("Expected score 3, got %d", s.Score())
	}

	s.AdvanceTo(PhaseEnded)
	s.AddScore(10)
	if s.Score() != 3 {
		t.Errorf("Expected score frozen at 3 after Playing, got %d", s.Score())
	}
}

func TestClockTick(t *testing.T) {
	s := NewGameSession()

	s.Tick(0.5)
	s.Tick(0.25)
	if s.Now() != 0.75 {
		t.Errorf("Expected clock at 0.75, got %v", s.Now())
	}
}

func TestTogglePause(t *testing.T) {
	s := NewGameSession()

	if s.IsPaused() {
		t.Error("Expected session to start unpaused")
	}
	s.TogglePause()
	if !s.IsPaused() {
		t.Error("Expected session to be paused after toggle")
	}
	s.TogglePause()
	if s.IsPaused() {
		t.Error("Expected session to be unpaused after second toggle")
	}
}

func TestRequestQuit(t *testing.T) {
	s := NewGameSession()

	if s.QuitRequested() {
		t.Error("Expected no quit request initially")
	}
	s.RequestQuit()
	if !s.QuitRequested() {
		t.Error("Expected quit to be requested")
	}
}
