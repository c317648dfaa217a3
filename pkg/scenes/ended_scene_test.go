package scenes

import (
	"testing"

	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/game"
)

func newEndedFixture() (*game.SceneManager, *game.GameSession, *EndedScene) {
	cfg := config.DefaultGameplayConfig()
	sm := game.NewSceneManager()
	session := game.NewGameSession()
	session.AdvanceTo(game.PhaseEnded)

	scene := NewEndedScene(sm, session, cfg, &Resources{})
	sm.SwitchTo(scene)
	return sm, session, scene
}

func TestContinueButtonBounds(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	_, _, scene := newEndedFixture()

	cx := cfg.FieldWidth / 2
	top := cfg.FieldHeight - 200

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center of button", cx, top + buttonHeight/2, true},
		{"top-left corner", cx - buttonWidth/2, top, true},
		{"just left of button", cx - buttonWidth/2 - 1, top + 10, false},
		{"above button", cx, top - 1, false},
		{"far away", 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scene.buttonHit(tt.x, tt.y); got != tt.hit {
				t.Errorf("buttonHit(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.hit)
			}
		})
	}
}

func TestProceedEntersFinalPhase(t *testing.T) {
	sm, session, scene := newEndedFixture()

	scene.proceed()

	if session.Phase() != game.PhaseFinal {
		t.Fatalf("Expected phase Final, got %v", session.Phase())
	}
	if _, ok := sm.CurrentScene().(*FinalScene); !ok {
		t.Fatalf("Expected the farewell screen to be active, got %T", sm.CurrentScene())
	}
}

func TestEndedSceneClockKeepsRunning(t *testing.T) {
	_, session, scene := newEndedFixture()

	before := session.Now()
	scene.Update(testDelta)
	if session.Now() <= before {
		t.Error("Expected the clock to keep advancing on the win screen")
	}
}

func TestScoreFrozenAfterPlaying(t *testing.T) {
	_, session, _ := newEndedFixture()

	session.AddScore(5)
	if session.Score() != 0 {
		t.Errorf("Expected score frozen outside Playing, got %d", session.Score())
	}
}
