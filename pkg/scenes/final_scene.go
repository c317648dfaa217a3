package scenes

import (
	"image/color"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// FinalScene is the farewell screen. It loops its own animation and
// waits for any input to end the program.
type FinalScene struct {
	session   *game.GameSession
	config    *config.GameplayConfig
	resources *Resources
	animation *components.AnimationSequence
}

// NewFinalScene builds the farewell screen.
func NewFinalScene(session *game.GameSession, cfg *config.GameplayConfig, res *Resources) *FinalScene {
	return &FinalScene{
		session:   session,
		config:    cfg,
		resources: res,
		animation: components.NewAnimationSequence(res.FinalFrames, session.Now()),
	}
}

// Update waits for any key or pointer press, then asks the app to quit.
func (s *FinalScene) Update(deltaTime float64) {
	s.session.Tick(deltaTime)

	if utils.IsAnyKeyJustPressed() {
		s.session.RequestQuit()
		return
	}
	if pressed, _, _ := utils.IsPointerJustPressed(); pressed {
		s.session.RequestQuit()
	}
}

// Draw renders the farewell screen.
func (s *FinalScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	cx := s.config.FieldWidth / 2
	cy := s.config.FieldHeight / 2

	if frame := s.animation.CurrentFrame(s.session.Now()); frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64(frame.Bounds().Dx())/2, cy-150-float64(frame.Bounds().Dy())/2)
		screen.DrawImage(frame, op)
	}

	utils.DrawTextCentered(screen, s.resources.Font, "Thanks for playing!", cx, cy, color.Black)
	utils.DrawTextCentered(screen, s.resources.Font, "Press any key to exit", cx, cy+40, color.Black)
}
