package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/entities"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buttonWidth  = 200
	buttonHeight = 60
)

// EndedScene is the win screen: a looping celebration animation, the
// final score and a continue button.
type EndedScene struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	sceneManager  *game.SceneManager
	config        *config.GameplayConfig
	resources     *Resources
	animation     *components.AnimationSequence
	buttonID      ecs.EntityID
}

// NewEndedScene builds the win screen. The animation loops from the
// moment the scene is entered.
func NewEndedScene(sm *game.SceneManager, session *game.GameSession, cfg *config.GameplayConfig, res *Resources) *EndedScene {
	em := ecs.NewEntityManager()
	buttonID := entities.NewButtonEntity(em, "Continue",
		(cfg.FieldWidth-buttonWidth)/2, cfg.FieldHeight-200,
		buttonWidth, buttonHeight)

	return &EndedScene{
		entityManager: em,
		session:       session,
		sceneManager:  sm,
		config:        cfg,
		resources:     res,
		animation:     components.NewAnimationSequence(res.EndFrames, session.Now()),
		buttonID:      buttonID,
	}
}

// Update waits for the continue button or a confirm key.
func (s *EndedScene) Update(deltaTime float64) {
	s.session.Tick(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.proceed()
		return
	}

	if pressed, x, y := utils.IsPointerJustPressed(); pressed && s.buttonHit(float64(x), float64(y)) {
		s.proceed()
	}
}

func (s *EndedScene) buttonHit(x, y float64) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonID)
	if !ok {
		return false
	}
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.buttonID)
	if !ok || !clickable.IsEnabled {
		return false
	}
	return utils.Rect{X: pos.X, Y: pos.Y, W: clickable.Width, H: clickable.Height}.Contains(x, y)
}

func (s *EndedScene) proceed() {
	s.session.AdvanceTo(game.PhaseFinal)
	s.sceneManager.SwitchTo(NewFinalScene(s.session, s.config, s.resources))
}

// Draw renders the win screen.
func (s *EndedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	cx := s.config.FieldWidth / 2
	cy := s.config.FieldHeight / 2

	if frame := s.animation.CurrentFrame(s.session.Now()); frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64(frame.Bounds().Dx())/2, cy-150-float64(frame.Bounds().Dy())/2)
		screen.DrawImage(frame, op)
	}

	utils.DrawTextCentered(screen, s.resources.Font, "Game Over! You Win!", cx, cy, color.Black)
	utils.DrawTextCentered(screen, s.resources.Font,
		fmt.Sprintf("Final Score: %d", s.session.Score()), cx, cy+40, color.Black)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonID); ok {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.buttonID)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.buttonID)

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
			float32(clickable.Width), float32(clickable.Height),
			color.RGBA{R: 70, G: 130, B: 180, A: 255}, false)
		utils.DrawTextCentered(screen, s.resources.Font, button.Label,
			pos.X+clickable.Width/2, pos.Y+clickable.Height/2, color.White)
	}
}
