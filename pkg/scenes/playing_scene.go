package scenes

import (
	"image/color"
	"math/rand"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/entities"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/systems"
	"github.com/gonewx/catcher/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MissedText is shown where an item falls out of the field.
const MissedText = "you hate me :("

// PlayingScene is the active round: the catcher, the falling items and
// the score chase up to the winning capture count.
type PlayingScene struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	sceneManager  *game.SceneManager
	config        *config.GameplayConfig
	resources     *Resources

	playerSystem       *systems.PlayerSystem
	spawnSystem        *systems.SpawnSystem
	fallSystem         *systems.FallSystem
	collisionSystem    *systems.CollisionSystem
	floatingTextSystem *systems.FloatingTextSystem
	renderSystem       *systems.RenderSystem
}

// NewPlayingScene sets up the playfield with the catcher in its starting
// position and an empty sky.
func NewPlayingScene(sm *game.SceneManager, session *game.GameSession, cfg *config.GameplayConfig, res *Resources, rng *rand.Rand) *PlayingScene {
	em := ecs.NewEntityManager()
	entities.NewPlayerEntity(em, cfg, res.PlayerImage, res.PlayerReactingImage)

	return &PlayingScene{
		entityManager: em,
		session:       session,
		sceneManager:  sm,
		config:        cfg,
		resources:     res,

		playerSystem:       systems.NewPlayerSystem(em, cfg),
		spawnSystem:        systems.NewSpawnSystem(em, cfg, res.ItemImage, rng),
		fallSystem:         systems.NewFallSystem(em, cfg),
		collisionSystem:    systems.NewCollisionSystem(em, cfg),
		floatingTextSystem: systems.NewFloatingTextSystem(em),
		renderSystem:       systems.NewRenderSystem(em, res.Font),
	}
}

// Update advances the round by one frame.
func (s *PlayingScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.session.TogglePause()
	}
	if s.session.IsPaused() {
		return
	}

	s.session.Tick(deltaTime)

	s.playerSystem.Update(s.session, deltaTime)
	s.spawnSystem.Update(s.session, deltaTime)

	for _, ev := range s.fallSystem.Update(deltaTime) {
		y := ev.Y
		if maxY := s.config.FieldHeight - 50; y > maxY {
			y = maxY
		}
		entities.NewFloatingTextEntity(s.entityManager, s.config, MissedText, ev.X, y, s.session.Now())
	}

	s.session.AddScore(s.collisionSystem.Update(s.session))

	if s.session.Score() >= s.config.WinScore && s.session.Phase() == game.PhasePlaying {
		s.endRound()
		return
	}

	s.floatingTextSystem.Update(s.session)
	s.entityManager.RemoveMarkedEntities()
}

// endRound clears the remaining transients and hands over to the win
// screen.
func (s *PlayingScene) endRound() {
	for _, id := range ecs.GetEntitiesWith1[*components.FallingComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	s.session.AdvanceTo(game.PhaseEnded)
	s.sceneManager.SwitchTo(NewEndedScene(s.sceneManager, s.session, s.config, s.resources))
}

// Draw renders the playfield.
func (s *PlayingScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.session)

	if s.session.IsPaused() {
		utils.DrawTextCentered(screen, s.resources.Font, "Paused",
			s.config.FieldWidth/2, s.config.FieldHeight/2, color.Black)
	}
}

// EntityManager exposes the scene's entity store for tests.
func (s *PlayingScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
