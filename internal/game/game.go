package game

import (
	"fmt"

	"maze3d/internal/config"
	"maze3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Game is the window host: it owns the raylib window and drives a PlayMode.
type Game struct {
	Config config.Config
	World  *world.World
	Mode   *PlayMode

	logger zerolog.Logger
}

func NewGame(cfg config.Config, logger zerolog.Logger) *Game {
	return &Game{
		Config: cfg,
		World:  world.New(),
		logger: logger,
	}
}

// Load reads the scene and binds the play mode. It needs no window, so the
// scene can be validated before one is opened.
func (g *Game) Load() error {
	if err := g.World.LoadScene(g.Config.Scene.Path); err != nil {
		return err
	}

	mode, err := New(g.World.Scene, g.World.Meshes, g.Config, g.logger)
	if err != nil {
		return fmt.Errorf("%s: %w", g.Config.Scene.Path, err)
	}
	mode.Renderer = g.World.Renderer
	mode.OnWin.AddListener(func() {
		g.logger.Info().Str("scene", g.Config.Scene.Path).Msg("maze solved")
	})
	g.Mode = mode

	g.logger.Info().
		Str("scene", g.Config.Scene.Path).
		Int("objects", len(g.World.Scene.GameObjects)).
		Strs("meshes", g.World.Meshes.Names()).
		Msg("scene loaded")
	return nil
}

// Run loads the scene, opens the window and blocks until it is closed.
func (g *Game) Run() error {
	if err := g.Load(); err != nil {
		return err
	}

	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)

	// Models need a GL context.
	g.World.Upload()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.pollInput()
		dt := rl.GetFrameTime()
		g.Mode.Update(dt)
		g.World.Update(dt)

		rl.BeginDrawing()
		g.Mode.Draw(
			Size{Width: int32(rl.GetRenderWidth()), Height: int32(rl.GetRenderHeight())},
			Size{Width: int32(rl.GetScreenWidth()), Height: int32(rl.GetScreenHeight())},
		)
		rl.EndDrawing()
	}

	g.logger.Info().Bool("won", g.Mode.Won()).Msg("window closed")
	return nil
}

// pollInput turns raylib key edges into events for the play mode.
func (g *Game) pollInput() {
	window := Size{Width: int32(rl.GetScreenWidth()), Height: int32(rl.GetScreenHeight())}
	for _, key := range g.Mode.Input.Keys() {
		if rl.IsKeyPressed(key) {
			g.Mode.HandleEvent(KeyEvent{Key: key, Down: true}, window)
		}
		if rl.IsKeyReleased(key) {
			g.Mode.HandleEvent(KeyEvent{Key: key, Down: false}, window)
		}
	}
}
