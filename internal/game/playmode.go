package game

import (
	"errors"
	"fmt"

	"maze3d/internal/components"
	"maze3d/internal/config"
	"maze3d/internal/engine"
	"maze3d/internal/world"

	"github.com/rs/zerolog"
)

var ErrCameraCount = errors.New("wrong number of cameras")

// Size is a window or framebuffer size in pixels.
type Size struct {
	Width  int32
	Height int32
}

// Mode is what the host loop drives every frame.
type Mode interface {
	HandleEvent(ev KeyEvent, windowSize Size) bool
	Update(elapsed float32)
	Draw(drawableSize, screenSize Size)
}

// PlayMode owns the ball, the camera mount and the win state for one scene.
type PlayMode struct {
	Input    *Input
	Renderer *world.Renderer
	OnWin    engine.Event

	scene    *engine.Scene
	ball     *engine.GameObject
	goal     *engine.GameObject
	mount    *engine.GameObject
	camera   *components.Camera
	collider *Collider
	goalArea Goal
	overlay  config.Overlay

	ballSpeed   float32
	cameraSpeed float32
	won         bool

	logger zerolog.Logger
}

var _ Mode = (*PlayMode)(nil)

// New binds a play mode to scene. The scene must hold exactly one camera, one
// ball and one goal, and every wall must use a mesh known to meshes.
func New(scene *engine.Scene, meshes BoundsSource, cfg config.Config, logger zerolog.Logger) (*PlayMode, error) {
	cams := engine.FindComponents[*components.Camera](scene)
	if len(cams) != 1 {
		return nil, fmt.Errorf("expecting scene to have exactly one camera, but it has %d: %w", len(cams), ErrCameraCount)
	}

	ball, err := scene.FindOne(engine.RoleBall)
	if err != nil {
		return nil, fmt.Errorf("find ball: %w", err)
	}
	goal, err := scene.FindOne(engine.RoleGoal)
	if err != nil {
		return nil, fmt.Errorf("find goal: %w", err)
	}

	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		return nil, err
	}

	p := &PlayMode{
		Input:    NewInput(nil),
		Renderer: world.NewRenderer(),
		scene:    scene,
		ball:     ball,
		goal:     goal,
		mount:    cams[0].GetGameObject(),
		camera:   cams[0],
		collider: &Collider{
			Boundary: cfg.Maze.Boundary,
			Radius:   cfg.Ball.Radius,
			Walls:    walls,
		},
		goalArea:    NewGoal(cfg.Goal),
		overlay:     cfg.Overlay,
		ballSpeed:   cfg.Ball.Speed,
		cameraSpeed: cfg.Camera.Speed,
		logger:      logger.With().Str("component", "playmode").Logger(),
	}

	p.logger.Debug().
		Int("objects", len(scene.GameObjects)).
		Int("walls", len(walls)).
		Str("camera", p.mount.Name).
		Msg("play mode ready")
	return p, nil
}

// HandleEvent feeds a key transition to the input tracker and reports
// whether it was consumed.
func (p *PlayMode) HandleEvent(ev KeyEvent, windowSize Size) bool {
	return p.Input.HandleKey(ev)
}

// Update advances one frame. After a win it does nothing.
func (p *PlayMode) Update(elapsed float32) {
	if p.won {
		return
	}

	p.moveBall(elapsed)
	p.checkWin()
	p.moveCamera(elapsed)

	p.Input.EndFrame()
}

func (p *PlayMode) Won() bool {
	return p.won
}

func (p *PlayMode) Ball() *engine.GameObject {
	return p.ball
}

func (p *PlayMode) GoalObject() *engine.GameObject {
	return p.goal
}

func (p *PlayMode) Camera() *components.Camera {
	return p.camera
}
