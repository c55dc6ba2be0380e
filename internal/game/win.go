package game

import (
	"maze3d/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Goal is the square region on the XY plane the ball has to reach.
type Goal struct {
	Target    rl.Vector2
	Tolerance float32
}

func NewGoal(cfg config.Goal) Goal {
	return Goal{
		Target:    rl.Vector2{X: cfg.X, Y: cfg.Y},
		Tolerance: cfg.Tolerance,
	}
}

// Reached reports whether pos is strictly within Tolerance of Target on
// both X and Y. Z is ignored.
func (g Goal) Reached(pos rl.Vector3) bool {
	dx := pos.X - g.Target.X
	dy := pos.Y - g.Target.Y
	return abs(dx) < g.Tolerance && abs(dy) < g.Tolerance
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// checkWin latches the win state. The goal object stays in the scene with a
// zero scale so it is no longer drawn.
func (p *PlayMode) checkWin() {
	pos := p.ball.WorldPosition()
	if !p.goalArea.Reached(pos) {
		return
	}

	p.won = true
	p.goal.Transform.Scale = rl.Vector3{}
	p.logger.Info().
		Float32("x", pos.X).
		Float32("y", pos.Y).
		Msg("goal reached")
	p.OnWin.Invoke()
}
