package game

import (
	"maze3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// planarStep scales a unit input direction onto two basis vectors.
func planarStep(dir rl.Vector2, right, forward rl.Vector3, distance float32) rl.Vector3 {
	return rl.Vector3Add(
		rl.Vector3Scale(right, dir.X*distance),
		rl.Vector3Scale(forward, dir.Y*distance),
	)
}

// moveBall advances the ball along its own right and forward axes. The move
// is all or nothing: a colliding candidate leaves the ball where it was.
func (p *PlayMode) moveBall(elapsed float32) {
	dir := p.Input.Ball.Axis()
	if dir.X == 0 && dir.Y == 0 {
		return
	}

	frame := p.ball.LocalToParent()
	delta := planarStep(dir, engine.Column(frame, 0), engine.Column(frame, 1), p.ballSpeed*elapsed)
	candidate := rl.Vector3Add(p.ball.Transform.Position, delta)

	if p.collider.Collides(rl.Vector3Transform(candidate, p.ball.ParentToWorld())) {
		return
	}
	p.ball.Transform.Position = candidate
}

// moveCamera flies the camera mount. The camera looks down its local -Z.
func (p *PlayMode) moveCamera(elapsed float32) {
	dir := p.Input.Camera.Axis()
	if dir.X == 0 && dir.Y == 0 {
		return
	}

	frame := p.mount.LocalToParent()
	forward := rl.Vector3Negate(engine.Column(frame, 2))
	delta := planarStep(dir, engine.Column(frame, 0), forward, p.cameraSpeed*elapsed)
	p.mount.Transform.Position = rl.Vector3Add(p.mount.Transform.Position, delta)
}
