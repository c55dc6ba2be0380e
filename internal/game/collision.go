package game

import (
	"maze3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider answers whether the ball may occupy a world position.
type Collider struct {
	Boundary float32 // half-extent of the playable square around the origin
	Radius   float32 // half-width of the ball's collision square
	Walls    []Wall
}

// Collides reports whether a ball centered at candidate would leave the
// playable square or cut through a wall. Walls are tested with
// physics.AABB.SlabOverlap, so a wall wider than the ball on both axes is
// not detected.
func (c *Collider) Collides(candidate rl.Vector3) bool {
	if !physics.InsideSquare(candidate, c.Boundary) {
		return true
	}

	ball := physics.NewSquare(candidate, c.Radius)
	for _, w := range c.Walls {
		if ball.SlabOverlap(w.WorldBounds()) {
			return true
		}
	}
	return false
}
