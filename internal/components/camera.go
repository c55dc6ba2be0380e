package components

import (
	"maze3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera looks down its owner's local -Z axis with +Y up.
type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Aspect     float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Aspect:     1.0,
		Projection: rl.CameraPerspective,
	}
}

// SetAspect updates the aspect ratio from a drawable size in pixels.
func (c *Camera) SetAspect(width, height int32) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	toWorld := g.LocalToWorld()
	eyePos := engine.Column(toWorld, 3)
	forward := rl.Vector3Normalize(rl.Vector3Negate(engine.Column(toWorld, 2)))
	up := rl.Vector3Normalize(engine.Column(toWorld, 1))

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// ProjectionMatrix builds the projection for the current aspect ratio.
func (c *Camera) ProjectionMatrix() rl.Matrix {
	if c.Projection == rl.CameraOrthographic {
		halfH := c.FOV / 2.0
		halfW := halfH * c.Aspect
		return rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return rl.MatrixPerspective(c.FOV*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}
