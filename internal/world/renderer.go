package world

import (
	"maze3d/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Background rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.NewColor(128, 128, 128, 255),
	}
}

// Draw clears the frame and renders every visible drawable through cam.
// Must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(cam *components.Camera, drawables []*components.MeshRenderer) {
	rl.ClearBackground(r.Background)

	camera := cam.GetRaylibCamera()
	proj := cam.ProjectionMatrix()

	rl.BeginMode3D(camera)
	// BeginMode3D derives the aspect from the screen; use the camera's own.
	rl.SetMatrixProjection(proj)

	frustum := ExtractFrustum(camera, proj)
	for _, d := range drawables {
		if d.Hidden() || !frustum.ContainsAABB(d.WorldBounds()) {
			continue
		}
		d.Draw()
	}

	rl.EndMode3D()
}
