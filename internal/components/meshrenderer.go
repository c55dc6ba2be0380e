package components

import (
	"maze3d/internal/assets"
	"maze3d/internal/engine"
	"maze3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws a shared library mesh with its owner's world transform.
type MeshRenderer struct {
	engine.BaseComponent
	Mesh  *assets.Mesh
	Color rl.Color
}

func NewMeshRenderer(mesh *assets.Mesh, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		Mesh:  mesh,
		Color: color,
	}
}

// WorldBounds is the mesh's local box carried into world space.
func (m *MeshRenderer) WorldBounds() physics.AABB {
	return m.Mesh.Bounds.Transform(m.GetGameObject().LocalToWorld())
}

// Hidden reports whether the owner is inactive or collapsed to zero scale.
func (m *MeshRenderer) Hidden() bool {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return true
	}
	s := g.Transform.Scale
	return s.X == 0 && s.Y == 0 && s.Z == 0
}

func (m *MeshRenderer) Draw() {
	if m.Hidden() || m.Mesh == nil || !m.Mesh.Uploaded() {
		return
	}

	model := m.Mesh.Model
	model.Transform = m.GetGameObject().LocalToWorld()
	rl.DrawModel(model, rl.Vector3Zero(), 1.0, m.Color)
}
