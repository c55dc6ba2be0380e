package game

import (
	"fmt"

	"maze3d/internal/engine"
	"maze3d/internal/physics"
)

// BoundsSource resolves a mesh name to its local bounding box.
type BoundsSource interface {
	Bounds(name string) (physics.AABB, error)
}

// Wall pairs a wall object with its mesh's local box. The box is fixed; the
// object's transform may change between frames.
type Wall struct {
	Object *engine.GameObject
	Local  physics.AABB
}

// WorldBounds places the local box in world space using the current transform.
func (w Wall) WorldBounds() physics.AABB {
	return w.Local.Transform(w.Object.LocalToWorld())
}

// IndexWalls resolves every wall in scene once. A wall without a mesh uses
// its own name as the mesh name.
func IndexWalls(scene *engine.Scene, meshes BoundsSource) ([]Wall, error) {
	objs := scene.FindByRole(engine.RoleWall)
	walls := make([]Wall, 0, len(objs))
	for _, obj := range objs {
		name := obj.Mesh
		if name == "" {
			name = obj.Name
		}
		local, err := meshes.Bounds(name)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", obj.Name, err)
		}
		walls = append(walls, Wall{Object: obj, Local: local})
	}
	return walls, nil
}
