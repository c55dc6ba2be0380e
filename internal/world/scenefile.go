package world

import (
	"encoding/json"
	"fmt"
	"os"

	"maze3d/internal/assets"
	"maze3d/internal/components"
	"maze3d/internal/engine"
	"maze3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Meshes  []MeshDef   `json:"meshes"`
	Objects []ObjectDef `json:"objects"`
}

type MeshDef struct {
	Name      string      `json:"name"`
	Primitive string      `json:"primitive,omitempty"`
	Size      [3]float32  `json:"size,omitempty"`
	Model     string      `json:"model,omitempty"`
	Min       *[3]float32 `json:"min,omitempty"`
	Max       *[3]float32 `json:"max,omitempty"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Parent     string            `json:"parent,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      *[3]float32       `json:"scale,omitempty"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string `json:"type"`
	Mesh  string `json:"mesh"`
	Color string `json:"color"`
}

type cameraDef struct {
	Type         string  `json:"type"`
	FOV          float32 `json:"fov,omitempty"`
	Near         float32 `json:"near,omitempty"`
	Far          float32 `json:"far,omitempty"`
	Orthographic bool    `json:"orthographic,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.ParseScene(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ParseScene populates the world's scene and mesh library from JSON. No GPU
// work happens here; call World.Upload once a window is open.
func (w *World) ParseScene(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, def := range sf.Meshes {
		if err := w.loadMesh(def); err != nil {
			return err
		}
	}

	type pendingParent struct {
		child  *engine.GameObject
		parent string
	}
	var parents []pendingParent
	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)
		if objDef.Scale != nil {
			g.Transform.Scale = vec3(*objDef.Scale)
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				return fmt.Errorf("object %q: %w", objDef.Name, err)
			}

			var err error
			switch header.Type {
			case "MeshRenderer":
				err = w.loadMeshRenderer(g, raw)
			case "Camera":
				err = loadCamera(g, raw)
			default:
				err = fmt.Errorf("unknown component type %q", header.Type)
			}
			if err != nil {
				return fmt.Errorf("object %q: %w", objDef.Name, err)
			}
		}

		if objDef.Parent != "" {
			parents = append(parents, pendingParent{child: g, parent: objDef.Parent})
		}
		w.Scene.AddGameObject(g)
	}

	// Parents may be declared after their children.
	for _, p := range parents {
		parent := w.Scene.FindByName(p.parent)
		if parent == nil {
			return fmt.Errorf("object %q: parent %q: %w", p.child.Name, p.parent, engine.ErrNotFound)
		}
		for a := parent; a != nil; a = a.Parent {
			if a == p.child {
				return fmt.Errorf("object %q: parent %q forms a cycle", p.child.Name, p.parent)
			}
		}
		parent.AddChild(p.child)
	}

	return nil
}

func (w *World) loadMesh(def MeshDef) error {
	var bounds *physics.AABB
	if def.Min != nil && def.Max != nil {
		bounds = &physics.AABB{Min: vec3(*def.Min), Max: vec3(*def.Max)}
	}

	var err error
	if def.Model != "" {
		_, err = w.Meshes.AddModel(def.Name, def.Model, bounds)
	} else {
		_, err = w.Meshes.AddPrimitive(def.Name, def.Primitive, vec3(def.Size), bounds)
	}
	return err
}

func (w *World) loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) error {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	name := def.Mesh
	if name == "" {
		name = g.Name
	}
	mesh, err := w.Meshes.Lookup(name)
	if err != nil {
		return err
	}
	g.Mesh = mesh.Name
	g.AddComponent(components.NewMeshRenderer(mesh, assets.LookupColor(def.Color)))
	return nil
}

func loadCamera(g *engine.GameObject, raw json.RawMessage) error {
	var def cameraDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	cam := components.NewCamera()
	if def.FOV > 0 {
		cam.FOV = def.FOV
	}
	if def.Near > 0 {
		cam.Near = def.Near
	}
	if def.Far > 0 {
		cam.Far = def.Far
	}
	if def.Orthographic {
		cam.Projection = rl.CameraOrthographic
	}
	g.AddComponent(cam)
	return nil
}
