package assets

import (
	"errors"
	"fmt"
	"sort"

	"maze3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownMesh = errors.New("unknown mesh")

// Mesh is a named piece of geometry with a static local-space bounding box.
// The raylib model is created by Upload, after a GL context exists; the
// bounds are known as soon as the mesh is registered.
type Mesh struct {
	Name      string
	Primitive string     // "cube", "sphere", "plane" or "" for a model file
	Size      rl.Vector3 // primitive dimensions
	File      string
	Bounds    physics.AABB
	Model     rl.Model

	explicitBounds bool
	uploaded       bool
}

func (m *Mesh) Uploaded() bool {
	return m.uploaded
}

// Library holds every mesh referenced by a scene, shared by all objects.
type Library struct {
	meshes map[string]*Mesh
}

func NewLibrary() *Library {
	return &Library{meshes: make(map[string]*Mesh)}
}

// AddPrimitive registers a generated mesh. Bounds are derived from size
// unless bounds is non-nil.
func (l *Library) AddPrimitive(name, primitive string, size rl.Vector3, bounds *physics.AABB) (*Mesh, error) {
	m := &Mesh{Name: name, Primitive: primitive, Size: size}
	switch primitive {
	case "cube":
		m.Bounds = physics.NewAABBFromCenter(rl.Vector3Zero(), size)
	case "sphere":
		m.Bounds = physics.NewSquare(rl.Vector3Zero(), size.X)
	case "plane":
		m.Bounds = physics.NewAABBFromCenter(rl.Vector3Zero(), rl.Vector3{X: size.X, Z: size.Z})
	default:
		return nil, fmt.Errorf("mesh %q: unsupported primitive %q", name, primitive)
	}
	if bounds != nil {
		m.Bounds = bounds.Canonical()
		m.explicitBounds = true
	}
	return m, l.add(m)
}

// AddModel registers a model file. Without explicit bounds the box is read
// from the model during Upload.
func (l *Library) AddModel(name, file string, bounds *physics.AABB) (*Mesh, error) {
	m := &Mesh{Name: name, File: file}
	if bounds != nil {
		m.Bounds = bounds.Canonical()
		m.explicitBounds = true
	}
	return m, l.add(m)
}

func (l *Library) add(m *Mesh) error {
	if _, exists := l.meshes[m.Name]; exists {
		return fmt.Errorf("mesh %q already registered", m.Name)
	}
	l.meshes[m.Name] = m
	return nil
}

func (l *Library) Lookup(name string) (*Mesh, error) {
	m, ok := l.meshes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMesh)
	}
	return m, nil
}

// Bounds returns the local bounding box of the named mesh.
func (l *Library) Bounds(name string) (physics.AABB, error) {
	m, err := l.Lookup(name)
	if err != nil {
		return physics.AABB{}, err
	}
	return m.Bounds, nil
}

// Names returns registered mesh names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.meshes))
	for name := range l.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Upload creates raylib models for every mesh. Requires an open window.
func (l *Library) Upload() {
	for _, m := range l.meshes {
		if m.uploaded {
			continue
		}
		switch m.Primitive {
		case "cube":
			m.Model = rl.LoadModelFromMesh(rl.GenMeshCube(m.Size.X, m.Size.Y, m.Size.Z))
		case "sphere":
			m.Model = rl.LoadModelFromMesh(rl.GenMeshSphere(m.Size.X, 16, 16))
		case "plane":
			m.Model = rl.LoadModelFromMesh(rl.GenMeshPlane(m.Size.X, m.Size.Z, 1, 1))
		default:
			m.Model = rl.LoadModel(m.File)
			if !m.explicitBounds {
				box := rl.GetModelBoundingBox(m.Model)
				m.Bounds = physics.AABB{Min: box.Min, Max: box.Max}
			}
		}
		m.uploaded = true
	}
}

func (l *Library) Unload() {
	for _, m := range l.meshes {
		if !m.uploaded {
			continue
		}
		rl.UnloadModel(m.Model)
		m.uploaded = false
	}
}

// Color name mapping for mesh renderers
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}
