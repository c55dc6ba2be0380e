package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	Name       string
	Role       Role
	Mesh       string // mesh library name, empty when nothing is drawn
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Role:   RoleForName(name),
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// LocalToParent maps this object's local frame into its parent's frame.
// Order follows the renderer: scale, then rotate X/Y/Z, then translate.
func (g *GameObject) LocalToParent() rl.Matrix {
	t := g.Transform
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)

	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

// LocalToWorld maps this object's local frame into world space.
func (g *GameObject) LocalToWorld() rl.Matrix {
	local := g.LocalToParent()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.LocalToWorld())
}

// ParentToWorld is the identity for root objects.
func (g *GameObject) ParentToWorld() rl.Matrix {
	if g.Parent == nil {
		return rl.MatrixIdentity()
	}
	return g.Parent.LocalToWorld()
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	return Column(g.LocalToWorld(), 3)
}

// Column returns the i-th column of an affine matrix: 0..2 are the images of
// the local X, Y and Z axes, 3 is the translation.
func Column(m rl.Matrix, i int) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}
	case 1:
		return rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}
	case 2:
		return rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}
	default:
		return rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14}
	}
}
