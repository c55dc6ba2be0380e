package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("object not found")
	ErrAmbiguous = errors.New("object not unique")
)

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and all of its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range append([]*GameObject(nil), g.Children...) {
		s.RemoveGameObject(child)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByRole(role Role) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.Role == role {
			result = append(result, g)
		}
	}
	return result
}

// FindOne returns the single object carrying role.
func (s *Scene) FindOne(role Role) (*GameObject, error) {
	found := s.FindByRole(role)
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%s: %w", role, ErrNotFound)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%s: %d objects: %w", role, len(found), ErrAmbiguous)
}

// FindComponents returns every component of type T in scene order.
func FindComponents[T Component](s *Scene) []T {
	var result []T
	for _, g := range s.GameObjects {
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				result = append(result, typed)
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
