package world

import (
	"maze3d/internal/assets"
	"maze3d/internal/engine"
)

// World owns the loaded scene, its mesh library and the renderer.
type World struct {
	Scene    *engine.Scene
	Meshes   *assets.Library
	Renderer *Renderer
}

func New() *World {
	return &World{
		Scene:    engine.NewScene("Main"),
		Meshes:   assets.NewLibrary(),
		Renderer: NewRenderer(),
	}
}

// Upload creates GPU resources for every mesh. Requires an open window.
func (w *World) Upload() {
	w.Meshes.Upload()
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Unload() {
	w.Meshes.Unload()
}
