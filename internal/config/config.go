// Package config loads game tuning and window settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  Window  `yaml:"window"`
	Scene   Scene   `yaml:"scene"`
	Ball    Ball    `yaml:"ball"`
	Camera  Camera  `yaml:"camera"`
	Maze    Maze    `yaml:"maze"`
	Goal    Goal    `yaml:"goal"`
	Overlay Overlay `yaml:"overlay"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Scene struct {
	Path string `yaml:"path"`
}

type Ball struct {
	Speed  float32 `yaml:"speed"`  // units per second
	Radius float32 `yaml:"radius"` // half-width of the collision square
}

type Camera struct {
	Speed float32 `yaml:"speed"` // units per second
}

type Maze struct {
	Boundary float32 `yaml:"boundary"` // half-extent of the playable square
}

type Goal struct {
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Tolerance float32 `yaml:"tolerance"`
}

type Overlay struct {
	Text         string `yaml:"text"`
	WinText      string `yaml:"win_text"`
	FontSize     int32  `yaml:"font_size"`
	ShadowOffset int32  `yaml:"shadow_offset"` // pixels between outline and fill pass
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Maze",
			TargetFPS: 60,
		},
		Scene:  Scene{Path: "assets/maze.json"},
		Ball:   Ball{Speed: 15, Radius: 0.15},
		Camera: Camera{Speed: 30},
		Maze:   Maze{Boundary: 1.75},
		Goal:   Goal{X: -1.58, Y: 1.26, Tolerance: 0.1},
		Overlay: Overlay{
			Text:         "WASD moves the camera; arrows move the snowman",
			WinText:      "You found the present!",
			FontSize:     20,
			ShadowOffset: 2,
		},
	}
}

// Load reads path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera.speed must be positive, got %v", c.Camera.Speed))
	}
	if c.Maze.Boundary <= 0 {
		errs = append(errs, fmt.Errorf("maze.boundary must be positive, got %v", c.Maze.Boundary))
	}
	if c.Goal.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("goal.tolerance must be positive, got %v", c.Goal.Tolerance))
	}
	if c.Scene.Path == "" {
		errs = append(errs, errors.New("scene.path must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
