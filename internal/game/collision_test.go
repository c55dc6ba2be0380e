package game

import (
	"errors"
	"testing"

	"maze3d/internal/assets"
	"maze3d/internal/config"
	"maze3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestBoundary(t *testing.T) {
	c := &Collider{Boundary: 1.75, Radius: 0.15}

	cases := []struct {
		pos  rl.Vector3
		want bool
	}{
		{rl.Vector3{}, false},
		{rl.Vector3{X: 1.74}, false},
		{rl.Vector3{X: -1.74, Y: 1.74}, false},
		{rl.Vector3{X: 1.75}, true},
		{rl.Vector3{X: -1.75}, true},
		{rl.Vector3{Y: 1.76}, true},
		{rl.Vector3{Y: -2}, true},
		{rl.Vector3{Z: 50}, false},
	}
	for _, c2 := range cases {
		if got := c.Collides(c2.pos); got != c2.want {
			t.Errorf("Collides(%+v): expected %v, got %v", c2.pos, c2.want, got)
		}
	}
}

func TestNoWallsOnlyBoundary(t *testing.T) {
	scene, meshes := testMaze(t)
	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	if len(walls) != 0 {
		t.Fatalf("Expected no walls, got %d", len(walls))
	}

	c := &Collider{Boundary: 1.75, Radius: 0.15, Walls: walls}
	for x := float32(-1.7); x < 1.7; x += 0.1 {
		if c.Collides(rl.Vector3{X: x, Y: -x}) {
			t.Fatalf("Unexpected collision at %v", x)
		}
	}
}

func TestThinWallHit(t *testing.T) {
	scene, meshes := testMaze(t)
	addWall(scene, "Wall.001", "Wall.Thin", rl.Vector3{X: 0.5}, 0)
	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	c := &Collider{Boundary: 1.75, Radius: 0.15, Walls: walls}

	if !c.Collides(rl.Vector3{X: 0.5}) {
		t.Error("Expected ball centered on the wall to collide")
	}
	if !c.Collides(rl.Vector3{X: 0.5, Y: 1.1}) {
		t.Error("Expected ball touching the wall end to collide")
	}
	if c.Collides(rl.Vector3{X: 0.8}) {
		t.Error("Expected ball clear of the wall not to collide")
	}
	if c.Collides(rl.Vector3{X: 0.5, Y: 1.3}) {
		t.Error("Expected ball past the wall end not to collide")
	}
}

func TestRotatedWallHit(t *testing.T) {
	scene, meshes := testMaze(t)
	addWall(scene, "Wall.001", "Wall.Thin", rl.Vector3{Y: 1}, 90)
	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}

	box := walls[0].WorldBounds()
	if !near(box.Min.X, -1) || !near(box.Max.X, 1) || !near(box.Min.Y, 0.95) || !near(box.Max.Y, 1.05) {
		t.Errorf("Expected rotated wall bounds x[-1,1] y[0.95,1.05], got %+v", box)
	}

	c := &Collider{Boundary: 1.75, Radius: 0.15, Walls: walls}
	if !c.Collides(rl.Vector3{Y: 1}) {
		t.Error("Expected ball on the rotated wall to collide")
	}
	if c.Collides(rl.Vector3{Y: 0.5}) {
		t.Error("Expected ball below the rotated wall not to collide")
	}
}

func TestWallBoundsFollowTransform(t *testing.T) {
	scene, meshes := testMaze(t)
	wall := addWall(scene, "Wall.001", "Wall.Thin", rl.Vector3{X: 0.5}, 0)
	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	c := &Collider{Boundary: 1.75, Radius: 0.15, Walls: walls}

	wall.Transform.Position.X = -0.5
	if c.Collides(rl.Vector3{X: 0.5}) {
		t.Error("Expected moved wall to leave its old spot")
	}
	if !c.Collides(rl.Vector3{X: -0.5}) {
		t.Error("Expected collision at the wall's new spot")
	}
}

func TestWideWallNotDetected(t *testing.T) {
	scene, meshes := testMaze(t)
	addWall(scene, "Wall.001", "Wall.Block", rl.Vector3{X: 0.5}, 0)
	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	c := &Collider{Boundary: 1.75, Radius: 0.15, Walls: walls}

	// The slab rule only sees walls thinner than the ball on some axis.
	if c.Collides(rl.Vector3{X: 0.5}) {
		t.Error("Expected block wider than the ball to go undetected")
	}
}

func TestIndexWalls(t *testing.T) {
	scene, meshes := testMaze(t)
	if _, err := meshes.AddPrimitive("Wall.Named", "cube", rl.Vector3{X: 1, Y: 1, Z: 1}, nil); err != nil {
		t.Fatalf("AddPrimitive failed: %v", err)
	}
	addWall(scene, "Wall.Named", "", rl.Vector3{}, 0)
	addWall(scene, "Wall.002", "Wall.Thin", rl.Vector3{}, 0)
	addWall(scene, "Floor", "Wall.Block", rl.Vector3{}, 0)

	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	if len(walls) != 2 {
		t.Fatalf("Expected 2 walls, got %d", len(walls))
	}
	if walls[0].Local.Max.X != 0.5 {
		t.Errorf("Expected wall without mesh to use its own name, got %+v", walls[0].Local)
	}

	addWall(scene, "Wall.003", "Missing", rl.Vector3{}, 0)
	if _, err := IndexWalls(scene, meshes); !errors.Is(err, assets.ErrUnknownMesh) {
		t.Errorf("Expected ErrUnknownMesh, got %v", err)
	}
}

func TestGoalReached(t *testing.T) {
	g := NewGoal(config.Default().Goal)

	if !g.Reached(rl.Vector3{X: -1.58, Y: 1.26}) {
		t.Error("Expected target itself to be reached")
	}
	if !g.Reached(rl.Vector3{X: -1.5, Y: 1.2, Z: 9}) {
		t.Error("Expected point within tolerance to be reached")
	}
	if g.Reached(rl.Vector3{X: -1.58, Y: 1.4}) {
		t.Error("Expected point off in Y not to be reached")
	}
	if g.Reached(rl.Vector3{}) {
		t.Error("Expected origin not to be reached")
	}
}

func TestRolesNotNames(t *testing.T) {
	scene, meshes := testMaze(t)
	w := addWall(scene, "Wall.001", "Wall.Thin", rl.Vector3{X: 0.5}, 0)
	w.Role = engine.RoleNone

	walls, err := IndexWalls(scene, meshes)
	if err != nil {
		t.Fatalf("IndexWalls failed: %v", err)
	}
	if len(walls) != 0 {
		t.Errorf("Expected walls selected by role, got %d", len(walls))
	}
}
