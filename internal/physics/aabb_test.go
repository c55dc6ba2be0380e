package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func box(minX, minY, maxX, maxY float32) AABB {
	return AABB{
		Min: rl.Vector3{X: minX, Y: minY, Z: -1},
		Max: rl.Vector3{X: maxX, Y: maxY, Z: 1},
	}
}

func TestNewAABBFromCenter(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})
	if a.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) || a.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Unexpected box %+v", a)
	}
}

func TestNewSquare(t *testing.T) {
	a := NewSquare(rl.Vector3{X: 1, Y: 1}, 0.5)
	if a.Min.X != 0.5 || a.Max.X != 1.5 || a.Min.Y != 0.5 || a.Max.Y != 1.5 {
		t.Errorf("Unexpected square %+v", a)
	}
}

func TestCanonicalSwapsInvertedAxes(t *testing.T) {
	a := AABB{
		Min: rl.Vector3{X: 1, Y: -1, Z: 5},
		Max: rl.Vector3{X: -1, Y: 1, Z: 2},
	}.Canonical()

	if a.Min != (rl.Vector3{X: -1, Y: -1, Z: 2}) || a.Max != (rl.Vector3{X: 1, Y: 1, Z: 5}) {
		t.Errorf("Unexpected canonical box %+v", a)
	}
}

func TestTransformWithMirrorCanonicalizes(t *testing.T) {
	local := AABB{Min: rl.Vector3{X: 0, Y: 0, Z: 0}, Max: rl.Vector3{X: 1, Y: 2, Z: 1}}
	m := rl.MatrixMultiply(rl.MatrixScale(-1, 1, 1), rl.MatrixTranslate(3, 0, 0))

	got := local.Transform(m)

	if got.Min.X != 2 || got.Max.X != 3 {
		t.Errorf("Expected X range [2,3], got [%v,%v]", got.Min.X, got.Max.X)
	}
	if got.Min.Y != 0 || got.Max.Y != 2 {
		t.Errorf("Expected Y range [0,2], got [%v,%v]", got.Min.Y, got.Max.Y)
	}
}

func TestSlabOverlapThinWallAlongY(t *testing.T) {
	ball := box(-0.15, -0.15, 0.15, 0.15)
	// thin in X, long in Y
	wall := box(-0.05, -1, 0.05, 1)

	if !ball.SlabOverlap(wall) {
		t.Error("Ball spanning a thin wall in X with Y overlap should hit")
	}
}

func TestSlabOverlapThinWallAlongX(t *testing.T) {
	ball := box(-0.15, -0.15, 0.15, 0.15)
	// thin in Y, long in X
	wall := box(-1, 0.1, 1, 0.12)

	if !ball.SlabOverlap(wall) {
		t.Error("Ball spanning a thin wall in Y with X overlap should hit")
	}
}

func TestSlabOverlapTouchingCountsAsOverlap(t *testing.T) {
	ball := box(-0.15, -0.15, 0.15, 0.15)
	wall := box(-0.05, 0.15, 0.05, 1)

	if !ball.SlabOverlap(wall) {
		t.Error("Touching Y ranges should count as overlap")
	}
}

func TestSlabOverlapMisses(t *testing.T) {
	ball := box(-0.15, -0.15, 0.15, 0.15)

	cases := map[string]AABB{
		"thin wall, no Y overlap":   box(-0.05, 0.5, 0.05, 1),
		"thin wall, no X overlap":   box(0.5, -0.05, 1, 0.05),
		"block wider on both axes":  box(-1, -1, 1, 1),
		"wall flush with ball edge": box(-0.15, -1, 0.05, 1),
	}
	for name, wall := range cases {
		if ball.SlabOverlap(wall) {
			t.Errorf("%s: expected no hit", name)
		}
	}
}

func TestInsideSquare(t *testing.T) {
	cases := []struct {
		p    rl.Vector3
		want bool
	}{
		{rl.Vector3{}, true},
		{rl.Vector3{X: 1.7, Y: -1.7}, true},
		{rl.Vector3{X: 1.75}, false},
		{rl.Vector3{Y: -1.75}, false},
		{rl.Vector3{X: 2}, false},
		{rl.Vector3{X: 0, Y: -3}, false},
		{rl.Vector3{Z: 100}, true},
	}
	for _, c := range cases {
		if got := InsideSquare(c.p, 1.75); got != c.want {
			t.Errorf("InsideSquare(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}
