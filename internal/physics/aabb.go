package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewSquare creates a box of half-width radius around center on every axis.
func NewSquare(center rl.Vector3, radius float32) AABB {
	r := rl.Vector3{X: radius, Y: radius, Z: radius}
	return AABB{
		Min: rl.Vector3Subtract(center, r),
		Max: rl.Vector3Add(center, r),
	}
}

// Canonical swaps Min and Max per axis so that Min <= Max everywhere.
func (a AABB) Canonical() AABB {
	if a.Min.X > a.Max.X {
		a.Min.X, a.Max.X = a.Max.X, a.Min.X
	}
	if a.Min.Y > a.Max.Y {
		a.Min.Y, a.Max.Y = a.Max.Y, a.Min.Y
	}
	if a.Min.Z > a.Max.Z {
		a.Min.Z, a.Max.Z = a.Max.Z, a.Min.Z
	}
	return a
}

// Transform maps the two corners through m and canonicalizes the result.
// Only the Min and Max corners are transformed, so the result is exact for
// scales, translations and axis-swapping rotations, not for arbitrary ones.
func (a AABB) Transform(m rl.Matrix) AABB {
	return AABB{
		Min: rl.Vector3Transform(a.Min, m),
		Max: rl.Vector3Transform(a.Max, m),
	}.Canonical()
}

// SlabOverlap is the maze's through-slab test on the XY plane. It reports a
// hit when a strictly contains b along X while their Y ranges overlap, or a
// strictly contains b along Y while their X ranges overlap. Boxes where b is
// at least as wide as a on both axes never hit, even when they overlap.
func (a AABB) SlabOverlap(b AABB) bool {
	overlapX := !(a.Min.X > b.Max.X || a.Max.X < b.Min.X)
	overlapY := !(a.Min.Y > b.Max.Y || a.Max.Y < b.Min.Y)

	containsX := a.Min.X < b.Min.X && b.Max.X < a.Max.X
	containsY := a.Min.Y < b.Min.Y && b.Max.Y < a.Max.Y

	return (containsX && overlapY) || (containsY && overlapX)
}

// InsideSquare reports whether p lies strictly inside the square of
// half-extent h centered at the origin on the XY plane.
func InsideSquare(p rl.Vector3, h float32) bool {
	return -h < p.X && p.X < h && -h < p.Y && p.Y < h
}
