package world

import (
	"maze3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from a camera and projection matrix
// using the Gribb/Hartmann method.
func ExtractFrustum(camera rl.Camera3D, proj rl.Matrix) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	vp := rl.MatrixMultiply(view, proj)

	rows := [4]rl.Vector4{
		{X: vp.M0, Y: vp.M4, Z: vp.M8, W: vp.M12},
		{X: vp.M1, Y: vp.M5, Z: vp.M9, W: vp.M13},
		{X: vp.M2, Y: vp.M6, Z: vp.M10, W: vp.M14},
		{X: vp.M3, Y: vp.M7, Z: vp.M11, W: vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[2*i] = planeFrom(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

func planeFrom(w, r rl.Vector4, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w.X + sign*r.X,
			Y: w.Y + sign*r.Y,
			Z: w.Z + sign*r.Z,
		},
		distance: w.W + sign*r.W,
	})
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsAABB reports whether any part of box may be inside the frustum.
// It tests the box corner furthest along each plane normal, so it can keep a
// few boxes that are actually outside near frustum corners.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
