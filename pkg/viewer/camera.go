package viewer

import (
	"math"

	"github.com/philipparndt/stlfolder/pkg/geometry"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

const (
	// NearPlane is the closest renderable depth
	NearPlane = 0.1

	fovY = 45.0 * math.Pi / 180.0
)

// Camera projects world-space points for the software renderer. The
// transform chain matches the GPU viewer: translate the scene center to
// the origin, rotate about Y then X by the accumulated angles, and view
// from (0, 0, distance) looking at the origin with a 45 degree vertical
// field of view.
type Camera struct {
	State  *scene.CameraState
	Center geometry.Vector3
}

// Project maps a world-space point to screen coordinates and view depth.
// Points with depth below NearPlane are behind or too close to the eye
// and must not be drawn. A zero height never divides by zero: the aspect
// ratio floors height to 1.
func (c Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64) {
	rotX := c.State.RotX * math.Pi / 180.0
	rotY := c.State.RotY * math.Pi / 180.0
	sinX, cosX := math.Sincos(rotX)
	sinY, cosY := math.Sincos(rotY)

	q := point.Sub(c.Center)

	// Rotate about Y, then X (the modelview order of the GPU viewer)
	qx := q.X*cosY + q.Z*sinY
	qz := -q.X*sinY + q.Z*cosY
	qy := q.Y*cosX - qz*sinX
	qz = q.Y*sinX + qz*cosX

	depth = c.State.Distance - qz

	if height < 1 {
		height = 1
	}
	aspect := width / height
	fovScale := math.Tan(fovY / 2)

	x = (qx/(depth*fovScale*aspect))*(width/2) + width/2
	y = (-qy/(depth*fovScale))*(height/2) + height/2
	return x, y, depth
}
