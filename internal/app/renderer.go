package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlfolder/pkg/geometry"
)

const axisLength = 200.0

// drawScene draws one frame inside 3D mode. The matrix stack carries the
// shared transform: rotate about X, then Y, then move the scene center
// to the origin, so everything (gizmo, bounds, parts) orbits together.
func (app *App) drawScene() {
	rl.PushMatrix()
	rl.Rotatef(float32(app.Camera.RotX), 1, 0, 0)
	rl.Rotatef(float32(app.Camera.RotY), 0, 1, 0)

	center := app.Scene.Bounds.Center
	rl.Translatef(float32(-center.X), float32(-center.Y), float32(-center.Z))

	if app.View.showAxes {
		drawAxes()
	}
	if app.View.showBounds {
		drawBoundsBox(app.Scene.Bounds.Box())
	}

	for i, part := range app.Scene.Parts {
		if part.Model.TriangleCount() == 0 {
			continue
		}
		if app.View.showWireframe {
			drawWireframe(part.Model.Triangles, partColor(part.Color))
		} else {
			// DrawMesh picks up the matrix stack transform
			rl.DrawMesh(app.meshes[i], app.material, rl.MatrixIdentity())
		}
	}

	rl.PopMatrix()
}

// drawAxes draws the fixed-length coordinate gizmo at the model origin:
// red +X, green +Y, blue +Z
func drawAxes() {
	rl.SetLineWidth(2.0)
	origin := rl.Vector3{}
	rl.DrawLine3D(origin, rl.Vector3{X: axisLength}, rl.NewColor(255, 0, 0, 255))
	rl.DrawLine3D(origin, rl.Vector3{Y: axisLength}, rl.NewColor(0, 255, 0, 255))
	rl.DrawLine3D(origin, rl.Vector3{Z: axisLength}, rl.NewColor(0, 153, 255, 255))
	rl.SetLineWidth(1.0)
}

// drawBoundsBox draws the combined bounding box as 12 white edges
func drawBoundsBox(box geometry.BoundingBox) {
	corners := box.Corners()
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom rectangle
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top rectangle
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical edges
	}

	for _, edge := range edges {
		rl.DrawLine3D(toVector3(corners[edge[0]]), toVector3(corners[edge[1]]), rl.White)
	}
}

// drawWireframe draws the triangle edges of one part
func drawWireframe(triangles []geometry.Triangle, col rl.Color) {
	for _, triangle := range triangles {
		v1 := toVector3(triangle.V1)
		v2 := toVector3(triangle.V2)
		v3 := toVector3(triangle.V3)
		rl.DrawLine3D(v1, v2, col)
		rl.DrawLine3D(v2, v3, col)
		rl.DrawLine3D(v3, v1, col)
	}
}

func toVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
