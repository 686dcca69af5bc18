package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

// uploadMeshes converts every part into a GPU mesh with the part color
// baked into the vertex colors. Parts are drawn flat and unlit, so no
// normals are generated.
func (app *App) uploadMeshes() {
	app.meshes = make([]rl.Mesh, len(app.Scene.Parts))
	for i, part := range app.Scene.Parts {
		if part.Model.TriangleCount() == 0 {
			continue
		}
		app.meshes[i] = partToMesh(part)
	}
}

// unloadMeshes releases the GPU meshes
func (app *App) unloadMeshes() {
	for i, part := range app.Scene.Parts {
		if part.Model.TriangleCount() == 0 {
			continue
		}
		rl.UnloadMesh(&app.meshes[i])
	}
}

// partToMesh builds and uploads one raylib mesh for a part
func partToMesh(part scene.Part) rl.Mesh {
	triangleCount := part.Model.TriangleCount()
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)
	col := partColor(part.Color)

	idx := 0
	for _, triangle := range part.Model.Triangles {
		for _, v := range triangle.Vertices() {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			colors[idx*4+0] = col.R
			colors[idx*4+1] = col.G
			colors[idx*4+2] = col.B
			colors[idx*4+3] = 255
			idx++
		}
	}

	mesh.Vertices = &vertices[0]
	mesh.Colors = &colors[0]

	rl.UploadMesh(&mesh, false)
	return mesh
}

// partColor converts a display color to raylib's byte color
func partColor(c scene.Color) rl.Color {
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), 255)
}
