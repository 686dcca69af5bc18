package stl

import (
	"github.com/philipparndt/stlfolder/pkg/geometry"
)

// Model is the triangle soup of one STL file. Name carries whatever the
// file declares about itself (the solid name for ASCII, the header text
// for binary); parts in a loaded folder are identified by file name, so
// Parse falls back to that when the file declares nothing.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends one triangle
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox computes the extent of all vertices
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		for _, vertex := range triangle.Vertices() {
			bbox.Extend(vertex)
		}
	}
	return bbox
}

// SurfaceArea sums the area of all triangles
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, triangle := range m.Triangles {
		total += triangle.Area()
	}
	return total
}
