package scene

import (
	"math"

	"github.com/philipparndt/stlfolder/pkg/geometry"
)

const (
	// fallbackSize stands in for the scene size when there is no usable
	// geometry or the geometry is degenerate (near-zero extent)
	fallbackSize     = 100.0
	fallbackDistance = 500.0
	degenerateExtent = 1e-6

	distanceFactor  = 2.5
	minimumDistance = 200.0
)

// Bounds describes the combined extent of all parts and the camera
// distance derived from it
type Bounds struct {
	Min      geometry.Vector3
	Max      geometry.Vector3
	Center   geometry.Vector3
	Size     float64 // Euclidean length of the box diagonal
	Distance float64 // initial camera distance
}

// Box returns the extent as a geometry.BoundingBox
func (b Bounds) Box() geometry.BoundingBox {
	return geometry.BoundingBox{Min: b.Min, Max: b.Max}
}

// ComputeBounds reduces all finite vertices of all parts to a combined
// bounding box. A vertex with any NaN or infinite component is excluded
// entirely; the mesh itself still renders, it just does not influence
// framing. With no finite vertices at all the fallback bounds are
// returned (origin center, size 100, distance 500).
func ComputeBounds(parts []Part) Bounds {
	bbox := geometry.NewBoundingBox()
	for _, part := range parts {
		for _, triangle := range part.Model.Triangles {
			for _, vertex := range triangle.Vertices() {
				if vertex.IsFinite() {
					bbox.Extend(vertex)
				}
			}
		}
	}

	if bbox.IsEmpty() {
		return Bounds{
			Size:     fallbackSize,
			Distance: fallbackDistance,
		}
	}

	size := bbox.Diagonal()
	if size < degenerateExtent {
		size = fallbackSize
	}

	return Bounds{
		Min:      bbox.Min,
		Max:      bbox.Max,
		Center:   bbox.Center(),
		Size:     size,
		Distance: math.Max(size*distanceFactor, minimumDistance),
	}
}
