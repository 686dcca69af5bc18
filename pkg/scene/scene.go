package scene

import (
	"math/rand"

	"github.com/philipparndt/stlfolder/pkg/stl"
)

// Color is a flat RGB display color with channels in [0, 1]
type Color struct {
	R, G, B float64
}

// Part pairs a loaded mesh with its display color. Keeping the pair in one
// struct means mesh and color can never drift out of sync.
type Part struct {
	Name  string
	Model *stl.Model
	Color Color
}

// Scene holds everything loaded from a folder, immutable after Load
type Scene struct {
	Folder string
	Parts  []Part
	Bounds Bounds
}

// TriangleCount returns the total triangle count across all parts
func (s *Scene) TriangleCount() int {
	total := 0
	for _, part := range s.Parts {
		total += part.Model.TriangleCount()
	}
	return total
}

// randomColor picks a random-ish but bright color for a part.
// Each channel is uniform in [0.3, 0.9).
func randomColor(rng *rand.Rand) Color {
	return Color{
		R: 0.3 + rng.Float64()*0.6,
		G: 0.3 + rng.Float64()*0.6,
		B: 0.3 + rng.Float64()*0.6,
	}
}
