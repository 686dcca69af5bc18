package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/stlfolder/pkg/geometry"
	"github.com/philipparndt/stlfolder/pkg/stl"
)

func modelFromTriangles(triangles ...geometry.Triangle) *stl.Model {
	model := stl.NewModel("test")
	for _, tri := range triangles {
		model.AddTriangle(tri)
	}
	return model
}

func tri(v1, v2, v3 geometry.Vector3) geometry.Triangle {
	return geometry.NewTriangle(geometry.Vector3{}, v1, v2, v3)
}

func TestComputeBoundsEmpty(t *testing.T) {
	bounds := ComputeBounds(nil)

	if bounds.Center != geometry.NewVector3(0, 0, 0) {
		t.Errorf("Center failed: expected origin, got %v", bounds.Center)
	}
	if bounds.Size != 100.0 {
		t.Errorf("Size failed: expected 100, got %v", bounds.Size)
	}
	if bounds.Distance != 500.0 {
		t.Errorf("Distance failed: expected 500, got %v", bounds.Distance)
	}
}

func TestComputeBounds(t *testing.T) {
	parts := []Part{{
		Name: "box.stl",
		Model: modelFromTriangles(
			tri(
				geometry.NewVector3(0, 0, 0),
				geometry.NewVector3(30, 0, 0),
				geometry.NewVector3(0, 40, 0),
			),
		),
	}}

	bounds := ComputeBounds(parts)

	if bounds.Min != geometry.NewVector3(0, 0, 0) {
		t.Errorf("Min failed: got %v", bounds.Min)
	}
	if bounds.Max != geometry.NewVector3(30, 40, 0) {
		t.Errorf("Max failed: got %v", bounds.Max)
	}
	if bounds.Center != geometry.NewVector3(15, 20, 0) {
		t.Errorf("Center failed: got %v", bounds.Center)
	}
	if math.Abs(bounds.Size-50.0) > 1e-10 {
		t.Errorf("Size failed: expected 50, got %v", bounds.Size)
	}
	// max(50 * 2.5, 200) = 200
	if bounds.Distance != 200.0 {
		t.Errorf("Distance failed: expected 200, got %v", bounds.Distance)
	}
}

func TestComputeBoundsDistanceScales(t *testing.T) {
	parts := []Part{{
		Model: modelFromTriangles(
			tri(
				geometry.NewVector3(0, 0, 0),
				geometry.NewVector3(300, 0, 0),
				geometry.NewVector3(0, 400, 0),
			),
		),
	}}

	bounds := ComputeBounds(parts)

	if math.Abs(bounds.Size-500.0) > 1e-10 {
		t.Errorf("Size failed: expected 500, got %v", bounds.Size)
	}
	if math.Abs(bounds.Distance-1250.0) > 1e-10 {
		t.Errorf("Distance failed: expected 1250, got %v", bounds.Distance)
	}
}

func TestComputeBoundsSkipsNonFiniteVertices(t *testing.T) {
	// One bad vertex excludes only itself; the two good vertices of the
	// same triangle still count.
	parts := []Part{{
		Model: modelFromTriangles(
			tri(
				geometry.NewVector3(math.NaN(), 0, 0),
				geometry.NewVector3(1, 1, 1),
				geometry.NewVector3(2, 2, 2),
			),
		),
	}}

	bounds := ComputeBounds(parts)

	if bounds.Min != geometry.NewVector3(1, 1, 1) {
		t.Errorf("Min failed: got %v", bounds.Min)
	}
	if bounds.Max != geometry.NewVector3(2, 2, 2) {
		t.Errorf("Max failed: got %v", bounds.Max)
	}
}

func TestComputeBoundsAllNonFinite(t *testing.T) {
	inf := math.Inf(1)
	parts := []Part{{
		Model: modelFromTriangles(
			tri(
				geometry.NewVector3(inf, 0, 0),
				geometry.NewVector3(0, math.NaN(), 0),
				geometry.NewVector3(0, 0, -inf),
			),
		),
	}}

	bounds := ComputeBounds(parts)

	if bounds.Size != 100.0 || bounds.Distance != 500.0 {
		t.Errorf("fallback failed: got size %v distance %v", bounds.Size, bounds.Distance)
	}
}

func TestComputeBoundsDegenerateGeometry(t *testing.T) {
	// All vertices coincide: size floors to 100 instead of collapsing
	// the camera distance.
	p := geometry.NewVector3(5, 5, 5)
	parts := []Part{{Model: modelFromTriangles(tri(p, p, p))}}

	bounds := ComputeBounds(parts)

	if bounds.Size != 100.0 {
		t.Errorf("Size failed: expected floor of 100, got %v", bounds.Size)
	}
	if bounds.Center != p {
		t.Errorf("Center failed: expected %v, got %v", p, bounds.Center)
	}
	if bounds.Distance != 250.0 {
		t.Errorf("Distance failed: expected 250, got %v", bounds.Distance)
	}
}
