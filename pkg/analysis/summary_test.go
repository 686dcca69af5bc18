package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/stlfolder/pkg/geometry"
	"github.com/philipparndt/stlfolder/pkg/scene"
	"github.com/philipparndt/stlfolder/pkg/stl"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()

	m1 := stl.NewModel("a")
	m1.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	))

	m2 := stl.NewModel("b")
	m2.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(0, 10, 0),
	))

	parts := []scene.Part{
		{Name: "a.stl", Model: m1},
		{Name: "b.stl", Model: m2},
	}
	return &scene.Scene{
		Parts:  parts,
		Bounds: scene.ComputeBounds(parts),
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(testScene(t))

	if summary.PartCount != 2 {
		t.Errorf("PartCount failed: expected 2, got %d", summary.PartCount)
	}
	if summary.TriangleCount != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", summary.TriangleCount)
	}
	// 6 + 50
	if math.Abs(summary.SurfaceArea-56.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 56, got %v", summary.SurfaceArea)
	}
	if summary.Dimensions != geometry.NewVector3(10, 10, 0) {
		t.Errorf("Dimensions failed: got %v", summary.Dimensions)
	}
	if summary.Parts[1].TriangleCount != 1 {
		t.Errorf("per-part count failed: got %d", summary.Parts[1].TriangleCount)
	}
}
