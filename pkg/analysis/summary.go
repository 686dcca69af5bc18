package analysis

import (
	"fmt"

	"github.com/philipparndt/stlfolder/pkg/geometry"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

// PartInfo contains per-file statistics for one loaded mesh
type PartInfo struct {
	Name          string
	TriangleCount int
	SurfaceArea   float64
	BoundingBox   geometry.BoundingBox
}

// Summary contains the combined statistics of a loaded folder
type Summary struct {
	PartCount     int
	TriangleCount int
	SurfaceArea   float64
	Bounds        scene.Bounds
	Dimensions    geometry.Vector3
	Parts         []PartInfo
}

// Summarize collects folder-wide and per-part statistics of a scene
func Summarize(s *scene.Scene) *Summary {
	summary := &Summary{
		PartCount: len(s.Parts),
		Bounds:    s.Bounds,
		Parts:     make([]PartInfo, 0, len(s.Parts)),
	}

	for _, part := range s.Parts {
		info := PartInfo{
			Name:          part.Name,
			TriangleCount: part.Model.TriangleCount(),
			SurfaceArea:   part.Model.SurfaceArea(),
			BoundingBox:   part.Model.BoundingBox(),
		}
		summary.TriangleCount += info.TriangleCount
		summary.SurfaceArea += info.SurfaceArea
		summary.Parts = append(summary.Parts, info)
	}

	summary.Dimensions = s.Bounds.Max.Sub(s.Bounds.Min)
	return summary
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
