package scene

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/stlfolder/pkg/stl"
)

// Load reads every .stl file in folder into a Scene and computes its
// bounds. A file that fails to parse is logged and skipped; an empty or
// all-failing folder yields a valid empty scene with fallback bounds.
//
// rng is the source for part colors; pass a seeded source for
// reproducible colors, or nil for time-seeded ones. Entries are processed
// in the name-sorted order returned by os.ReadDir, so mesh order and
// bounds are deterministic for an unchanged folder.
func Load(folder string, rng *rand.Rand) (*Scene, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Scene{Folder: folder, Parts: make([]Part, 0)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".stl") {
			continue
		}

		fmt.Printf("Loading: %s\n", name)
		model, err := stl.Parse(filepath.Join(folder, name))
		if err != nil {
			fmt.Printf("Failed to load %s -> %v\n", name, err)
			continue
		}

		s.Parts = append(s.Parts, Part{
			Name:  name,
			Model: model,
			Color: randomColor(rng),
		})
	}

	s.Bounds = ComputeBounds(s.Parts)
	c := s.Bounds.Center
	fmt.Printf("Scene center: (%.3f, %.3f, %.3f)\n", c.X, c.Y, c.Z)
	fmt.Printf("Scene size: %.3f distance: %.3f\n", s.Bounds.Size, s.Bounds.Distance)

	return s, nil
}
