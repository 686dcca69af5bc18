package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

// App holds the viewer state for one session. The scene is immutable
// after loading; only the camera and view settings change at runtime.
type App struct {
	Scene  *scene.Scene
	Camera scene.CameraState
	View   ViewSettings

	meshes   []rl.Mesh // one GPU mesh per part, uploaded once at load
	material rl.Material
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showAxes      bool
	showBounds    bool
	showWireframe bool
}
