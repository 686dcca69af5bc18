package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

var backgroundColor = rl.NewColor(31, 31, 31, 255)

// Projection clip planes. The far plane matches the camera's maximum
// zoom-out distance so geometry stays visible across the whole zoom
// range; raylib's defaults (0.01/1000) would far-clip any scene larger
// than a few hundred units.
const (
	nearClipPlane = 0.1
	farClipPlane  = 100000.0
)

// Run loads every STL file in folder and opens the viewer window.
// Loading and bounds computation complete before the first frame.
func Run(folder string) error {
	s, err := scene.Load(folder, nil)
	if err != nil {
		return fmt.Errorf("failed to load folder: %w", err)
	}

	screenWidth := int32(900)
	screenHeight := int32(700)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "STL Folder Viewer")
	rl.SetTargetFPS(60)
	rl.SetClipPlanes(nearClipPlane, farClipPlane)

	app := &App{
		Scene:  s,
		Camera: scene.NewCameraState(s.Bounds),
		View: ViewSettings{
			showAxes: true,
		},
	}

	// Geometry is uploaded to the GPU once; per frame only the transform
	// changes.
	app.material = rl.LoadMaterialDefault()
	app.uploadMeshes()

	for !rl.WindowShouldClose() {
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.BeginMode3D(app.frameCamera())
		app.drawScene()
		rl.EndMode3D()

		app.drawHUD()

		rl.EndDrawing()
	}

	app.unloadMeshes()
	rl.CloseWindow()
	return nil
}

// frameCamera builds the look-at camera for the current frame: eye at
// (0, 0, distance) looking at the origin, up +Y, 45 degree fov. The
// accumulated rotations are applied to the geometry, not the eye.
func (app *App) frameCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: float32(app.Camera.Distance)},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
