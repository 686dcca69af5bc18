package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// wheelNotch converts raylib's wheel movement (one notch is 1.0) to the
// 120-per-notch units the camera contract expects
const wheelNotch = 120.0

// handleInput maps raylib input events onto the camera state contract
// and the view toggles
func (app *App) handleInput() {
	pos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Camera.PointerPress(int(pos.X), int(pos.Y))
	}
	app.Camera.PointerMove(int(pos.X), int(pos.Y), rl.IsMouseButtonDown(rl.MouseLeftButton))

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.Zoom(float64(wheel) * wheelNotch)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.Camera.Reset()
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.View.showAxes = !app.View.showAxes
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.View.showBounds = !app.View.showBounds
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
}
