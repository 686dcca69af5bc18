package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHUD draws the 2D overlay with scene stats and control hints
func (app *App) drawHUD() {
	y := int32(10)
	lineHeight := int32(20)

	rl.DrawText(fmt.Sprintf("Folder: %s", app.Scene.Folder), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Parts: %d", len(app.Scene.Parts)), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Triangles: %d", app.Scene.TriangleCount()), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText("Controls:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText("  Left Drag: Rotate view", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Mouse Wheel: Zoom", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Home: Reset view", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  A: Toggle axes", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  B: Toggle bounding box", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  W: Toggle wireframe", 10, y, 14, rl.LightGray)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
