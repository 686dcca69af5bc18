package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlfolder/pkg/geometry"
	"github.com/philipparndt/stlfolder/pkg/scene"
)

const (
	axisLength = 200.0

	// fyne reports mouse wheel steps in small scroll units; scale them
	// up to the 120-per-notch convention the camera contract expects
	wheelUnit = 12.0
)

var backgroundColor = color.RGBA{R: 31, G: 31, B: 31, A: 255}

// FolderViewer is a fyne widget that software-renders a loaded scene.
// Drag rotates, the wheel zooms; all interaction goes through the shared
// camera state contract.
type FolderViewer struct {
	widget.BaseWidget
	scene    *scene.Scene
	cam      *scene.CameraState
	raster   *canvas.Raster
	dragging bool
}

// NewFolderViewer creates a viewer for an already loaded scene
func NewFolderViewer(s *scene.Scene, cam *scene.CameraState) *FolderViewer {
	v := &FolderViewer{
		scene: s,
		cam:   cam,
	}
	v.raster = canvas.NewRaster(v.render)
	v.raster.SetMinSize(fyne.NewSize(400, 400))
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the fyne renderer for the widget
func (v *FolderViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// Dragged handles primary-button drags for rotation
func (v *FolderViewer) Dragged(event *fyne.DragEvent) {
	x, y := int(event.Position.X), int(event.Position.Y)
	if !v.dragging {
		v.cam.PointerPress(x, y)
		v.dragging = true
	}
	if v.cam.PointerMove(x, y, true) {
		v.raster.Refresh()
	}
}

// DragEnd handles the end of a drag
func (v *FolderViewer) DragEnd() {
	v.dragging = false
}

// MouseIn implements desktop.Hoverable
func (v *FolderViewer) MouseIn(event *desktop.MouseEvent) {
	v.cam.PointerPress(int(event.Position.X), int(event.Position.Y))
}

// MouseMoved keeps the pointer position fresh while no button is held,
// so the next drag starts without a jump
func (v *FolderViewer) MouseMoved(event *desktop.MouseEvent) {
	if !v.dragging {
		v.cam.PointerMove(int(event.Position.X), int(event.Position.Y), false)
	}
}

// MouseOut implements desktop.Hoverable
func (v *FolderViewer) MouseOut() {}

// Scrolled handles wheel events for zooming
func (v *FolderViewer) Scrolled(event *fyne.ScrollEvent) {
	if v.cam.Zoom(float64(event.Scrolled.DY) * wheelUnit) {
		v.raster.Refresh()
	}
}

// render produces one frame for the raster canvas
func (v *FolderViewer) render(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return img
	}

	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	cam := Camera{State: v.cam, Center: v.scene.Bounds.Center}
	fw, fh := float64(w), float64(h)

	v.drawAxes(img, zbuffer, cam, fw, fh)

	for _, part := range v.scene.Parts {
		col := partColor(part.Color)
		for _, triangle := range part.Model.Triangles {
			points := [3]screenPoint{}
			visible := true
			for i, vertex := range triangle.Vertices() {
				x, y, depth := cam.Project(vertex, fw, fh)
				if depth < NearPlane {
					visible = false
					break
				}
				points[i] = screenPoint{X: x, Y: y, Depth: depth}
			}
			if visible {
				fillTriangle(img, zbuffer, points[0], points[1], points[2], col)
			}
		}
	}

	return img
}

// drawAxes draws the fixed-length coordinate gizmo at the model origin
func (v *FolderViewer) drawAxes(img *image.RGBA, zbuffer []float64, cam Camera, w, h float64) {
	axes := []struct {
		end geometry.Vector3
		col color.RGBA
	}{
		{geometry.NewVector3(axisLength, 0, 0), color.RGBA{R: 255, A: 255}},
		{geometry.NewVector3(0, axisLength, 0), color.RGBA{G: 255, A: 255}},
		{geometry.NewVector3(0, 0, axisLength), color.RGBA{G: 153, B: 255, A: 255}},
	}

	for _, axis := range axes {
		x1, y1, d1 := cam.Project(geometry.Vector3{}, w, h)
		x2, y2, d2 := cam.Project(axis.end, w, h)
		if d1 < NearPlane || d2 < NearPlane {
			continue
		}
		drawLine(img, zbuffer,
			screenPoint{X: x1, Y: y1, Depth: d1},
			screenPoint{X: x2, Y: y2, Depth: d2},
			axis.col)
	}
}

func partColor(c scene.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}
