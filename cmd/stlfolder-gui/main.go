package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlfolder/pkg/analysis"
	"github.com/philipparndt/stlfolder/pkg/scene"
	"github.com/philipparndt/stlfolder/pkg/viewer"
)

type App struct {
	window fyne.Window
	scene  *scene.Scene
	camera scene.CameraState
	viewer *viewer.FolderViewer
}

func main() {
	a := app.New()
	w := a.NewWindow("STL Folder Viewer")

	appInstance := &App{
		window: w,
	}

	// Folder can be given as an argument, otherwise show the picker
	if len(os.Args) > 1 {
		appInstance.loadFolder(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(900, 700))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("STL Folder Viewer")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Folder' to load all STL files from a folder")

	openButton := widget.NewButton("Open Folder", func() {
		a.showFolderDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFolderDialog() {
	dialog.ShowFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if folder == nil {
			return
		}

		a.loadFolder(folder.Path())
	}, a.window)
}

func (a *App) loadFolder(folder string) {
	s, err := scene.Load(folder, nil)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load folder: %w", err), a.window)
		return
	}

	a.scene = s
	a.camera = scene.NewCameraState(s.Bounds)
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.viewer = viewer.NewFolderViewer(a.scene, &a.camera)

	summary := analysis.Summarize(a.scene)
	sceneInfo := fmt.Sprintf(
		"Folder: %s\nParts: %d\nTriangles: %d\n\nBounds:\n  Center: (%.2f, %.2f, %.2f)\n  Size: %.2f",
		a.scene.Folder,
		summary.PartCount,
		summary.TriangleCount,
		summary.Bounds.Center.X,
		summary.Bounds.Center.Y,
		summary.Bounds.Center.Z,
		summary.Bounds.Size,
	)

	partsList := ""
	for _, part := range summary.Parts {
		partsList += fmt.Sprintf("%s (%d)\n", part.Name, part.TriangleCount)
	}
	if partsList == "" {
		partsList = "No STL files found"
	}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open Folder", func() {
		a.showFolderDialog()
	})

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene Information:"),
		widget.NewSeparator(),
		widget.NewLabel(sceneInfo),
		widget.NewSeparator(),
		widget.NewLabel("Parts:"),
		widget.NewLabel(partsList),
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.viewer,   // center
	)

	a.window.SetContent(content)
}
