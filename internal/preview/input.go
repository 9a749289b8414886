package preview

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochibi/pkg/viewer"
	"go.uber.org/zap"
)

var viewKeys = map[int32]viewer.View{
	rl.KeyOne:   viewer.ViewFront,
	rl.KeyTwo:   viewer.ViewBack,
	rl.KeyThree: viewer.ViewLeft,
	rl.KeyFour:  viewer.ViewRight,
	rl.KeyT:     viewer.ViewTop,
}

// handleInput processes mouse and keyboard input for one frame
func (app *App) handleInput(log *zap.Logger) {
	delta := rl.GetMouseDelta()

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && (delta.X != 0 || delta.Y != 0) {
		app.Camera.Rotate(float64(delta.Y)*0.01, float64(-delta.X)*0.01)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) && (delta.X != 0 || delta.Y != 0) {
		app.Camera.Pan(float64(delta.X), float64(delta.Y))
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.Zoom(-float64(wheel) * 0.03)
	}

	for key, view := range viewKeys {
		if rl.IsKeyPressed(key) {
			app.Camera.SetView(view)
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyW):
		app.View.showWireframe = !app.View.showWireframe
	case rl.IsKeyPressed(rl.KeyF):
		app.View.showFilled = !app.View.showFilled
	case rl.IsKeyPressed(rl.KeyA):
		app.View.showAxes = !app.View.showAxes
	case rl.IsKeyPressed(rl.KeyR):
		app.Camera = viewer.NewCamera(app.Model.bbox)
	case rl.IsKeyPressed(rl.KeyE):
		app.exportModel(log)
	}
}
