// Package preview is a raylib window that shows the generated figurine with
// shaded parts and reloads it whenever the config file changes.
package preview

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/pkg/archive"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/export"
	"github.com/philipparndt/gochibi/pkg/viewer"
	"github.com/philipparndt/gochibi/pkg/watcher"
	"go.uber.org/zap"
)

var (
	background = rl.NewColor(15, 18, 25, 255)
	okColor    = rl.NewColor(120, 220, 120, 255)
	errColor   = rl.NewColor(240, 110, 110, 255)
)

// Options configure a preview window
type Options struct {
	Config *config.Config
	// WatchPath is reloaded through Reload when it changes; empty disables watching
	WatchPath string
	Reload    func() (*config.Config, error)
	Log       *zap.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	parts, err := chibi.GenerateFullModel(opts.Config.Model)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "gochibi preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		View: ViewSettings{showFilled: true, showAxes: true},
	}
	app.Model.material = rl.LoadMaterialDefault()
	app.setModel(opts.Config, parts)
	app.Camera = viewer.NewCamera(app.Model.bbox)
	defer func() { unloadParts(app.Model.meshes) }()

	if opts.WatchPath != "" && opts.Reload != nil {
		if err := app.setupFileWatcher(opts.WatchPath, opts.Reload, log); err != nil {
			log.Warn("Auto-reload not available", zap.Error(err))
		} else {
			defer app.Reload.fileWatcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.applyLoadedModel(log)
		app.handleInput(log)

		rl.BeginDrawing()
		rl.ClearBackground(background)

		rl.BeginMode3D(app.raylibCamera())
		app.drawModel()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}

func (app *App) raylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   toRL(app.Camera.Position),
		Target:     toRL(app.Camera.Target),
		Up:         toRL(app.Camera.Up),
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// setModel replaces the GPU meshes; call on the render thread only
func (app *App) setModel(cfg *config.Config, parts chibi.PartCollection) {
	old := app.Model.meshes
	app.Model.cfg = cfg
	app.Model.parts = parts
	app.Model.meshes = uploadParts(parts)
	app.Model.bbox = parts.BoundingBox()
	unloadParts(old)
}

func (app *App) drawModel() {
	if app.View.showFilled {
		for _, p := range app.Model.meshes {
			rl.DrawMesh(p.mesh, app.Model.material, rl.MatrixIdentity())
		}
	}

	if app.View.showWireframe {
		for _, p := range app.Model.meshes {
			for _, e := range p.edges {
				rl.DrawLine3D(e[0], e[1], p.color)
			}
		}
	}

	if app.View.showAxes {
		size := app.Model.bbox.Size()
		length := float32(max(size.X, size.Y, size.Z) * 0.25)
		origin := rl.Vector3{}
		rl.DrawLine3D(origin, rl.Vector3{X: length}, rl.Red)
		rl.DrawLine3D(origin, rl.Vector3{Y: length}, rl.Green)
		rl.DrawLine3D(origin, rl.Vector3{Z: length}, rl.Blue)
	}
}

func (app *App) drawUI() {
	cfg := app.Model.cfg
	size := app.Model.bbox.Size()

	rl.DrawText(cfg.Model.String(), 20, 20, 20, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Parts: %d   Size: %.2f x %.2f x %.2f", len(app.Model.meshes), size.X, size.Y, size.Z),
		20, 46, 18, rl.LightGray)

	if app.Reload.isLoading.Load() {
		rl.DrawText("Regenerating...", 20, 72, 18, rl.Yellow)
	} else if app.UI.status != "" && time.Now().Before(app.UI.statusUntil) {
		rl.DrawText(app.UI.status, 20, 72, 18, app.UI.statusColor)
	}

	help := "Drag: rotate  Right drag: pan  Wheel: zoom  W: wireframe  F: filled  A: axes  " +
		"1-4: front/back/left/right  T: top  R: reset  E: export"
	rl.DrawText(help, 20, int32(rl.GetScreenHeight())-30, 16, rl.Gray)
}

func (app *App) setStatus(msg string, c rl.Color) {
	app.UI.status = msg
	app.UI.statusColor = c
	app.UI.statusUntil = time.Now().Add(4 * time.Second)
}

// exportModel writes the displayed parts using the export section of the
// active configuration
func (app *App) exportModel(log *zap.Logger) {
	cfg := app.Model.cfg
	opts := []export.Option{export.WithLogger(log)}
	if cfg.Export.ASCIISTL {
		opts = append(opts, export.WithASCIISTL())
	}

	files, err := export.New(opts...).ExportParts(context.Background(), app.Model.parts, cfg.Export.Dir, cfg.Export.Format)
	if err != nil {
		app.setStatus("Export failed: "+err.Error(), errColor)
		return
	}
	if cfg.Export.Zip {
		if err := archive.Zip(cfg.Export.ZipPath(), files); err != nil {
			app.setStatus("Packaging failed: "+err.Error(), errColor)
			return
		}
	}
	app.setStatus(fmt.Sprintf("Exported %d parts to %s", len(files), cfg.Export.Dir), okColor)
}

// setupFileWatcher regenerates in the background on every config change
func (app *App) setupFileWatcher(path string, reload func() (*config.Config, error), log *zap.Logger) error {
	fw, err := watcher.NewFileWatcher(300*time.Millisecond, log)
	if err != nil {
		return err
	}

	callback := func(string) {
		if !app.Reload.isLoading.CompareAndSwap(false, true) {
			app.Reload.needsReload.Store(true)
			return
		}
		app.regenerate(reload)
	}
	if err := fw.Watch([]string{path}, callback); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.Reload.fileWatcher = fw
	app.Reload.reload = reload
	log.Info("Watching config file", zap.String("path", path))
	return nil
}

// regenerate runs on the watcher goroutine; meshes are built later on the
// render thread by applyLoadedModel
func (app *App) regenerate(reload func() (*config.Config, error)) {
	app.Reload.startTime = time.Now()

	cfg, err := reload()
	var parts chibi.PartCollection
	if err == nil {
		parts, err = chibi.GenerateFullModel(cfg.Model)
	}

	app.Reload.mu.Lock()
	app.Reload.loadedCfg, app.Reload.loaded, app.Reload.loadErr = cfg, parts, err
	app.Reload.mu.Unlock()
}

// applyLoadedModel swaps in a regenerated model; call on the render thread
func (app *App) applyLoadedModel(log *zap.Logger) {
	app.Reload.mu.Lock()
	cfg, parts, err := app.Reload.loadedCfg, app.Reload.loaded, app.Reload.loadErr
	done := cfg != nil || err != nil
	app.Reload.loadedCfg, app.Reload.loaded, app.Reload.loadErr = nil, nil, nil
	app.Reload.mu.Unlock()

	if !done {
		return
	}

	if err != nil {
		log.Error("Reload failed", zap.Error(err))
		app.setStatus("Reload failed: "+err.Error(), errColor)
	} else {
		app.setModel(cfg, parts)
		elapsed := time.Since(app.Reload.startTime)
		log.Info("Model reloaded", zap.Stringer("config", cfg.Model), zap.Duration("took", elapsed))
		app.setStatus(fmt.Sprintf("Reloaded in %.2fs", elapsed.Seconds()), okColor)
	}
	app.Reload.isLoading.Store(false)

	// a change arrived while regenerating
	if app.Reload.needsReload.Swap(false) && app.Reload.isLoading.CompareAndSwap(false, true) {
		go app.regenerate(app.Reload.reload)
	}
}
