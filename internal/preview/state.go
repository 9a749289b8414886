package preview

import (
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/viewer"
	"github.com/philipparndt/gochibi/pkg/watcher"
)

// partMesh is one part uploaded to the GPU
type partMesh struct {
	name  string
	mesh  rl.Mesh
	edges [][2]rl.Vector3
	color rl.Color
}

// ModelData holds the generated parts and their GPU meshes
type ModelData struct {
	cfg      *config.Config
	parts    chibi.PartCollection
	meshes   []partMesh
	material rl.Material
	bbox     geometry.BoundingBox
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showAxes      bool
}

// ReloadState carries a regenerated model from the watcher goroutine to the
// render loop, which alone may touch raylib
type ReloadState struct {
	fileWatcher *watcher.FileWatcher
	reload      func() (*config.Config, error)
	needsReload atomic.Bool
	isLoading   atomic.Bool
	startTime   time.Time

	mu        sync.Mutex
	loadedCfg *config.Config
	loaded    chibi.PartCollection
	loadErr   error
}

// UIState holds the overlay text
type UIState struct {
	status      string
	statusColor rl.Color
	statusUntil time.Time
}

// App is the preview window state
type App struct {
	Camera *viewer.Camera
	Model  ModelData
	View   ViewSettings
	Reload ReloadState
	UI     UIState
}
