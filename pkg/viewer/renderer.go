// Package viewer draws a wireframe preview of generated parts as a fyne widget.
package viewer

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

var highlight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// segment is one projected edge
type segment struct {
	part   int
	x1, y1 float64
	x2, y2 float64
	depth  float64
}

type wireframe struct {
	name  string
	verts []geometry.Vector3
	edges [][2]int
}

// ModelRenderer renders a part collection as a rotatable wireframe
type ModelRenderer struct {
	widget.BaseWidget

	mu         sync.Mutex
	parts      []wireframe
	camera     *Camera
	lines      []*canvas.Line
	selected   int
	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64
	onSelect   func(part string)
}

// NewModelRenderer creates a renderer; parts may be nil and set later
func NewModelRenderer(parts chibi.PartCollection) *ModelRenderer {
	r := &ModelRenderer{selected: -1}
	r.ExtendBaseWidget(r)
	r.SetParts(parts)
	return r
}

// SetParts replaces the displayed parts and reframes the camera
func (r *ModelRenderer) SetParts(parts chibi.PartCollection) {
	r.mu.Lock()
	r.parts = buildWireframes(parts)
	r.camera = NewCamera(parts.BoundingBox())
	r.selected = -1
	r.mu.Unlock()

	if r.width > 0 && r.height > 0 {
		r.Render(r.width, r.height)
	}
}

// SetOnPartSelect sets the callback for a tapped part
func (r *ModelRenderer) SetOnPartSelect(callback func(part string)) {
	r.onSelect = callback
}

// Selected returns the highlighted part name, or ""
func (r *ModelRenderer) Selected() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected < 0 {
		return ""
	}
	return r.parts[r.selected].name
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{renderer: r}
}

// Render projects every edge for the given canvas size
func (r *ModelRenderer) Render(width, height float64) {
	r.mu.Lock()
	r.width = width
	r.height = height
	segs := project(r.parts, r.camera, width, height)

	lines := make([]*canvas.Line, 0, len(segs))
	for _, s := range segs {
		line := canvas.NewLine(r.edgeColor(s))
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(s.x1), float32(s.y1))
		line.Position2 = fyne.NewPos(float32(s.x2), float32(s.y2))
		lines = append(lines, line)
	}
	r.lines = lines
	r.mu.Unlock()

	r.Refresh()
}

func (r *ModelRenderer) edgeColor(s segment) color.Color {
	if s.part == r.selected {
		return highlight
	}
	// nearer edges are brighter
	return Dim(PartColor(s.part), math.Max(0.35, 1.6-s.depth/(2*r.camera.Distance)))
}

// Dragged orbits the camera
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.mu.Lock()
		r.camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		r.mu.Unlock()
		r.Render(r.width, r.height)
	}
	pos := event.Position
	r.dragStart = &pos
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped highlights the part owning the nearest vertex
func (r *ModelRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	r.mu.Lock()
	part, dist := nearestPart(r.parts, r.camera, float64(event.Position.X), float64(event.Position.Y), r.width, r.height)
	if dist >= 20 {
		part = -1
	}
	r.selected = part
	r.mu.Unlock()

	r.Render(r.width, r.height)
	if part >= 0 && r.onSelect != nil {
		r.onSelect(r.parts[part].name)
	}
}

// Scrolled zooms the camera
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.mu.Lock()
	r.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	r.mu.Unlock()
	r.Render(r.width, r.height)
}

// buildWireframes extracts the unique edges of each part in name order
func buildWireframes(parts chibi.PartCollection) []wireframe {
	frames := make([]wireframe, 0, len(parts))
	for _, name := range parts.Names() {
		m := parts.Mesh(name)
		if m.IsEmpty() {
			continue
		}
		frames = append(frames, wireframe{name: name, verts: m.Vertices, edges: uniqueEdges(m)})
	}
	return frames
}

func uniqueEdges(m *mesh.Mesh) [][2]int {
	seen := make(map[[2]int]bool, len(m.Faces)*3/2)
	edges := make([][2]int, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if !seen[key] {
				seen[key] = true
				edges = append(edges, key)
			}
		}
	}
	return edges
}

// project drops edges with an endpoint behind the camera
func project(frames []wireframe, cam *Camera, width, height float64) []segment {
	if cam == nil || width <= 0 || height <= 0 {
		return nil
	}

	var segs []segment
	for i, wf := range frames {
		type projected struct{ x, y, depth float64 }
		pts := make([]projected, len(wf.verts))
		for j, v := range wf.verts {
			x, y, d := cam.Project(v, width, height)
			pts[j] = projected{x, y, d}
		}

		for _, e := range wf.edges {
			a, b := pts[e[0]], pts[e[1]]
			if a.depth <= 0 || b.depth <= 0 {
				continue
			}
			segs = append(segs, segment{
				part:  i,
				x1:    a.x,
				y1:    a.y,
				x2:    b.x,
				y2:    b.y,
				depth: (a.depth + b.depth) / 2,
			})
		}
	}
	return segs
}

// nearestPart returns the index of the part with the vertex closest to the
// screen point, and that distance in pixels
func nearestPart(frames []wireframe, cam *Camera, screenX, screenY, width, height float64) (int, float64) {
	best, minDist := -1, math.MaxFloat64
	if cam == nil || width <= 0 || height <= 0 {
		return best, minDist
	}

	for i, wf := range frames {
		for _, v := range wf.verts {
			x, y, depth := cam.Project(v, width, height)
			if depth <= 0 {
				continue
			}
			if dist := math.Hypot(x-screenX, y-screenY); dist < minDist {
				best, minDist = i, dist
			}
		}
	}
	return best, minDist
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	if float64(size.Width) != m.renderer.width || float64(size.Height) != m.renderer.height {
		m.renderer.Render(float64(size.Width), float64(size.Height))
	}
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	m.renderer.mu.Lock()
	objects := make([]fyne.CanvasObject, 0, len(m.renderer.lines))
	for _, line := range m.renderer.lines {
		objects = append(objects, line)
	}
	m.renderer.mu.Unlock()

	m.objects = objects
	canvas.Refresh(m.renderer)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {}
