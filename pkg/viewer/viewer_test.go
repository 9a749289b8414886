package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

const eps = 1e-9

func unitBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-1, -1, 0))
	bbox.Extend(geometry.NewVector3(1, 1, 2))
	return bbox
}

func TestNewCameraFramesBox(t *testing.T) {
	cam := NewCamera(unitBox())

	if !cam.Target.ApproxEqual(geometry.NewVector3(0, 0, 1), eps) {
		t.Errorf("expected target at box center, got %v", cam.Target)
	}
	if math.Abs(cam.Distance-4) > eps {
		t.Errorf("expected distance 4, got %v", cam.Distance)
	}
	if math.Abs(cam.Position.Distance(cam.Target)-cam.Distance) > eps {
		t.Error("camera should sit Distance away from the target")
	}
	if cam.Position.Y >= cam.Target.Y {
		t.Error("default camera should look at the front, from -Y")
	}
}

func TestNewCameraEmptyBox(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	if cam.Distance <= 0 || math.IsNaN(cam.Position.Z) {
		t.Errorf("empty box should still give a usable camera, got %+v", cam)
	}
}

func TestProjectZUp(t *testing.T) {
	cam := NewCamera(unitBox())
	cam.Elevation = 0
	cam.UpdatePosition()

	const w, h = 400.0, 300.0
	x, y, depth := cam.Project(cam.Target, w, h)
	if math.Abs(x-w/2) > 1e-6 || math.Abs(y-h/2) > 1e-6 {
		t.Errorf("target should project to the center, got (%v, %v)", x, y)
	}
	if math.Abs(depth-cam.Distance) > 1e-9 {
		t.Errorf("expected depth %v, got %v", cam.Distance, depth)
	}

	_, yAbove, _ := cam.Project(cam.Target.Add(geometry.NewVector3(0, 0, 0.5)), w, h)
	if yAbove >= h/2 {
		t.Errorf("a point above the target should be drawn higher, got y=%v", yAbove)
	}

	xRight, _, _ := cam.Project(cam.Target.Add(geometry.NewVector3(0.5, 0, 0)), w, h)
	if xRight <= w/2 {
		t.Errorf("+X should be drawn to the right from the front, got x=%v", xRight)
	}

	_, _, behind := cam.Project(cam.Position.Sub(geometry.NewVector3(0, 1, 0)), w, h)
	if behind > 0 {
		t.Errorf("a point behind the camera should have negative depth, got %v", behind)
	}
}

func TestRotateClampsElevation(t *testing.T) {
	cam := NewCamera(unitBox())

	cam.Rotate(10, 0)
	if cam.Elevation != maxElevation {
		t.Errorf("expected elevation clamped to %v, got %v", maxElevation, cam.Elevation)
	}
	cam.Rotate(-20, 0)
	if cam.Elevation != -maxElevation {
		t.Errorf("expected elevation clamped to %v, got %v", -maxElevation, cam.Elevation)
	}

	cam.Rotate(0, math.Pi)
	if math.Abs(cam.Position.Distance(cam.Target)-cam.Distance) > 1e-9 {
		t.Error("rotation should keep the camera distance")
	}
}

func TestZoomKeepsMinimumDistance(t *testing.T) {
	cam := NewCamera(unitBox())

	cam.Zoom(0.5)
	if math.Abs(cam.Distance-6) > eps {
		t.Errorf("expected distance 6, got %v", cam.Distance)
	}
	cam.Zoom(-1)
	if cam.Distance != 0.1 {
		t.Errorf("expected minimum distance 0.1, got %v", cam.Distance)
	}
}

func TestUniqueEdges(t *testing.T) {
	// a closed box has 12 triangles and 18 edges
	if n := len(uniqueEdges(mesh.Box(geometry.NewVector3(1, 1, 1)))); n != 18 {
		t.Errorf("expected 18 box edges, got %d", n)
	}
	// closed triangle mesh: E = 3F/2
	sphere := mesh.Icosphere(1, 2)
	if n := len(uniqueEdges(sphere)); n != sphere.FaceCount()*3/2 {
		t.Errorf("expected %d sphere edges, got %d", sphere.FaceCount()*3/2, n)
	}
}

func TestBuildWireframes(t *testing.T) {
	parts, err := chibi.GenerateFullModel(chibi.Default())
	if err != nil {
		t.Fatalf("GenerateFullModel failed: %v", err)
	}
	parts["empty"] = &chibi.Part{Name: "empty", Mesh: mesh.New()}

	frames := buildWireframes(parts)
	if len(frames) != len(parts)-1 {
		t.Errorf("expected %d wireframes, got %d", len(parts)-1, len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i-1].name >= frames[i].name {
			t.Errorf("wireframes should be in name order: %s before %s", frames[i-1].name, frames[i].name)
		}
	}
	if len(buildWireframes(nil)) != 0 {
		t.Error("nil collection should give no wireframes")
	}
}

func TestProjectAndPick(t *testing.T) {
	parts := chibi.PartCollection{
		"torso": {Name: "torso", Mesh: chibi.Torso(1)},
		"head":  {Name: "head", Mesh: chibi.Head(1)},
	}
	frames := buildWireframes(parts)
	cam := NewCamera(parts.BoundingBox())
	const w, h = 500.0, 500.0

	segs := project(frames, cam, w, h)
	total := 0
	for _, wf := range frames {
		total += len(wf.edges)
	}
	if len(segs) != total {
		t.Errorf("expected every edge in front of the camera, got %d of %d", len(segs), total)
	}
	if project(frames, cam, 0, h) != nil {
		t.Error("zero width should project nothing")
	}

	// the head is at the top of the figure, so pick near the top center
	headTop := geometry.NewVector3(0, 0, parts.Mesh("head").BoundingBox().Max.Z)
	x, y, _ := cam.Project(headTop, w, h)
	idx, dist := nearestPart(frames, cam, x, y, w, h)
	if idx < 0 || frames[idx].name != "head" {
		t.Fatalf("expected head to be picked, got index %d", idx)
	}
	if dist >= 20 {
		t.Errorf("expected a hit within the pick radius, got %v px", dist)
	}
}

func TestSetView(t *testing.T) {
	cam := NewCamera(unitBox())

	tests := []struct {
		view View
		dir  geometry.Vector3 // from target to camera
	}{
		{ViewFront, geometry.NewVector3(0, -1, 0)},
		{ViewBack, geometry.NewVector3(0, 1, 0)},
		{ViewLeft, geometry.NewVector3(-1, 0, 0)},
		{ViewRight, geometry.NewVector3(1, 0, 0)},
	}

	for _, tt := range tests {
		cam.SetView(tt.view)
		got := cam.Position.Sub(cam.Target).Normalize()
		if !got.ApproxEqual(tt.dir, 1e-9) {
			t.Errorf("view %d: expected direction %v, got %v", tt.view, tt.dir, got)
		}
	}

	cam.SetView(ViewTop)
	if cam.Position.Z <= cam.Target.Z+cam.Distance*0.9 {
		t.Errorf("top view should look down from above, got %v", cam.Position)
	}
}

func TestPanMovesTargetInViewPlane(t *testing.T) {
	cam := NewCamera(unitBox())
	cam.SetView(ViewFront)
	before := cam.Target

	cam.Pan(-100, 0)
	moved := cam.Target.Sub(before)
	if moved.X <= 0 || math.Abs(moved.Y) > 1e-9 || math.Abs(moved.Z) > 1e-9 {
		t.Errorf("dragging left should move the target along +X only, got %v", moved)
	}
	if math.Abs(cam.Position.Distance(cam.Target)-cam.Distance) > 1e-9 {
		t.Error("panning should keep the camera distance")
	}
}

func TestShade(t *testing.T) {
	base := PartColor(0)

	lit := Shade(base, lightDir.Mul(-1))
	if lit != base {
		t.Errorf("a face toward the light should keep full color, got %v", lit)
	}

	dark := Shade(base, lightDir)
	want := Dim(base, 0.3)
	if dark != want {
		t.Errorf("a face away from the light should fall to ambient %v, got %v", want, dark)
	}
	if dark.A != 0xff {
		t.Error("shading should keep alpha")
	}
}

func TestPartColorWraps(t *testing.T) {
	if PartColor(0) != PartColor(len(palette)) {
		t.Error("colors should repeat after the palette")
	}
	if PartColor(-1) != PartColor(1) {
		t.Error("negative indexes should not panic")
	}
}
