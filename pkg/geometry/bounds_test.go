package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	if want := NewVector3(-1, 0, 2); bbox.Min != want {
		t.Errorf("Min failed: expected %v, got %v", want, bbox.Min)
	}
	if want := NewVector3(4, 5, 6); bbox.Max != want {
		t.Errorf("Max failed: expected %v, got %v", want, bbox.Max)
	}
}

func TestBoundingBoxSizeCenterVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if want := NewVector3(10, 20, 30); bbox.Size() != want {
		t.Errorf("Size failed: expected %v, got %v", want, bbox.Size())
	}
	if want := NewVector3(5, 10, 15); bbox.Center() != want {
		t.Errorf("Center failed: expected %v, got %v", want, bbox.Center())
	}
	if bbox.Volume() != 6000 {
		t.Errorf("Volume failed: expected 6000, got %v", bbox.Volume())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if bbox.Size() != (Vector3{}) {
		t.Errorf("empty box size should be zero, got %v", bbox.Size())
	}

	other := NewBoundingBox()
	other.Extend(NewVector3(1, 1, 1))
	bbox.Union(NewBoundingBox())
	if !bbox.IsEmpty() {
		t.Error("union with empty box should stay empty")
	}
	bbox.Union(other)
	if bbox.Min != NewVector3(1, 1, 1) || bbox.Max != NewVector3(1, 1, 1) {
		t.Errorf("union failed: got %v..%v", bbox.Min, bbox.Max)
	}
}
