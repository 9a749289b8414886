package geometry

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)

	if got, want := v1.Add(v2), NewVector3(5, 7, 9); got != want {
		t.Errorf("Add failed: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), NewVector3(3, 3, 3); got != want {
		t.Errorf("Sub failed: expected %v, got %v", want, got)
	}
	if got, want := v1.Mul(2), NewVector3(2, 4, 6); got != want {
		t.Errorf("Mul failed: expected %v, got %v", want, got)
	}
	if got, want := v1.Scale(NewVector3(1, 1.5, 0.5)), NewVector3(1, 3, 1.5); got != want {
		t.Errorf("Scale failed: expected %v, got %v", want, got)
	}
	if got := v1.Dot(v2); math.Abs(got-32) > 1e-10 {
		t.Errorf("Dot failed: expected 32, got %v", got)
	}
}

func TestVector3Cross(t *testing.T) {
	result := AxisX.Cross(AxisY)
	if result != AxisZ {
		t.Errorf("Cross failed: expected %v, got %v", AxisZ, result)
	}
}

func TestVector3LengthAndDistance(t *testing.T) {
	v := NewVector3(3, 4, 0)
	if math.Abs(v.Length()-5) > 1e-10 {
		t.Errorf("Length failed: expected 5, got %v", v.Length())
	}
	if d := NewVector3(0, 0, 0).Distance(v); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
	if n := v.Normalize().Length(); math.Abs(n-1) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", n)
	}
	if z := (Vector3{}).Normalize(); z != (Vector3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", z)
	}
}

func TestVector3RotateAxis(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector3
		axis  Vector3
		angle float64
		want  Vector3
	}{
		{"y to z about x", AxisY, AxisX, math.Pi / 2, AxisZ},
		{"z to -y about x", AxisZ, AxisX, math.Pi / 2, NewVector3(0, -1, 0)},
		{"x to y about z", AxisX, AxisZ, math.Pi / 2, AxisY},
		{"on axis unchanged", NewVector3(2, 0, 0), AxisX, 1.234, NewVector3(2, 0, 0)},
		{"half turn", NewVector3(1, 2, 3), AxisZ, math.Pi, NewVector3(-1, -2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateAxis(tt.axis, tt.angle)
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("RotateAxis: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVector3MinMaxComponent(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(3, 0, 4)

	if got, want := a.Min(b), NewVector3(1, 0, -2); got != want {
		t.Errorf("Min failed: expected %v, got %v", want, got)
	}
	if got, want := a.Max(b), NewVector3(3, 5, 4); got != want {
		t.Errorf("Max failed: expected %v, got %v", want, got)
	}
	for axis, want := range []float64{1, 5, -2} {
		if got := a.Component(axis); got != want {
			t.Errorf("Component(%d): expected %v, got %v", axis, want, got)
		}
	}
}
