package geometry

import (
	"math"
	"testing"
)

// right triangle with legs 3 and 4 in the XY plane, counter-clockwise from +Z
func rightTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

func TestTriangleArea(t *testing.T) {
	area := rightTriangle().Area()
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
}

func TestTriangleEdgeLengthsAndPerimeter(t *testing.T) {
	tri := rightTriangle()
	lengths := tri.EdgeLengths()

	for i, want := range []float64{3, 5, 4} {
		if math.Abs(lengths[i]-want) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, want, lengths[i])
		}
	}
	if p := tri.Perimeter(); math.Abs(p-12) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", p)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	n := rightTriangle().CalculateNormal()
	if !n.ApproxEqual(AxisZ, 1e-12) {
		t.Errorf("CalculateNormal failed: expected %v, got %v", AxisZ, n)
	}

	degenerate := NewTriangle(Vector3{}, AxisX, AxisX.Mul(2), AxisX.Mul(3))
	if got := degenerate.CalculateNormal(); got != (Vector3{}) {
		t.Errorf("degenerate triangle should have zero normal, got %v", got)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)
	if c := tri.Center(); !c.ApproxEqual(NewVector3(1, 1, 0), 1e-12) {
		t.Errorf("Center failed: expected (1, 1, 0), got %v", c)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// unit tetrahedron face opposite the origin, wound outward
	tri := NewTriangle(Vector3{}, AxisX, AxisY, AxisZ)
	if v := tri.SignedVolume(); math.Abs(v-1.0/6.0) > 1e-12 {
		t.Errorf("SignedVolume failed: expected 1/6, got %v", v)
	}

	flipped := NewTriangle(Vector3{}, AxisX, AxisZ, AxisY)
	if v := flipped.SignedVolume(); math.Abs(v+1.0/6.0) > 1e-12 {
		t.Errorf("flipped SignedVolume failed: expected -1/6, got %v", v)
	}
}
