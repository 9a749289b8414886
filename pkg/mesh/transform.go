package mesh

import "github.com/philipparndt/gochibi/pkg/geometry"

// Transforms mutate the mesh in place and return it so calls can be chained
// on a freshly built primitive.

// Translate moves every vertex by offset
func (m *Mesh) Translate(offset geometry.Vector3) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(offset)
	}
	return m
}

// Scale multiplies vertex coordinates per axis about the origin.
// A negative component count that is odd flips the winding so faces keep
// pointing outward.
func (m *Mesh) Scale(factors geometry.Vector3) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(factors)
	}
	negatives := 0
	for _, f := range []float64{factors.X, factors.Y, factors.Z} {
		if f < 0 {
			negatives++
		}
	}
	if negatives%2 == 1 {
		m.flipWinding()
	}
	return m
}

// ScaleAbout scales per axis about pivot
func (m *Mesh) ScaleAbout(factors, pivot geometry.Vector3) *Mesh {
	return m.Translate(pivot.Mul(-1)).Scale(factors).Translate(pivot)
}

// Rotate rotates every vertex around axis through the origin
func (m *Mesh) Rotate(axis geometry.Vector3, angle float64) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].RotateAxis(axis, angle)
	}
	return m
}

// RotateAbout rotates every vertex around axis through pivot
func (m *Mesh) RotateAbout(axis geometry.Vector3, angle float64, pivot geometry.Vector3) *Mesh {
	return m.Translate(pivot.Mul(-1)).Rotate(axis, angle).Translate(pivot)
}

func (m *Mesh) flipWinding() {
	for i, f := range m.Faces {
		m.Faces[i] = Face{f[0], f[2], f[1]}
	}
}
