package stl

import (
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// Model represents a complete STL model: a named triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromMesh expands an indexed mesh into an STL model with computed normals
func FromMesh(name string, m *mesh.Mesh) *Model {
	return &Model{
		Name:      name,
		Triangles: m.Triangles(),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// ToMesh welds the triangle soup back into an indexed mesh. Corners with
// identical coordinates share one vertex; vertices keep first-seen order.
func (m *Model) ToMesh() *mesh.Mesh {
	out := mesh.New()
	index := make(map[geometry.Vector3]int)

	lookup := func(v geometry.Vector3) int {
		if idx, ok := index[v]; ok {
			return idx
		}
		idx := out.AddVertex(v)
		index[v] = idx
		return idx
	}

	for _, tri := range m.Triangles {
		out.AddFace(lookup(tri.V1), lookup(tri.V2), lookup(tri.V3))
	}
	return out
}
