// Package mesh provides indexed triangle meshes, primitive constructors and
// affine transforms used to build printable parts.
package mesh

import (
	"fmt"

	"github.com/philipparndt/gochibi/pkg/geometry"
)

// Face is a triangle given as three indices into Mesh.Vertices,
// counter-clockwise when seen from outside.
type Face [3]int

// Mesh is an indexed triangle surface
type Mesh struct {
	Vertices []geometry.Vector3
	Faces    []Face
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{a, b, c})
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty reports whether the mesh has no geometry
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Vertices) == 0
}

// Clone returns a deep copy
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]geometry.Vector3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	return c
}

// Triangle returns face i as a triangle with its computed normal
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	tri := geometry.NewTriangle(geometry.Vector3{}, m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
	tri.Normal = tri.CalculateNormal()
	return tri
}

// Triangles expands the mesh into a triangle soup
func (m *Mesh) Triangles() []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(m.Faces))
	for i := range m.Faces {
		triangles = append(triangles, m.Triangle(i))
	}
	return triangles
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Validate checks that every face references existing, distinct vertices
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(m.Vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return fmt.Errorf("face %d: repeated vertex index %v", i, f)
		}
	}
	return nil
}
