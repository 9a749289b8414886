package mesh

import (
	"math"

	"github.com/philipparndt/gochibi/pkg/geometry"
)

// Tessellation defaults for the primitives
const (
	DefaultSubdivisions = 3
	DefaultSections     = 32
)

// Box creates an axis-aligned box centered at the origin
func Box(extents geometry.Vector3) *Mesh {
	h := extents.Mul(0.5)
	m := New()
	for i := 0; i < 8; i++ {
		v := geometry.NewVector3(-h.X, -h.Y, -h.Z)
		if i&1 != 0 {
			v.X = h.X
		}
		if i&2 != 0 {
			v.Y = h.Y
		}
		if i&4 != 0 {
			v.Z = h.Z
		}
		m.AddVertex(v)
	}

	// vertex index bits: 1=+X, 2=+Y, 4=+Z
	quads := [6][4]int{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
	}
	for _, q := range quads {
		m.AddFace(q[0], q[1], q[2])
		m.AddFace(q[0], q[2], q[3])
	}
	return m
}

// Cylinder creates a closed cylinder around the Z axis, centered at the origin
func Cylinder(radius, height float64, sections int) *Mesh {
	if sections < 3 {
		sections = 3
	}
	m := New()
	half := height / 2

	for i := 0; i < sections; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sections)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		m.AddVertex(geometry.NewVector3(x, y, -half))
		m.AddVertex(geometry.NewVector3(x, y, half))
	}
	bottom := m.AddVertex(geometry.NewVector3(0, 0, -half))
	top := m.AddVertex(geometry.NewVector3(0, 0, half))

	for i := 0; i < sections; i++ {
		j := (i + 1) % sections
		b0, t0 := 2*i, 2*i+1
		b1, t1 := 2*j, 2*j+1

		m.AddFace(b0, b1, t1)
		m.AddFace(b0, t1, t0)
		m.AddFace(bottom, b1, b0)
		m.AddFace(top, t0, t1)
	}
	return m
}

// Icosphere creates a sphere by subdividing an icosahedron; every vertex lies
// exactly on the sphere, including the six axis poles.
func Icosphere(radius float64, subdivisions int) *Mesh {
	m := icosahedron()
	for i := 0; i < subdivisions; i++ {
		m = subdivide(m)
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Normalize().Mul(radius)
	}
	return m
}

// Sphere creates an icosphere with the default subdivision level
func Sphere(radius float64) *Mesh {
	return Icosphere(radius, DefaultSubdivisions)
}

// icosahedron is oriented with vertices on the coordinate planes so that,
// after subdivision, the poles on every axis are exact vertices
func icosahedron() *Mesh {
	t := (1 + math.Sqrt(5)) / 2
	m := New()
	for _, v := range [][3]float64{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	} {
		m.AddVertex(geometry.NewVector3(v[0], v[1], v[2]).Normalize())
	}
	for _, f := range [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	} {
		m.AddFace(f[0], f[1], f[2])
	}
	return m
}

func subdivide(src *Mesh) *Mesh {
	dst := New()
	dst.Vertices = append(dst.Vertices, src.Vertices...)
	midpoints := make(map[[2]int]int)

	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := dst.Vertices[a].Add(dst.Vertices[b]).Normalize()
		idx := dst.AddVertex(mid)
		midpoints[key] = idx
		return idx
	}

	for _, f := range src.Faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		dst.AddFace(f[0], ab, ca)
		dst.AddFace(f[1], bc, ab)
		dst.AddFace(f[2], ca, bc)
		dst.AddFace(ab, bc, ca)
	}
	return dst
}
