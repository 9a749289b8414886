package preview

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
	"github.com/philipparndt/gochibi/pkg/viewer"
)

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRLColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toRaylibMesh uploads m with per-face baked lighting. Vertices are not
// shared so every face keeps a flat color.
func toRaylibMesh(m *mesh.Mesh, base color.NRGBA) rl.Mesh {
	triangleCount := m.FaceCount()
	vertexCount := triangleCount * 3

	out := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for i := range m.Faces {
		tri := m.Triangle(i)
		shaded := viewer.Shade(base, tri.Normal)

		for _, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(tri.Normal.X)
			normals[idx*3+1] = float32(tri.Normal.Y)
			normals[idx*3+2] = float32(tri.Normal.Z)
			colors[idx*4+0] = shaded.R
			colors[idx*4+1] = shaded.G
			colors[idx*4+2] = shaded.B
			colors[idx*4+3] = shaded.A
			idx++
		}
	}

	if vertexCount > 0 {
		out.Vertices = &vertices[0]
		out.Normals = &normals[0]
		out.Texcoords = &texcoords[0]
		out.Colors = &colors[0]
	}

	rl.UploadMesh(&out, false)
	return out
}

// uploadParts converts every non-empty part, in name order
func uploadParts(parts chibi.PartCollection) []partMesh {
	meshes := make([]partMesh, 0, len(parts))
	for i, name := range parts.Names() {
		m := parts.Mesh(name)
		if m.IsEmpty() {
			continue
		}
		base := viewer.PartColor(i)
		meshes = append(meshes, partMesh{
			name:  name,
			mesh:  toRaylibMesh(m, base),
			edges: edgeList(m),
			color: toRLColor(viewer.Dim(base, 0.5)),
		})
	}
	return meshes
}

func unloadParts(meshes []partMesh) {
	for i := range meshes {
		rl.UnloadMesh(&meshes[i].mesh)
	}
}

func edgeList(m *mesh.Mesh) [][2]rl.Vector3 {
	seen := make(map[[2]int]bool, len(m.Faces)*3/2)
	edges := make([][2]rl.Vector3, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true
			edges = append(edges, [2]rl.Vector3{toRL(m.Vertices[a]), toRL(m.Vertices[b])})
		}
	}
	return edges
}
