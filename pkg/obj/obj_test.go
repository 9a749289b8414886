package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

func TestRoundTripIsExact(t *testing.T) {
	m := mesh.Sphere(0.15).
		ScaleAbout(geometry.NewVector3(1, 1.5, 0.5), geometry.Vector3{}).
		Translate(geometry.NewVector3(-0.25, 0, -0.8))

	var buf bytes.Buffer
	if err := Write(&buf, "foot_left", m); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	back, name, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name != "foot_left" {
		t.Errorf("expected name foot_left, got %q", name)
	}
	if back.VertexCount() != m.VertexCount() || back.FaceCount() != m.FaceCount() {
		t.Fatalf("expected %d/%d, got %d/%d", m.VertexCount(), m.FaceCount(), back.VertexCount(), back.FaceCount())
	}
	for i := range m.Vertices {
		if back.Vertices[i] != m.Vertices[i] {
			t.Fatalf("vertex %d: expected %v, got %v", i, m.Vertices[i], back.Vertices[i])
		}
	}
	for i := range m.Faces {
		if back.Faces[i] != m.Faces[i] {
			t.Fatalf("face %d: expected %v, got %v", i, m.Faces[i], back.Faces[i])
		}
	}
}

func TestReadPolygonsAndIndexForms(t *testing.T) {
	input := `# quad with texture/normal refs
o plate
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4 -2 -1
`
	m, name, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name != "plate" {
		t.Errorf("expected name plate, got %q", name)
	}
	if m.FaceCount() != 3 {
		t.Fatalf("expected 3 faces, got %d", m.FaceCount())
	}
	if m.Faces[1] != (mesh.Face{0, 2, 3}) {
		t.Errorf("unexpected fan triangle %v", m.Faces[1])
	}
	if m.Faces[2] != (mesh.Face{0, 2, 3}) {
		t.Errorf("unexpected negative index triangle %v", m.Faces[2])
	}
}

func TestReadErrors(t *testing.T) {
	inputs := map[string]string{
		"short vertex":    "v 1 2\n",
		"bad coordinate":  "v 1 2 x\n",
		"short face":      "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"index too large": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"zero index":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Read(strings.NewReader(input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torso.obj")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := Write(f, "torso", mesh.Box(geometry.NewVector3(0.6, 0.4, 0.8))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	m, name, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if name != "torso" || m.VertexCount() != 8 || m.FaceCount() != 12 {
		t.Errorf("unexpected result %q %d/%d", name, m.VertexCount(), m.FaceCount())
	}
}
