// Package obj reads and writes Wavefront OBJ geometry (vertices and faces only).
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// Write writes the mesh as a single named object with 1-based face indices
func Write(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# gochibi part %s\n", name)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return bw.Flush()
}

// Parse reads an OBJ file into a single mesh
func Parse(filename string) (*mesh.Mesh, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses OBJ data. All objects and groups are merged into one mesh; the
// first object name is returned. Polygons are triangulated as fans. Texture
// and normal references (v/vt/vn) are ignored and negative indices are
// resolved relative to the current vertex count.
func Read(reader io.Reader) (*mesh.Mesh, string, error) {
	scanner := bufio.NewScanner(reader)
	m := mesh.New()
	name := ""
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			if name == "" && len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, "", fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var c [3]float64
			for i := range c {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, "", fmt.Errorf("line %d: invalid coordinate %q: %w", line, fields[i+1], err)
				}
				c[i] = v
			}
			m.AddVertex(geometry.NewVector3(c[0], c[1], c[2]))

		case "f":
			if len(fields) < 4 {
				return nil, "", fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := resolveIndex(ref, m.VertexCount())
				if err != nil {
					return nil, "", fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				m.AddFace(idx[0], idx[k], idx[k+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("error reading OBJ: %w", err)
	}

	return m, name, nil
}

func resolveIndex(ref string, count int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	i, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", ref)
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", i, count)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
