package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// WriteBinary writes the mesh as binary STL. The header carries the name,
// truncated to 80 bytes and never starting with "solid".
func WriteBinary(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, binaryHeaderSize)
	copy(header, "gochibi "+name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(m.FaceCount())); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, binaryTriangleSize)
	for i := range m.Faces {
		tri := m.Triangle(i)
		for k, v := range []geometry.Vector3{tri.Normal, tri.V1, tri.V2, tri.V3} {
			putVector32(record[k*12:], v)
		}
		// attribute byte count stays zero
		if _, err := bw.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteASCII writes the mesh as ASCII STL
func WriteASCII(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for i := range m.Faces {
		tri := m.Triangle(i)
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(tri.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

func putVector32(b []byte, v geometry.Vector3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}
