package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// MeasurementResult contains various measurements of a part mesh
type MeasurementResult struct {
	Name          string
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // enclosed volume of the closed surface
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	EdgeCount     int // unique undirected edges
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(name string, m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		Name:          name,
		BoundingBox:   m.BoundingBox(),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.FaceCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	for i := range m.Faces {
		tri := m.Triangle(i)
		result.SurfaceArea += tri.Area()
		result.Volume += tri.SignedVolume()
	}

	// Each undirected edge counted once
	seen := make(map[[2]int]bool)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true

			length := m.Vertices[a].Distance(m.Vertices[b])
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(seen)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// AnalyzeParts analyzes every part, sorted by name
func AnalyzeParts(parts chibi.PartCollection) []*MeasurementResult {
	results := make([]*MeasurementResult, 0, len(parts))
	for _, name := range parts.Names() {
		results = append(results, AnalyzeMesh(name, parts[name].Mesh))
	}
	return results
}

// FitRadius fits a circle to the rim of a cylinder whose axis is parallel to
// the given model axis (0=X, 1=Y, 2=Z). The rim is the set of vertices on the
// cap plane at the maximum along that axis, excluding the cap center.
func FitRadius(m *mesh.Mesh, axis int) (float64, error) {
	if m.IsEmpty() {
		return 0, fmt.Errorf("mesh is empty")
	}

	bbox := m.BoundingBox()
	top := bbox.Max.Component(axis)
	center := bbox.Center()
	const eps = 1e-9

	var rim []geometry.Vector3
	for _, v := range m.Vertices {
		if math.Abs(v.Component(axis)-top) > eps {
			continue
		}
		offset := v.Sub(center)
		axial := offset.Component(axis)
		if offset.Length()*offset.Length()-axial*axial <= eps*eps {
			continue
		}
		rim = append(rim, v)
	}

	fit, err := geometry.FitCircleToPoints3D(rim, axis)
	if err != nil {
		return 0, fmt.Errorf("fitting rim: %w", err)
	}
	return fit.Radius, nil
}

// ConnectorReport describes one connector pair as printed
type ConnectorReport struct {
	Joint        string
	SocketRadius float64
	InsertRadius float64
	Clearance    float64
	Fits         bool
}

// AnalyzeConnectors measures socket and insert radii from the generated meshes
func AnalyzeConnectors(parts chibi.PartCollection, scale float64) ([]ConnectorReport, error) {
	var reports []ConnectorReport
	for _, j := range chibi.Joints(scale) {
		socket, insert := parts.Mesh(j.SocketName()), parts.Mesh(j.InsertName())
		if socket == nil || insert == nil {
			return nil, fmt.Errorf("missing connector parts for %s", j.Label())
		}

		sr, err := FitRadius(socket, 2)
		if err != nil {
			return nil, fmt.Errorf("%s socket: %w", j.Label(), err)
		}
		ir, err := FitRadius(insert, 2)
		if err != nil {
			return nil, fmt.Errorf("%s insert: %w", j.Label(), err)
		}

		reports = append(reports, ConnectorReport{
			Joint:        j.Label(),
			SocketRadius: sr,
			InsertRadius: ir,
			Clearance:    sr - ir,
			Fits:         ir <= sr,
		})
	}
	return reports, nil
}

// FindLargestParts returns the N parts with the largest surface area
func FindLargestParts(results []*MeasurementResult, count int) []*MeasurementResult {
	sorted := make([]*MeasurementResult, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SurfaceArea > sorted[j].SurfaceArea
	})

	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
