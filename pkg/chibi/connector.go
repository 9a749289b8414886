package chibi

import (
	"fmt"
	"math"

	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// Nominal connector dimensions in model units
const (
	ConnectorRadius = 0.1
	SocketDepth     = 0.1
	InsertDepth     = 0.12
)

// SocketRadius is the printed radius of the female half.
//
// Tolerance is expected to be zero or negative: both halves move by the same
// amount in opposite directions around the nominal radius, so with a negative
// tolerance the insert ends up |2*tolerance| narrower than the socket. Fit
// tightness is chosen with the nominal radius, shrinkage compensation with the
// tolerance.
func SocketRadius(radius, tolerance float64) float64 {
	return radius - tolerance
}

// InsertRadius is the printed radius of the male half
func InsertRadius(radius, tolerance float64) float64 {
	return radius + tolerance
}

// MinTolerance is the most negative tolerance on a grid of step that still
// leaves the insert a positive radius at scale
func MinTolerance(scale, step float64) float64 {
	steps := math.Floor(ConnectorRadius*scale/step + 1e-9)
	return math.Min(0, -(steps-1)*step)
}

// Socket builds the female half: a cylinder of radius-tolerance centered at location
func Socket(location geometry.Vector3, radius, depth, tolerance float64) (*mesh.Mesh, error) {
	return connectorCylinder("socket", location, SocketRadius(radius, tolerance), depth)
}

// Insert builds the male half: a cylinder of radius+tolerance centered at
// location. Callers pass a depth longer than the socket's so the peg stands
// proud before trimming or gluing.
func Insert(location geometry.Vector3, radius, depth, tolerance float64) (*mesh.Mesh, error) {
	return connectorCylinder("insert", location, InsertRadius(radius, tolerance), depth)
}

func connectorCylinder(kind string, location geometry.Vector3, radius, depth float64) (*mesh.Mesh, error) {
	if radius <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %s radius %.4f depth %.4f", ErrDegenerateConnector, kind, radius, depth)
	}
	return mesh.Cylinder(radius, depth, mesh.DefaultSections).Translate(location), nil
}

// ConnectorPair is a socket and an insert generated together from one
// nominal radius and tolerance
type ConnectorPair struct {
	Joint       string
	Location    geometry.Vector3
	Radius      float64
	SocketDepth float64
	InsertDepth float64
	Tolerance   float64
	Socket      *mesh.Mesh
	Insert      *mesh.Mesh
}

// NewConnectorPair builds both halves at location
func NewConnectorPair(joint string, location geometry.Vector3, radius, socketDepth, insertDepth, tolerance float64) (*ConnectorPair, error) {
	socket, err := Socket(location, radius, socketDepth, tolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", joint, err)
	}
	insert, err := Insert(location, radius, insertDepth, tolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", joint, err)
	}

	return &ConnectorPair{
		Joint:       joint,
		Location:    location,
		Radius:      radius,
		SocketDepth: socketDepth,
		InsertDepth: insertDepth,
		Tolerance:   tolerance,
		Socket:      socket,
		Insert:      insert,
	}, nil
}

// SocketRadius returns the printed socket radius
func (p *ConnectorPair) SocketRadius() float64 {
	return SocketRadius(p.Radius, p.Tolerance)
}

// InsertRadius returns the printed insert radius
func (p *ConnectorPair) InsertRadius() float64 {
	return InsertRadius(p.Radius, p.Tolerance)
}

// Clearance is the radial gap between the halves; it equals -2*tolerance
func (p *ConnectorPair) Clearance() float64 {
	return p.SocketRadius() - p.InsertRadius()
}

// Fits reports whether the insert is no wider than the socket, which holds
// exactly when tolerance <= 0
func (p *ConnectorPair) Fits() bool {
	return p.InsertRadius() <= p.SocketRadius()
}
