package chibi

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// Part is one named, independently printable mesh
type Part struct {
	Name string
	Mesh *mesh.Mesh
}

// PartCollection maps part names to parts. Each generation call returns a
// new collection that shares nothing with earlier ones.
type PartCollection map[string]*Part

// Names returns the part names in sorted order
func (pc PartCollection) Names() []string {
	names := make([]string, 0, len(pc))
	for name := range pc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mesh returns the mesh for a part name, or nil
func (pc PartCollection) Mesh(name string) *mesh.Mesh {
	if p, ok := pc[name]; ok {
		return p.Mesh
	}
	return nil
}

// BoundingBox returns the box around every part
func (pc PartCollection) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range pc {
		bbox.Union(p.Mesh.BoundingBox())
	}
	return bbox
}

func (pc PartCollection) add(name string, m *mesh.Mesh) {
	pc[name] = &Part{Name: name, Mesh: m}
}

// Joint is a connector location. Side is empty for the neck.
type Joint struct {
	Name     string
	Side     Side
	Location geometry.Vector3
}

// Label is the joint name with its side, e.g. hip_left
func (j Joint) Label() string {
	if j.Side == "" {
		return j.Name
	}
	return j.Side.suffixed(j.Name)
}

// SocketName returns the part key of the joint's socket
func (j Joint) SocketName() string {
	return j.partName("socket")
}

// InsertName returns the part key of the joint's insert
func (j Joint) InsertName() string {
	return j.partName("insert")
}

func (j Joint) partName(kind string) string {
	name := j.Name + "_" + kind
	if j.Side != "" {
		name = j.Side.suffixed(name)
	}
	return name
}

// Joints lists the connector locations: the neck above the torso, the top
// of each arm and the top of each leg.
func Joints(scale float64) []Joint {
	joints := []Joint{
		{Name: "neck", Location: geometry.NewVector3(0, 0, 1.8*scale)},
	}
	for _, side := range Sides {
		joints = append(joints, Joint{
			Name:     "shoulder",
			Side:     side,
			Location: geometry.NewVector3(side.Sign()*armOffsetX*scale, 0, (armZ+armLength/2)*scale),
		})
	}
	for _, side := range Sides {
		joints = append(joints, Joint{
			Name:     "hip",
			Side:     side,
			Location: geometry.NewVector3(side.Sign()*legOffsetX*scale, 0, (legZ+legLength/2)*scale),
		})
	}
	return joints
}

// Connectors builds one socket/insert pair per joint
func Connectors(cfg Configuration) ([]*ConnectorPair, error) {
	joints := Joints(cfg.Scale)
	pairs := make([]*ConnectorPair, 0, len(joints))
	for _, j := range joints {
		pair, err := NewConnectorPair(j.Label(), j.Location,
			ConnectorRadius*cfg.Scale, SocketDepth*cfg.Scale, InsertDepth*cfg.Scale, cfg.Tolerance)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// GenerateFullModel builds every part for the configuration. Hair is left
// out entirely when the style is none. The result is a deterministic
// function of the configuration values.
func GenerateFullModel(cfg Configuration) (PartCollection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	// Validate accepted the style, so only its case can differ
	cfg.HairStyle, _ = ParseHairStyle(string(cfg.HairStyle))
	s := cfg.Scale
	parts := make(PartCollection)

	parts.add("head", Head(s))

	for _, side := range Sides {
		white, pupil := Eyes(side, s)
		parts.add(side.suffixed("eye"), white)
		parts.add(side.suffixed("pupil"), pupil)
	}

	if cfg.HairStyle != HairNone {
		hair, err := Hair(cfg.HairStyle, s)
		if err != nil {
			return nil, err
		}
		parts.add("hair", hair)
	}

	parts.add("torso", Torso(s))

	for _, side := range Sides {
		parts.add(side.suffixed("arm"), Arm(side, s))
		parts.add(side.suffixed("leg"), Leg(side, s))
		parts.add(side.suffixed("hand"), Hand(side, s))
		parts.add(side.suffixed("foot"), Foot(side, s))
	}

	pairs, err := Connectors(cfg)
	if err != nil {
		return nil, err
	}
	for i, j := range Joints(s) {
		parts.add(j.SocketName(), pairs[i].Socket)
		parts.add(j.InsertName(), pairs[i].Insert)
	}

	return parts, nil
}
