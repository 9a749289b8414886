package chibi

import (
	"github.com/philipparndt/gochibi/pkg/geometry"
	"github.com/philipparndt/gochibi/pkg/mesh"
)

// Proportions in model units; every builder multiplies them by scale.
const (
	headRadius   = 0.8
	headFlatten  = 0.9
	eyeRadius    = 0.1
	pupilRadius  = 0.06
	pupilRaise   = 0.02 // absolute, not scaled
	eyeOffsetX   = 0.3
	eyeHeight    = 0.4
	shortHairR   = 0.85
	shortHairUp  = 0.1
	longHairR    = 0.7
	longHairH    = 0.3
	longHairZ    = 0.5
	torsoZ       = 1.2
	armRadius    = 0.15
	armLength    = 1.0
	armOffsetX   = 0.5
	armZ         = 1.2
	legRadius    = 0.18
	legLength    = 1.5
	legOffsetX   = 0.25
	legZ         = 0.3
	handRadius   = 0.12
	handZ        = 0.2
	footRadius   = 0.15
	footZ        = -0.8
	footWiden    = 1.5
	footFlatten  = 0.5
)

var torsoExtents = geometry.NewVector3(0.6, 0.4, 0.8)

// Head is a sphere flattened along the vertical axis
func Head(scale float64) *mesh.Mesh {
	return mesh.Sphere(headRadius*scale).
		Scale(geometry.NewVector3(1, 1, headFlatten))
}

// Eyes returns the eye white and the pupil for one side. The pupil sits a
// little higher than the white.
func Eyes(side Side, scale float64) (white, pupil *mesh.Mesh) {
	center := geometry.NewVector3(side.Sign()*eyeOffsetX*scale, 0, eyeHeight*scale)

	white = mesh.Sphere(eyeRadius * scale).Translate(center)
	pupil = mesh.Sphere(pupilRadius * scale).
		Translate(center.Add(geometry.NewVector3(0, 0, pupilRaise)))
	return white, pupil
}

// Hair builds the hair for a style; HairNone yields an empty mesh
func Hair(style HairStyle, scale float64) (*mesh.Mesh, error) {
	style, err := ParseHairStyle(string(style))
	if err != nil {
		return nil, err
	}
	switch style {
	case HairShort:
		return mesh.Sphere(shortHairR*scale).
			Translate(geometry.NewVector3(0, 0, shortHairUp*scale)), nil
	case HairLong:
		return mesh.Cylinder(longHairR*scale, longHairH*scale, mesh.DefaultSections).
			Translate(geometry.NewVector3(0, 0, longHairZ*scale)), nil
	default:
		return mesh.New(), nil
	}
}

// Torso is a box centered at torso height
func Torso(scale float64) *mesh.Mesh {
	return mesh.Box(torsoExtents.Mul(scale)).
		Translate(geometry.NewVector3(0, 0, torsoZ*scale))
}

// Arm is a vertical cylinder hanging at the shoulder
func Arm(side Side, scale float64) *mesh.Mesh {
	return limb(armRadius*scale, armLength*scale,
		geometry.NewVector3(side.Sign()*armOffsetX*scale, 0, armZ*scale))
}

// Leg is a vertical cylinder below the hip
func Leg(side Side, scale float64) *mesh.Mesh {
	return limb(legRadius*scale, legLength*scale,
		geometry.NewVector3(side.Sign()*legOffsetX*scale, 0, legZ*scale))
}

// Hand is a sphere below the arm
func Hand(side Side, scale float64) *mesh.Mesh {
	return mesh.Sphere(handRadius * scale).
		Translate(geometry.NewVector3(side.Sign()*armOffsetX*scale, 0, handZ*scale))
}

// Foot is a sphere stretched in depth and flattened vertically
func Foot(side Side, scale float64) *mesh.Mesh {
	return mesh.Sphere(footRadius*scale).
		Scale(geometry.NewVector3(1, footWiden, footFlatten)).
		Translate(geometry.NewVector3(side.Sign()*legOffsetX*scale, 0, footZ*scale))
}

// limb builds a cylinder centered on anchor. The model is Z-up and
// mesh.Cylinder already runs along Z, so limbs need no rotation.
func limb(radius, length float64, anchor geometry.Vector3) *mesh.Mesh {
	return mesh.Cylinder(radius, length, mesh.DefaultSections).Translate(anchor)
}
