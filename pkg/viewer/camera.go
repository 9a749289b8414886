package viewer

import (
	"math"

	"github.com/philipparndt/gochibi/pkg/geometry"
)

const maxElevation = math.Pi/2 - 0.1

// Camera orbits a target in the model frame, where Z is up and the figure
// faces -Y.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // vertical field of view in radians
	Distance  float64
	Elevation float64 // angle above the XY plane
	Azimuth   float64 // angle around Z, 0 looks at the front
}

// NewCamera creates a camera in front of the box, far enough to frame it
func NewCamera(bbox geometry.BoundingBox) *Camera {
	size := bbox.Size()
	extent := math.Max(size.X, math.Max(size.Y, size.Z))
	if extent == 0 {
		extent = 1
	}

	c := &Camera{
		Target:    bbox.Center(),
		Up:        geometry.AxisZ,
		FOV:       math.Pi / 4,
		Distance:  extent * 2.0,
		Elevation: 0.2,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera from its orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Elevation) * math.Sin(c.Azimuth)
	y := -c.Distance * math.Cos(c.Elevation) * math.Cos(c.Azimuth)
	z := c.Distance * math.Sin(c.Elevation)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits by the given elevation and azimuth deltas
func (c *Camera) Rotate(deltaElevation, deltaAzimuth float64) {
	c.Elevation = math.Max(-maxElevation, math.Min(maxElevation, c.Elevation+deltaElevation))
	c.Azimuth = math.Mod(c.Azimuth+deltaAzimuth, 2*math.Pi)
	c.UpdatePosition()
}

// Zoom scales the distance by 1+delta
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project maps a point to screen coordinates and returns its depth along
// the view direction. Points behind the camera have depth <= 0.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	depth := relative.Dot(forward)

	z := math.Max(depth, 0.01)
	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2

	return screenX, screenY, depth
}

// Pan moves the target in the view plane by screen-space deltas in pixels
func (c *Camera) Pan(dx, dy float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	speed := c.Distance * 0.001
	c.Target = c.Target.Add(right.Mul(-dx * speed)).Add(up.Mul(dy * speed))
	c.UpdatePosition()
}

// View is a preset camera direction
type View int

const (
	ViewFront View = iota
	ViewBack
	ViewLeft
	ViewRight
	ViewTop
)

// SetView turns the camera to a preset direction, keeping distance and target
func (c *Camera) SetView(v View) {
	c.Elevation = 0
	switch v {
	case ViewFront:
		c.Azimuth = 0
	case ViewBack:
		c.Azimuth = math.Pi
	case ViewLeft:
		c.Azimuth = -math.Pi / 2
	case ViewRight:
		c.Azimuth = math.Pi / 2
	case ViewTop:
		c.Azimuth = 0
		c.Elevation = maxElevation
	}
	c.UpdatePosition()
}
