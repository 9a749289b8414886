package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of radial residuals
}

// FitCircleToPoints3D fits a circle to points lying in a plane perpendicular
// to one of the model axes (0=X, 1=Y, 2=Z). The plane coordinate of the result
// is the mean of the points along that axis.
//
// The fit is the algebraic least-squares (Kåsa) fit: it minimizes
//
//	Σ (x² + y² + D·x + E·y + F)²
//
// which is a linear problem in D, E and F. The center is (-D/2, -E/2) and the
// radius is sqrt(cx² + cy² - F).
func FitCircleToPoints3D(points []Vector3, constraintAxis int) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}
	if constraintAxis < 0 || constraintAxis > 2 {
		return nil, fmt.Errorf("invalid constraint axis: %d (must be 0, 1, or 2)", constraintAxis)
	}

	u, w := planeAxes(constraintAxis)

	var sx, sy, sxx, syy, sxy, sxz, syz, sz, plane float64
	for _, p := range points {
		x, y := p.Component(u), p.Component(w)
		z := x*x + y*y
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
		sxz += x * z
		syz += y * z
		sz += z
		plane += p.Component(constraintAxis)
	}
	n := float64(len(points))

	// Normal equations for [D E F]
	a := [3][3]float64{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, n},
	}
	b := [3]float64{-sxz, -syz, -sz}

	det := det3(a)
	if math.Abs(det) < 1e-18 {
		return nil, fmt.Errorf("points are collinear")
	}

	var sol [3]float64
	for col := 0; col < 3; col++ {
		m := a
		for row := 0; row < 3; row++ {
			m[row][col] = b[row]
		}
		sol[col] = det3(m) / det
	}

	cx, cy := -sol[0]/2, -sol[1]/2
	r2 := cx*cx + cy*cy - sol[2]
	if r2 <= 0 {
		return nil, fmt.Errorf("degenerate circle fit")
	}
	radius := math.Sqrt(r2)

	var sumError float64
	for _, p := range points {
		dist := math.Hypot(p.Component(u)-cx, p.Component(w)-cy)
		sumError += (dist - radius) * (dist - radius)
	}

	var center, normal Vector3
	coords := [3]float64{}
	coords[u] = cx
	coords[w] = cy
	coords[constraintAxis] = plane / n
	center = NewVector3(coords[0], coords[1], coords[2])
	switch constraintAxis {
	case 0:
		normal = AxisX
	case 1:
		normal = AxisY
	default:
		normal = AxisZ
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: normal,
		StdDev: math.Sqrt(sumError / n),
	}, nil
}

// planeAxes returns the two in-plane axes for a constraint axis
func planeAxes(constraintAxis int) (int, int) {
	switch constraintAxis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
