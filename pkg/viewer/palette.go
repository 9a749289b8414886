package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/gochibi/pkg/geometry"
)

var palette = []color.NRGBA{
	{R: 0xe0, G: 0x8e, B: 0x79, A: 0xff},
	{R: 0x8e, G: 0xb8, B: 0xe5, A: 0xff},
	{R: 0x9b, G: 0xd1, B: 0x8b, A: 0xff},
	{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff},
	{R: 0xc3, G: 0x9b, B: 0xd3, A: 0xff},
	{R: 0x7f, G: 0xcd, B: 0xc4, A: 0xff},
}

// lightDir points from the light into the scene: from above, front left
var lightDir = geometry.NewVector3(0.5, 1.0, -1.0).Normalize()

// PartColor returns the display color for the i-th part in name order
func PartColor(i int) color.NRGBA {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// Shade scales base by a diffuse term for a face normal, never below 30%
func Shade(base color.NRGBA, normal geometry.Vector3) color.NRGBA {
	return Dim(base, math.Max(0.3, -normal.Normalize().Dot(lightDir)))
}

// Dim scales the color channels by f, clamped to [0, 1]
func Dim(c color.NRGBA, f float64) color.NRGBA {
	f = math.Max(0, math.Min(1, f))
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
