package gosiewalk

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// The minimum brightness for any surface.
	ambientLight = 0.65
	// Light available on top of the ambient term.
	directLightAmount = 1.0 - ambientLight
	minChannel        = 7
)

// sunDirection points from the scene toward the light.
var sunDirection = mgl64.Vec3{0.5, 1, 0.3}.Normalize()

// shadeColor darkens base by how far the world space normal turns away from
// the light.
func shadeColor(normal, toLight mgl64.Vec3, base color.RGBA) color.RGBA {
	diffuseFactor := normal.Dot(toLight)
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}
	finalBrightness := ambientLight + diffuseFactor*directLightAmount

	// A brightness of 1.0 means no color change (subtract 0).
	c := 240 - int(finalBrightness*240)

	r1 := clamp(int(base.R)-c, minChannel, 255)
	g1 := clamp(int(base.G)-c, minChannel, 255)
	b1 := clamp(int(base.B)-c, minChannel, 255)
	return color.RGBA{R: uint8(r1), G: uint8(g1), B: uint8(b1), A: base.A}
}
