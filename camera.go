package gosiewalk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3

	FovY   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
}

func NewCamera(position mgl64.Vec3, fovY, near, far float64) *Camera {
	return &Camera{
		Position: position,
		Target:   position.Sub(mgl64.Vec3{0, 0, 1}),
		FovY:     fovY,
		Aspect:   1,
		Near:     near,
		Far:      far,
	}
}

func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
}

// LookAt orients the camera toward the target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
}

// SetViewport keeps the projection aspect ratio in line with the output size.
// Non-positive sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// ViewMatrix is the world to camera transform. The camera looks down -Z.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	forward := c.Target.Sub(c.Position)
	if forward.Len() < 1e-9 {
		return mgl64.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
	}

	up := worldUp
	if math.Abs(forward.Normalize().Dot(up)) > 0.9999 {
		// looking straight up or down
		up = mgl64.Vec3{0, 0, -1}
	}
	return mgl64.LookAtV(c.Position, c.Target, up)
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}
