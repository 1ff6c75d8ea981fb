package gosiewalk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GroundVec is a direction on the ground plane. X is world x, Z is world z.
type GroundVec struct {
	X float64
	Z float64
}

func (v GroundVec) IsZero() bool {
	return v.X == 0 && v.Z == 0
}

func (v GroundVec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

func (v GroundVec) Normalize() GroundVec {
	magnitude := v.Len()

	if magnitude == 0 {
		return GroundVec{}
	}

	return GroundVec{X: v.X / magnitude, Z: v.Z / magnitude}
}

// mult by scalar
func (v GroundVec) Mult(scalar float64) GroundVec {
	return GroundVec{
		X: v.X * scalar,
		Z: v.Z * scalar,
	}
}

// Yaw is the rotation about +Y that turns local +Z onto this direction.
func (v GroundVec) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

func (v GroundVec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, 0, v.Z}
}
