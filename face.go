package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

// Face is a convex planar polygon in object space, wound counter-clockwise
// when seen from the side its normal points to.
type Face struct {
	Points []mgl64.Vec3
	Normal mgl64.Vec3
}

func NewFace(points ...mgl64.Vec3) Face {
	f := Face{Points: points}
	f.createNormal()
	return f
}

func (f *Face) createNormal() {
	if len(f.Points) < 3 {
		f.Normal = mgl64.Vec3{0, 0, 1}
		return
	}

	u := f.Points[1].Sub(f.Points[0])
	v := f.Points[2].Sub(f.Points[1])
	n := u.Cross(v)
	if n.Len() == 0 {
		f.Normal = mgl64.Vec3{0, 0, 1}
		return
	}
	f.Normal = n.Normalize()
}

// get midpoint of the face
func (f *Face) MidPoint() mgl64.Vec3 {
	return midpoint(f.Points)
}
