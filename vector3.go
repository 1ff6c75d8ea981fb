package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

// lerp3 moves a toward b by the fraction t.
func lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func vec3FromSlice(v []float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// midpoint of a polygon
func midpoint(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}

	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}
