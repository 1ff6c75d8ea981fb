package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

// View space looks down -Z, so a point is in front of the near plane when
// -z >= near.

func inFront(p mgl64.Vec3, near float64) bool {
	return -p[2] >= near
}

// clipPolygonAgainstNearPlane keeps the part of a convex polygon that lies in
// front of the near plane.
func clipPolygonAgainstNearPlane(points []mgl64.Vec3, near float64) []mgl64.Vec3 {
	if len(points) == 0 {
		return nil
	}

	out := make([]mgl64.Vec3, 0, len(points)+1)
	prev := points[len(points)-1]
	prevIn := inFront(prev, near)
	for _, cur := range points {
		curIn := inFront(cur, near)
		if curIn != prevIn {
			out = append(out, intersectNearPlane(prev, cur, near))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// clipSegmentAgainstNearPlane returns false when the whole segment is behind
// the near plane.
func clipSegmentAgainstNearPlane(a, b mgl64.Vec3, near float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	aIn, bIn := inFront(a, near), inFront(b, near)
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	case aIn:
		return a, intersectNearPlane(a, b, near), true
	default:
		return intersectNearPlane(a, b, near), b, true
	}
}

// intersectNearPlane finds where a-b crosses z = -near. A segment parallel to
// the plane returns a.
func intersectNearPlane(a, b mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := b[2] - a[2]
	if dz == 0 {
		return a
	}
	t := (-near - a[2]) / dz
	return lerp3(a, b, t)
}
