package gosiewalk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraRigConvergesGeometrically(t *testing.T) {
	rig := NewCameraRig(DefaultCameraOffset, DefaultCameraBlend, DefaultLookHeight)
	avatar := mgl64.Vec3{}
	desired := rig.Desired(avatar)

	cam := NewCamera(desired.Add(mgl64.Vec3{10, 0, 0}), 60, 0.1, 500)

	for n := 1; n <= 10; n++ {
		rig.Update(cam, avatar)
		dist := cam.Position.Sub(desired).Len()
		want := 10 * math.Pow(0.9, float64(n))
		if !almostEqual(dist, want) {
			t.Fatalf("frame %d: distance %v, want %v", n, dist, want)
		}
	}

	if d := cam.Position.Sub(desired).Len(); math.Abs(d-3.49) > 0.01 {
		t.Errorf("distance after 10 frames = %v, want about 3.49", d)
	}
}

func TestCameraRigTarget(t *testing.T) {
	rig := NewCameraRig(DefaultCameraOffset, DefaultCameraBlend, DefaultLookHeight)
	cam := NewCamera(mgl64.Vec3{0, 4.5, 8}, 60, 0.1, 500)
	avatar := mgl64.Vec3{3, 0.5, -2}

	rig.Update(cam, avatar)

	want := mgl64.Vec3{3, 1.2, -2}
	if !vecAlmostEqual(cam.Target, want) {
		t.Errorf("target = %v, want %v", cam.Target, want)
	}
}

func TestCameraRigAtRestStaysPut(t *testing.T) {
	rig := NewCameraRig(DefaultCameraOffset, DefaultCameraBlend, DefaultLookHeight)
	avatar := mgl64.Vec3{0, 0.5, 0}
	cam := NewCamera(mgl64.Vec3{0, 4.5, 8}, 60, 0.1, 500)

	rig.Update(cam, avatar)

	if !vecAlmostEqual(cam.Position, mgl64.Vec3{0, 4.5, 8}) {
		t.Errorf("camera drifted to %v", cam.Position)
	}
}

func TestLerp3(t *testing.T) {
	got := lerp3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, -20, 5}, 0.1)
	if !vecAlmostEqual(got, mgl64.Vec3{1, -2, 0.5}) {
		t.Errorf("lerp3() = %v", got)
	}
}
