package gosiewalk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraSetViewport(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{}, 60, 0.1, 100)

	cam.SetViewport(1280, 720)
	if !almostEqual(cam.Aspect, 1280.0/720.0) {
		t.Errorf("aspect = %v", cam.Aspect)
	}

	cam.SetViewport(0, 720)
	cam.SetViewport(800, -1)
	if !almostEqual(cam.Aspect, 1280.0/720.0) {
		t.Errorf("invalid viewport changed aspect to %v", cam.Aspect)
	}
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 4.5, 8}, 60, 0.1, 100)
	cam.LookAt(mgl64.Vec3{0, 0.7, 0})

	view := cam.ViewMatrix()

	// the target ends up straight ahead on -Z
	target := mgl64.TransformCoordinate(cam.Target, view)
	if !almostEqual(target[0], 0) || !almostEqual(target[1], 0) || target[2] >= 0 {
		t.Errorf("target in view space = %v", target)
	}
	wantDist := cam.Target.Sub(cam.Position).Len()
	if !almostEqual(-target[2], wantDist) {
		t.Errorf("target depth = %v, want %v", -target[2], wantDist)
	}

	eye := mgl64.TransformCoordinate(cam.Position, view)
	if !vecAlmostEqual(eye, mgl64.Vec3{}) {
		t.Errorf("camera position in view space = %v, want origin", eye)
	}
}

func TestCameraViewMatrixDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
	}{
		{"target on camera", mgl64.Vec3{1, 2, 3}},
		{"straight down", mgl64.Vec3{1, -5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(mgl64.Vec3{1, 2, 3}, 60, 0.1, 100)
			cam.LookAt(tt.target)
			m := cam.ViewMatrix()
			for i, v := range m {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("view matrix element %d = %v", i, v)
				}
			}
		})
	}
}
