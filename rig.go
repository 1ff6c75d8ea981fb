package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

var (
	DefaultCameraOffset = mgl64.Vec3{0, 4, 8}
)

const (
	DefaultCameraBlend = 0.1
	DefaultLookHeight  = 0.7
)

// CameraRig follows a target from a fixed offset.
//
// Blend is applied once per frame and is not scaled by dt, so the camera
// catches up faster in wall-clock time at higher frame rates.
type CameraRig struct {
	Offset     mgl64.Vec3
	Blend      float64
	LookHeight float64
}

func NewCameraRig(offset mgl64.Vec3, blend, lookHeight float64) *CameraRig {
	return &CameraRig{
		Offset:     offset,
		Blend:      blend,
		LookHeight: lookHeight,
	}
}

// Desired is where the camera would sit with no smoothing.
func (r *CameraRig) Desired(target mgl64.Vec3) mgl64.Vec3 {
	return target.Add(r.Offset)
}

func (r *CameraRig) Update(cam *Camera, target mgl64.Vec3) {
	cam.SetPosition(lerp3(cam.Position, r.Desired(target), r.Blend))
	cam.LookAt(target.Add(mgl64.Vec3{0, r.LookHeight, 0}))
}
