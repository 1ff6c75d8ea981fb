package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

const DefaultAvatarSpeed = 8.0

// Avatar is the controllable character. Only AvatarController writes it.
type Avatar struct {
	Position mgl64.Vec3
	Yaw      float64
}

func NewAvatar(start mgl64.Vec3) *Avatar {
	return &Avatar{Position: start}
}

// Pose lets the renderer draw the avatar straight from its state.
func (a *Avatar) Pose() (mgl64.Vec3, float64) {
	return a.Position, a.Yaw
}

type AvatarController struct {
	Speed    float64
	Bindings Bindings
}

func NewAvatarController(speed float64, bindings Bindings) *AvatarController {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &AvatarController{
		Speed:    speed,
		Bindings: bindings,
	}
}

// Direction returns the raw movement direction. Each component is -1, 0 or 1;
// opposing actions cancel.
func (c *AvatarController) Direction(keys KeyState) GroundVec {
	var dir GroundVec
	if c.Bindings.Active(keys, MoveForward) {
		dir.Z -= 1
	}
	if c.Bindings.Active(keys, MoveBack) {
		dir.Z += 1
	}
	if c.Bindings.Active(keys, MoveLeft) {
		dir.X -= 1
	}
	if c.Bindings.Active(keys, MoveRight) {
		dir.X += 1
	}
	return dir
}

// Update moves the avatar for one frame. dt is expected to be clamped already.
// With no movement input the avatar keeps its position and facing.
func (c *AvatarController) Update(a *Avatar, keys KeyState, dt float64) {
	dir := c.Direction(keys)
	if dir.IsZero() {
		return
	}

	dir = dir.Normalize()
	a.Position = a.Position.Add(dir.Mult(c.Speed * dt).Vec3())
	a.Yaw = dir.Yaw()
}
