package gosiewalk

import (
	"context"
	"time"
)

const DefaultMaxStep = 0.033

// Clock supplies wall-clock time to the frame driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FrameDriver runs one update per tick: avatar, then camera, then render.
type FrameDriver struct {
	Keys     KeyState
	Avatar   *Avatar
	Control  *AvatarController
	Rig      *CameraRig
	Camera   *Camera
	Scene    *Scene
	Renderer Renderer
	MaxStep  float64

	clock  Clock
	last   time.Time
	frames int
	lastDt float64
}

// NewFrameDriver starts timing from now. A nil clock uses the system clock.
func NewFrameDriver(clock Clock, keys KeyState, avatar *Avatar, control *AvatarController, rig *CameraRig, cam *Camera, scene *Scene, renderer Renderer) *FrameDriver {
	if clock == nil {
		clock = systemClock{}
	}
	return &FrameDriver{
		Keys:     keys,
		Avatar:   avatar,
		Control:  control,
		Rig:      rig,
		Camera:   cam,
		Scene:    scene,
		Renderer: renderer,
		MaxStep:  DefaultMaxStep,
		clock:    clock,
		last:     clock.Now(),
	}
}

// ClampStep converts a raw frame interval to seconds in [0, maxStep].
func ClampStep(raw time.Duration, maxStep float64) float64 {
	return clampFloat(raw.Seconds(), 0, maxStep)
}

// Tick samples the clock and runs one frame.
func (d *FrameDriver) Tick() {
	now := d.clock.Now()
	raw := now.Sub(d.last)
	d.last = now

	d.Step(ClampStep(raw, d.MaxStep))
}

// Step runs one frame with an already clamped dt.
func (d *FrameDriver) Step(dt float64) {
	d.lastDt = dt
	d.Control.Update(d.Avatar, d.Keys, dt)
	d.Rig.Update(d.Camera, d.Avatar.Position)
	if d.Renderer != nil {
		d.Renderer.Render(d.Scene, d.Camera)
	}
	d.frames++
}

func (d *FrameDriver) Frames() int {
	return d.frames
}

// LastStep is the dt used by the most recent frame.
func (d *FrameDriver) LastStep() float64 {
	return d.lastDt
}

// Run ticks once per value received from refresh until ctx is done, the
// channel closes, or maxFrames ticks have run (0 means no limit).
func (d *FrameDriver) Run(ctx context.Context, refresh <-chan time.Time, maxFrames int) error {
	for ran := 0; maxFrames <= 0 || ran < maxFrames; ran++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-refresh:
			if !ok {
				return nil
			}
			d.Tick()
		}
	}
	return nil
}
