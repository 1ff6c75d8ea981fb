package gosiewalk

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.World.Seed = 3
	cfg.World.Buildings = 5
	clock := &fakeClock{now: time.Unix(100, 0)}
	return NewSession(cfg, rand.New(rand.NewSource(cfg.World.Seed)), clock), clock
}

func TestNewSessionStartState(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Avatar.Position != (mgl64.Vec3{0, 0.5, 0}) {
		t.Errorf("avatar starts at %v", s.Avatar.Position)
	}
	if !vecAlmostEqual(s.Camera.Position, mgl64.Vec3{0, 4.5, 8}) {
		t.Errorf("camera starts at %v", s.Camera.Position)
	}
	if !vecAlmostEqual(s.Camera.Target, mgl64.Vec3{0, 1.2, 0}) {
		t.Errorf("camera target %v", s.Camera.Target)
	}
	if got := s.Scene.StaticCount(); got != 7 {
		t.Errorf("StaticCount() = %d, want 7", got)
	}
	if got := len(s.Scene.Objects()); got != 9 {
		t.Errorf("scene has %d objects, want 9 with the avatar", got)
	}
}

func TestSessionTickRenders(t *testing.T) {
	s, clock := newTestSession(t)
	s.Keys.Press(ebiten.KeyS)

	clock.Advance(16 * time.Millisecond)
	s.Driver.Tick()

	if s.Avatar.Position[2] <= 0 {
		t.Errorf("avatar did not move back: %v", s.Avatar.Position)
	}
	if s.Renderer.PolygonCount() == 0 {
		t.Error("frame rendered no polygons")
	}
}

func TestSessionResize(t *testing.T) {
	s, _ := newTestSession(t)
	s.Resize(400, 400)

	if !almostEqual(s.Camera.Aspect, 1) {
		t.Errorf("aspect = %v, want 1", s.Camera.Aspect)
	}
	if w, h := s.Renderer.Size(); w != 400 || h != 400 {
		t.Errorf("renderer size %dx%d", w, h)
	}
}

func TestHUDText(t *testing.T) {
	s, _ := newTestSession(t)
	s.Avatar.Yaw = 3.141592653589793

	got := hudText(59.5, s)
	for _, want := range []string{"FPS: 59.50", "avatar (0.00, 0.50, 0.00)", "yaw 180.0°", "camera (0.00, 4.50, 8.00)"} {
		if !strings.Contains(got, want) {
			t.Errorf("hud text %q missing %q", got, want)
		}
	}
}
