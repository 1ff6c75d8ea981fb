package gosiewalk

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var skyColor = color.RGBA{R: 0x87, G: 0xb5, B: 0xe0, A: 0xff}

// Session wires the avatar, camera, scene and frame driver together. It does
// not touch the window, so it also runs headless.
type Session struct {
	Keys     *KeySet
	Avatar   *Avatar
	Camera   *Camera
	Scene    *Scene
	Renderer *SoftwareRenderer
	Driver   *FrameDriver
}

func NewSession(cfg *Config, rng RandSource, clock Clock) *Session {
	s := &Session{Keys: NewKeySet()}

	s.Avatar = NewAvatar(vec3FromSlice(cfg.Avatar.Start))

	rig := NewCameraRig(vec3FromSlice(cfg.Camera.Offset), cfg.Camera.Blend, cfg.Camera.LookHeight)
	s.Camera = NewCamera(rig.Desired(s.Avatar.Position), cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far)
	s.Camera.SetViewport(cfg.Window.Width, cfg.Window.Height)
	rig.Update(s.Camera, s.Avatar.Position)

	s.Scene = NewScene(BuildWorld(cfg.World, rng))
	for _, obj := range NewAvatarObjects(s.Avatar) {
		s.Scene.Add(obj)
	}

	s.Renderer = NewSoftwareRenderer(cfg.Window.Width, cfg.Window.Height)

	control := NewAvatarController(cfg.Avatar.Speed, DefaultBindings())
	s.Driver = NewFrameDriver(clock, s.Keys, s.Avatar, control, rig, s.Camera, s.Scene, s.Renderer)
	s.Driver.MaxStep = cfg.Frame.MaxStep

	return s
}

// Resize keeps the camera aspect and the render output in line with the viewport.
func (s *Session) Resize(width, height int) {
	s.Camera.SetViewport(width, height)
	s.Renderer.SetViewport(width, height)
}

// Game adapts a Session to ebiten. ebiten calls Update once per display
// refresh and never concurrently with Draw.
type Game struct {
	session      *Session
	feed         EbitenKeyFeed
	hud          *hud
	layoutWidth  int
	layoutHeight int
}

func NewGame(cfg *Config, rng RandSource) (*Game, error) {
	log.Println("Initializing scene...")
	h, err := newHUD()
	if err != nil {
		return nil, err
	}
	g := &Game{
		session:      NewSession(cfg, rng, nil),
		hud:          h,
		layoutWidth:  cfg.Window.Width,
		layoutHeight: cfg.Window.Height,
	}
	log.Printf("Initialization complete: %d static objects", g.session.Scene.StaticCount())
	return g, nil
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Update() error {
	g.feed.Poll(g.session.Keys)
	g.session.Driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.session.Renderer.Flush(screen)
	g.hud.Draw(screen, g.session)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.layoutWidth || outsideHeight != g.layoutHeight) {
		g.layoutWidth, g.layoutHeight = outsideWidth, outsideHeight
		g.session.Resize(outsideWidth, outsideHeight)
	}
	return g.layoutWidth, g.layoutHeight
}
