package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/gosiewalk"
)

var (
	configFlag   = flag.String("config", "", "path to a YAML config file (defaults are used when empty)")
	seedFlag     = flag.Int64("seed", 0, "world seed; overrides the config when non-zero")
	headlessFlag = flag.Bool("headless", false, "run the frame loop without a window")
	framesFlag   = flag.Int("frames", 120, "number of frames to run in headless mode")
	holdFlag     = flag.String("hold", "", "comma separated actions held in headless mode, e.g. forward,right")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().UnixNano()
	}
	log.Printf("World seed: %d", cfg.World.Seed)
	rng := rand.New(rand.NewSource(cfg.World.Seed))

	if *headlessFlag {
		if err := runHeadless(cfg, rng); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := gosiewalk.NewGame(cfg, rng)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	// one Update per display refresh
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(fmt.Errorf("run game: %w", err))
	}
}

func loadConfig(path string) (*gosiewalk.Config, error) {
	if path == "" {
		log.Println("Using default config")
		return gosiewalk.DefaultConfig(), nil
	}
	log.Printf("Loading config from %s", path)
	cfg, err := gosiewalk.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func runHeadless(cfg *gosiewalk.Config, rng *rand.Rand) error {
	session := gosiewalk.NewSession(cfg, rng, nil)

	bindings := gosiewalk.DefaultBindings()
	if *holdFlag != "" {
		for _, name := range strings.Split(*holdFlag, ",") {
			action, err := gosiewalk.ParseAction(name)
			if err != nil {
				return err
			}
			session.Keys.Press(bindings[action][0])
		}
	}

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	log.Printf("Running %d headless frames", *framesFlag)
	if err := session.Driver.Run(context.Background(), ticker.C, *framesFlag); err != nil {
		return err
	}

	a := session.Avatar
	log.Printf("Frames: %d", session.Driver.Frames())
	log.Printf("Avatar: (%.3f, %.3f, %.3f) yaw %.1f deg", a.Position[0], a.Position[1], a.Position[2], mgl64.RadToDeg(a.Yaw))
	c := session.Camera.Position
	log.Printf("Camera: (%.3f, %.3f, %.3f)", c[0], c[1], c[2])
	return nil
}
