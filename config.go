package gosiewalk

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Avatar AvatarConfig `yaml:"avatar"`
	Camera CameraConfig `yaml:"camera"`
	Frame  FrameConfig  `yaml:"frame"`
	World  WorldConfig  `yaml:"world"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AvatarConfig struct {
	Speed float64   `yaml:"speed"`
	Start []float64 `yaml:"start"`
}

type CameraConfig struct {
	Offset     []float64 `yaml:"offset"`
	Blend      float64   `yaml:"blend"`
	LookHeight float64   `yaml:"look_height"`
	Fov        float64   `yaml:"fov"`
	Near       float64   `yaml:"near"`
	Far        float64   `yaml:"far"`
}

type FrameConfig struct {
	MaxStep float64 `yaml:"max_step"`
}

type WorldConfig struct {
	Seed           int64   `yaml:"seed"` // 0 picks a seed from the clock
	Buildings      int     `yaml:"buildings"`
	Extent         float64 `yaml:"extent"`
	GroundSize     float64 `yaml:"ground_size"`
	GridDivisions  int     `yaml:"grid_divisions"`
	SpawnClearance float64 `yaml:"spawn_clearance"`
	NoiseScale     float64 `yaml:"noise_scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "gosiewalk",
		},
		Avatar: AvatarConfig{
			Speed: DefaultAvatarSpeed,
			Start: []float64{0, 0.5, 0},
		},
		Camera: CameraConfig{
			Offset:     append([]float64(nil), DefaultCameraOffset[:]...),
			Blend:      DefaultCameraBlend,
			LookHeight: DefaultLookHeight,
			Fov:        60,
			Near:       0.1,
			Far:        500,
		},
		Frame: FrameConfig{
			MaxStep: DefaultMaxStep,
		},
		World: WorldConfig{
			Buildings:      40,
			Extent:         60,
			GroundSize:     200,
			GridDivisions:  100,
			SpawnClearance: 6,
			NoiseScale:     25,
		},
	}
}

// LoadConfig reads a YAML file over the defaults, so keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// fresh slices so a short list in the file is not merged into a default
	cfg.Avatar.Start = nil
	cfg.Camera.Offset = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defaults := DefaultConfig()
	if cfg.Avatar.Start == nil {
		cfg.Avatar.Start = defaults.Avatar.Start
	}
	if cfg.Camera.Offset == nil {
		cfg.Camera.Offset = defaults.Camera.Offset
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Avatar.Speed > 0, "avatar.speed %v", c.Avatar.Speed)
	check(len(c.Avatar.Start) == 3, "avatar.start needs 3 values, got %d", len(c.Avatar.Start))
	check(len(c.Camera.Offset) == 3, "camera.offset needs 3 values, got %d", len(c.Camera.Offset))
	check(c.Camera.Blend > 0 && c.Camera.Blend <= 1, "camera.blend %v outside (0, 1]", c.Camera.Blend)
	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "camera.fov %v", c.Camera.Fov)
	check(c.Camera.Near > 0, "camera.near %v", c.Camera.Near)
	check(c.Camera.Far > c.Camera.Near, "camera.far %v not beyond near %v", c.Camera.Far, c.Camera.Near)
	check(c.Frame.MaxStep > 0, "frame.max_step %v", c.Frame.MaxStep)
	check(c.World.Buildings >= 0, "world.buildings %d", c.World.Buildings)
	check(c.World.GroundSize > 0, "world.ground_size %v", c.World.GroundSize)

	return errors.Join(errs...)
}
