package gosiewalk

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// RandSource is the randomness used for world generation. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

const (
	minBuildingSide   = 2.0
	maxBuildingSide   = 6.0
	minBuildingHeight = 2.0
	maxBuildingHeight = 12.0
	groundTiles       = 8
	gridHeight        = 0.01
)

var (
	groundColor   = color.RGBA{R: 0x4a, G: 0x6b, B: 0x3e, A: 0xff}
	gridColor     = color.RGBA{R: 0x80, G: 0x90, B: 0x80, A: 0xff}
	buildingEdge  = color.RGBA{R: 50, G: 50, B: 50, A: 25}
	avatarColor   = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	avatarNoseCol = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
)

// BuildWorld creates the static placeholder environment: ground, grid and
// randomly sized buildings. The result is never modified afterwards.
func BuildWorld(cfg WorldConfig, rng RandSource) []*Object {
	log.Println("Building world...")

	objects := make([]*Object, 0, cfg.Buildings+2)

	ground := NewStaticObject("ground", NewPlaneMesh(cfg.GroundSize, groundTiles), Material{Color: groundColor}, mgl64.Vec3{}, 0)
	ground.Layer = LayerGround
	objects = append(objects, ground)

	grid := NewStaticObject("grid", NewGridMesh(cfg.GroundSize, cfg.GridDivisions, gridHeight), Material{Color: gridColor, Unlit: true}, mgl64.Vec3{}, 0)
	grid.Layer = LayerGround
	objects = append(objects, grid)

	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	for i := 0; i < cfg.Buildings; i++ {
		objects = append(objects, newBuilding(i, cfg, rng, noise))
	}

	log.Printf("World built: %d buildings, seed %d", cfg.Buildings, cfg.Seed)
	return objects
}

func newBuilding(i int, cfg WorldConfig, rng RandSource, noise *perlin.Perlin) *Object {
	width := randRange(rng, minBuildingSide, maxBuildingSide)
	depth := randRange(rng, minBuildingSide, maxBuildingSide)
	height := randRange(rng, minBuildingHeight, maxBuildingHeight)

	x := randRange(rng, -cfg.Extent, cfg.Extent)
	z := randRange(rng, -cfg.Extent, cfg.Extent)
	x, z = pushOutOfSpawn(x, z, cfg.SpawnClearance)

	if cfg.NoiseScale > 0 {
		skyline := 1 + 0.5*noise.Noise2D(x/cfg.NoiseScale, z/cfg.NoiseScale)
		height = math.Max(minBuildingHeight, height*skyline)
	}

	grey := uint8(140 + rng.Float64()*60)
	mat := Material{
		Color:   color.RGBA{R: grey, G: grey, B: grey + 10, A: 0xff},
		Outline: buildingEdge,
	}

	// base sits on the ground
	mesh := NewBoxMesh(width, height, depth, mgl64.Vec3{0, height / 2, 0})
	return NewStaticObject(fmt.Sprintf("building-%d", i), mesh, mat, mgl64.Vec3{x, 0, z}, 0)
}

func randRange(rng RandSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pushOutOfSpawn moves a point radially to the clearance circle around the
// origin if it lies inside it.
func pushOutOfSpawn(x, z, clearance float64) (float64, float64) {
	if clearance <= 0 {
		return x, z
	}
	d := math.Hypot(x, z)
	if d >= clearance {
		return x, z
	}
	if d == 0 {
		return clearance, 0
	}
	return x / d * clearance, z / d * clearance
}

// NewAvatarObjects returns the meshes drawn for the avatar: a unit body and a
// small nose on local +Z that shows the facing.
func NewAvatarObjects(a *Avatar) []*Object {
	body := NewPosedObject("avatar", NewBoxMesh(1, 1, 1, mgl64.Vec3{}), Material{Color: avatarColor, Outline: buildingEdge}, a)
	nose := NewPosedObject("avatar-nose", NewBoxMesh(0.3, 0.3, 0.3, mgl64.Vec3{0, 0.15, 0.6}), Material{Color: avatarNoseCol}, a)
	return []*Object{body, nose}
}
