package gosiewalk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testWorldConfig() WorldConfig {
	return DefaultConfig().World
}

func meshBounds(m *Mesh) (lo, hi mgl64.Vec3) {
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, f := range m.Faces {
		for _, p := range f.Points {
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], p[i])
				hi[i] = math.Max(hi[i], p[i])
			}
		}
	}
	return lo, hi
}

func TestBuildWorldIsReproducible(t *testing.T) {
	cfg := testWorldConfig()
	cfg.Seed = 42

	a := BuildWorld(cfg, rand.New(rand.NewSource(cfg.Seed)))
	b := BuildWorld(cfg, rand.New(rand.NewSource(cfg.Seed)))

	if len(a) != len(b) {
		t.Fatalf("object counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Position() != b[i].Position() {
			t.Errorf("object %d differs: %s@%v vs %s@%v", i, a[i].Name, a[i].Position(), b[i].Name, b[i].Position())
		}
		loA, hiA := meshBounds(a[i].Mesh)
		loB, hiB := meshBounds(b[i].Mesh)
		if loA != loB || hiA != hiB {
			t.Errorf("object %d mesh differs", i)
		}
	}
}

func TestBuildWorldContents(t *testing.T) {
	cfg := testWorldConfig()
	cfg.Seed = 7
	objects := BuildWorld(cfg, rand.New(rand.NewSource(cfg.Seed)))

	if len(objects) != cfg.Buildings+2 {
		t.Fatalf("got %d objects, want %d", len(objects), cfg.Buildings+2)
	}
	if objects[0].Name != "ground" || objects[0].Layer != LayerGround {
		t.Errorf("first object = %s layer %v, want ground", objects[0].Name, objects[0].Layer)
	}
	if objects[1].Name != "grid" || objects[1].Layer != LayerGround || len(objects[1].Mesh.Lines) == 0 {
		t.Errorf("second object should be the grid")
	}
	if want := 2 * (cfg.GridDivisions + 1); len(objects[1].Mesh.Lines) != want {
		t.Errorf("grid has %d lines, want %d", len(objects[1].Mesh.Lines), want)
	}

	for _, obj := range objects[2:] {
		pos := obj.Position()
		if d := math.Hypot(pos[0], pos[2]); d < cfg.SpawnClearance-1e-9 {
			t.Errorf("%s at distance %v inside spawn clearance", obj.Name, d)
		}
		if math.Abs(pos[0]) > cfg.Extent || math.Abs(pos[2]) > cfg.Extent {
			t.Errorf("%s at %v outside extent", obj.Name, pos)
		}

		lo, hi := meshBounds(obj.Mesh)
		if !almostEqual(lo[1], 0) {
			t.Errorf("%s base at y=%v, want 0", obj.Name, lo[1])
		}
		if h := hi[1] - lo[1]; h < minBuildingHeight-1e-9 {
			t.Errorf("%s height %v below minimum", obj.Name, h)
		}
		for _, side := range []float64{hi[0] - lo[0], hi[2] - lo[2]} {
			if side < minBuildingSide || side > maxBuildingSide {
				t.Errorf("%s side %v outside [%v, %v]", obj.Name, side, minBuildingSide, maxBuildingSide)
			}
		}
		if obj.Layer != LayerScene {
			t.Errorf("%s on ground layer", obj.Name)
		}
	}
}

func TestBuildWorldNoBuildings(t *testing.T) {
	cfg := testWorldConfig()
	cfg.Buildings = 0
	objects := BuildWorld(cfg, rand.New(rand.NewSource(1)))
	if len(objects) != 2 {
		t.Errorf("got %d objects, want ground and grid only", len(objects))
	}
}

func TestPushOutOfSpawn(t *testing.T) {
	tests := []struct {
		name         string
		x, z         float64
		clearance    float64
		wantX, wantZ float64
	}{
		{"outside", 10, 0, 6, 10, 0},
		{"inside", 0, -3, 6, 0, -6},
		{"origin", 0, 0, 6, 6, 0},
		{"no clearance", 1, 1, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := pushOutOfSpawn(tt.x, tt.z, tt.clearance)
			if !almostEqual(x, tt.wantX) || !almostEqual(z, tt.wantZ) {
				t.Errorf("pushOutOfSpawn() = (%v, %v), want (%v, %v)", x, z, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestNewBoxMeshNormalsPointOutward(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}
	m := NewBoxMesh(2, 4, 6, center)
	if len(m.Faces) != 6 {
		t.Fatalf("box has %d faces", len(m.Faces))
	}
	for i, f := range m.Faces {
		out := f.MidPoint().Sub(center)
		if f.Normal.Dot(out) <= 0 {
			t.Errorf("face %d normal %v points inward", i, f.Normal)
		}
		if !almostEqual(f.Normal.Len(), 1) {
			t.Errorf("face %d normal not unit: %v", i, f.Normal)
		}
	}
}

func TestNewPlaneMeshFacesUp(t *testing.T) {
	m := NewPlaneMesh(10, 4)
	if len(m.Faces) != 16 {
		t.Fatalf("plane has %d faces, want 16", len(m.Faces))
	}
	for i, f := range m.Faces {
		if !vecAlmostEqual(f.Normal, mgl64.Vec3{0, 1, 0}) {
			t.Errorf("face %d normal = %v", i, f.Normal)
		}
	}
}

func TestAvatarObjectsFollowAvatar(t *testing.T) {
	a := NewAvatar(mgl64.Vec3{0, 0.5, 0})
	objs := NewAvatarObjects(a)

	a.Position = mgl64.Vec3{4, 0.5, -1}
	a.Yaw = math.Pi / 2
	for _, obj := range objs {
		if obj.Position() != a.Position {
			t.Errorf("%s at %v, want %v", obj.Name, obj.Position(), a.Position)
		}
	}

	// the nose sits on local +Z, so yaw pi/2 turns it toward world +X
	nose := objs[1]
	tip := mgl64.TransformCoordinate(nose.Mesh.Faces[0].MidPoint(), nose.Transform())
	if tip[0] <= a.Position[0] {
		t.Errorf("nose at %v should be on the +X side of %v", tip, a.Position)
	}
}
