package gosiewalk

import "github.com/go-gl/mathgl/mgl64"

// Segment is a line in object space.
type Segment struct {
	From, To mgl64.Vec3
}

// Mesh is the shape part of a renderable object: filled faces and/or lines.
type Mesh struct {
	Faces []Face
	Lines []Segment
}

// NewBoxMesh builds an axis-aligned box of the given size around center.
func NewBoxMesh(width, height, depth float64, center mgl64.Vec3) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	c := func(x, y, z float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{x, y, z})
	}

	return &Mesh{
		Faces: []Face{
			NewFace(c(-hx, -hy, hz), c(hx, -hy, hz), c(hx, hy, hz), c(-hx, hy, hz)),     // +Z
			NewFace(c(hx, -hy, -hz), c(-hx, -hy, -hz), c(-hx, hy, -hz), c(hx, hy, -hz)), // -Z
			NewFace(c(hx, -hy, hz), c(hx, -hy, -hz), c(hx, hy, -hz), c(hx, hy, hz)),     // +X
			NewFace(c(-hx, -hy, -hz), c(-hx, -hy, hz), c(-hx, hy, hz), c(-hx, hy, -hz)), // -X
			NewFace(c(-hx, hy, hz), c(hx, hy, hz), c(hx, hy, -hz), c(-hx, hy, -hz)),     // +Y
			NewFace(c(-hx, -hy, -hz), c(hx, -hy, -hz), c(hx, -hy, hz), c(-hx, -hy, hz)), // -Y
		},
	}
}

// NewPlaneMesh builds a square facing +Y at y=0, split into tiles x tiles quads.
func NewPlaneMesh(size float64, tiles int) *Mesh {
	if tiles < 1 {
		tiles = 1
	}
	step := size / float64(tiles)
	start := -size / 2

	m := &Mesh{Faces: make([]Face, 0, tiles*tiles)}
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			x0 := start + float64(i)*step
			z0 := start + float64(j)*step
			x1, z1 := x0+step, z0+step
			m.Faces = append(m.Faces, NewFace(
				mgl64.Vec3{x0, 0, z1},
				mgl64.Vec3{x1, 0, z1},
				mgl64.Vec3{x1, 0, z0},
				mgl64.Vec3{x0, 0, z0},
			))
		}
	}
	return m
}

// NewGridMesh builds divisions+1 lines along each horizontal axis.
func NewGridMesh(size float64, divisions int, height float64) *Mesh {
	if divisions < 1 {
		divisions = 1
	}
	step := size / float64(divisions)
	half := size / 2

	m := &Mesh{Lines: make([]Segment, 0, 2*(divisions+1))}
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		m.Lines = append(m.Lines,
			Segment{From: mgl64.Vec3{-half, height, k}, To: mgl64.Vec3{half, height, k}},
			Segment{From: mgl64.Vec3{k, height, -half}, To: mgl64.Vec3{k, height, half}},
		)
	}
	return m
}
