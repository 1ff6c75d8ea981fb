package gosiewalk

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Layer decides draw order. Ground objects are painted before everything else.
type Layer int

const (
	LayerScene Layer = iota
	LayerGround
)

type Material struct {
	Color   color.RGBA
	Unlit   bool       // skip shading
	Outline color.RGBA // zero alpha means no outline
}

// Poser supplies an object's position and yaw.
type Poser interface {
	Pose() (mgl64.Vec3, float64)
}

type fixedPose struct {
	position mgl64.Vec3
	yaw      float64
}

func (p fixedPose) Pose() (mgl64.Vec3, float64) {
	return p.position, p.yaw
}

type Object struct {
	Name     string
	Mesh     *Mesh
	Material Material
	Layer    Layer
	pose     Poser
}

func NewStaticObject(name string, mesh *Mesh, mat Material, position mgl64.Vec3, yaw float64) *Object {
	return &Object{
		Name:     name,
		Mesh:     mesh,
		Material: mat,
		pose:     fixedPose{position: position, yaw: yaw},
	}
}

// NewPosedObject builds an object that follows p, e.g. the avatar.
func NewPosedObject(name string, mesh *Mesh, mat Material, p Poser) *Object {
	return &Object{
		Name:     name,
		Mesh:     mesh,
		Material: mat,
		pose:     p,
	}
}

func (o *Object) Position() mgl64.Vec3 {
	pos, _ := o.pose.Pose()
	return pos
}

// Transform is the object to world matrix.
func (o *Object) Transform() mgl64.Mat4 {
	pos, yaw := o.pose.Pose()
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl64.HomogRotate3DY(yaw))
}

// Scene holds the static geometry fixed at construction plus any dynamic
// objects added later.
type Scene struct {
	static  []*Object
	dynamic []*Object
}

func NewScene(static []*Object) *Scene {
	return &Scene{static: slices.Clone(static)}
}

func (s *Scene) Add(obj *Object) {
	if slices.Contains(s.dynamic, obj) {
		return
	}
	s.dynamic = append(s.dynamic, obj)
}

// Remove drops a dynamic object. Static objects cannot be removed.
func (s *Scene) Remove(obj *Object) bool {
	i := slices.Index(s.dynamic, obj)
	if i < 0 {
		return false
	}
	s.dynamic = slices.Delete(s.dynamic, i, i+1)
	return true
}

func (s *Scene) StaticCount() int {
	return len(s.static)
}

// Objects lists static objects first, in build order, then dynamic ones.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, len(s.static)+len(s.dynamic))
	out = append(out, s.static...)
	return append(out, s.dynamic...)
}
