package gosiewalk

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws the scene as seen from the camera. It is called once per tick.
type Renderer interface {
	Render(scene *Scene, cam *Camera)
}

// SoftwareRenderer projects the scene into a depth sorted draw list on Render
// and paints that list onto an ebiten image on Flush.
type SoftwareRenderer struct {
	width, height int
	toLight       mgl64.Vec3
	list          drawList
	batcher       *PolygonBatcher
}

func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		width:   width,
		height:  height,
		toLight: sunDirection,
		batcher: NewPolygonBatcher(),
	}
}

// SetViewport resizes the output. Non-positive sizes are ignored.
func (r *SoftwareRenderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

func (r *SoftwareRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *SoftwareRenderer) Render(scene *Scene, cam *Camera) {
	r.list.reset()

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	for _, obj := range scene.Objects() {
		if obj.Mesh == nil {
			continue
		}
		model := obj.Transform()
		modelView := view.Mul4(model)

		for i := range obj.Mesh.Faces {
			r.addFace(obj, &obj.Mesh.Faces[i], model, view, modelView, proj, cam)
		}
		for _, seg := range obj.Mesh.Lines {
			r.addSegment(obj, seg, modelView, proj, cam)
		}
	}

	r.list.sortByDepth()
}

func (r *SoftwareRenderer) addFace(obj *Object, f *Face, model, view, modelView, proj mgl64.Mat4, cam *Camera) {
	if len(f.Points) < 3 {
		return
	}

	inView := make([]mgl64.Vec3, len(f.Points))
	allBeyondFar := true
	for i, p := range f.Points {
		inView[i] = mgl64.TransformCoordinate(p, modelView)
		if -inView[i][2] <= cam.Far {
			allBeyondFar = false
		}
	}
	if allBeyondFar {
		return
	}

	// rotation only, models carry no scale
	worldNormal := model.Mul4x1(f.Normal.Vec4(0)).Vec3()
	viewNormal := view.Mul4x1(worldNormal.Vec4(0)).Vec3()

	// the camera sits at the view space origin
	if viewNormal.Dot(inView[0]) >= 0 {
		return
	}

	clipped := clipPolygonAgainstNearPlane(inView, cam.Near)
	if len(clipped) < 3 {
		return
	}

	xp := make([]float32, len(clipped))
	yp := make([]float32, len(clipped))
	for i, p := range clipped {
		xp[i], yp[i] = r.project(p, proj)
	}

	fill := obj.Material.Color
	if !obj.Material.Unlit {
		fill = shadeColor(worldNormal, r.toLight, fill)
	}

	r.list.addPolygon(obj.Layer, screenPolygon{
		xp:      xp,
		yp:      yp,
		fill:    fill,
		outline: obj.Material.Outline,
		depth:   midpoint(clipped).Len(),
		name:    obj.Name,
	})
}

func (r *SoftwareRenderer) addSegment(obj *Object, seg Segment, modelView, proj mgl64.Mat4, cam *Camera) {
	a := mgl64.TransformCoordinate(seg.From, modelView)
	b := mgl64.TransformCoordinate(seg.To, modelView)

	a, b, ok := clipSegmentAgainstNearPlane(a, b, cam.Near)
	if !ok {
		return
	}

	x0, y0 := r.project(a, proj)
	x1, y1 := r.project(b, proj)
	r.list.addLine(obj.Layer, screenLine{x0: x0, y0: y0, x1: x1, y1: y1, col: obj.Material.Color})
}

// project maps a view space point in front of the near plane to pixels.
func (r *SoftwareRenderer) project(p mgl64.Vec3, proj mgl64.Mat4) (float32, float32) {
	clip := proj.Mul4x1(p.Vec4(1))
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	sx := (ndcX + 1) * 0.5 * float64(r.width)
	sy := (1 - ndcY) * 0.5 * float64(r.height)
	return float32(sx), float32(sy)
}

// Flush paints the last rendered frame.
func (r *SoftwareRenderer) Flush(screen *ebiten.Image) {
	b := r.batcher
	b.Begin(screen)

	for _, p := range r.list.ground {
		b.AddPolygon(p.xp, p.yp, p.fill)
	}
	for _, l := range r.list.groundLines {
		b.AddLine(l.x0, l.y0, l.x1, l.y1, 1, l.col)
	}
	for _, p := range r.list.polys {
		if p.outline.A == 0 {
			b.AddPolygon(p.xp, p.yp, p.fill)
			continue
		}
		b.AddPolygonAndOutline(p.xp, p.yp, p.fill, p.outline, 1)
	}
	for _, l := range r.list.lines {
		b.AddLine(l.x0, l.y0, l.x1, l.y1, 1, l.col)
	}

	b.End()
}

// PolygonCount is the number of polygons in the last rendered frame.
func (r *SoftwareRenderer) PolygonCount() int {
	return r.list.polygonCount()
}
