package gosiewalk

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// uint16 indices cap a single DrawTriangles call.
const maxBatchVertices = 65535

var (
	whiteImage *ebiten.Image
	whiteSub   *ebiten.Image
)

func solidSource() *ebiten.Image {
	if whiteSub == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSub
}

// PolygonBatcher collects filled polygons and strokes in paint order and
// draws them with as few DrawTriangles calls as possible.
type PolygonBatcher struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	path     vector.Path
	strokeV  []ebiten.Vertex
	strokeI  []uint16
}

func NewPolygonBatcher() *PolygonBatcher {
	return &PolygonBatcher{
		vertices: make([]ebiten.Vertex, 0, 1024),
		indices:  make([]uint16, 0, 2048),
	}
}

func (b *PolygonBatcher) Begin(screen *ebiten.Image) {
	b.screen = screen
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *PolygonBatcher) End() {
	b.flush()
	b.screen = nil
}

func (b *PolygonBatcher) flush() {
	if b.screen == nil || len(b.indices) == 0 {
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	b.screen.DrawTriangles(b.vertices, b.indices, solidSource(), op)

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *PolygonBatcher) reserve(n int) {
	if len(b.vertices)+n > maxBatchVertices {
		b.flush()
	}
}

// AddPolygon fills a convex polygon as a triangle fan.
func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	b.reserve(len(xp))

	base := uint16(len(b.vertices))
	cr, cg, cb, ca := colorFloats(clr)
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	b.addOutline(xp, yp, strokeWidth, strokeClr)
}

func (b *PolygonBatcher) AddLine(x0, y0, x1, y1, strokeWidth float32, clr color.RGBA) {
	b.path = vector.Path{}
	b.path.MoveTo(x0, y0)
	b.path.LineTo(x1, y1)
	b.appendStroke(strokeWidth, clr)
}

// addOutline strokes the closed outline of a polygon.
func (b *PolygonBatcher) addOutline(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	// We need at least 2 points to draw a line.
	if len(xp) < 2 {
		return
	}

	b.path = vector.Path{}
	b.path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		b.path.LineTo(xp[i], yp[i])
	}
	b.path.Close()
	b.appendStroke(strokeWidth, clr)
}

func (b *PolygonBatcher) appendStroke(strokeWidth float32, clr color.RGBA) {
	strokeOp := &vector.StrokeOptions{
		Width: strokeWidth,
	}
	b.strokeV, b.strokeI = b.path.AppendVerticesAndIndicesForStroke(b.strokeV[:0], b.strokeI[:0], strokeOp)
	if len(b.strokeV) == 0 {
		return
	}
	b.reserve(len(b.strokeV))

	base := uint16(len(b.vertices))
	cr, cg, cb, ca := colorFloats(clr)
	for _, v := range b.strokeV {
		// SrcX and SrcY pick the solid white texel.
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
		b.vertices = append(b.vertices, v)
	}
	for _, i := range b.strokeI {
		b.indices = append(b.indices, base+i)
	}
}

// colorFloats converts RGBA to the 0.0-1.0 values vertices expect.
func colorFloats(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}
