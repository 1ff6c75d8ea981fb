package gosiewalk

import (
	"image/color"
	"sort"
)

// screenPolygon is a projected, shaded polygon ready to paint.
type screenPolygon struct {
	xp, yp  []float32
	fill    color.RGBA
	outline color.RGBA
	depth   float64
	name    string
}

type screenLine struct {
	x0, y0, x1, y1 float32
	col            color.RGBA
}

// drawList holds one frame's output in paint order: ground polygons, then
// ground lines, then scene polygons.
type drawList struct {
	ground      []screenPolygon
	groundLines []screenLine
	polys       []screenPolygon
	lines       []screenLine
}

func (d *drawList) reset() {
	d.ground = d.ground[:0]
	d.groundLines = d.groundLines[:0]
	d.polys = d.polys[:0]
	d.lines = d.lines[:0]
}

func (d *drawList) addPolygon(layer Layer, p screenPolygon) {
	if layer == LayerGround {
		d.ground = append(d.ground, p)
		return
	}
	d.polys = append(d.polys, p)
}

func (d *drawList) addLine(layer Layer, l screenLine) {
	if layer == LayerGround {
		d.groundLines = append(d.groundLines, l)
		return
	}
	d.lines = append(d.lines, l)
}

// sort the scene polygons so that the ones farther away are at the start of the slice
func (d *drawList) sortByDepth() {
	sort.SliceStable(d.polys, func(i, j int) bool {
		return d.polys[i].depth > d.polys[j].depth
	})
}

func (d *drawList) polygonCount() int {
	return len(d.ground) + len(d.polys)
}
