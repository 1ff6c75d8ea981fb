package gosiewalk

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

const hudFontSize = 14

type hud struct {
	face *text.GoTextFace
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &hud{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

func (h *hud) Draw(screen *ebiten.Image, s *Session) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = hudFontSize * 1.4
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudText(ebiten.ActualFPS(), s), h.face, op)
}

func hudText(fps float64, s *Session) string {
	return fmt.Sprintf("FPS: %0.2f\navatar %s yaw %.1f°\ncamera %s\npolys %d",
		fps,
		formatVec(s.Avatar.Position),
		mgl64.RadToDeg(s.Avatar.Yaw),
		formatVec(s.Camera.Position),
		s.Renderer.PolygonCount(),
	)
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
