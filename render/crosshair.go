package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/nutcaster/model"
)

type Crosshair struct {
	size      float32
	thickness float32
	normal    color.Color
	hit       color.Color
}

func NewCrosshair(size, thickness float32) *Crosshair {
	return &Crosshair{
		size:      size,
		thickness: thickness,
		normal:    color.White,
		hit:       color.RGBA{R: 255, A: 255},
	}
}

// Color is the hit indicator color while a recent hit is marked, the normal
// color otherwise.
func (c *Crosshair) Color(s *model.Session, now, hitTime float64) color.Color {
	if s.HitMarker.Active(now, hitTime) {
		return c.hit
	}
	return c.normal
}

func (c *Crosshair) Draw(screen *ebiten.Image, clr color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(h)/2
	vector.StrokeLine(screen, cx, cy-c.size, cx, cy+c.size, c.thickness, clr, false)
	vector.StrokeLine(screen, cx-c.size, cy, cx+c.size, cy, c.thickness, clr, false)
}
