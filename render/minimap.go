package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/model"
)

const (
	minimapScale  = 6
	minimapMargin = 10
)

var (
	minimapWall   = color.RGBA{50, 50, 50, 200}
	minimapFloor  = color.RGBA{140, 140, 140, 200}
	minimapPlayer = color.RGBA{0, 255, 255, 255}
	minimapEnemy  = color.RGBA{255, 0, 0, 255}
	minimapNut    = color.RGBA{255, 200, 0, 255}
)

var emptySubImage = ebiten.NewImage(3, 3).SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	emptySubImage.Fill(color.White)
}

// Minimap is drawn in the top right corner. Rows are flipped so the map
// turns the same way as the first person view.
type Minimap struct {
	level  *engine.Level
	static *ebiten.Image
}

func NewMinimap(level *engine.Level) *Minimap {
	m := &Minimap{level: level}
	m.static = ebiten.NewImage(level.Width()*minimapScale, level.Height()*minimapScale)
	for y := 0; y < level.Height(); y++ {
		for x := 0; x < level.Width(); x++ {
			tileColor := minimapFloor
			if !level.IsOpen(x, y) {
				tileColor = minimapWall
			}
			sx, sy := m.cell(x, y)
			vector.DrawFilledRect(m.static, sx, sy, minimapScale, minimapScale, tileColor, false)
		}
	}
	return m
}

// cell returns the top left pixel of a tile inside the minimap image.
func (m *Minimap) cell(gx, gy int) (float32, float32) {
	return float32(gx * minimapScale), float32((m.level.Height() - 1 - gy) * minimapScale)
}

// project maps a world position to minimap pixels relative to its origin.
func (m *Minimap) project(x, y float64) (float32, float32) {
	ts := m.level.TileSize()
	px := x / ts * minimapScale
	py := (float64(m.level.Height()) - y/ts) * minimapScale
	return float32(px), float32(py)
}

func (m *Minimap) Draw(screen *ebiten.Image, w *game.World) {
	ox := float32(screen.Bounds().Dx() - m.static.Bounds().Dx() - minimapMargin)
	oy := float32(minimapMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(m.static, op)

	for _, pk := range w.Pickups() {
		if pk.Tag != model.TagNut {
			continue
		}
		x, y := m.project(pk.Pos.X, pk.Pos.Y)
		vector.DrawFilledCircle(screen, ox+x, oy+y, minimapScale/2, minimapNut, false)
	}

	enemies := w.Enemies
	for i := 0; i < enemies.Len(); i++ {
		if enemies.Dead(i) {
			continue
		}
		e := enemies.At(i)
		x, y := m.project(e.Pos.X, e.Pos.Y)
		vector.DrawFilledCircle(screen, ox+x, oy+y, minimapScale/2, minimapEnemy, false)
	}

	m.drawPlayer(screen, w.Player, ox, oy)
}

func (m *Minimap) drawPlayer(screen *ebiten.Image, p *model.Player, ox, oy float32) {
	px, py := m.project(p.Position.X, p.Position.Y)
	px, py = px+ox, py+oy

	// the minimap's y axis points down, so the heading is mirrored
	angle := -p.Angle
	size := float32(minimapScale)
	corner := func(a float64) (float32, float32) {
		return px + size*float32(math.Cos(a)), py + size*float32(math.Sin(a))
	}
	x1, y1 := corner(angle)
	x2, y2 := corner(angle + 2.5)
	x3, y3 := corner(angle - 2.5)

	r, g, b, a := minimapPlayer.R, minimapPlayer.G, minimapPlayer.B, minimapPlayer.A
	cr, cg, cb, ca := float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, emptySubImage, nil)
}
