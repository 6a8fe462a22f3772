package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/model"
)

// sprite is an entity as the ray caster sees it, in grid units.
type sprite struct {
	pos       geom.Vector2
	scale     float64
	tex       *ebiten.Image
	focusable bool
	screen    *image.Rectangle
}

func (s *sprite) Pos() *geom.Vector2                     { return &s.pos }
func (s *sprite) PosZ() float64                          { return 0 }
func (s *sprite) Scale() float64                         { return s.scale }
func (s *sprite) VerticalAnchor() raycaster.SpriteAnchor { return raycaster.AnchorBottom }
func (s *sprite) Texture() *ebiten.Image                 { return s.tex }
func (s *sprite) TextureRect() image.Rectangle           { return s.tex.Bounds() }
func (s *sprite) Illumination() float64                  { return 0 }
func (s *sprite) SetScreenRect(rect *image.Rectangle)    { s.screen = rect }
func (s *sprite) IsFocusable() bool                      { return s.focusable }

// spriteGeometry converts a world entity to grid position and wall-relative
// scale.
func spriteGeometry(e engine.Entity, tileSize float64) (geom.Vector2, float64) {
	return geom.Vector2{X: e.Pos.X / tileSize, Y: e.Pos.Y / tileSize}, e.Size.H / tileSize
}

// buildSprites refills the sprite pool from the world's enemies and pickups.
// Entities whose tag has no texture are skipped.
func (r *Renderer) buildSprites(w *game.World) []raycaster.Sprite {
	r.sprites = r.sprites[:0]
	tileSize := w.Level().TileSize()
	add := func(e engine.Entity, focusable bool) {
		tex, ok := r.textures[string(e.Tag)]
		if !ok {
			return
		}
		pos, scale := spriteGeometry(e, tileSize)
		r.sprites = append(r.sprites, &sprite{pos: pos, scale: scale, tex: tex, focusable: focusable})
	}

	enemies := w.Enemies
	for i := 0; i < enemies.Len(); i++ {
		add(*enemies.At(i), enemies.Living(i))
	}
	for _, pk := range w.Pickups() {
		add(pk.Entity, pk.Tag == model.TagNut)
	}
	return r.sprites
}
