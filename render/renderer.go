// Package render draws a game.World: the ray cast scene, the held item and
// the overlays on top of it.
package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/model"
)

const (
	fovDegrees = 70

	// camera height in tiles, half a wall
	cameraZ = 0.5

	// jabReach is how far up the viewmodel moves at the peak of a jab, as a
	// share of its drawn height
	jabReach = 0.15
)

var (
	skyColor   = color.RGBA{40, 44, 60, 255}
	floorColor = color.RGBA{70, 64, 58, 255}
)

// Renderer owns the ray caster camera and the overlays.
type Renderer struct {
	width, height int

	camera   *raycaster.Camera
	scene    *ebiten.Image
	textures map[string]*ebiten.Image
	sprites  []raycaster.Sprite

	hud       *HUD
	crosshair *Crosshair
	minimap   *Minimap
	modal     *EndModal

	rng jitter
}

// NewRenderer sets up the camera for the level. textures must hold the
// wall texture. Sprite and viewmodel textures are looked up by tag and item
// name and silently skipped when missing.
func NewRenderer(cfg *config.Config, level *engine.Level, textures map[string]*ebiten.Image) (*Renderer, error) {
	wall, ok := textures[texWall]
	if !ok {
		return nil, fmt.Errorf("missing %q texture", texWall)
	}
	texSize := wall.Bounds().Dx()

	hud, err := NewHUD()
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}
	modal, err := NewEndModal()
	if err != nil {
		return nil, fmt.Errorf("end modal: %w", err)
	}

	r := &Renderer{
		width:     cfg.ScreenWidth,
		height:    cfg.ScreenHeight,
		scene:     ebiten.NewImage(cfg.ScreenWidth, cfg.ScreenHeight),
		textures:  textures,
		hud:       hud,
		crosshair: NewCrosshair(10, 2),
		minimap:   NewMinimap(level),
		modal:     modal,
		rng:       rand.New(rand.NewSource(rand.Int63())),
	}

	mapObj := newLevelMap(level)
	r.camera = raycaster.NewCamera(r.width, r.height, texSize, mapObj, newTextureHandler(mapObj, wall))
	r.camera.SetFovAngle(fovDegrees, 1.0)
	r.camera.SetPositionZ(cameraZ)
	r.camera.SetFloorTexture(textureOr(textures, texFloor, texSize, floorColor))
	r.camera.SetSkyTexture(textureOr(textures, texSky, texSize, skyColor))
	r.setFog(cfg.Fog)

	return r, nil
}

func textureOr(textures map[string]*ebiten.Image, name string, size int, fill color.Color) *ebiten.Image {
	if tex, ok := textures[name]; ok {
		return tex
	}
	img := ebiten.NewImage(size, size)
	img.Fill(fill)
	return img
}

func (r *Renderer) setFog(fog bool) {
	minLight := color.NRGBA{R: 76, G: 76, B: 76, A: 255}
	maxLight := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if fog {
		r.camera.SetRenderDistance(12)
		r.camera.SetLightFalloff(-200)
		r.camera.SetGlobalIllumination(500)
		minLight = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	} else {
		r.camera.SetRenderDistance(-1)
		r.camera.SetLightFalloff(0)
		r.camera.SetGlobalIllumination(255)
	}
	r.camera.SetLightRGB(minLight, maxLight)
}

// Update advances the overlays that keep their own state.
func (r *Renderer) Update(w *game.World) {
	r.modal.Update(w)
}

// Draw renders the world as of now.
func (r *Renderer) Draw(screen *ebiten.Image, w *game.World, now float64) {
	sc := w.Scenario()
	if pos, angle, moved := cameraPose(w.Player, w.Level().TileSize()); moved {
		r.camera.SetPosition(&pos)
		r.camera.SetHeadingAngle(angle)
		r.camera.SetPitchAngle(0)
	}

	r.scene.Clear()
	r.camera.Update(r.buildSprites(w))
	r.camera.Draw(r.scene)

	screen.Fill(color.Black)
	dx, dy := r.shakeOffset(sc, w.Session, now)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(dx), math.Round(dy))
	screen.DrawImage(r.scene, op)

	r.drawViewmodel(screen, w, now)
	r.crosshair.Draw(screen, r.crosshair.Color(w.Session, now, sc.HitMarker))
	r.hud.Draw(screen, w)
	drawFlash(screen, flashAlpha(w.Session, now, sc.FlashTime))
	r.minimap.Draw(screen, w)
	r.modal.Draw(screen, w)
}

// cameraPose returns the player's camera position in grid units and its
// heading, and whether either changed since the last call.
func cameraPose(p *model.Player, tileSize float64) (geom.Vector2, float64, bool) {
	moved := p.Moved
	p.Moved = false
	return geom.Vector2{X: p.Position.X / tileSize, Y: p.Position.Y / tileSize}, p.Angle, moved
}

// viewmodelOffset is the upward shift of the held item during a jab.
func viewmodelOffset(progress, drawnHeight float64) float64 {
	return math.Sin(progress*math.Pi) * drawnHeight * jabReach
}

func (r *Renderer) drawViewmodel(screen *ebiten.Image, w *game.World, now float64) {
	vm := &w.Viewmodel
	if !vm.Visible() {
		return
	}

	name := vm.Texture(now)
	progress, jabbing := vm.JabProgress(now)
	if jabbing {
		if _, ok := r.textures[vm.Item()+"-jab"]; ok {
			name = vm.Item() + "-jab"
		}
	}
	tex, ok := r.textures[name]
	if !ok {
		return
	}

	// the held item takes up a third of the screen height
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
	scale := float64(r.height) / 3 / float64(th)
	lift := 0.0
	if jabbing {
		lift = viewmodelOffset(progress, float64(th)*scale)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(r.width)/2-float64(tw)*scale/2,
		float64(r.height)-float64(th)*scale+1-lift,
	)
	screen.DrawImage(tex, op)
}
