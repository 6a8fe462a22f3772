package render

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/trvswgnr/nutcaster/game"
)

const (
	hudFontSize = 24
	hudMargin   = 10
	hudLeading  = 20
)

// HUD draws the status text in the screen corners.
type HUD struct {
	face font.Face
}

func newFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func NewHUD() (*HUD, error) {
	face, err := newFace(hudFontSize)
	if err != nil {
		return nil, err
	}
	return &HUD{face: face}, nil
}

// statusLines are drawn from the top left corner.
func statusLines(w *game.World) []string {
	s := w.Session
	return []string{
		fmt.Sprintf("HEALTH: %d", s.Health),
		fmt.Sprintf("NUTS:   %d/%d", s.Nuts, s.Goal),
	}
}

// weaponLines are drawn upwards from the bottom left corner, last line
// lowest.
func weaponLines(w *game.World) []string {
	weapon := w.Player.Weapon
	if weapon == nil {
		return []string{"holstered"}
	}
	if !weapon.Ranged() {
		return []string{weapon.Name}
	}
	name := weapon.Name
	if weapon.Reloading() {
		name += " (reloading)"
	}
	return []string{
		name,
		fmt.Sprintf("LOADED:    %d", weapon.Loaded),
		fmt.Sprintf("INVENTORY: %d", weapon.Reserve),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, w *game.World) {
	height := screen.Bounds().Dy()
	for i, line := range statusLines(w) {
		text.Draw(screen, line, h.face, hudMargin, hudLeading*(i+1), color.White)
	}

	lines := weaponLines(w)
	for i, line := range lines {
		y := height - hudMargin - hudLeading*(len(lines)-1-i)
		text.Draw(screen, line, h.face, hudMargin, y, color.White)
	}
}
