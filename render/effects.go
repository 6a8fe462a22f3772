package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/model"
)

// maxFlash is the alpha of the damage flash right after a hit.
const maxFlash = 0.5

// fade evaluates a linear tween from begin to 0 over d at the given elapsed
// time. Outside [0, d) it is 0.
func fade(begin, d, elapsed float64) float64 {
	if elapsed < 0 || elapsed >= d {
		return 0
	}
	tw := gween.New(float32(begin), 0, float32(d), ease.Linear)
	v, _ := tw.Set(float32(elapsed))
	return float64(v)
}

// flashAlpha is the opacity of the red damage overlay. It holds at full
// strength once the player is dead.
func flashAlpha(s *model.Session, now, d float64) float64 {
	if s.Dead() {
		return maxFlash
	}
	return fade(maxFlash, d, s.Hurt.Since(now))
}

// shakeAmplitude is the largest screen offset a shake timer allows at now.
func shakeAmplitude(t model.Timer, amplitude, d, now float64) float64 {
	return fade(amplitude, d, t.Since(now))
}

type jitter interface {
	Float64() float64
}

// shakeOffset sums the impact and weapon shakes into one random offset.
func (r *Renderer) shakeOffset(sc *config.Scenario, s *model.Session, now float64) (float64, float64) {
	amp := shakeAmplitude(s.ImpactShake, sc.ImpactShakeAmplitude, sc.ImpactShakeTime, now) +
		shakeAmplitude(s.WeaponShake, sc.WeaponShakeAmplitude, sc.WeaponShakeTime, now)
	if amp == 0 {
		return 0, 0
	}
	return (r.rng.Float64()*2 - 1) * amp, (r.rng.Float64()*2 - 1) * amp
}

func drawFlash(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	clr := color.NRGBA{R: 255, A: uint8(alpha * 255)}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), clr, false)
}
