package model

// Viewmodel is the held item drawn over the scene. It can be hidden while
// the item reloads, swapped to another texture for a short time after a
// shot, and animated by a melee jab.
type Viewmodel struct {
	item    string
	hidden  bool
	swapTex string
	swap    Timer
	swapFor float64
	jab     Timer
	jabFor  float64
}

// Equip shows the named item, dropping any pending texture swap.
func (v *Viewmodel) Equip(name string) {
	v.item = name
	v.hidden = false
	v.swap.Clear()
}

func (v *Viewmodel) Unequip() {
	v.hidden = true
}

func (v *Viewmodel) Reequip() {
	v.hidden = false
}

func (v *Viewmodel) Item() string {
	return v.item
}

func (v *Viewmodel) Visible() bool {
	return v.item != "" && !v.hidden
}

// TexSwap shows tex instead of the item texture for d seconds.
func (v *Viewmodel) TexSwap(tex string, now, d float64) {
	v.swapTex = tex
	v.swap.Start(now)
	v.swapFor = d
}

// Texture returns the name of the texture to draw at now.
func (v *Viewmodel) Texture(now float64) string {
	if v.swap.Active(now, v.swapFor) {
		return v.swapTex
	}
	return v.item
}

// Jab starts the jab animation for d seconds.
func (v *Viewmodel) Jab(now, d float64) {
	v.jab.Start(now)
	v.jabFor = d
}

// JabProgress returns how far through the jab the viewmodel is, in [0, 1),
// and false when no jab is playing.
func (v *Viewmodel) JabProgress(now float64) (float64, bool) {
	if !v.jab.Active(now, v.jabFor) || v.jabFor <= 0 {
		return 0, false
	}
	return v.jab.Since(now) / v.jabFor, true
}
