package model

// Kind decides how a weapon attacks.
type Kind string

const (
	KindMelee     Kind = "melee"
	KindSingle    Kind = "single"
	KindAutomatic Kind = "automatic"
)

// Weapon is one item slot. Ranged weapons carry an ammo account of loaded
// and reserve rounds and can be reloading or idle.
type Weapon struct {
	Name         string
	Kind         Kind
	Magazine     int
	Loaded       int
	Reserve      int
	FireInterval float64
	Damage       int
	Sound        string
	Shake        bool

	reload   Timer
	lastShot Timer
}

func (w *Weapon) Ranged() bool {
	return w.Kind != KindMelee
}

func (w *Weapon) Automatic() bool {
	return w.Kind == KindAutomatic
}

func (w *Weapon) Reloading() bool {
	return w.reload.IsSet()
}

// StartReload moves an idle ranged weapon into reloading. It returns false
// for melee weapons and for weapons that are already reloading.
func (w *Weapon) StartReload(now float64) bool {
	if !w.Ranged() || w.Reloading() {
		return false
	}
	w.reload.Start(now)
	return true
}

// FinishReload completes a reload once more than d has passed since it
// started and returns the number of rounds moved into the magazine.
func (w *Weapon) FinishReload(now, d float64) (int, bool) {
	if !w.reload.Expired(now, d) {
		return 0, false
	}
	w.reload.Clear()
	return w.transfer(), true
}

func (w *Weapon) transfer() int {
	n := min(w.Reserve, w.Magazine, w.Magazine-w.Loaded)
	if n < 0 {
		n = 0
	}
	w.Loaded += n
	w.Reserve -= n
	return n
}

// OnCooldown reports whether the weapon fired less than its fire interval
// ago.
func (w *Weapon) OnCooldown(now float64) bool {
	return w.lastShot.Active(now, w.FireInterval)
}

// Fire spends one loaded round. It returns false, leaving the counters
// alone, when the magazine is empty.
func (w *Weapon) Fire(now float64) bool {
	if w.Loaded <= 0 {
		return false
	}
	w.Loaded--
	w.lastShot.Start(now)
	return true
}

func (w *Weapon) AddReserve(n int) {
	if n > 0 {
		w.Reserve += n
	}
}
