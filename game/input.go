package game

import "math"

// Input is a snapshot of the controls for one frame. Pressed fields are
// true only on the frame the button went down.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Sprint      bool

	// LookDX is the horizontal mouse motion in pixels, positive to the right.
	LookDX float64

	FirePressed    bool
	FireHeld       bool
	GrapplePressed bool
	ReloadPressed  bool
	MeleePressed   bool

	// SelectSlot picks a weapon by 1-based slot, 0 keeps the current one.
	SelectSlot int
	// CycleWeapon steps through the weapon set, -1 back and +1 forward.
	CycleWeapon int
	Holster     bool

	Restart bool
}

// MouseLook turns absolute cursor positions into look deltas while the
// cursor is captured. Toggling capture forgets the last position so the
// jump between captures is not read as motion.
type MouseLook struct {
	captured bool
	lastX    int
}

func NewMouseLook() *MouseLook {
	return &MouseLook{captured: true, lastX: math.MinInt32}
}

func (m *MouseLook) Captured() bool {
	return m.captured
}

// Toggle flips capture and returns the new state.
func (m *MouseLook) Toggle() bool {
	m.captured = !m.captured
	m.Reset()
	return m.captured
}

// Reset forgets the last cursor position.
func (m *MouseLook) Reset() {
	m.lastX = math.MinInt32
}

// Delta returns the horizontal motion since the last call, or 0 while
// released or before a first position is known.
func (m *MouseLook) Delta(x int) float64 {
	if !m.captured {
		return 0
	}
	if m.lastX == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 {
			m.lastX = x
		}
		return 0
	}
	dx := x - m.lastX
	m.lastX = x
	return float64(dx)
}
