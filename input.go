package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trvswgnr/nutcaster/game"
)

var slotKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// inputState turns ebiten's polled devices into one game.Input per tick.
type inputState struct {
	look *game.MouseLook
}

func newInputState() *inputState {
	return &inputState{look: game.NewMouseLook()}
}

func (s *inputState) pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// toggleCapture grabs or releases the cursor on Escape.
func (s *inputState) toggleCapture() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return
	}
	if s.look.Toggle() {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// release shows the cursor without changing what Escape toggles back to.
func (s *inputState) release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	s.look.Reset()
}

func (s *inputState) poll() game.Input {
	s.toggleCapture()
	if s.look.Captured() && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		s.look.Reset()
	}

	in := game.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Sprint:      ebiten.IsKeyPressed(ebiten.KeyShift),

		FirePressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		FireHeld:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		GrapplePressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		ReloadPressed:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		MeleePressed:   inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsKeyJustPressed(ebiten.KeyV),

		Holster: inpututil.IsKeyJustPressed(ebiten.KeyH),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	x, _ := ebiten.CursorPosition()
	in.LookDX = s.look.Delta(x)

	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.SelectSlot = i + 1
		}
	}

	_, wheelY := ebiten.Wheel()
	switch {
	case wheelY > 0:
		in.CycleWeapon = -1
	case wheelY < 0:
		in.CycleWeapon = 1
	}
	return in
}
