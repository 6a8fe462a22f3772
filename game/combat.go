package game

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/model"
)

// a grapple that moves less than this in a frame is stuck
const grappleStuck = 0.01

func (w *World) moveCamera(in Input, now float64) {
	p := w.Player
	if w.grappling {
		w.pullGrapple(now)
	} else {
		w.walk(in)
	}

	if in.LookDX != 0 {
		// the camera turns right as its angle decreases
		p.Rotate(-in.LookDX * w.cfg.LookSensitivity)
	}
}

func (w *World) walk(in Input) {
	var forward, strafe float64
	if in.Forward {
		forward++
	}
	if in.Backward {
		forward--
	}
	if in.StrafeRight {
		strafe++
	}
	if in.StrafeLeft {
		strafe--
	}
	if forward == 0 && strafe == 0 {
		return
	}

	speed := w.cfg.PlayerSpeed
	if in.Sprint {
		speed *= w.cfg.SprintModifier
	}

	p := w.Player
	f := p.Facing()
	dx := f.X*forward + f.Y*strafe
	dy := f.Y*forward - f.X*strafe
	norm := math.Hypot(dx, dy)
	p.MoveTo(w.level.Move(p.Position, dx/norm*speed, dy/norm*speed))
}

func (w *World) pullGrapple(now float64) {
	p := w.Player
	if engine.Distance(p.Position, w.grappleTarget) < w.cfg.GrappleStop {
		w.endGrapple(now)
		return
	}
	next := w.level.MoveTowardsCollidable(p.Position, w.grappleTarget, w.cfg.GrappleSpeed)
	if engine.Distance(p.Position, next) < grappleStuck {
		w.endGrapple(now)
		return
	}
	p.MoveTo(next)
}

func (w *World) endGrapple(now float64) {
	w.grappling = false
	w.sounds.PlayOnce(SoundImpact)
	w.Session.ImpactShake.Start(now)
}

func (w *World) updateReload(in Input, now float64) {
	p := w.Player
	if in.ReloadPressed && p.Weapon != nil && p.Weapon.StartReload(now) {
		w.Viewmodel.Unequip()
		w.sounds.PlayOnce(SoundReload)
	}

	// a reload runs to completion even when its weapon is put away
	for _, weapon := range p.WeaponSet {
		if _, done := weapon.FinishReload(now, w.cfg.ReloadTime); done && weapon == p.Weapon {
			w.Viewmodel.Reequip()
		}
	}
}

func (w *World) switchWeapon(in Input) {
	p := w.Player
	prev := p.Weapon
	switch {
	case in.Holster:
		p.SelectWeapon(-1)
	case in.SelectSlot > 0:
		p.SelectWeapon(in.SelectSlot - 1)
	case in.CycleWeapon != 0 && len(p.WeaponSet) > 0:
		p.NextWeapon(in.CycleWeapon < 0)
	}
	if p.Weapon != prev {
		w.equipCurrent()
	}
}

func (w *World) equipCurrent() {
	weapon := w.Player.Weapon
	if weapon == nil {
		w.Viewmodel.Equip("")
		return
	}
	w.Viewmodel.Equip(weapon.Name)
	if weapon.Reloading() {
		w.Viewmodel.Unequip()
	}
}

func (w *World) fire(in Input, now float64) {
	weapon := w.Player.Weapon
	if weapon == nil || !weapon.Ranged() || weapon.Reloading() {
		return
	}

	trigger := in.FirePressed
	if weapon.Automatic() {
		trigger = in.FireHeld || in.FirePressed
	}
	if !trigger || weapon.OnCooldown(now) {
		return
	}

	if !weapon.Fire(now) {
		// an empty automatic clicks once per pull, not once per frame
		if in.FirePressed {
			w.sounds.PlayOnce(SoundDry)
		}
		return
	}

	w.Viewmodel.TexSwap(weapon.Name+"-shoot", now, w.cfg.ShotSwap)
	w.sounds.PlayOnce(weapon.Sound)
	if weapon.Shake {
		w.Session.WeaponShake.Start(now)
	}

	hit := w.level.CastRay(w.Player.Ray(), w.Enemies.All(), w.shotIgnore)
	if hit.Kind == engine.IntersectEntity {
		w.woundEnemy(hit.Index, weapon.Damage, now)
	}
}

func (w *World) woundEnemy(i, stages int, now float64) {
	w.Session.HitMarker.Start(now)
	e := w.Enemies.At(i)
	if tag := model.Wound(e.Tag, stages); tag != model.TagDead {
		e.Tag = tag
		return
	}
	w.killEnemy(i, now)
}

func (w *World) killEnemy(i int, now float64) {
	w.Enemies.Kill(i, now)
	w.Session.Kills++
	w.sounds.PlayOnce(SoundDeath)
}

// melee opens a jab window on a melee weapon's trigger or on the quick
// melee key, and resolves it against every enemy in reach.
func (w *World) melee(in Input, now float64) {
	weapon := w.Player.Weapon
	wantJab := in.MeleePressed || (in.FirePressed && weapon != nil && !weapon.Ranged())
	if wantJab && !w.jab.Active(now, w.cfg.JabWindow) {
		w.jab.Start(now)
		w.Viewmodel.Jab(now, w.cfg.JabWindow)
		w.sounds.PlayOnce(SoundJab)
	}
	if !w.jab.Active(now, w.cfg.JabWindow) {
		return
	}

	p := w.Player
	facing := p.Facing()
	for i := 0; i < w.Enemies.Len(); i++ {
		if !w.Enemies.Living(i) || !w.inReach(w.Enemies.At(i).Pos, facing) {
			continue
		}
		w.Session.HitMarker.Start(now)
		if w.grappling {
			vel := geom.Vector2{X: facing.X * w.cfg.KnockbackSpeed, Y: facing.Y * w.cfg.KnockbackSpeed}
			w.Enemies.Launch(i, vel, now)
			w.grappling = false
			continue
		}
		w.killEnemy(i, now)
	}
}

func (w *World) inReach(pos, facing geom.Vector2) bool {
	p := w.Player.Position
	d := engine.Distance(p, pos)
	if d > w.cfg.MeleeRadius {
		return false
	}
	if d == 0 {
		return true
	}
	dot := ((pos.X-p.X)*facing.X + (pos.Y-p.Y)*facing.Y) / d
	return dot > w.cfg.MeleeFacing
}

func (w *World) acquireGrapple(in Input) {
	if !in.GrapplePressed {
		return
	}

	targets := make([]engine.Entity, 0, w.Enemies.Len()+len(w.pickups))
	targets = append(targets, w.Enemies.All()...)
	for _, pk := range w.pickups {
		targets = append(targets, pk.Entity)
	}

	ray := w.Player.Ray()
	hit := w.level.CastRay(ray, targets, w.grappleIgnore)
	if hit.Kind == engine.IntersectNone {
		return
	}
	w.grappling = true
	w.grappleTarget = ray.Along(hit.Distance)
	w.sounds.PlayOnce(SoundGrapple)
}
