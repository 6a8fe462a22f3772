package game

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/engine"
)

// moveEnemies walks living enemies at the player and carries launched ones
// along their flight.
func (w *World) moveEnemies(now float64) {
	target := w.Player.Position
	for i := 0; i < w.Enemies.Len(); i++ {
		switch {
		case w.Enemies.Dead(i):
			continue
		case w.Enemies.InFlight(i):
			w.flyEnemy(i, now)
		default:
			e := w.Enemies.At(i)
			speed := w.Enemies.Speed(i)
			theta := engine.Angle(e.Pos, target) + (w.rng.Float64()*2-1)*w.cfg.Jitter
			e.Pos = w.level.MoveTowardsCollidable(e.Pos, engine.Offset(e.Pos, theta, speed), speed)
		}
	}
}

// flyEnemy moves a launched enemy. Being stopped short by a wall kills it,
// running out of flight time lands it unharmed.
func (w *World) flyEnemy(i int, now float64) {
	e := w.Enemies.At(i)
	vel := w.Enemies.Velocity(i)
	want := geom.Vector2{X: e.Pos.X + vel.X, Y: e.Pos.Y + vel.Y}
	e.Pos = w.level.MoveTowardsCollidable(e.Pos, want, math.Hypot(vel.X, vel.Y))

	if engine.Distance(e.Pos, want) > w.cfg.KnockbackShortfall {
		w.killEnemy(i, now)
		w.sounds.PlayOnce(SoundImpact)
		w.Session.ImpactShake.Start(now)
		return
	}
	if w.Enemies.Flight(i).Expired(now, w.cfg.KnockbackFlight) {
		w.Enemies.Land(i)
	}
}

// proximityDamage hurts the player when a walking enemy is within the
// lethal radius, at most once per hurt cooldown.
func (w *World) proximityDamage(now float64) {
	p := w.Player.Position
	for i := 0; i < w.Enemies.Len(); i++ {
		if !w.Enemies.Living(i) || engine.Distance(w.Enemies.At(i).Pos, p) >= w.cfg.LethalRadius {
			continue
		}
		if w.Session.Damage(now, w.cfg.HurtCooldown) {
			w.sounds.PlayOnce(SoundHurt)
		}
		return
	}
}
