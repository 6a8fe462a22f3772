package game

import (
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/model"
)

// spawn rolls once per frame. Some roll values drop an enemy, others an
// ammo pickup, each only while under its cap.
func (w *World) spawn() {
	roll := w.rng.Intn(w.cfg.RollRange)

	if w.enemyRolls[roll] && w.Enemies.Len() < w.cfg.MaxEnemies {
		pos := w.level.RandomOpenSpot(w.rng)
		speed := w.cfg.EnemySpeedMin + w.rng.Float64()*(w.cfg.EnemySpeedMax-w.cfg.EnemySpeedMin)
		size := engine.Size{W: w.cfg.EnemyWidth, H: w.cfg.EnemyHeight}
		w.Enemies.Insert(engine.NewEntity(pos, model.TagEnemy, size), speed)
	}

	if wcfg, ok := w.ammoRolls[roll]; ok && w.ammoPickups() < w.cfg.MaxAmmoPickups {
		tag := []rune(wcfg.PickupTag)[0]
		w.pickups = append(w.pickups, Pickup{
			Entity: engine.NewEntity(w.level.RandomOpenSpot(w.rng), tag, w.pickupSize()),
			Weapon: wcfg.Name,
			Amount: wcfg.PickupAmount,
		})
	}
}

func (w *World) pickupSize() engine.Size {
	return engine.Size{W: w.cfg.PickupWidth, H: w.cfg.PickupHeight}
}

func (w *World) ammoPickups() int {
	n := 0
	for _, pk := range w.pickups {
		if pk.Tag != model.TagNut {
			n++
		}
	}
	return n
}

// ensureNut keeps exactly one nut in the world.
func (w *World) ensureNut() {
	for _, pk := range w.pickups {
		if pk.Tag == model.TagNut {
			return
		}
	}
	w.pickups = append(w.pickups, Pickup{
		Entity: engine.NewEntity(w.level.RandomOpenSpot(w.rng), model.TagNut, w.pickupSize()),
	})
}

// collectPickups takes at most one pickup per frame, the first in reach.
func (w *World) collectPickups() {
	p := w.Player
	for i, pk := range w.pickups {
		if engine.Distance(p.Position, pk.Pos) >= w.cfg.PickupRadius {
			continue
		}
		w.pickups = append(w.pickups[:i], w.pickups[i+1:]...)

		if pk.Tag == model.TagNut {
			w.Session.Nuts++
			w.sounds.PlayOnce(SoundNut)
			w.ensureNut()
			return
		}
		if weapon := p.WeaponByName(pk.Weapon); weapon != nil {
			weapon.AddReserve(pk.Amount)
		}
		w.sounds.PlayOnce(SoundAmmo)
		return
	}
}

// removeExpired drops at most one enemy per frame whose death is older
// than the grace period.
func (w *World) removeExpired(now float64) {
	if i := w.Enemies.FirstExpired(now, w.cfg.DeathGrace); i >= 0 {
		w.Enemies.Remove(i)
	}
}
