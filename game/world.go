package game

import (
	"fmt"
	"log"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/model"
)

// Sounds plays cues by name.
type Sounds interface {
	PlayOnce(name string)
	PlayLooping(name string)
}

// Rand is the randomness the simulation draws from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Sound cue names. Weapon shot cues come from the scenario.
const (
	SoundMusic   = "music"
	SoundDry     = "dry"
	SoundDeath   = "death"
	SoundAmmo    = "ammo"
	SoundNut     = "nut"
	SoundGrapple = "grapple"
	SoundImpact  = "impact"
	SoundReload  = "reload"
	SoundHurt    = "hurt"
	SoundJab     = "jab"
)

// Pickup is an item lying in the world: ammo for a weapon, or the nut.
type Pickup struct {
	engine.Entity
	Weapon string
	Amount int
}

// Result summarises a finished run.
type Result struct {
	RunID    string
	Scenario string
	Won      bool
	Duration float64
	Kills    int
	Nuts     int
}

// World is the whole mutable state of one run.
type World struct {
	cfg    config.Scenario
	level  *engine.Level
	sounds Sounds
	rng    Rand

	Player    *model.Player
	Session   *model.Session
	Enemies   *model.Entities
	Viewmodel model.Viewmodel

	pickups []Pickup

	grappling     bool
	grappleTarget geom.Vector2
	jab           model.Timer

	enemyRolls    map[int]bool
	ammoRolls     map[int]config.WeaponConfig
	shotIgnore    string
	grappleIgnore string

	ended   bool
	endedAt float64
}

// NewWorld starts a fresh run of the scenario on the given level.
func NewWorld(cfg config.Scenario, level *engine.Level, sounds Sounds, rng Rand, now float64) (*World, error) {
	w := &World{
		cfg:        cfg,
		level:      level,
		sounds:     sounds,
		rng:        rng,
		Session:    model.NewSession(cfg.Health, cfg.Goal, now),
		Enemies:    model.NewEntities(cfg.MaxEnemies),
		enemyRolls: map[int]bool{},
		ammoRolls:  map[int]config.WeaponConfig{},
		shotIgnore: string([]rune{model.TagDead, model.TagLaunched}),
	}

	spawn := level.Spawn()
	w.Player = model.NewPlayer(spawn.X, spawn.Y, 0)

	w.grappleIgnore = model.EnemyTags() + string(model.TagNut)
	for _, wcfg := range cfg.Weapons {
		weapon := &model.Weapon{}
		if err := copier.Copy(weapon, &wcfg); err != nil {
			return nil, fmt.Errorf("weapon %q: %w", wcfg.Name, err)
		}
		w.Player.AddWeapon(weapon)

		w.grappleIgnore += wcfg.PickupTag
		for _, roll := range wcfg.PickupRolls {
			if wcfg.PickupTag != "" {
				w.ammoRolls[roll] = wcfg
			}
		}
	}
	for _, roll := range cfg.EnemyRolls {
		w.enemyRolls[roll] = true
	}

	w.Player.SelectWeapon(0)
	w.equipCurrent()
	w.ensureNut()

	log.Printf("[game] run %s started: scenario %q, %d weapons", w.Session.ID, cfg.Name, len(w.Player.WeaponSet))
	return w, nil
}

func (w *World) Level() *engine.Level {
	return w.level
}

func (w *World) Scenario() *config.Scenario {
	return &w.cfg
}

// Pickups returns the items currently lying in the world.
func (w *World) Pickups() []Pickup {
	return w.pickups
}

// Grapple reports whether a grapple is in progress and where it pulls to.
func (w *World) Grapple() (geom.Vector2, bool) {
	return w.grappleTarget, w.grappling
}

func (w *World) Ended() bool {
	return w.ended
}

// WantsRestart reports whether in asks for a new run. The restart key is
// only honoured once the run has ended.
func (w *World) WantsRestart(in Input) bool {
	return in.Restart && w.ended
}

// Result describes the run as of now, or as of its end once it ended.
func (w *World) Result(now float64) Result {
	if w.ended {
		now = w.endedAt
	}
	s := w.Session
	return Result{
		RunID:    s.ID,
		Scenario: w.cfg.Name,
		Won:      s.Won(),
		Duration: now - s.Started,
		Kills:    s.Kills,
		Nuts:     s.Nuts,
	}
}

// Step advances the run by one frame. It returns true only on the frame the
// run ends; an ended world ignores further steps.
func (w *World) Step(in Input, now float64) bool {
	if w.ended {
		return false
	}

	w.moveCamera(in, now)
	w.updateReload(in, now)
	w.switchWeapon(in)
	w.fire(in, now)
	w.melee(in, now)
	w.acquireGrapple(in)
	w.spawn()
	w.ensureNut()
	w.collectPickups()
	w.removeExpired(now)
	w.moveEnemies(now)
	w.proximityDamage(now)

	if !w.Session.Ended() {
		return false
	}
	w.ended, w.endedAt = true, now
	w.grappling = false

	r := w.Result(now)
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	log.Printf("[game] run %s %s after %.1fs: %d nuts, %d kills", r.RunID, outcome, r.Duration, r.Nuts, r.Kills)
	return true
}
