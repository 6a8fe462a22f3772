package game

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/model"
)

var arenaRows = []string{
	"##########",
	"#P.......#",
	"#........#",
	"#........#",
	"#........#",
	"##########",
}

const frame = 1.0 / 60

type recorder struct {
	played []string
	looped []string
}

func (r *recorder) PlayOnce(name string)    { r.played = append(r.played, name) }
func (r *recorder) PlayLooping(name string) { r.looped = append(r.looped, name) }

func (r *recorder) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

// scriptRand replays queued values and then settles on defaults. The
// default int of 7 never spawns anything and lands spots on tile 7,1.
type scriptRand struct {
	ints   []int
	def    int
	floats []float64
	defF   float64
}

func (r *scriptRand) Intn(n int) int {
	v := r.def
	if len(r.ints) > 0 {
		v, r.ints = r.ints[0], r.ints[1:]
	}
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.defF
}

func newTestWorld(t *testing.T, mutate func(*config.Scenario)) (*World, *recorder, *scriptRand) {
	t.Helper()
	level, err := engine.ParseLevel(arenaRows, 64)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	sc := config.Default()
	if mutate != nil {
		mutate(&sc)
	}
	if err := sc.Validate(); err != nil {
		t.Fatalf("scenario: %v", err)
	}
	sounds := &recorder{}
	rng := &scriptRand{def: 7, defF: 0.5}
	w, err := NewWorld(sc, level, sounds, rng, 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, sounds, rng
}

func arsenal(sc *config.Scenario) {
	sc.Weapons = []config.WeaponConfig{
		{Name: "fist", Kind: "melee", Sound: "jab"},
		{Name: "pistol", Kind: "single", Magazine: 16, Loaded: 16, Reserve: 32, Damage: 2, Sound: "shoot", PickupTag: "a", PickupAmount: 32, PickupRolls: []int{2}},
		{Name: "rifle", Kind: "automatic", Magazine: 30, Loaded: 30, Reserve: 60, FireInterval: 0.1, Damage: 1, Sound: "rifle", Shake: true, PickupTag: "b", PickupAmount: 30, PickupRolls: []int{3}},
	}
}

// addEnemy puts a stationary enemy at x on the player's row.
func addEnemy(w *World, x float64) int {
	e := engine.NewEntity(geom.Vector2{X: x, Y: w.Player.Position.Y}, model.TagEnemy, engine.Size{W: 20, H: 30})
	return w.Enemies.Insert(e, 0)
}

func nuts(w *World) int {
	n := 0
	for _, pk := range w.pickups {
		if pk.Tag == model.TagNut {
			n++
		}
	}
	return n
}

func TestNewWorld(t *testing.T) {
	w, _, _ := newTestWorld(t, arsenal)

	if got := w.Player.Position; got != (geom.Vector2{X: 96, Y: 96}) {
		t.Fatalf("player at %v, want spawn", got)
	}
	if len(w.Player.WeaponSet) != 3 || w.Player.Weapon.Name != "fist" {
		t.Fatalf("weapons not copied from the scenario: %+v", w.Player.WeaponSet)
	}
	if w.Player.WeaponSet[2].Kind != model.KindAutomatic || w.Player.WeaponSet[2].FireInterval != 0.1 {
		t.Fatalf("rifle = %+v", w.Player.WeaponSet[2])
	}
	if !w.Viewmodel.Visible() || w.Viewmodel.Item() != "fist" {
		t.Fatal("first weapon not equipped")
	}
	if nuts(w) != 1 {
		t.Fatalf("%d nuts at start, want 1", nuts(w))
	}
	if w.Session.Health != 3 || w.Session.Goal != 5 {
		t.Fatalf("session = %+v", w.Session)
	}
}

func TestWeaponsAreCopiedPerRun(t *testing.T) {
	a, _, _ := newTestWorld(t, nil)
	b, _, _ := newTestWorld(t, nil)
	a.Player.Weapon.Loaded = 0
	if b.Player.Weapon.Loaded != 16 {
		t.Fatal("runs share weapon state")
	}
}

func TestSpawnCaps(t *testing.T) {
	w, _, rng := newTestWorld(t, func(sc *config.Scenario) {
		sc.MaxEnemies = 3
		sc.Goal = 99
	})

	// every roll drops an enemy, spots land on tile 3,3
	rng.def = 1
	rng.ints = nil
	for i := 0; i < 10; i++ {
		rng.ints = append(rng.ints, 1, 3, 3)
	}
	for i := 0; i < 10; i++ {
		w.Step(Input{}, 0)
	}
	if w.Enemies.Len() != 3 {
		t.Fatalf("%d enemies, want the cap of 3", w.Enemies.Len())
	}
	for i := 0; i < w.Enemies.Len(); i++ {
		if s := w.Enemies.Speed(i); s < 1 || s >= 4 {
			t.Fatalf("speed %v outside [1, 4)", s)
		}
	}

	// ammo rolls stop at the ammo cap
	rng.ints = nil
	for i := 0; i < 10; i++ {
		rng.ints = append(rng.ints, 2, 5, 3)
	}
	for i := 0; i < 10; i++ {
		w.Step(Input{}, 0)
	}
	if got := w.ammoPickups(); got != 3 {
		t.Fatalf("%d ammo pickups, want 3", got)
	}
	if nuts(w) != 1 {
		t.Fatalf("%d nuts, want exactly 1", nuts(w))
	}
}

func TestGoalPickupInvariant(t *testing.T) {
	w, sounds, _ := newTestWorld(t, nil)

	for round := 1; round <= 3; round++ {
		for i := range w.pickups {
			if w.pickups[i].Tag == model.TagNut {
				w.pickups[i].Pos = w.Player.Position
			}
		}
		if w.Step(Input{}, float64(round)) {
			t.Fatal("run ended early")
		}
		if w.Session.Nuts != round {
			t.Fatalf("nuts = %d, want %d", w.Session.Nuts, round)
		}
		if nuts(w) != 1 {
			t.Fatalf("%d nuts after collecting, want 1", nuts(w))
		}
	}
	if sounds.count(SoundNut) != 3 {
		t.Fatalf("nut cue played %d times", sounds.count(SoundNut))
	}
}

func TestWinEndsAndFreezes(t *testing.T) {
	w, _, _ := newTestWorld(t, func(sc *config.Scenario) { sc.Goal = 1 })
	for i := range w.pickups {
		w.pickups[i].Pos = w.Player.Position
	}
	if !w.Step(Input{}, 1) {
		t.Fatal("collecting the last nut should end the run")
	}
	if !w.Ended() || !w.Result(5).Won || w.Result(5).Duration != 1 {
		t.Fatalf("result = %+v", w.Result(5))
	}

	loaded := w.Player.Weapon.Loaded
	if w.Step(Input{FirePressed: true, Forward: true}, 2) {
		t.Fatal("an ended run reported ending twice")
	}
	if w.Player.Weapon.Loaded != loaded || w.Player.Position != (geom.Vector2{X: 96, Y: 96}) {
		t.Fatal("an ended run kept simulating")
	}
}

func TestAmmoPickup(t *testing.T) {
	w, sounds, _ := newTestWorld(t, nil)
	ammo := func() Pickup {
		return Pickup{
			Entity: engine.NewEntity(w.Player.Position, 'a', engine.Size{W: 16, H: 16}),
			Weapon: "pistol",
			Amount: 32,
		}
	}
	w.pickups = append(w.pickups, ammo(), ammo())

	w.Step(Input{}, 0)
	if got := w.Player.Weapon.Reserve; got != 64 {
		t.Fatalf("reserve = %d, want 64", got)
	}
	if got := w.ammoPickups(); got != 1 {
		t.Fatalf("%d ammo pickups left, want 1 (one per frame)", got)
	}

	w.Step(Input{}, frame)
	if w.Player.Weapon.Reserve != 96 || w.ammoPickups() != 0 || sounds.count(SoundAmmo) != 2 {
		t.Fatalf("reserve %d, pickups %d", w.Player.Weapon.Reserve, w.ammoPickups())
	}
}

func TestDeadEnemyRemovalGrace(t *testing.T) {
	w, _, _ := newTestWorld(t, nil)
	addEnemy(w, 400)
	addEnemy(w, 450)
	addEnemy(w, 500)
	w.Enemies.Kill(0, 0)
	w.Enemies.Kill(2, 0)

	steps := []struct {
		now  float64
		want int
	}{
		{0.5, 3},
		{1.0, 3},
		{1.01, 2},
		{1.02, 1},
		{1.03, 1},
	}
	for _, st := range steps {
		w.Step(Input{}, st.now)
		if w.Enemies.Len() != st.want {
			t.Fatalf("t=%v: %d enemies, want %d", st.now, w.Enemies.Len(), st.want)
		}
	}
	if w.Enemies.Dead(0) || w.Enemies.At(0).Pos.X != 450 {
		t.Fatal("the living enemy should remain")
	}
}

func TestProximityDamage(t *testing.T) {
	w, sounds, _ := newTestWorld(t, nil)
	addEnemy(w, w.Player.Position.X+10)

	steps := []struct {
		now    float64
		health int
		ended  bool
	}{
		{0.0, 2, false},
		{0.5, 2, false},
		{1.0, 1, false},
		{1.5, 1, false},
		{2.0, 0, true},
	}
	for _, st := range steps {
		ended := w.Step(Input{}, st.now)
		if w.Session.Health != st.health || ended != st.ended {
			t.Fatalf("t=%v: health %d ended %v, want %d %v", st.now, w.Session.Health, ended, st.health, st.ended)
		}
	}
	if sounds.count(SoundHurt) != 3 {
		t.Fatalf("hurt cue played %d times", sounds.count(SoundHurt))
	}
	if w.Result(9).Won {
		t.Fatal("dying is not winning")
	}
}

func TestEnemiesWalkTowardsPlayer(t *testing.T) {
	w, _, _ := newTestWorld(t, nil)
	w.Enemies.Insert(engine.NewEntity(geom.Vector2{X: 480, Y: 96}, model.TagEnemy, engine.Size{W: 20, H: 30}), 3)

	w.Step(Input{}, 0)
	if got := w.Enemies.At(0).Pos; got.X != 477 || got.Y != 96 {
		t.Fatalf("enemy at %v, want 3 units closer", got)
	}
}

func TestDyingOnTheLastNutLoses(t *testing.T) {
	w, _, _ := newTestWorld(t, func(sc *config.Scenario) {
		sc.Goal = 1
		sc.Health = 1
	})
	for i := range w.pickups {
		w.pickups[i].Pos = w.Player.Position
	}
	addEnemy(w, w.Player.Position.X)

	if !w.Step(Input{}, 0) {
		t.Fatal("the run should end")
	}
	if w.Session.Nuts != 1 || w.Session.Health != 0 {
		t.Fatalf("session = %+v", w.Session)
	}
	if w.Result(1).Won {
		t.Fatal("a dead player did not win")
	}
}

func TestRestartOnlyAfterTheEnd(t *testing.T) {
	w, _, _ := newTestWorld(t, func(sc *config.Scenario) { sc.Goal = 1 })
	if w.WantsRestart(Input{Restart: true}) {
		t.Fatal("restart honoured mid-run")
	}

	for i := range w.pickups {
		w.pickups[i].Pos = w.Player.Position
	}
	w.Step(Input{}, 0)
	if w.WantsRestart(Input{}) {
		t.Fatal("restart without the key")
	}
	if !w.WantsRestart(Input{Restart: true}) {
		t.Fatal("restart ignored after the end")
	}
}
