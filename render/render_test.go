package render

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/model"
)

type silence struct{}

func (silence) PlayOnce(string)    {}
func (silence) PlayLooping(string) {}

type fixedRand struct{}

func (fixedRand) Intn(n int) int   { return 7 % n }
func (fixedRand) Float64() float64 { return 0.5 }

var testRows = []string{
	"#####",
	"#P..#",
	"#.#.#",
	"#####",
}

func testWorld(t *testing.T) *game.World {
	t.Helper()
	level, err := engine.ParseLevel(testRows, 64)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	w, err := game.NewWorld(config.Default(), level, silence{}, fixedRand{}, 0)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestLevelMapIsColumnMajor(t *testing.T) {
	level, err := engine.ParseLevel(testRows, 64)
	if err != nil {
		t.Fatal(err)
	}
	m := newLevelMap(level)
	grid := m.Level(0)
	if len(grid) != 5 || len(grid[0]) != 4 {
		t.Fatalf("grid is %dx%d, want 5x4", len(grid), len(grid[0]))
	}
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 1},
		{1, 1, 0},
		{2, 2, 1},
		{3, 2, 0},
	}
	for _, tt := range tests {
		if got := grid[tt.x][tt.y]; got != tt.want {
			t.Errorf("grid[%d][%d] = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if m.Level(1) != nil || m.NumLevels() != 1 {
		t.Fatal("only one level expected")
	}

	th := newTextureHandler(m)
	if th.TextureAt(-1, 0, 0, 0) != nil || th.TextureAt(1, 1, 0, 0) != nil || th.FloorTextureAt(0, 0) != nil {
		t.Fatal("open or outside tiles have no texture")
	}
}

func TestSpriteGeometry(t *testing.T) {
	e := engine.NewEntity(geom.Vector2{X: 96, Y: 160}, model.TagEnemy, engine.Size{W: 20, H: 32})
	pos, scale := spriteGeometry(e, 64)
	if pos != (geom.Vector2{X: 1.5, Y: 2.5}) || scale != 0.5 {
		t.Fatalf("got %v scale %v", pos, scale)
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{-1, 0},
		{0, 0.5},
		{0.5, 0.25},
		{0.9, 0.05},
		{1, 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := fade(0.5, 1, tt.elapsed); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("fade at %v = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestFlashAlpha(t *testing.T) {
	s := model.NewSession(2, 5, 0)
	if got := flashAlpha(s, 3, 1); got != 0 {
		t.Fatalf("flash without a hit = %v", got)
	}

	s.Damage(1, 1)
	if got := flashAlpha(s, 1.5, 1); math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("flash half way = %v, want 0.25", got)
	}
	if got := flashAlpha(s, 2.5, 1); got != 0 {
		t.Fatalf("flash after it faded = %v", got)
	}

	s.Damage(10, 1)
	s.Damage(20, 1)
	if got := flashAlpha(s, 99, 1); got != maxFlash {
		t.Fatalf("flash while dead = %v, want %v", got, maxFlash)
	}
}

func TestShakeAmplitude(t *testing.T) {
	var timer model.Timer
	if got := shakeAmplitude(timer, 10, 0.1, 5); got != 0 {
		t.Fatalf("unset timer shakes by %v", got)
	}
	timer.Start(5)
	if got := shakeAmplitude(timer, 10, 0.1, 5.05); math.Abs(got-5) > 1e-4 {
		t.Fatalf("shake half way = %v, want 5", got)
	}
	if got := shakeAmplitude(timer, 10, 0.1, 5.2); got != 0 {
		t.Fatalf("shake after it ended = %v", got)
	}
}

func TestViewmodelOffset(t *testing.T) {
	if got := viewmodelOffset(0, 200); got != 0 {
		t.Fatalf("offset at start = %v", got)
	}
	if got := viewmodelOffset(0.5, 200); math.Abs(got-200*jabReach) > 1e-9 {
		t.Fatalf("offset at peak = %v", got)
	}
}

func TestHUDLines(t *testing.T) {
	w := testWorld(t)

	if got, want := statusLines(w), []string{"HEALTH: 3", "NUTS:   0/5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("status = %q, want %q", got, want)
	}
	want := []string{"pistol", "LOADED:    16", "INVENTORY: 32"}
	if got := weaponLines(w); !reflect.DeepEqual(got, want) {
		t.Fatalf("weapon = %q, want %q", got, want)
	}

	w.Player.Weapon.StartReload(0)
	if got := weaponLines(w)[0]; got != "pistol (reloading)" {
		t.Fatalf("reloading line = %q", got)
	}

	w.Player.SelectWeapon(-1)
	if got := weaponLines(w); !reflect.DeepEqual(got, []string{"holstered"}) {
		t.Fatalf("holstered = %q", got)
	}
}

func TestEndMessage(t *testing.T) {
	w := testWorld(t)
	if got := endMessage(w); got != "" {
		t.Fatalf("running world shows %q", got)
	}

	w.Session.Health = 1
	w.Enemies.Insert(engine.NewEntity(w.Player.Position, model.TagEnemy, engine.Size{W: 20, H: 30}), 0)
	w.Step(game.Input{}, 0)
	if got := endMessage(w); got != loseMessage {
		t.Fatalf("lost run shows %q", got)
	}

	w = testWorld(t)
	w.Session.Nuts = w.Session.Goal - 1
	for _, pk := range w.Pickups() {
		if pk.Tag == model.TagNut {
			w.Player.MoveTo(pk.Pos)
		}
	}
	w.Step(game.Input{}, 0)
	if got := endMessage(w); got != winMessage {
		t.Fatalf("won run shows %q", got)
	}
}

func TestCrosshairColor(t *testing.T) {
	c := NewCrosshair(10, 2)
	s := model.NewSession(3, 5, 0)
	if c.Color(s, 1, 0.15) != color.White {
		t.Fatal("idle crosshair should be white")
	}
	s.HitMarker.Start(1)
	if c.Color(s, 1.1, 0.15) == color.White {
		t.Fatal("crosshair should mark a recent hit")
	}
	if c.Color(s, 1.2, 0.15) != color.White {
		t.Fatal("hit marker should expire")
	}
}

func TestCameraPoseSyncsOnlyAfterMoving(t *testing.T) {
	p := model.NewPlayer(96, 160, 1)
	pos, angle, moved := cameraPose(p, 64)
	if !moved || pos != (geom.Vector2{X: 1.5, Y: 2.5}) || angle != 1 {
		t.Fatalf("first pose = %v %v %v", pos, angle, moved)
	}
	if _, _, moved := cameraPose(p, 64); moved {
		t.Fatal("pose reported a move that did not happen")
	}

	p.Rotate(0.5)
	if _, angle, moved := cameraPose(p, 64); !moved || angle != 1.5 {
		t.Fatalf("after turning: angle %v moved %v", angle, moved)
	}
	p.MoveTo(geom.Vector2{X: 128, Y: 160})
	if pos, _, moved := cameraPose(p, 64); !moved || pos.X != 2 {
		t.Fatalf("after moving: pos %v moved %v", pos, moved)
	}
}

func TestEndMessagePrefersDeath(t *testing.T) {
	w := testWorld(t)
	w.Session.Health = 1
	w.Session.Nuts = w.Session.Goal - 1
	w.Enemies.Insert(engine.NewEntity(w.Player.Position, model.TagEnemy, engine.Size{W: 20, H: 30}), 0)

	// the nut starts under the player, so the last nut and the last hit
	// land in the same frame
	if !w.Step(game.Input{}, 0) {
		t.Fatal("the run should end")
	}
	if got := endMessage(w); got != loseMessage {
		t.Fatalf("message = %q, want the loss message", got)
	}
}
