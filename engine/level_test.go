package engine

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/harbdog/raycaster-go/geom"
)

var testRows = []string{
	"########",
	"#P.....#",
	"#......#",
	"#..##..#",
	"#......#",
	"########",
}

func mustLevel(t *testing.T) *Level {
	t.Helper()
	l, err := ParseLevel(testRows, 64)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return l
}

func near(a, b geom.Vector2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestParseLevel(t *testing.T) {
	l := mustLevel(t)
	if l.Width() != 8 || l.Height() != 6 {
		t.Fatalf("size = %dx%d, want 8x6", l.Width(), l.Height())
	}
	if got, want := l.Spawn(), (geom.Vector2{X: 96, Y: 96}); !near(got, want) {
		t.Fatalf("spawn = %v, want %v", got, want)
	}
	if l.At(1, 1) != TileOpen {
		t.Fatalf("spawn tile should read as open, got %q", l.At(1, 1))
	}
	if l.At(3, 3) != TileWall || l.At(-1, 2) != TileWall || l.At(8, 0) != TileWall {
		t.Fatal("walls and out of bounds should read as walls")
	}
	if gx, gy := l.GridPos(geom.Vector2{X: 130, Y: 200}); gx != 2 || gy != 3 {
		t.Fatalf("GridPos = %d,%d, want 2,3", gx, gy)
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "#.##", "###"}},
		{"open border", []string{"#.#", "#.#", "###"}},
		{"no open tile", []string{"###", "###"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevel(tt.rows, 64); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := ParseLevel([]string{"###", "###"}, 64); !errors.Is(err, ErrNoOpenTile) {
		t.Fatalf("err = %v, want ErrNoOpenTile", err)
	}
}

type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestRandomOpenSpot(t *testing.T) {
	l := mustLevel(t)

	// first pair lands on a wall, second on an open tile
	rng := &seqRand{vals: []int{3, 3, 5, 2}}
	got := l.RandomOpenSpot(rng)
	if want := l.TileCenter(5, 2); !near(got, want) {
		t.Fatalf("spot = %v, want %v", got, want)
	}

	// a generator that only ever hits walls falls back to a scan
	walls := &seqRand{vals: []int{0}}
	if got := l.RandomOpenSpot(walls); !near(got, l.TileCenter(1, 1)) {
		t.Fatalf("fallback spot = %v, want first open tile", got)
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="wall.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="spawn">
  <object id="1" name="player" x="80" y="48"/>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": &fstest.MapFile{Data: []byte(testTMX)}}
	l, err := LoadLevel(fsys, "maps/test.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if l.TileSize() != 32 {
		t.Fatalf("tile size = %v, want 32", l.TileSize())
	}
	if !l.IsOpen(1, 1) || !l.IsOpen(2, 1) || l.IsOpen(0, 1) {
		t.Fatal("walls layer not decoded")
	}
	if got := l.Spawn(); !near(got, geom.Vector2{X: 80, Y: 48}) {
		t.Fatalf("spawn = %v", got)
	}

	if _, err := LoadLevel(fsys, "maps/missing.tmx"); err == nil {
		t.Fatal("expected error for missing map")
	}
}
