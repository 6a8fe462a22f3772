package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
)

// Tile runes used by text levels.
const (
	TileOpen  = '.'
	TileWall  = '#'
	TileSpawn = 'P'
)

const (
	tagSolid = "solid"
	tagProbe = "probe"

	// layer and object group names expected in TMX levels
	wallLayer  = "walls"
	spawnGroup = "spawn"

	// DefaultBodyRadius is the half width of the collision probe.
	DefaultBodyRadius = 8.0
)

var ErrNoOpenTile = errors.New("level has no open tile")

// Rand is the randomness a level needs to pick spots.
type Rand interface {
	Intn(n int) int
}

// Level is a rectangular tile grid in world units.
type Level struct {
	tiles    [][]rune // [y][x]
	width    int
	height   int
	tileSize float64
	spawn    geom.Vector2

	space      *resolv.Space
	probe      *resolv.Object
	bodyRadius float64
}

// ParseLevel builds a level from text rows. Every row must have the same
// length, the border must be walls and at least one tile must be open.
func ParseLevel(rows []string, tileSize float64) (*Level, error) {
	if len(rows) == 0 {
		return nil, errors.New("level has no rows")
	}
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", y, len(grid[y]), len(grid[0]))
		}
	}
	return newLevel(grid, tileSize, nil)
}

// LoadLevel reads a TMX map. Any non-empty tile on the "walls" layer is a
// wall, the first object of the "spawn" group marks the player start.
func LoadLevel(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("TMX %s: tiles must be square, got %dx%d", path, levelMap.TileWidth, levelMap.TileHeight)
	}

	grid := make([][]rune, levelMap.Height)
	for y := range grid {
		grid[y] = make([]rune, levelMap.Width)
		for x := range grid[y] {
			grid[y][x] = TileOpen
		}
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != wallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if tile := layer.Tiles[y*levelMap.Width+x]; !tile.IsNil() {
					grid[y][x] = TileWall
				}
			}
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("TMX %s: missing %q layer", path, wallLayer)
	}

	var spawn *geom.Vector2
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		spawn = &geom.Vector2{X: o.X, Y: o.Y}
		break
	}

	level, err := newLevel(grid, float64(levelMap.TileWidth), spawn)
	if err != nil {
		return nil, fmt.Errorf("TMX %s: %w", path, err)
	}
	return level, nil
}

func newLevel(grid [][]rune, tileSize float64, spawn *geom.Vector2) (*Level, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %v", tileSize)
	}
	l := &Level{
		tiles:      grid,
		width:      len(grid[0]),
		height:     len(grid),
		tileSize:   tileSize,
		bodyRadius: DefaultBodyRadius,
	}
	if l.width == 0 {
		return nil, errors.New("level has empty rows")
	}

	open := false
	for y, row := range grid {
		for x, r := range row {
			border := x == 0 || y == 0 || x == l.width-1 || y == l.height-1
			switch r {
			case TileSpawn:
				if spawn == nil {
					c := l.TileCenter(x, y)
					spawn = &c
				}
				row[x] = TileOpen
				open = true
			case TileOpen:
				open = true
			}
			if border && row[x] == TileOpen {
				return nil, fmt.Errorf("open tile on border at %d,%d", x, y)
			}
		}
	}
	if !open {
		return nil, ErrNoOpenTile
	}
	if spawn == nil {
		spawn = l.firstOpenSpot()
	}
	l.spawn = *spawn

	ts := int(tileSize)
	l.space = resolv.NewSpace(l.width*ts, l.height*ts, ts, ts)
	for y, row := range grid {
		for x, r := range row {
			if r == TileOpen {
				continue
			}
			wall := resolv.NewObject(float64(x)*tileSize, float64(y)*tileSize, tileSize, tileSize, tagSolid)
			wall.SetShape(resolv.NewRectangle(0, 0, tileSize, tileSize))
			l.space.Add(wall)
		}
	}
	l.probe = resolv.NewObject(0, 0, l.bodyRadius*2, l.bodyRadius*2, tagProbe)
	l.space.Add(l.probe)

	return l, nil
}

func (l *Level) Width() int        { return l.width }
func (l *Level) Height() int       { return l.height }
func (l *Level) TileSize() float64 { return l.tileSize }
func (l *Level) Spawn() geom.Vector2 {
	return l.spawn
}

// At returns the tile rune at grid coordinates. Anything outside the grid
// reads as a wall.
func (l *Level) At(gx, gy int) rune {
	if gx < 0 || gy < 0 || gx >= l.width || gy >= l.height {
		return TileWall
	}
	return l.tiles[gy][gx]
}

func (l *Level) IsOpen(gx, gy int) bool {
	return l.At(gx, gy) == TileOpen
}

// GridPos converts a world position to grid coordinates.
func (l *Level) GridPos(v geom.Vector2) (int, int) {
	return int(v.X / l.tileSize), int(v.Y / l.tileSize)
}

// TileCenter returns the world position of the middle of a tile.
func (l *Level) TileCenter(gx, gy int) geom.Vector2 {
	return geom.Vector2{
		X: (float64(gx) + 0.5) * l.tileSize,
		Y: (float64(gy) + 0.5) * l.tileSize,
	}
}

// RandomOpenSpot samples tiles until it finds an open one and returns its
// center.
func (l *Level) RandomOpenSpot(rng Rand) geom.Vector2 {
	for i := 0; i < 1000; i++ {
		gx, gy := rng.Intn(l.width), rng.Intn(l.height)
		if l.IsOpen(gx, gy) {
			return l.TileCenter(gx, gy)
		}
	}
	return *l.firstOpenSpot()
}

func (l *Level) firstOpenSpot() *geom.Vector2 {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if l.tiles[y][x] == TileOpen {
				c := l.TileCenter(x, y)
				return &c
			}
		}
	}
	return &geom.Vector2{}
}
