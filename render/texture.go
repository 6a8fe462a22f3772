package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/nutcaster/engine"
)

const (
	texWall  = "wall"
	texSky   = "sky"
	texFloor = "floor"
)

// levelMap presents an engine.Level to the ray caster, which indexes its
// grid [x][y] with 0 for open space and texture number + 1 for walls.
type levelMap struct {
	grid [][]int
}

func newLevelMap(level *engine.Level) *levelMap {
	grid := make([][]int, level.Width())
	for x := range grid {
		grid[x] = make([]int, level.Height())
		for y := range grid[x] {
			if !level.IsOpen(x, y) {
				grid[x][y] = 1
			}
		}
	}
	return &levelMap{grid: grid}
}

func (m *levelMap) Level(levelNum int) [][]int {
	if levelNum != 0 {
		return nil
	}
	return m.grid
}

func (m *levelMap) NumLevels() int {
	return 1
}

type textureHandler struct {
	mapObj   *levelMap
	textures []*ebiten.Image
}

func newTextureHandler(mapObj *levelMap, textures ...*ebiten.Image) *textureHandler {
	return &textureHandler{
		mapObj:   mapObj,
		textures: textures,
	}
}

// TextureAt returns the image for the wall at the given x, y map coordinates.
func (t *textureHandler) TextureAt(x, y, levelNum, side int) *ebiten.Image {
	mapLayer := t.mapObj.Level(levelNum)
	if len(mapLayer) == 0 || len(mapLayer[0]) == 0 {
		return nil
	}
	if x < 0 || x >= len(mapLayer) || y < 0 || y >= len(mapLayer[0]) {
		return nil
	}

	texNum := mapLayer[x][y] - 1 // 1 subtracted from it so that texture 0 can be used
	if texNum < 0 || texNum >= len(t.textures) {
		return nil
	}
	return t.textures[texNum]
}

// FloorTextureAt returns nil: the floor is drawn flat from the camera's
// floor texture.
func (t *textureHandler) FloorTextureAt(x, y int) *image.RGBA {
	return nil
}
