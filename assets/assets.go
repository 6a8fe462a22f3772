// Package assets bundles the map, textures and sounds into the binary.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/trvswgnr/nutcaster/engine"
)

const (
	TextureDir = "textures"
	SoundDir   = "sounds"
)

var (
	//go:embed maps textures sounds
	assetFS embed.FS
)

// FS exposes the bundled files.
func FS() fs.FS {
	return assetFS
}

// LoadLevel loads a bundled TMX map such as "maps/warehouse.tmx".
func LoadLevel(levelPath string) (*engine.Level, error) {
	return engine.LoadLevel(assetFS, levelPath)
}

// LoadTextures decodes every PNG under textures, keyed by file name
// without the extension.
func LoadTextures() (map[string]*ebiten.Image, error) {
	entries, err := assetFS.ReadDir(TextureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list textures: %w", err)
	}

	textures := make(map[string]*ebiten.Image, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".png" {
			continue
		}
		imgBytes, err := assetFS.ReadFile(path.Join(TextureDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read texture %s: %w", name, err)
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
		}
		textures[strings.TrimSuffix(name, ".png")] = img
	}
	return textures, nil
}
