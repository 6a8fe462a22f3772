package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/trvswgnr/nutcaster/assets"
	"github.com/trvswgnr/nutcaster/audio"
	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/render"
	"github.com/trvswgnr/nutcaster/stats"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	sounds, err := audio.NewService(ebaudio.NewContext(audio.SampleRate), assets.FS(), assets.SoundDir)
	if err != nil {
		log.Fatalf("audio: %v", err)
	}
	level, err := assets.LoadLevel(cfg.Scenario.Level)
	if err != nil {
		log.Fatalf("level: %v", err)
	}
	textures, err := assets.LoadTextures()
	if err != nil {
		log.Fatalf("textures: %v", err)
	}
	renderer, err := render.NewRenderer(cfg, level, textures)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	g, err := NewGame(cfg, level, sounds, renderer, stats.Open("nutcaster"), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	sounds.PlayLooping(game.SoundMusic)

	err = ebiten.RunGame(g)
	sounds.Stop(game.SoundMusic)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
