package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/nutcaster/config"
	"github.com/trvswgnr/nutcaster/engine"
	"github.com/trvswgnr/nutcaster/game"
	"github.com/trvswgnr/nutcaster/render"
	"github.com/trvswgnr/nutcaster/stats"
)

// soundSystem is the audio the driver needs: game cues plus stopping music.
type soundSystem interface {
	game.Sounds
	Stop(name string)
}

// Game drives one world at a time through ebiten's update and draw calls.
type Game struct {
	cfg      *config.Config
	level    *engine.Level
	sounds   soundSystem
	rng      game.Rand
	renderer *render.Renderer
	stats    *stats.Store

	world  *game.World
	input  *inputState
	start  time.Time
	paused bool
}

func NewGame(cfg *config.Config, level *engine.Level, sounds soundSystem, renderer *render.Renderer, store *stats.Store, rng game.Rand) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		level:    level,
		sounds:   sounds,
		rng:      rng,
		renderer: renderer,
		stats:    store,
		input:    newInputState(),
		start:    time.Now(),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// now is the run clock in seconds since the game started.
func (g *Game) now() float64 {
	return time.Since(g.start).Seconds()
}

func (g *Game) restart() error {
	w, err := game.NewWorld(g.cfg.Scenario, g.level, g.sounds, g.rng, g.now())
	if err != nil {
		return fmt.Errorf("new world: %w", err)
	}
	g.world = w
	return nil
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.input.pausePressed() {
		g.togglePause()
	}
	if g.paused {
		return nil
	}

	in := g.input.poll()
	if g.world.WantsRestart(in) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	now := g.now()
	if g.world.Step(in, now) {
		record := g.stats.Add(g.world.Result(now))
		log.Printf("[game] scenario %q: %d runs, %d wins, best %.1fs", g.cfg.Scenario.Name, record.Runs, record.Wins, record.BestTime)
	}
	g.renderer.Update(g.world)
	return nil
}

// togglePause freezes the world and silences the music until unpaused.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.input.release()
		g.sounds.Stop(game.SoundMusic)
		return
	}
	g.sounds.PlayLooping(game.SoundMusic)
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.now())
}
