package model

import (
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/engine"
)

// Entities keeps every enemy in parallel slices. Index i of each slice
// describes the same enemy, and removal shifts all of them together, so an
// index is only valid until the next Remove.
type Entities struct {
	ents       []engine.Entity
	speeds     []float64
	deaths     []Timer
	velocities []geom.Vector2
	flights    []Timer
}

func NewEntities(capacity int) *Entities {
	return &Entities{
		ents:       make([]engine.Entity, 0, capacity),
		speeds:     make([]float64, 0, capacity),
		deaths:     make([]Timer, 0, capacity),
		velocities: make([]geom.Vector2, 0, capacity),
		flights:    make([]Timer, 0, capacity),
	}
}

// Insert appends a living, stationary enemy and returns its index.
func (r *Entities) Insert(e engine.Entity, speed float64) int {
	r.ents = append(r.ents, e)
	r.speeds = append(r.speeds, speed)
	r.deaths = append(r.deaths, Timer{})
	r.velocities = append(r.velocities, geom.Vector2{})
	r.flights = append(r.flights, Timer{})
	return len(r.ents) - 1
}

// Remove deletes index i from every slice, keeping the order of the rest.
func (r *Entities) Remove(i int) {
	r.ents = append(r.ents[:i], r.ents[i+1:]...)
	r.speeds = append(r.speeds[:i], r.speeds[i+1:]...)
	r.deaths = append(r.deaths[:i], r.deaths[i+1:]...)
	r.velocities = append(r.velocities[:i], r.velocities[i+1:]...)
	r.flights = append(r.flights[:i], r.flights[i+1:]...)
}

func (r *Entities) Len() int {
	return len(r.ents)
}

// All returns the entity slice itself. Callers must not append to it.
func (r *Entities) All() []engine.Entity {
	return r.ents
}

func (r *Entities) At(i int) *engine.Entity {
	return &r.ents[i]
}

func (r *Entities) Speed(i int) float64 {
	return r.speeds[i]
}

func (r *Entities) Death(i int) Timer {
	return r.deaths[i]
}

func (r *Entities) Velocity(i int) geom.Vector2 {
	return r.velocities[i]
}

func (r *Entities) Flight(i int) Timer {
	return r.flights[i]
}

func (r *Entities) Dead(i int) bool {
	return r.deaths[i].IsSet()
}

func (r *Entities) InFlight(i int) bool {
	return r.flights[i].IsSet()
}

// Living reports whether the enemy is alive and walking on its own.
func (r *Entities) Living(i int) bool {
	return !r.Dead(i) && !r.InFlight(i)
}

// Kill marks the enemy dead at now. A dead enemy stops moving.
func (r *Entities) Kill(i int, now float64) {
	r.ents[i].Tag = TagDead
	r.deaths[i].Start(now)
	r.velocities[i] = geom.Vector2{}
	r.flights[i].Clear()
}

// Launch sends the enemy flying with a fixed velocity.
func (r *Entities) Launch(i int, vel geom.Vector2, now float64) {
	r.ents[i].Tag = TagLaunched
	r.velocities[i] = vel
	r.flights[i].Start(now)
}

// Land ends a flight without harm.
func (r *Entities) Land(i int) {
	r.ents[i].Tag = TagEnemy
	r.velocities[i] = geom.Vector2{}
	r.flights[i].Clear()
}

// FirstExpired returns the index of the first enemy dead for longer than
// grace, or -1.
func (r *Entities) FirstExpired(now, grace float64) int {
	for i := range r.deaths {
		if r.deaths[i].Expired(now, grace) {
			return i
		}
	}
	return -1
}
