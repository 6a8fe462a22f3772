package model

import "github.com/google/uuid"

// Session is the per-run bookkeeping: health, goal progress and the timers
// behind the feedback effects.
type Session struct {
	ID      string
	Health  int
	Nuts    int
	Goal    int
	Kills   int
	Started float64

	Hurt        Timer
	ImpactShake Timer
	WeaponShake Timer
	HitMarker   Timer
}

func NewSession(health, goal int, now float64) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Health:  health,
		Goal:    goal,
		Started: now,
	}
}

// Damage costs one health point unless the last hit was less than cooldown
// ago. Health never drops below zero.
func (s *Session) Damage(now, cooldown float64) bool {
	if s.Health <= 0 || s.Hurt.Since(now) < cooldown {
		return false
	}
	s.Health--
	s.Hurt.Start(now)
	return true
}

func (s *Session) Dead() bool {
	return s.Health <= 0
}

// Won reports whether the goal was reached alive. Dying in the frame the
// last nut is collected is a loss.
func (s *Session) Won() bool {
	return !s.Dead() && s.Nuts >= s.Goal
}

// Ended reports whether the run is over, either way.
func (s *Session) Ended() bool {
	return s.Dead() || s.Nuts >= s.Goal
}
