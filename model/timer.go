package model

import "math"

// Timer is an optional start time on the run clock.
type Timer struct {
	start float64
	set   bool
}

func (t *Timer) Start(now float64) {
	t.start, t.set = now, true
}

func (t *Timer) Clear() {
	t.start, t.set = 0, false
}

func (t Timer) IsSet() bool {
	return t.set
}

func (t Timer) StartedAt() float64 {
	return t.start
}

// Since returns the elapsed time, or +Inf when the timer was never started.
func (t Timer) Since(now float64) float64 {
	if !t.set {
		return math.Inf(1)
	}
	return now - t.start
}

// Active reports whether the timer is set and less than d has elapsed.
func (t Timer) Active(now, d float64) bool {
	return t.set && now-t.start < d
}

// Expired reports whether the timer is set and more than d has elapsed.
func (t Timer) Expired(now, d float64) bool {
	return t.set && now-t.start > d
}
