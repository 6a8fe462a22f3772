package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// MoveTowardsCollidable moves from towards to by at most maxStep, stopping
// at walls. Each axis is resolved separately so bodies slide along walls.
func (l *Level) MoveTowardsCollidable(from, to geom.Vector2, maxStep float64) geom.Vector2 {
	dist := Distance(from, to)
	if dist == 0 || maxStep <= 0 {
		return from
	}
	step := math.Min(dist, maxStep)
	dx := (to.X - from.X) / dist * step
	dy := (to.Y - from.Y) / dist * step
	return l.Move(from, dx, dy)
}

// Move displaces a body centered at from by dx, dy, clamped against walls.
func (l *Level) Move(from geom.Vector2, dx, dy float64) geom.Vector2 {
	r := l.bodyRadius
	l.probe.X, l.probe.Y = from.X-r, from.Y-r
	l.probe.Update()

	if dx != 0 {
		dx = l.clampX(dx)
		l.probe.X += dx
		l.probe.Update()
	}
	if dy != 0 {
		dy = l.clampY(dy)
		l.probe.Y += dy
		l.probe.Update()
	}

	return geom.Vector2{X: l.probe.X + r, Y: l.probe.Y + r}
}

func (l *Level) clampX(dx float64) float64 {
	check := l.probe.Check(dx, 0, tagSolid)
	if check == nil {
		return dx
	}
	p := l.probe
	for _, o := range check.ObjectsByTags(tagSolid) {
		// only walls sharing a row band with the probe can stop it
		if o.Y >= p.Y+p.H || o.Y+o.H <= p.Y {
			continue
		}
		ahead := (dx > 0 && o.X >= p.X+p.W) || (dx < 0 && o.X+o.W <= p.X)
		if !ahead {
			continue
		}
		contact := check.ContactWithObject(o).X()
		if math.Abs(contact) < math.Abs(dx) {
			dx = contact
		}
	}
	return dx
}

func (l *Level) clampY(dy float64) float64 {
	check := l.probe.Check(0, dy, tagSolid)
	if check == nil {
		return dy
	}
	p := l.probe
	for _, o := range check.ObjectsByTags(tagSolid) {
		if o.X >= p.X+p.W || o.X+o.W <= p.X {
			continue
		}
		ahead := (dy > 0 && o.Y >= p.Y+p.H) || (dy < 0 && o.Y+o.H <= p.Y)
		if !ahead {
			continue
		}
		contact := check.ContactWithObject(o).Y()
		if math.Abs(contact) < math.Abs(dy) {
			dy = contact
		}
	}
	return dy
}
