package engine

import "github.com/harbdog/raycaster-go/geom"

// Size is the world-space footprint of a sprite, width by height.
type Size struct {
	W, H float64
}

// Entity is a positioned sprite known to the ray caster.
type Entity struct {
	Pos  geom.Vector2
	Tag  rune
	Size Size
}

func NewEntity(pos geom.Vector2, tag rune, size Size) Entity {
	return Entity{Pos: pos, Tag: tag, Size: size}
}

// Radius is the hit radius used by ray and proximity checks.
func (e *Entity) Radius() float64 {
	return e.Size.W / 2
}

// Distance returns the euclidean distance between two points.
func Distance(a, b geom.Vector2) float64 {
	return geom.Distance(a.X, a.Y, b.X, b.Y)
}

// Angle returns the heading from a to b in radians.
func Angle(a, b geom.Vector2) float64 {
	l := geom.Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
	return l.Angle()
}

// Offset returns the point reached from p by travelling dist along angle.
func Offset(p geom.Vector2, angle, dist float64) geom.Vector2 {
	l := geom.LineFromAngle(p.X, p.Y, angle, dist)
	return geom.Vector2{X: l.X2, Y: l.Y2}
}
