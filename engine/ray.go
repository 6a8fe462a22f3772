package engine

import (
	"math"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
)

type IntersectionKind int

const (
	IntersectNone IntersectionKind = iota
	IntersectWall
	IntersectEntity
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectWall:
		return "wall"
	case IntersectEntity:
		return "entity"
	default:
		return "none"
	}
}

// Intersection is the nearest thing a ray hit. Index is only meaningful for
// entity hits and refers to the slice passed to CastRay.
type Intersection struct {
	Kind     IntersectionKind
	Index    int
	Distance float64
}

// Ray starts at Origin and travels along Angle.
type Ray struct {
	Origin geom.Vector2
	Angle  float64
}

// Along returns the point at distance d along the ray.
func (r Ray) Along(d float64) geom.Vector2 {
	return Offset(r.Origin, r.Angle, d)
}

// Direction returns the unit heading vector of the ray.
func (r Ray) Direction() geom.Vector2 {
	return geom.Vector2{X: math.Cos(r.Angle), Y: math.Sin(r.Angle)}
}

// CastRay returns the closest wall or entity hit by the ray. Entities whose
// tag appears in ignore are passed through.
func (l *Level) CastRay(ray Ray, ents []Entity, ignore string) Intersection {
	hit := Intersection{Kind: IntersectNone, Index: -1, Distance: math.Inf(1)}
	if d, ok := l.wallDistance(ray); ok {
		hit = Intersection{Kind: IntersectWall, Index: -1, Distance: d}
	}

	for i := range ents {
		if strings.ContainsRune(ignore, ents[i].Tag) {
			continue
		}
		d, ok := rayCircle(ray, ents[i].Pos, ents[i].Radius())
		if ok && d < hit.Distance {
			hit = Intersection{Kind: IntersectEntity, Index: i, Distance: d}
		}
	}
	return hit
}

// wallDistance walks the grid with a DDA until it enters a wall tile.
func (l *Level) wallDistance(ray Ray) (float64, bool) {
	posX, posY := ray.Origin.X/l.tileSize, ray.Origin.Y/l.tileSize
	mapX, mapY := int(math.Floor(posX)), int(math.Floor(posY))
	if !l.IsOpen(mapX, mapY) {
		return 0, true
	}

	dir := ray.Direction()
	deltaDistX := math.Abs(1 / dir.X)
	deltaDistY := math.Abs(1 / dir.Y)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dir.X < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - posX) * deltaDistX
	}
	if dir.Y < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - posY) * deltaDistY
	}

	for i := 0; i < l.width+l.height+2; i++ {
		var dist float64
		if sideDistX < sideDistY {
			dist = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
		} else {
			dist = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
		}
		if !l.IsOpen(mapX, mapY) {
			return dist * l.tileSize, true
		}
	}
	return 0, false
}

// rayCircle returns the distance along the ray to the first point of a
// circle, or false if the ray misses or the circle is behind the origin.
func rayCircle(ray Ray, center geom.Vector2, radius float64) (float64, bool) {
	if Distance(ray.Origin, center) <= radius {
		return 0, true
	}

	line := geom.LineFromAngle(ray.Origin.X, ray.Origin.Y, ray.Angle, 1)
	circle := geom.Circle{X: center.X, Y: center.Y, Radius: radius}
	dir := ray.Direction()

	nearest, ok := math.Inf(1), false
	for _, p := range geom.LineCircleIntersection(line, circle, false) {
		// distance along the ray, negative behind the origin
		t := (p.X-ray.Origin.X)*dir.X + (p.Y-ray.Origin.Y)*dir.Y
		if t >= 0 && t < nearest {
			nearest, ok = t, true
		}
	}
	return nearest, ok
}
