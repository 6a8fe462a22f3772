package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/nutcaster/engine"
)

// Player is the first person camera together with the weapons it carries.
type Player struct {
	Position   geom.Vector2
	Angle      float64
	Moved      bool
	Weapon     *Weapon
	WeaponSet  []*Weapon
	LastWeapon *Weapon
}

func NewPlayer(x, y, angle float64) *Player {
	p := &Player{
		Position:  geom.Vector2{X: x, Y: y},
		Angle:     angle,
		Moved:     true,
		WeaponSet: []*Weapon{},
	}

	return p
}

func (p *Player) AddWeapon(w *Weapon) {
	p.WeaponSet = append(p.WeaponSet, w)
}

func (p *Player) SelectWeapon(weaponIndex int) *Weapon {
	if weaponIndex < 0 {
		// put away weapon
		if p.Weapon != nil {
			p.LastWeapon = p.Weapon
		}
		p.Weapon = nil
		return nil
	}
	newWeapon := p.Weapon
	if weaponIndex < len(p.WeaponSet) {
		newWeapon = p.WeaponSet[weaponIndex]
	}
	if newWeapon != p.Weapon {
		p.LastWeapon = p.Weapon
		p.Weapon = newWeapon
	}
	return p.Weapon
}

func (p *Player) NextWeapon(reverse bool) *Weapon {
	weaponIndex := p.getWeaponIndex(p.Weapon)
	if weaponIndex < 0 {
		// unholster the previously holstered weapon
		weaponIndex = p.getWeaponIndex(p.LastWeapon)
		if weaponIndex < 0 {
			weaponIndex = 0
		}
		return p.SelectWeapon(weaponIndex)
	}

	n := len(p.WeaponSet)
	if reverse {
		weaponIndex = (weaponIndex - 1 + n) % n
	} else {
		weaponIndex = (weaponIndex + 1) % n
	}
	return p.SelectWeapon(weaponIndex)
}

// WeaponByName returns the carried weapon with the given name, or nil.
func (p *Player) WeaponByName(name string) *Weapon {
	for _, w := range p.WeaponSet {
		if w.Name == name {
			return w
		}
	}
	return nil
}

func (p *Player) getWeaponIndex(w *Weapon) int {
	if w == nil {
		return -1
	}
	for index, wCheck := range p.WeaponSet {
		if wCheck == w {
			return index
		}
	}
	return -1
}

// Rotate turns the camera, keeping the angle within [-Pi, Pi].
func (p *Player) Rotate(rSpeed float64) {
	p.Angle = math.Remainder(p.Angle+rSpeed, 2*math.Pi)
	p.Moved = true
}

// MoveTo places the camera at pos.
func (p *Player) MoveTo(pos geom.Vector2) {
	if pos != p.Position {
		p.Position = pos
		p.Moved = true
	}
}

// Facing returns the unit vector the camera looks along.
func (p *Player) Facing() geom.Vector2 {
	return geom.Vector2{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
}

// Ray returns the view ray through the crosshair.
func (p *Player) Ray() engine.Ray {
	return engine.Ray{Origin: p.Position, Angle: p.Angle}
}
