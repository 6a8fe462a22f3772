package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// reserved sprite tags that pickups may not reuse
const reservedTags = "ewxdkn"

// Validate checks the invariants the simulation relies on.
func (s *Scenario) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Goal > 0, "goal must be positive, got %d", s.Goal)
	check(s.Health > 0, "health must be positive, got %d", s.Health)
	check(s.LethalRadius >= 5 && s.LethalRadius <= 20, "lethal_radius must be within 5..20, got %v", s.LethalRadius)
	check(s.MaxEnemies > 0 && s.MaxEnemies <= 30, "max_enemies must be within 1..30, got %d", s.MaxEnemies)
	check(s.RollRange > 0, "roll_range must be positive, got %d", s.RollRange)
	check(s.EnemySpeedMin > 0 && s.EnemySpeedMax >= s.EnemySpeedMin, "enemy speed range %v..%v is invalid", s.EnemySpeedMin, s.EnemySpeedMax)
	check(len(s.Weapons) >= 1 && len(s.Weapons) <= 3, "scenario needs 1 to 3 weapons, got %d", len(s.Weapons))
	check(s.GrappleSpeed > 0, "grapple_speed must be positive, got %v", s.GrappleSpeed)
	check(s.PickupRadius > 0, "pickup_radius must be positive, got %v", s.PickupRadius)
	check(s.MeleeRadius > 0, "melee_radius must be positive, got %v", s.MeleeRadius)
	check(s.KnockbackSpeed > 0, "knockback_speed must be positive, got %v", s.KnockbackSpeed)

	// every roll value must be drawable and drop one thing only
	rolls := map[int]string{}
	claim := func(roll int, owner string) {
		check(roll >= 0 && roll < s.RollRange, "%s roll %d outside 0..%d", owner, roll, s.RollRange-1)
		if prev, ok := rolls[roll]; ok {
			check(false, "roll %d used by both %s and %s", roll, prev, owner)
			return
		}
		rolls[roll] = owner
	}
	for _, roll := range s.EnemyRolls {
		claim(roll, "enemy")
	}

	names := map[string]bool{}
	tags := map[string]bool{}
	for _, w := range s.Weapons {
		check(w.Name != "", "weapon without a name")
		check(!names[w.Name], "weapon %q listed twice", w.Name)
		names[w.Name] = true

		switch w.Kind {
		case "melee":
		case "single", "automatic":
			check(w.Magazine > 0, "weapon %q: magazine must be positive", w.Name)
			check(w.Loaded >= 0 && w.Loaded <= w.Magazine, "weapon %q: loaded %d outside 0..%d", w.Name, w.Loaded, w.Magazine)
			check(w.Reserve >= 0, "weapon %q: negative reserve", w.Name)
			check(w.Damage > 0, "weapon %q: damage must be positive", w.Name)
			if w.Kind == "automatic" {
				check(w.FireInterval > 0, "weapon %q: automatic weapons need a fire_interval", w.Name)
			}
		default:
			check(false, "weapon %q: unknown kind %q", w.Name, w.Kind)
		}

		if w.PickupTag == "" {
			continue
		}
		for _, roll := range w.PickupRolls {
			claim(roll, fmt.Sprintf("%q ammo", w.Name))
		}
		r, size := utf8.DecodeRuneInString(w.PickupTag)
		check(size == len(w.PickupTag), "weapon %q: pickup_tag must be one character", w.Name)
		check(!strings.ContainsRune(reservedTags, r), "weapon %q: pickup_tag %q is reserved", w.Name, w.PickupTag)
		check(!tags[w.PickupTag], "pickup_tag %q used twice", w.PickupTag)
		tags[w.PickupTag] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidScenario, s.Name, errors.Join(errs...))
	}
	return nil
}
