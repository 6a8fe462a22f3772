package model

// Sprite tags. Enemies step through the wound progression until they are
// dead, pickups keep their tag for their whole life.
const (
	TagEnemy    = 'e'
	TagWounded  = 'w'
	TagMaimed   = 'x'
	TagDead     = 'd'
	TagLaunched = 'k'

	TagNut = 'n'
)

var woundProgression = []rune{TagEnemy, TagWounded, TagMaimed, TagDead}

// Wound advances an enemy tag by the given number of stages. Unknown tags
// are returned unchanged.
func Wound(tag rune, stages int) rune {
	for i, t := range woundProgression {
		if t != tag {
			continue
		}
		i += stages
		if i >= len(woundProgression) {
			i = len(woundProgression) - 1
		}
		return woundProgression[i]
	}
	return tag
}

// EnemyTags lists every tag an enemy can carry.
func EnemyTags() string {
	return string(woundProgression) + string(TagLaunched)
}
