package core

// Group tags flock membership so behaviors filter peers without knowing archetypes
type Group uint8

const (
	GroupNone Group = iota
	GroupEnemy
	GroupHorde
	GroupProjectile
	GroupBoss
)

var groupNames = [...]string{"none", "enemy", "horde", "projectile", "boss"}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}
