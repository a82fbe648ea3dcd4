package parameter

// BossArchetype identifies a boss variant; encounters cycle through them in order
type BossArchetype uint8

const (
	BossSwarmLeader BossArchetype = iota
	BossTankCommander
	BossAssassin
	BossWarden
	BossOverlord
	BossArchetypeCount
)

// BossProfile is the base tunable set of a boss before level scaling
type BossProfile struct {
	Name     string
	MaxSpeed float64
	MaxForce float64
	Radius   float64
	Health   int
}

var BossProfiles = [BossArchetypeCount]BossProfile{
	BossSwarmLeader:   {Name: "swarm leader", MaxSpeed: 3, MaxForce: 0.2, Radius: 40, Health: 150},
	BossTankCommander: {Name: "tank commander", MaxSpeed: 1.5, MaxForce: 0.1, Radius: 50, Health: 200},
	BossAssassin:      {Name: "assassin", MaxSpeed: 5, MaxForce: 0.3, Radius: 40, Health: 250},
	BossWarden:        {Name: "warden", MaxSpeed: 2, MaxForce: 0.15, Radius: 40, Health: 300},
	BossOverlord:      {Name: "overlord", MaxSpeed: 2.5, MaxForce: 0.2, Radius: 60, Health: 500},
}

func (b BossArchetype) String() string {
	if b < BossArchetypeCount {
		return BossProfiles[b].Name
	}
	return "unknown"
}

// Shared boss values
const (
	BossContactDamage = 20
	// BossScoreUnit times (archetype index + 1) is the kill score
	BossScoreUnit = 500
)

// Assassin teleport
const (
	AssassinTeleportTicks = 180
	AssassinTeleportMin   = 150.0
	AssassinTeleportMax   = 300.0
)

// Warden shield cycle
const (
	WardenShieldUpTicks   = 300
	WardenShieldDownTicks = 120
)

// Overlord phases, as fractions of max health and the speed each phase enables
const (
	OverlordPhase2Fraction = 0.66
	OverlordPhase2Speed    = 3.5
	OverlordPhase3Fraction = 0.33
	OverlordPhase3Speed    = 5.0
)
