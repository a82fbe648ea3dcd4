package system

import (
	"log"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// BossSystem runs archetype mechanics after motion: teleports, shield cycles and phases
type BossSystem struct {
	world *engine.World

	enabled bool
}

func NewBossSystem(world *engine.World) *BossSystem {
	s := &BossSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *BossSystem) Init() {
	s.enabled = true
}

func (s *BossSystem) Name() string {
	return "boss"
}

func (s *BossSystem) Update() {
	if !s.enabled {
		return
	}
	s.world.Bosses.Each(func(_ core.Handle, a *component.Agent) {
		if !a.Alive {
			return
		}
		switch a.Boss.Archetype {
		case parameter.BossAssassin:
			s.updateAssassin(a)
		case parameter.BossWarden:
			updateWarden(a)
		case parameter.BossOverlord:
			updateOverlord(a)
		}
	})
}

func (s *BossSystem) updateAssassin(a *component.Agent) {
	a.Boss.Timer++
	if a.Boss.Timer < parameter.AssassinTeleportTicks {
		return
	}
	a.Boss.Timer = 0

	rng := s.world.Rand
	arena := s.world.Arena
	offset := vmath.FromAngle(rng.Angle()).Scale(rng.Range(parameter.AssassinTeleportMin, parameter.AssassinTeleportMax))
	a.Pos = arena.ClampInside(arena.Center().Add(offset), a.Radius)
}

// updateWarden alternates the shield: up for WardenShieldUpTicks, down for WardenShieldDownTicks
func updateWarden(a *component.Agent) {
	a.Boss.Timer++
	if a.Combat.Invulnerable && a.Boss.Timer >= parameter.WardenShieldUpTicks {
		a.Combat.Invulnerable = false
		a.Boss.Timer = 0
	} else if !a.Combat.Invulnerable && a.Boss.Timer >= parameter.WardenShieldDownTicks {
		a.Combat.Invulnerable = true
		a.Boss.Timer = 0
	}
}

// updateOverlord speeds up as health drops; phases never revert
func updateOverlord(a *component.Agent) {
	f := a.Combat.Fraction()
	switch {
	case a.Boss.Phase < 3 && f < parameter.OverlordPhase3Fraction:
		a.Boss.Phase = 3
		a.MaxSpeed = parameter.OverlordPhase3Speed
	case a.Boss.Phase < 2 && f < parameter.OverlordPhase2Fraction:
		a.Boss.Phase = 2
		a.MaxSpeed = parameter.OverlordPhase2Speed
	default:
		return
	}
	log.Printf("boss: overlord entered phase %d", a.Boss.Phase)
}
