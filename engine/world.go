package engine

import (
	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// World owns every agent collection of a run
// Only the orchestrator inserts or removes, and only between tick phases
type World struct {
	Arena Arena

	Player      component.Agent
	Enemies     *Pool[component.Agent]
	Bosses      *Pool[component.Agent]
	Projectiles *Pool[component.Agent]
	PowerUps    *Pool[component.Agent]
	Obstacles   *Pool[component.Obstacle]

	Spatial *SpatialIndex
	Events  *event.EventQueue
	Status  *status.Registry
	Rand    *vmath.FastRand

	Tick int64
}

// NewWorld creates empty collections; the player is placed by the caller
func NewWorld(arena Arena, reg *status.Registry, seed uint64) *World {
	return &World{
		Arena:       arena,
		Enemies:     NewPool[component.Agent](64),
		Bosses:      NewPool[component.Agent](1),
		Projectiles: NewPool[component.Agent](64),
		PowerUps:    NewPool[component.Agent](16),
		Obstacles:   NewPool[component.Obstacle](8),
		Spatial:     NewSpatialIndex(),
		Events:      event.NewEventQueue(),
		Status:      reg,
		Rand:        vmath.NewFastRand(seed),
	}
}

// Reset empties every collection and reseeds randomness
func (w *World) Reset(seed uint64) {
	w.Player = component.Agent{}
	w.Enemies.Clear()
	w.Bosses.Clear()
	w.Projectiles.Clear()
	w.PowerUps.Clear()
	w.Obstacles.Clear()
	w.Spatial.Build(nil)
	w.Events.Clear()
	w.Rand = vmath.NewFastRand(seed)
	w.Tick = 0
}

// ActiveObstacles returns the live obstacles
func (w *World) ActiveObstacles() []component.Obstacle {
	out := make([]component.Obstacle, 0, w.Obstacles.Len())
	w.Obstacles.Each(func(_ core.Handle, o *component.Obstacle) {
		if o.Alive {
			out = append(out, *o)
		}
	})
	return out
}
