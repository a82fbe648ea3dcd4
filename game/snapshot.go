package game

import (
	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/progression"
)

// AgentView is a serializable pose
type AgentView struct {
	Kind      uint8   `msgpack:"k" json:"kind"`
	Tag       uint8   `msgpack:"t" json:"tag"`
	X         float64 `msgpack:"x" json:"x"`
	Y         float64 `msgpack:"y" json:"y"`
	Heading   float64 `msgpack:"h" json:"heading"`
	Radius    float64 `msgpack:"r" json:"radius"`
	Health    int     `msgpack:"hp,omitempty" json:"health,omitempty"`
	MaxHealth int     `msgpack:"mhp,omitempty" json:"max_health,omitempty"`
	Shielded  bool    `msgpack:"s,omitempty" json:"shielded,omitempty"`
}

// ObstacleView is a serializable wall
type ObstacleView struct {
	X      float64 `msgpack:"x" json:"x"`
	Y      float64 `msgpack:"y" json:"y"`
	Radius float64 `msgpack:"r" json:"radius"`
	TTL    int     `msgpack:"ttl" json:"ttl"`
}

// Snapshot is a complete read-only frame of the run for spectators
type Snapshot struct {
	RunID       string               `msgpack:"run" json:"run"`
	Tick        int64                `msgpack:"tick" json:"tick"`
	Width       float64              `msgpack:"w" json:"width"`
	Height      float64              `msgpack:"h" json:"height"`
	Score       int                  `msgpack:"score" json:"score"`
	Over        bool                 `msgpack:"over" json:"over"`
	Progression progression.Snapshot `msgpack:"prog" json:"progression"`
	Agents      []AgentView          `msgpack:"agents" json:"agents"`
	Obstacles   []ObstacleView       `msgpack:"obstacles" json:"obstacles"`
}

func viewOf(p component.Pose) AgentView {
	return AgentView{
		Kind:      uint8(p.Kind),
		Tag:       p.Tag,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Heading:   p.Heading,
		Radius:    p.Radius,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Shielded:  p.Shielded,
	}
}

// Snapshot captures the current frame; agents list the player first
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	poses := g.poses()
	obstacles := g.world.ActiveObstacles()

	s := Snapshot{
		RunID:       g.runID.String(),
		Tick:        g.world.Tick,
		Width:       g.world.Arena.Width(),
		Height:      g.world.Arena.Height(),
		Score:       g.combat.Score(),
		Over:        g.run.State() == StateGameOver,
		Progression: g.prog.Snapshot(),
		Agents:      make([]AgentView, 0, len(poses)),
		Obstacles:   make([]ObstacleView, 0, len(obstacles)),
	}
	for _, p := range poses {
		s.Agents = append(s.Agents, viewOf(p))
	}
	for _, o := range obstacles {
		s.Obstacles = append(s.Obstacles, ObstacleView{X: o.Pos.X, Y: o.Pos.Y, Radius: o.Radius, TTL: o.TTL})
	}
	return s
}
