package component

import "github.com/lixenwraith/horde/vmath"

// Obstacle is a static circle read by avoidance; it never moves agents directly
type Obstacle struct {
	Pos    vmath.Vec2
	Radius float64
	// TTL is remaining ticks; 0 means permanent
	TTL   int
	Alive bool
}

// Expire counts down TTL and reports whether the obstacle just ended
func (o *Obstacle) Expire() bool {
	if o.TTL <= 0 || !o.Alive {
		return false
	}
	o.TTL--
	if o.TTL == 0 {
		o.Alive = false
		return true
	}
	return false
}
