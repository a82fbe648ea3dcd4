package steer

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

type neighbor struct {
	peer   *Peer
	distSq float64
}

// scan visits peers of the flock group within radius, excluding self
// With MaxNeighbors set, only the nearest MaxNeighbors are visited; ties keep slice order
func scan(k *core.Kinetic, ctx *Context, p FlockParams, radius float64, visit func(peer *Peer, distSq float64)) int {
	limitSq := radius * radius
	var near []neighbor
	total := 0
	for i := range ctx.Peers {
		peer := &ctx.Peers[i]
		if peer.ID == ctx.Self || peer.Group != p.Group {
			continue
		}
		d := k.Pos.DistSq(peer.Pos)
		if d >= limitSq {
			continue
		}
		if p.MaxNeighbors > 0 {
			near = append(near, neighbor{peer: peer, distSq: d})
			continue
		}
		visit(peer, d)
		total++
	}
	if p.MaxNeighbors <= 0 {
		return total
	}

	slices.SortStableFunc(near, func(a, b neighbor) int {
		return cmp.Compare(a.distSq, b.distSq)
	})
	if len(near) > p.MaxNeighbors {
		near = near[:p.MaxNeighbors]
	}
	for _, nb := range near {
		visit(nb.peer, nb.distSq)
	}
	return len(near)
}

// Align steers toward the average heading of nearby flockmates
func Align(k *core.Kinetic, ctx *Context, p FlockParams) vmath.Vec2 {
	var sum vmath.Vec2
	n := scan(k, ctx, p, p.Perception, func(peer *Peer, _ float64) {
		sum = sum.Add(peer.Vel)
	})
	if n == 0 {
		return vmath.Vec2{}
	}
	return steerToward(k, sum.Div(float64(n)).SetMag(k.MaxSpeed))
}

// Cohere steers toward the centroid of nearby flockmates
func Cohere(k *core.Kinetic, ctx *Context, p FlockParams) vmath.Vec2 {
	var sum vmath.Vec2
	n := scan(k, ctx, p, p.Perception, func(peer *Peer, _ float64) {
		sum = sum.Add(peer.Pos)
	})
	if n == 0 {
		return vmath.Vec2{}
	}
	centroid := sum.Div(float64(n))
	return steerToward(k, centroid.Sub(k.Pos).SetMag(k.MaxSpeed))
}

// Separate steers away from flockmates inside half the perception radius
// Each offset is weighted by 1/d², so the averaged push has magnitude ~1/d.
// Desired velocity is the push at full speed; the resulting force is scaled by a ramp
// from 0 at the separation edge to 1 at contact, so it grows as peers close in.
// Coincident peers have no direction and are skipped
func Separate(k *core.Kinetic, ctx *Context, p FlockParams) vmath.Vec2 {
	radius := p.Perception / 2
	var sum vmath.Vec2
	n := scan(k, ctx, p, radius, func(peer *Peer, distSq float64) {
		if distSq == 0 {
			return
		}
		sum = sum.Add(k.Pos.Sub(peer.Pos).Div(distSq))
	})
	if n == 0 || sum.IsZero() {
		return vmath.Vec2{}
	}

	push := sum.Div(float64(n))
	effective := 1 / push.Mag()
	ramp := vmath.Clamp(1-effective/radius, 0, 1)
	return steerToward(k, push.SetMag(k.MaxSpeed)).Scale(ramp)
}
