package engine

import (
	"github.com/paulmach/orb"

	"github.com/lixenwraith/horde/vmath"
)

// Edge names an arena side for edge spawns
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	EdgeCount
)

// Arena is the playfield rectangle
type Arena struct {
	Bound orb.Bound
}

func NewArena(width, height float64) Arena {
	return Arena{Bound: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{width, height}}}
}

func (a Arena) Width() float64  { return a.Bound.Max.X() - a.Bound.Min.X() }
func (a Arena) Height() float64 { return a.Bound.Max.Y() - a.Bound.Min.Y() }

// Center is the boss spawn point
func (a Arena) Center() vmath.Vec2 {
	c := a.Bound.Center()
	return vmath.V(c.X(), c.Y())
}

// Contains is the active-zone predicate used by homing
func (a Arena) Contains(p vmath.Vec2) bool {
	return a.Bound.Contains(orb.Point{p.X, p.Y})
}

// EdgePoint returns a point outside edge by inset; along selects the position on that edge in [0,1)
func (a Arena) EdgePoint(e Edge, along, inset float64) vmath.Vec2 {
	w, h := a.Width(), a.Height()
	switch e {
	case EdgeTop:
		return vmath.V(along*w, -inset)
	case EdgeRight:
		return vmath.V(w+inset, along*h)
	case EdgeBottom:
		return vmath.V(along*w, h+inset)
	default:
		return vmath.V(-inset, along*h)
	}
}

// RandomEdgePoint picks a random edge and a point beyond it
func (a Arena) RandomEdgePoint(rng *vmath.FastRand, inset float64) vmath.Vec2 {
	return a.EdgePoint(Edge(rng.Intn(int(EdgeCount))), rng.Float64(), inset)
}

// ClampInside pins p so a circle of radius r stays in the arena
func (a Arena) ClampInside(p vmath.Vec2, r float64) vmath.Vec2 {
	return vmath.V(
		vmath.Clamp(p.X, a.Bound.Min.X()+r, a.Bound.Max.X()-r),
		vmath.Clamp(p.Y, a.Bound.Min.Y()+r, a.Bound.Max.Y()-r),
	)
}
