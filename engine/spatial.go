package engine

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// minExtent keeps point-like bodies from producing zero-size rectangles
const minExtent = 0.01

// SpatialEntry is one indexed body
type SpatialEntry struct {
	Handle core.Handle
	Group  core.Group
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	rect   rtreego.Rect
}

func (e *SpatialEntry) Bounds() rtreego.Rect {
	return e.rect
}

// SpatialIndex is an R-tree over a per-tick snapshot of positions
// Rebuilt every tick; queries never observe bodies moved after the build
type SpatialIndex struct {
	tree    *rtreego.Rtree
	entries []SpatialEntry
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{}
}

// Build replaces the index content with the given bodies
func (s *SpatialIndex) Build(entries []SpatialEntry) {
	s.entries = append(s.entries[:0], entries...)
	objs := make([]rtreego.Spatial, 0, len(s.entries))
	for i := range s.entries {
		e := &s.entries[i]
		e.rect = boxAround(e.Pos, e.Radius)
		objs = append(objs, e)
	}
	s.tree = rtreego.NewTree(2, parameter.SpatialMinChildren, parameter.SpatialMaxChildren, objs...)
}

// Query returns entries whose bounding box meets the square of half-size radius around center,
// sorted by handle index so callers see a stable order regardless of tree layout
func (s *SpatialIndex) Query(center vmath.Vec2, radius float64) []*SpatialEntry {
	if s.tree == nil || s.tree.Size() == 0 {
		return nil
	}
	hits := s.tree.SearchIntersect(boxAround(center, radius))
	out := make([]*SpatialEntry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*SpatialEntry))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle.Index < out[j].Handle.Index })
	return out
}

func (s *SpatialIndex) Len() int {
	return len(s.entries)
}

func boxAround(p vmath.Vec2, r float64) rtreego.Rect {
	half := max(r, minExtent)
	rect, err := rtreego.NewRect(rtreego.Point{p.X - half, p.Y - half}, []float64{2 * half, 2 * half})
	if err != nil {
		rect, _ = rtreego.NewRect(rtreego.Point{0, 0}, []float64{minExtent, minExtent})
	}
	return rect
}
