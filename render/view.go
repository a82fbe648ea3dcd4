package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/status"
)

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// View composites layers into a buffer and flushes it to a tcell screen
type View struct {
	screen   tcell.Screen
	buffer   *Buffer
	layers   []layerEntry
	regCount int
	effects  *EffectLayer
	stats    *StatsLayer
}

// NewView creates a view with the standard layer stack registered
func NewView(screen tcell.Screen) *View {
	w, h := screen.Size()
	v := &View{
		screen:  screen,
		buffer:  NewBuffer(w, h),
		layers:  make([]layerEntry, 0, 8),
		effects: NewEffectLayer(),
		stats:   &StatsLayer{},
	}
	v.Register(BorderLayer{}, PriorityBackground)
	v.Register(ObstacleLayer{}, PriorityObstacle)
	v.Register(AgentLayer{}, PriorityEnemy)
	v.Register(v.effects, PriorityEffect)
	v.Register(HUDLayer{}, PriorityHUD)
	v.Register(v.stats, PriorityHUD)
	v.Register(OverlayLayer{}, PriorityOverlay)
	return v
}

// Register adds a layer at the given priority, keeping sorted order by insertion
func (v *View) Register(l Layer, priority Priority) {
	entry := layerEntry{layer: l, priority: priority, index: v.regCount}
	v.regCount++

	pos := len(v.layers)
	for i, e := range v.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}
	v.layers = append(v.layers, layerEntry{})
	copy(v.layers[pos+1:], v.layers[pos:])
	v.layers[pos] = entry
}

// Observe feeds one frame of notifications to the effect layer
func (v *View) Observe(events []event.GameEvent) {
	v.effects.Observe(events)
}

// ToggleStats shows or hides the metrics panel
func (v *View) ToggleStats() bool {
	return v.stats.Toggle()
}

// Resize syncs the buffer with the current screen size
func (v *View) Resize() {
	w, h := v.screen.Size()
	v.buffer.Resize(w, h)
	v.screen.Sync()
}

// Draw renders one frame
func (v *View) Draw(frame *game.Snapshot, reg *status.Registry, paused, muted bool) {
	w, h := v.screen.Size()
	if bw, bh := v.buffer.Size(); bw != w || bh != h {
		v.buffer.Resize(w, h)
	}
	ctx := NewContext(frame, reg, w, h)
	ctx.Paused = paused
	ctx.Muted = muted

	v.buffer.Clear()
	for _, e := range v.layers {
		if vt, ok := e.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		e.layer.Render(ctx, v.buffer)
	}
	v.buffer.Flush(v.screen)
}

// Buffer exposes the last composited frame
func (v *View) Buffer() *Buffer {
	return v.buffer
}
