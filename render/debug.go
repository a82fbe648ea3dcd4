package render

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/parameter/visual"
)

// StatsLayer lists every registry metric in the arena's top-left corner
// Hidden until toggled
type StatsLayer struct {
	visible atomic.Bool
}

func (l *StatsLayer) IsVisible() bool {
	return l.visible.Load()
}

// Toggle flips visibility and returns the new state
func (l *StatsLayer) Toggle() bool {
	for {
		cur := l.visible.Load()
		if l.visible.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (l *StatsLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Status == nil {
		return
	}
	metrics := ctx.Status.Snapshot()
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	style := tcell.StyleDefault.Foreground(visual.DimText).Background(visual.Background)
	row := ctx.ArenaY
	for _, k := range keys {
		if row >= ctx.ArenaY+ctx.ArenaH {
			break
		}
		line := fmt.Sprintf("%-22s %v", k, metrics[k])
		if w := ctx.ArenaW; w > 0 && len(line) > w {
			line = line[:w]
		}
		buf.SetString(ctx.ArenaX, row, line, style)
		row++
	}
}
