package render

import (
	"math"

	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/status"
)

// HUDRows is the number of rows reserved above the arena
const HUDRows = 2

// Context is the per-frame state handed to every layer, passed by value
type Context struct {
	Frame  *game.Snapshot
	Status *status.Registry

	Paused bool
	Muted  bool

	ScreenWidth  int
	ScreenHeight int

	// Arena viewport in cells, inside the border
	ArenaX, ArenaY int
	ArenaW, ArenaH int
}

// NewContext lays out the arena viewport for a screen size
func NewContext(frame *game.Snapshot, reg *status.Registry, screenW, screenH int) Context {
	ctx := Context{
		Frame:        frame,
		Status:       reg,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		ArenaX:       1,
		ArenaY:       HUDRows + 1,
	}
	ctx.ArenaW = max(screenW-2, 0)
	ctx.ArenaH = max(screenH-HUDRows-2, 0)
	return ctx
}

// ToCell maps an arena point to a screen cell; false when outside the viewport
func (c Context) ToCell(x, y float64) (int, int, bool) {
	if c.Frame == nil || c.ArenaW == 0 || c.ArenaH == 0 || c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= c.Frame.Width || y >= c.Frame.Height {
		return 0, 0, false
	}
	col := int(x / c.Frame.Width * float64(c.ArenaW))
	row := int(y / c.Frame.Height * float64(c.ArenaH))
	return c.ArenaX + col, c.ArenaY + row, true
}

// CellRadius converts an arena radius to a horizontal cell count, at least one
func (c Context) CellRadius(r float64) int {
	if c.Frame == nil || c.Frame.Width <= 0 {
		return 1
	}
	return max(1, int(math.Round(r/c.Frame.Width*float64(c.ArenaW))))
}
