// Package render draws simulation frames onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/parameter/visual"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the per-frame compositor; layers write, Flush copies to the screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		blank: Cell{Rune: ' ', Style: tcell.StyleDefault.Background(visual.Background)},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a rune with a foreground over the background
func (b *Buffer) Set(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: b.blank.Style.Foreground(fg)}
}

// SetStyle writes a rune with an explicit style
func (b *Buffer) SetStyle(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s left to right and returns the column after it
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.SetStyle(x, y, r, style)
		x++
	}
	return x
}

// Get returns the cell at x, y; out of bounds yields the blank cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Flush copies every cell to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
