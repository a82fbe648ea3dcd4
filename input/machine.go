package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/vmath"
)

// HoldTicks is how long a direction stays held after its last press
// Terminals report key repeats but no releases, so a held key is one pressed recently
const HoldTicks = 8

// held tracks the four cardinal directions of one control group
type held struct {
	until [4]uint64 // tick after which each direction is released
	last  vmath.Vec2
}

func dirIndex(d vmath.Vec2) int {
	switch {
	case d.Y < 0:
		return 0
	case d.Y > 0:
		return 1
	case d.X < 0:
		return 2
	default:
		return 3
	}
}

var cardinal = [4]vmath.Vec2{dirUp, dirDown, dirLeft, dirRight}

func (h *held) press(d vmath.Vec2, now uint64) {
	i := dirIndex(d)
	h.until[i] = now + HoldTicks
	// opposite direction releases immediately
	h.until[i^1] = 0
	if v := h.vector(now); !v.IsZero() {
		h.last = v
	}
}

func (h *held) vector(now uint64) vmath.Vec2 {
	var v vmath.Vec2
	for i, until := range h.until {
		if until > now {
			v = v.Add(cardinal[i])
		}
	}
	return v.Normalize()
}

func (h *held) clear() {
	h.until = [4]uint64{}
}

// Machine decodes key events and keeps held movement and aim state
// Owned by the input goroutine's consumer; not safe for concurrent use
type Machine struct {
	table *KeyTable
	now   uint64
	move  held
	aim   held
}

func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	m := &Machine{table: table}
	m.aim.last = dirRight
	return m
}

// HandleEvent decodes a tcell event; false when it carries no intent
func (m *Machine) HandleEvent(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.Key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}, true
	}
	return Intent{}, false
}

// Key decodes one key press and updates held state
func (m *Machine) Key(key tcell.Key, r rune) (Intent, bool) {
	e, ok := m.table.Lookup(key, r)
	if !ok {
		return Intent{}, false
	}
	switch e.Intent {
	case IntentMove:
		m.move.press(e.Dir, m.now)
	case IntentAim:
		m.aim.press(e.Dir, m.now)
	}
	return Intent{Type: e.Intent, Dir: e.Dir}, true
}

// Tick advances the hold clock by one simulation step
func (m *Machine) Tick() {
	m.now++
}

// Move returns the held movement direction, zero when released
func (m *Machine) Move() vmath.Vec2 {
	return m.move.vector(m.now)
}

// Aim returns the held aim direction and whether any aim key is down
func (m *Machine) Aim() (vmath.Vec2, bool) {
	v := m.aim.vector(m.now)
	return v, !v.IsZero()
}

// LastAim is the most recent aim, used by fire and wall keys
func (m *Machine) LastAim() vmath.Vec2 {
	return m.aim.last
}

// Release drops all held directions, e.g. on pause or restart
func (m *Machine) Release() {
	m.move.clear()
	m.aim.clear()
}
