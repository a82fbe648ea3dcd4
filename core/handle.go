package core

import "fmt"

// Handle addresses a slot in a generation-tagged pool
// A handle goes stale when its slot is freed; the generation check rejects it afterwards
type Handle struct {
	Index uint32
	Gen   uint32
}

// NoHandle never resolves; generation 0 is never issued
var NoHandle = Handle{}

func (h Handle) Valid() bool {
	return h.Gen != 0
}

func (h Handle) String() string {
	if !h.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d#%d", h.Index, h.Gen)
}
