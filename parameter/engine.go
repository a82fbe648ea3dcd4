package parameter

import "time"

// Tick loop
const (
	// TickRate is simulation steps per second; all durations below are in ticks at this rate
	TickRate = 60

	// TickInterval is the wall-clock period of one simulation step
	TickInterval = time.Second / TickRate
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the notification ring buffer
	// Must be a power of two
	EventQueueSize = 256

	// EventBufferMask is EventQueueSize - 1 for index wrapping
	EventBufferMask = EventQueueSize - 1
)

// Arena defaults, overridable from config
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0
)

// Spatial index
const (
	// SpatialMinChildren and SpatialMaxChildren bound R-tree node fan-out
	SpatialMinChildren = 8
	SpatialMaxChildren = 32
)
