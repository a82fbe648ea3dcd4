package engine

// System is a unit of per-tick game logic driven by the orchestrator
type System interface {
	// Name identifies the system in logs and diagnostics
	Name() string
	// Init resets internal state for a new run
	Init()
	// Update runs one tick of the system
	Update()
}
