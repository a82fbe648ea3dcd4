// Package service manages the lifecycle of infrastructure around the simulation
package service

// Service defines the lifecycle of a long-lived resource: audio output, the spectator server
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire devices or sockets and launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Optional is implemented by services whose start failure is logged instead of fatal
type Optional interface {
	Optional() bool
}

func isOptional(s Service) bool {
	o, ok := s.(Optional)
	return ok && o.Optional()
}
