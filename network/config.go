// Package network is an optional spectator server that streams run snapshots to websocket viewers
// It is off unless an address is configured, and read-only: viewer input never reaches the game
package network

import "time"

// Config holds spectator server configuration
type Config struct {
	// Addr to bind; empty disables the server
	Addr string

	// BroadcastEvery sends one snapshot per this many ticks
	BroadcastEvery int

	// Connection limits
	MaxViewers int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// SendQueueSize is frames buffered per viewer before frames are skipped
	SendQueueSize int
}

// DefaultConfig returns a disabled server with production-safe limits
func DefaultConfig() *Config {
	return &Config{
		Addr:           "",
		BroadcastEvery: 2,
		MaxViewers:     32,
		WriteTimeout:   5 * time.Second,
		PongTimeout:    60 * time.Second,
		PingInterval:   50 * time.Second,
		SendQueueSize:  16,
	}
}

// Enabled reports whether a bind address is configured
func (c *Config) Enabled() bool {
	return c.Addr != ""
}
