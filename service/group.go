package service

import (
	"log"
	"sync"

	"github.com/pkg/errors"
)

// Group starts services in registration order and stops them in reverse
type Group struct {
	mu       sync.Mutex
	services []Service
	running  []Service
	skipped  map[string]error
}

func NewGroup(services ...Service) *Group {
	return &Group{
		services: services,
		skipped:  make(map[string]error),
	}
}

// Add registers a service; duplicates by name are rejected
func (g *Group) Add(s Service) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, existing := range g.services {
		if existing.Name() == s.Name() {
			return errors.Errorf("service %q already registered", s.Name())
		}
	}
	g.services = append(g.services, s)
	return nil
}

// Start launches every service
// An optional service that fails is skipped; any other failure stops what already started
func (g *Group) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range g.services {
		if err := s.Start(); err != nil {
			if isOptional(s) {
				log.Printf("service %s: %v (continuing without it)", s.Name(), err)
				g.skipped[s.Name()] = err
				continue
			}
			g.stopLocked()
			return errors.Wrapf(err, "start %s", s.Name())
		}
		g.running = append(g.running, s)
	}
	return nil
}

// Stop halts running services in reverse start order and returns the first error
func (g *Group) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stopLocked()
}

func (g *Group) stopLocked() error {
	var first error
	for i := len(g.running) - 1; i >= 0; i-- {
		s := g.running[i]
		if err := s.Stop(); err != nil {
			log.Printf("service %s stop: %v", s.Name(), err)
			if first == nil {
				first = errors.Wrapf(err, "stop %s", s.Name())
			}
		}
	}
	g.running = nil
	return first
}

// Running reports whether the named service started and has not been stopped
func (g *Group) Running(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range g.running {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// Skipped returns the start error of an optional service that failed, or nil
func (g *Group) Skipped(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.skipped[name]
}
