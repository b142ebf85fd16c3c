// Package memory implements BikeSearcher over an in-process map.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/bikerental/internal/logger"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Searcher holds a registry of bikes keyed by identifier.
// Safe for concurrent use.
type Searcher struct {
	mu    sync.RWMutex
	bikes map[string]types.Bike
	log   *logger.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for lookup tracing.
func WithLogger(l *logger.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty in-memory Searcher.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		bikes: make(map[string]types.Bike),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBike stores bike under its identifier, replacing any existing entry.
func (s *Searcher) AddBike(bike types.Bike) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.bikes[bike.ID()]
	s.bikes[bike.ID()] = bike
	s.log.Debug("bike.added", "bike_id", bike.ID(), "replaced", replaced)
}

// FindBike returns the bike registered under id, or false if none is.
func (s *Searcher) FindBike(id string) (types.Bike, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bikes[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// Len returns the number of registered bikes.
func (s *Searcher) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bikes)
}
