// Package collectors defines the data collection interface and the runner
// that drives collection on a fixed cadence. The host loop owns timing and
// cancellation; collectors only sample and return structured data.
package collectors

import (
	"context"
	"time"
)

// Collector is the interface all samplers implement. A collector gathers
// metrics from a single source and returns a structured, JSON-serializable
// result once per tick.
type Collector interface {
	// Name returns the collector's unique identifier (e.g., "memory").
	// Names must be unique within a Registry.
	Name() string

	// Description returns a human-readable description of what this
	// collector gathers.
	Description() string

	// Interval returns the polling interval the runner should use for
	// this collector.
	Interval() time.Duration

	// Collect gathers one sample. Non-fatal issues (a metrics source
	// briefly unavailable, a stale fallback used) are reported as
	// Warnings rather than errors. The context must be respected for
	// cancellation.
	Collect(ctx context.Context) (*CollectResult, error)
}

// CollectResult holds the output of a single collection run.
type CollectResult struct {
	// Collector is the name of the collector that produced this result.
	Collector string `json:"collector"`

	// Timestamp records when the collection completed.
	Timestamp time.Time `json:"timestamp"`

	// Data is the collector-specific structured payload.
	Data interface{} `json:"data"`

	// Warnings contains non-fatal issues encountered during collection.
	Warnings []string `json:"warnings,omitempty"`
}

// Registry holds registered collectors and provides lookup by name.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates an empty collector registry.
func NewRegistry() *Registry {
	return &Registry{collectors: make([]Collector, 0)}
}

// Register adds a collector to the registry. A collector with the same
// name replaces the existing one.
func (r *Registry) Register(c Collector) {
	for i, existing := range r.collectors {
		if existing.Name() == c.Name() {
			r.collectors[i] = c
			return
		}
	}
	r.collectors = append(r.collectors, c)
}

// Get returns a collector by name. The second return value indicates
// whether the collector was found.
func (r *Registry) Get(name string) (Collector, bool) {
	for _, c := range r.collectors {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the registered collector names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.collectors))
	for _, c := range r.collectors {
		names = append(names, c.Name())
	}
	return names
}

// All returns a copy of the registered collector slice.
func (r *Registry) All() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}
