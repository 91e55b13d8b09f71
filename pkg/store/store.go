package store

import (
	"github.com/rdfkit/quadforest/pkg/dataset"
	"github.com/rdfkit/quadforest/pkg/rdf"
)

// StoreFacade is the stream-shaped boundary over a Dataset: bulk
// Import/Remove operations take a Stream and return immediately with an
// Observer the caller waits on, while Match returns a Stream of results
// instead of a materialized slice. Everything else (Add, AddQuad,
// DeleteGraph, Match) runs synchronously on the caller's goroutine, the
// same "no suspension except at a stream boundary" rule the Dataset
// facade itself follows.
type StoreFacade struct {
	factory rdf.Factory
	data    dataset.Dataset
}

// New creates an empty StoreFacade over a freshly constructed Dataset
// using the given variant.
func New(factory rdf.Factory, variant dataset.Variant) *StoreFacade {
	return &StoreFacade{factory: factory, data: dataset.New(factory, variant)}
}

// Data exposes the underlying Dataset for callers that want direct
// access to its pattern-matching and set-algebra operations.
func (s *StoreFacade) Data() dataset.Dataset {
	return s.data
}

// Add inserts a single quad synchronously, returning true if it was new.
func (s *StoreFacade) Add(quad *rdf.Quad) bool {
	return s.data.Add(quad)
}

// AddQuad is a convenience wrapper building the quad from its four
// terms before adding it.
func (s *StoreFacade) AddQuad(subject, predicate, object, graph rdf.Term) bool {
	return s.Add(s.factory.Quad(subject, predicate, object, graph))
}

// DeleteGraph removes every quad whose graph is the named node with IRI
// graphIRI. It only ever wraps graphIRI as a named node: there is no way
// to name a literal or blank-node graph through this call, matching the
// source library's DeleteGraph, which never handled that case either.
func (s *StoreFacade) DeleteGraph(graphIRI string) {
	s.data.DeleteMatches(nil, nil, nil, s.factory.NamedNode(graphIRI))
}

// Match returns a Stream of every quad satisfying the given pattern. The
// matches are collected synchronously, in the order of the forest tree
// the dataset scanned, and handed out through a slice-backed stream whose
// channel is already filled and closed when Quads returns.
func (s *StoreFacade) Match(subject, predicate, object, graph rdf.Term) Stream {
	results := s.data.Match(subject, predicate, object, graph).Quads()
	return NewSliceStream(results)
}

// RemoveMatches removes every quad satisfying the given pattern. The
// actual deletion is deferred to a goroutine, matching the source
// library's event-loop-turn deferral of matches-based removal: the call
// returns immediately with an Observer, and the caller must wait on
// Done() before the removal is guaranteed to have taken effect.
func (s *StoreFacade) RemoveMatches(subject, predicate, object, graph rdf.Term) Observer {
	obs := newObserver()
	go func() {
		s.data.DeleteMatches(subject, predicate, object, graph)
		obs.finish(nil)
	}()
	return obs
}

// Import drains stream and adds every quad it produces, running on its
// own goroutine. The call returns immediately; the caller must wait on
// the returned Observer's Done() channel before relying on the import
// having completed, and must check Err() afterward for a failure
// reported by the stream itself.
func (s *StoreFacade) Import(stream Stream) Observer {
	obs := newObserver()
	go func() {
		for quad := range stream.Quads() {
			s.data.Add(quad)
		}
		obs.finish(stream.Err())
	}()
	return obs
}

// ImportStream is a free-standing convenience that imports stream and
// blocks until it completes, returning any error the stream reported.
func (s *StoreFacade) ImportStream(stream Stream) error {
	obs := s.Import(stream)
	<-obs.Done()
	return obs.Err()
}

// Remove drains stream and deletes every quad it produces, running on
// its own goroutine. Same waiting contract as Import.
func (s *StoreFacade) Remove(stream Stream) Observer {
	obs := newObserver()
	go func() {
		for quad := range stream.Quads() {
			s.data.Delete(quad)
		}
		obs.finish(stream.Err())
	}()
	return obs
}
