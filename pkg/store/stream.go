// Package store implements StoreFacade, the stream-shaped boundary over
// a Dataset: bulk import/removal of quads driven by a producer the
// caller doesn't have to materialize as a slice up front.
package store

import "github.com/rdfkit/quadforest/pkg/rdf"

// Stream is a pull-style producer of quads. A push source (a parser, a
// network reader) is modeled by starting a goroutine that sends on the
// channel Quads returns and closes it when done; Err, valid only once
// that channel has been drained and closed, reports any failure that
// stopped the stream early.
type Stream interface {
	Quads() <-chan *rdf.Quad
	Err() error
}

// Observer reports the completion of a deferred store operation (Import,
// Remove, RemoveMatches). Done closes when the operation finishes; Err,
// valid only once Done has closed, reports whether it failed.
type Observer interface {
	Done() <-chan struct{}
	Err() error
}

// observer is the concrete Observer every deferred operation below
// returns: a close-once completion signal plus the first error recorded
// before closing.
type observer struct {
	done chan struct{}
	err  error
}

func newObserver() *observer {
	return &observer{done: make(chan struct{})}
}

func (o *observer) Done() <-chan struct{} { return o.done }
func (o *observer) Err() error            { return o.err }

func (o *observer) finish(err error) {
	o.err = err
	close(o.done)
}

// sliceStream is a Stream over an in-memory slice, useful for tests and
// for feeding AddQuad-style batches through the same Import path as a
// parsed file.
type sliceStream struct {
	quads []*rdf.Quad
}

// NewSliceStream wraps quads as a Stream that never errors.
func NewSliceStream(quads []*rdf.Quad) Stream {
	return &sliceStream{quads: quads}
}

func (s *sliceStream) Quads() <-chan *rdf.Quad {
	ch := make(chan *rdf.Quad, len(s.quads))
	for _, q := range s.quads {
		ch <- q
	}
	close(ch)
	return ch
}

func (s *sliceStream) Err() error { return nil }
