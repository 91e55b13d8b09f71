// Package interner implements the bidirectional term<->identifier
// dictionary that every indexed quad set and forest is built on top of.
package interner

import (
	"errors"
	"fmt"

	"github.com/rdfkit/quadforest/pkg/rdf"
	"github.com/zeebo/xxh3"
)

// ErrStaleIdentifier is returned when an identifier no longer resolves to
// a term, because it belongs to a different interner or was never
// assigned by this one.
var ErrStaleIdentifier = errors.New("interner: stale identifier")

// DefaultGraphID is the identifier every fresh Interner pre-assigns to
// the default graph term, matching the reserved-zero convention used
// throughout the forest and facade layers.
const DefaultGraphID uint32 = 0

type entry struct {
	key string
	id  uint32
}

// Interner maps RDF terms to dense uint32 identifiers and back. It hashes
// each term's canonical dictionary key with xxh3 (the same hash the
// on-disk term encoder in this module's ancestor used for IRIs and large
// literals) to index into a chained hash table, rather than relying on
// Go's built-in string-keyed map, to keep the hot bulk-load insert path
// free of the runtime's generic string hashing.
type Interner struct {
	factory rdf.Factory
	terms   []rdf.Term
	buckets [][]entry
	count   int
}

// New creates an Interner with the default graph pre-assigned identifier
// DefaultGraphID.
func New(factory rdf.Factory) *Interner {
	in := &Interner{
		factory: factory,
		terms:   make([]rdf.Term, 1, 64),
		buckets: make([][]entry, 16),
	}
	in.terms[0] = factory.DefaultGraph()
	key := factory.Key(in.terms[0])
	in.buckets[in.bucketIndex(key, len(in.buckets))] = append(
		in.buckets[in.bucketIndex(key, len(in.buckets))], entry{key: key, id: DefaultGraphID},
	)
	in.count = 1
	return in
}

func (in *Interner) bucketIndex(key string, nbuckets int) int {
	h := xxh3.HashString(key)
	return int(h % uint64(nbuckets))
}

func (in *Interner) lookup(key string) (uint32, bool) {
	idx := in.bucketIndex(key, len(in.buckets))
	for _, e := range in.buckets[idx] {
		if e.key == key {
			return e.id, true
		}
	}
	return 0, false
}

func (in *Interner) insert(key string, id uint32) {
	idx := in.bucketIndex(key, len(in.buckets))
	in.buckets[idx] = append(in.buckets[idx], entry{key: key, id: id})
	in.count++
	if in.count > len(in.buckets)*2 {
		in.grow()
	}
}

func (in *Interner) grow() {
	next := make([][]entry, len(in.buckets)*2)
	for _, bucket := range in.buckets {
		for _, e := range bucket {
			idx := in.bucketIndex(e.key, len(next))
			next[idx] = append(next[idx], e)
		}
	}
	in.buckets = next
}

// TryIntern returns the identifier already assigned to term, without
// assigning a new one.
func (in *Interner) TryIntern(term rdf.Term) (uint32, bool) {
	return in.lookup(in.factory.Key(term))
}

// InternOrAdd returns term's identifier, assigning the next free
// identifier if term has not been seen before.
func (in *Interner) InternOrAdd(term rdf.Term) uint32 {
	key := in.factory.Key(term)
	if id, ok := in.lookup(key); ok {
		return id
	}
	id := uint32(len(in.terms))
	in.terms = append(in.terms, in.factory.FromTerm(term))
	in.insert(key, id)
	return id
}

// Term resolves an identifier back to its term. A clone built by
// CloneSubset leaves the identifiers it didn't select as unfilled gaps,
// so a present slot is not enough on its own: the slot must also be
// non-nil.
func (in *Interner) Term(id uint32) (rdf.Term, bool) {
	if int(id) >= len(in.terms) || in.terms[id] == nil {
		return nil, false
	}
	return in.terms[id], true
}

// Len returns the number of distinct terms interned so far, including
// the default graph. For a clone built by CloneSubset this is the size
// of the selected subset, not the span of identifier values it reserves
// (see CloneSubset).
func (in *Interner) Len() int {
	return in.count
}

// InternOrAddQuad interns all four positions of quad, assigning new
// identifiers as needed.
func (in *Interner) InternOrAddQuad(quad *rdf.Quad) [4]uint32 {
	return [4]uint32{
		in.InternOrAdd(quad.Subject),
		in.InternOrAdd(quad.Predicate),
		in.InternOrAdd(quad.Object),
		in.InternOrAdd(quad.Graph),
	}
}

// TryInternQuad interns quad only if all four of its terms are already
// known; ok is false otherwise (the pattern or quad is unsatisfiable
// against this interner and the caller should treat it as "no match").
func (in *Interner) TryInternQuad(quad *rdf.Quad) (ids [4]uint32, ok bool) {
	if ids[0], ok = in.TryIntern(quad.Subject); !ok {
		return ids, false
	}
	if ids[1], ok = in.TryIntern(quad.Predicate); !ok {
		return ids, false
	}
	if ids[2], ok = in.TryIntern(quad.Object); !ok {
		return ids, false
	}
	if ids[3], ok = in.TryIntern(quad.Graph); !ok {
		return ids, false
	}
	return ids, true
}

// DecodeQuad resolves an identifier quad back into terms, using factory
// to assemble the result. Returns ErrStaleIdentifier if any position no
// longer resolves.
func (in *Interner) DecodeQuad(ids [4]uint32) (*rdf.Quad, error) {
	s, ok := in.Term(ids[0])
	if !ok {
		return nil, fmt.Errorf("subject id %d: %w", ids[0], ErrStaleIdentifier)
	}
	p, ok := in.Term(ids[1])
	if !ok {
		return nil, fmt.Errorf("predicate id %d: %w", ids[1], ErrStaleIdentifier)
	}
	o, ok := in.Term(ids[2])
	if !ok {
		return nil, fmt.Errorf("object id %d: %w", ids[2], ErrStaleIdentifier)
	}
	g, ok := in.Term(ids[3])
	if !ok {
		return nil, fmt.Errorf("graph id %d: %w", ids[3], ErrStaleIdentifier)
	}
	return in.factory.Quad(s, p, o, g), nil
}

// MatchIDs interns a partial pattern (any of the four terms may be nil,
// meaning "unbound") returning the identifiers of the bound positions and
// which positions are bound. It never assigns new identifiers: a pattern
// term unknown to this interner makes the whole pattern unsatisfiable,
// reported via ok=false rather than an error.
func (in *Interner) MatchIDs(subject, predicate, object, graph rdf.Term) (ids [4]uint32, bound [4]bool, ok bool) {
	terms := [4]rdf.Term{subject, predicate, object, graph}
	for i, t := range terms {
		if t == nil {
			continue
		}
		id, found := in.TryIntern(t)
		if !found {
			return ids, bound, false
		}
		ids[i] = id
		bound[i] = true
	}
	return ids, bound, true
}

// CloneSubset builds a fresh Interner containing exactly the terms named
// by ids, preserving their numeric identifier values and the source's
// next free identifier. A term kept by the clone resolves under the same
// id it had in in, so an identifier quad built against in can be reused
// against the clone without rewriting a single position; a term interned
// for the first time in the clone is assigned an id past every id in
// could ever have handed out at the moment of cloning, so the two
// identifier spaces never collide if the clone is later compared or
// merged against quads still carrying in's ids. The default graph is
// always present at DefaultGraphID regardless of whether it appears in
// ids.
func (in *Interner) CloneSubset(ids []uint32) *Interner {
	out := New(in.factory)
	if grow := len(in.terms) - len(out.terms); grow > 0 {
		out.terms = append(out.terms, make([]rdf.Term, grow)...)
	}

	for _, id := range ids {
		if id == DefaultGraphID || int(id) >= len(out.terms) || out.terms[id] != nil {
			continue
		}
		term, ok := in.Term(id)
		if !ok {
			continue
		}
		out.terms[id] = term
		out.insert(in.factory.Key(term), id)
	}
	return out
}
