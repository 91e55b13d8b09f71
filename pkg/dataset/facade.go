// Package dataset implements the RDF.JS-style Dataset facade over a
// term interner and a lazily-built quad forest: a mutable collection of
// quads supporting pattern matching, set algebra, and derived views.
package dataset

import (
	"errors"
	"fmt"

	"github.com/rdfkit/quadforest/internal/forest"
	"github.com/rdfkit/quadforest/internal/interner"
	"github.com/rdfkit/quadforest/internal/quadset"
	"github.com/rdfkit/quadforest/pkg/rdf"
)

// ErrInputShapeMismatch is returned by AddAll when handed a source that
// is neither a Dataset nor a slice of *rdf.Quad.
var ErrInputShapeMismatch = errors.New("dataset: input is not a quad source")

// Dataset is a mutable, interned collection of RDF quads.
type Dataset interface {
	Add(quad *rdf.Quad) bool
	Delete(quad *rdf.Quad) bool
	Has(subject, predicate, object, graph rdf.Term) bool
	Match(subject, predicate, object, graph rdf.Term) Dataset
	DeleteMatches(subject, predicate, object, graph rdf.Term)
	Size() int
	Quads() []*rdf.Quad
	Union(other Dataset) Dataset
	Intersection(other Dataset) Dataset
	Difference(other Dataset) Dataset
	Contains(other Dataset) bool
	Equals(other Dataset) bool
	AddAll(source any) error
	Filter(predicate func(*rdf.Quad) bool) Dataset
	Map(transform func(*rdf.Quad) *rdf.Quad) Dataset
	CountQuads(subject, predicate, object, graph rdf.Term) int
	EnsureIndexFor(subject, predicate, object, graph rdf.Term)
	Free()
}

// facade is the single concrete implementation behind every Variant: the
// four named variants in variant.go only change the construction-time
// policy captured in the variant field, never the type.
type facade struct {
	factory rdf.Factory
	variant Variant
	in      *interner.Interner

	// At most one of ids/tree is in use at a time: once the forest is
	// built, ids is dropped. Both are nil right after New and Free().
	ids  []quadset.Quad
	tree *forest.Forest
}

// New creates an empty Dataset using factory for term<->id translation,
// under the given construction variant.
func New(factory rdf.Factory, variant Variant) Dataset {
	return &facade{
		factory: factory,
		variant: variant,
		in:      interner.New(factory),
	}
}

// FromQuads builds a Dataset containing quads, under the given variant.
func FromQuads(factory rdf.Factory, quads []*rdf.Quad, variant Variant) Dataset {
	d := New(factory, variant).(*facade)
	for _, q := range quads {
		d.Add(q)
	}
	return d
}

func (d *facade) ensureForest() *forest.Forest {
	if d.tree != nil {
		return d.tree
	}
	d.tree = forest.New()
	for _, q := range d.ids {
		d.tree.Insert(q)
	}
	d.ids = nil
	return d.tree
}

func (d *facade) quadToIDs(quad *rdf.Quad) quadset.Quad {
	ids := d.in.InternOrAddQuad(quad)
	return quadset.Quad(ids)
}

// matchPattern interns a partial pattern without assigning new ids. ok is
// false when an unbound-position-independent term the pattern names was
// never interned: PatternUnsatisfiable, absorbed here rather than
// surfaced as an error.
func (d *facade) matchPattern(subject, predicate, object, graph rdf.Term) (quadset.Pattern, bool) {
	ids, bound, ok := d.in.MatchIDs(subject, predicate, object, graph)
	if !ok {
		return quadset.Pattern{}, false
	}
	return quadset.Pattern{Values: ids, Bound: bound}, true
}

func (d *facade) decode(q quadset.Quad) *rdf.Quad {
	quad, err := d.in.DecodeQuad([4]uint32(q))
	if err != nil {
		// The identifier came out of this facade's own forest or id
		// cache, so it was assigned by this same interner: a missing
		// term here means the interner and the index have desynced,
		// which is a bug in this package, not a recoverable runtime
		// condition.
		panic(fmt.Sprintf("dataset: %v", err))
	}
	return quad
}

func (d *facade) Add(quad *rdf.Quad) bool {
	q := d.quadToIDs(quad)
	if d.tree != nil {
		return d.tree.Insert(q)
	}
	for _, existing := range d.ids {
		if existing == q {
			return false
		}
	}
	d.ids = append(d.ids, q)
	return true
}

func (d *facade) Delete(quad *rdf.Quad) bool {
	ids, ok := d.in.TryInternQuad(quad)
	if !ok {
		return false
	}
	q := quadset.Quad(ids)
	if d.tree != nil {
		return d.tree.Remove(q)
	}
	for i, existing := range d.ids {
		if existing == q {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether a quad matching the given pattern exists. It
// always builds the forest if one isn't built yet: matching a sequence
// cache directly would mean re-implementing pattern matching twice, so
// rather than duplicate that logic this facade pays the one-time forest
// build cost on first Has/Match/DeleteMatches call, exactly as the
// source library this package is modeled on does for its
// sequence-backed dataset wrapper.
func (d *facade) Has(subject, predicate, object, graph rdf.Term) bool {
	pattern, ok := d.matchPattern(subject, predicate, object, graph)
	if !ok {
		return false
	}
	return d.ensureForest().Has(pattern)
}

// Match returns a new Dataset holding every quad satisfying the given
// pattern. The result honors d's variant exactly like Filter and Map: a
// Shared-variant facade shares d's interner, while an Isolated-variant
// facade clones a subset covering only the identifiers the match
// actually produced. Per the read-only-path rule, the returned facade
// holds only the resulting identifier sequence, never a forest, since a
// match result is the cheapest representation for a read-and-discard
// query.
func (d *facade) Match(subject, predicate, object, graph rdf.Term) Dataset {
	pattern, ok := d.matchPattern(subject, predicate, object, graph)
	if !ok {
		return d.derive(nil)
	}
	var matched []quadset.Quad
	d.ensureForest().Match(pattern, func(q quadset.Quad) bool {
		matched = append(matched, q)
		return true
	})
	out := d.derive(flattenIDs(matched))
	out.ids = matched
	return out
}

func (d *facade) DeleteMatches(subject, predicate, object, graph rdf.Term) {
	pattern, ok := d.matchPattern(subject, predicate, object, graph)
	if !ok {
		return
	}
	d.ensureForest().DeleteMatches(pattern)
}

func (d *facade) CountQuads(subject, predicate, object, graph rdf.Term) int {
	pattern, ok := d.matchPattern(subject, predicate, object, graph)
	if !ok {
		return 0
	}
	return d.ensureForest().MatchCount(pattern)
}

func (d *facade) EnsureIndexFor(subject, predicate, object, graph rdf.Term) {
	pattern, ok := d.matchPattern(subject, predicate, object, graph)
	if !ok {
		return
	}
	d.ensureForest().EnsureIndexFor(pattern)
}

func (d *facade) Size() int {
	if d.tree != nil {
		return d.tree.Size()
	}
	return len(d.ids)
}

func (d *facade) Quads() []*rdf.Quad {
	ids := d.rawIDs()
	out := make([]*rdf.Quad, len(ids))
	for i, q := range ids {
		out[i] = d.decode(q)
	}
	return out
}

func (d *facade) rawIDs() []quadset.Quad {
	if d.tree != nil {
		return d.tree.All()
	}
	return d.ids
}

func (d *facade) AddAll(source any) error {
	switch s := source.(type) {
	case Dataset:
		for _, q := range s.Quads() {
			d.Add(q)
		}
		return nil
	case []*rdf.Quad:
		for _, q := range s {
			d.Add(q)
		}
		return nil
	default:
		return fmt.Errorf("%T: %w", source, ErrInputShapeMismatch)
	}
}

// Free empties this dataset, dropping both its forest and any cached
// identifier sequence. This is not an error state: it resets the facade
// to the same empty state New returns, and a subsequent Add starts it
// over from scratch.
func (d *facade) Free() {
	d.ids = nil
	d.tree = nil
}

// derive builds a new empty facade under this dataset's variant. Shared
// variants reuse d's interner pointer outright; Isolated variants clone
// a subset of it covering exactly ids, preserving those identifiers'
// numeric values (see Interner.CloneSubset), so a caller can carry
// identifier quads already encoded against d straight into the result
// with no remapping step.
func (d *facade) derive(ids []uint32) *facade {
	if !d.variant.Isolated {
		return &facade{factory: d.factory, variant: d.variant, in: d.in}
	}
	clone := d.in.CloneSubset(ids)
	return &facade{factory: d.factory, variant: d.variant, in: clone}
}

// flattenIDs lists every identifier appearing in quads, in no particular
// order and with duplicates, which is all CloneSubset needs.
func flattenIDs(quads []quadset.Quad) []uint32 {
	ids := make([]uint32, 0, len(quads)*4)
	for _, q := range quads {
		ids = append(ids, q[0], q[1], q[2], q[3])
	}
	return ids
}
