package dataset

import (
	"github.com/rdfkit/quadforest/internal/forest"
	"github.com/rdfkit/quadforest/internal/quadset"
	"github.com/rdfkit/quadforest/pkg/rdf"
)

// similarity classifies how much two datasets can short-circuit set
// algebra, mirroring the three-tier dispatch this package's Union,
// Intersection, Difference, Contains and Equals all use:
//
//   - sameInterner: both datasets were built from the same Interner, so
//     their identifiers already live in one id space. Operations route
//     straight into the forest package's integer set algebra, using its
//     own trivially-mergeable-permutation fast path where possible.
//   - sameClass: both are *facade, but with different interners. Quads
//     must be re-interned one at a time into a fresh result dataset.
//   - none: other is some other Dataset implementation behind the
//     interface. The only available move is to decode every quad via
//     Quads() and re-intern it, same cost as sameClass but without the
//     benefit of peeking at the other side's internals at all.
type similarity int

const (
	simNone similarity = iota
	simSameClass
	simSameInterner
)

func (d *facade) classify(other Dataset) similarity {
	b, ok := other.(*facade)
	if !ok {
		return simNone
	}
	if d.in == b.in {
		return simSameInterner
	}
	return simSameClass
}

// reinternMerge builds a fresh dataset under d's variant containing
// every quad from d followed by every quad from other, re-interning as
// it goes. Used for both the sameClass and none dispatch tiers, which
// differ only in whether the caller could type-assert other, not in how
// the merge itself has to work.
func (d *facade) reinternMerge(other Dataset) *facade {
	out := New(d.factory, d.variant).(*facade)
	for _, q := range d.Quads() {
		out.Add(q)
	}
	for _, q := range other.Quads() {
		out.Add(q)
	}
	return out
}

func (d *facade) Union(other Dataset) Dataset {
	if d.classify(other) == simSameInterner {
		b := other.(*facade)
		out := &facade{factory: d.factory, variant: d.variant, in: d.in}
		out.tree = forest.Union(d.ensureForest(), b.ensureForest())
		return out
	}
	return d.reinternMerge(other)
}

func (d *facade) Intersection(other Dataset) Dataset {
	if d.classify(other) == simSameInterner {
		b := other.(*facade)
		out := &facade{factory: d.factory, variant: d.variant, in: d.in}
		out.tree = forest.Intersection(d.ensureForest(), b.ensureForest())
		return out
	}
	out := New(d.factory, d.variant).(*facade)
	for _, q := range d.Quads() {
		if other.Has(q.Subject, q.Predicate, q.Object, q.Graph) {
			out.Add(q)
		}
	}
	return out
}

func (d *facade) Difference(other Dataset) Dataset {
	if d.classify(other) == simSameInterner {
		b := other.(*facade)
		out := &facade{factory: d.factory, variant: d.variant, in: d.in}
		out.tree = forest.Difference(d.ensureForest(), b.ensureForest())
		return out
	}
	out := New(d.factory, d.variant).(*facade)
	for _, q := range d.Quads() {
		if !other.Has(q.Subject, q.Predicate, q.Object, q.Graph) {
			out.Add(q)
		}
	}
	return out
}

func (d *facade) Contains(other Dataset) bool {
	if d.classify(other) == simSameInterner {
		b := other.(*facade)
		return forest.Contains(d.ensureForest(), b.ensureForest())
	}
	for _, q := range other.Quads() {
		if !d.Has(q.Subject, q.Predicate, q.Object, q.Graph) {
			return false
		}
	}
	return true
}

// Equals compares quad contents by identifier equality only: no
// blank-node isomorphism normalization is performed, so two datasets
// that are isomorphic but label their blank nodes differently compare
// unequal, matching the source library's behavior.
func (d *facade) Equals(other Dataset) bool {
	if d.Size() != other.Size() {
		return false
	}
	return d.Contains(other)
}

// Filter derives a new dataset holding the quads of d that satisfy
// predicate. It honors d's variant: a Shared-variant dataset keeps
// referencing d's interner (filtering never needs new terms, only a
// subset of existing quads), while an Isolated-variant dataset clones a
// subset of d's interner covering just the quads that survive the
// filter; either way the kept identifiers carry over unchanged.
func (d *facade) Filter(predicate func(*rdf.Quad) bool) Dataset {
	var matched []quadset.Quad
	for _, q := range d.rawIDs() {
		if predicate(d.decode(q)) {
			matched = append(matched, q)
		}
	}
	out := d.derive(flattenIDs(matched))
	out.ids = matched
	if !out.variant.PreferIDList {
		out.ensureForest()
	}
	return out
}

// Map derives a new dataset by applying transform to every quad of d.
// Unlike Filter, a transform can introduce terms d's interner has never
// seen, so Map always interns the transformed quads through Add, but
// still respects the variant's choice of interner (shared pointer vs. a
// subset cloned from d's original quads) for the terms d already had.
func (d *facade) Map(transform func(*rdf.Quad) *rdf.Quad) Dataset {
	out := d.derive(flattenIDs(d.rawIDs()))
	for _, q := range d.Quads() {
		out.Add(transform(q))
	}
	if !out.variant.PreferIDList {
		out.ensureForest()
	}
	return out
}
