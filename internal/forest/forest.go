// Package forest implements QuadForest: a collection of OrderedQuadSets
// indexing the same identifier quads under different permutations, plus
// the pattern matching and set algebra operations that route through
// whichever permutation best serves a given query.
package forest

import "github.com/rdfkit/quadforest/internal/quadset"

// Forest holds one always-live anchor OrderedSet plus up to five optional
// ones, each materialized lazily the first time a query would benefit
// from it, mirroring the base_tree/optional_trees split of the structure
// this package is modeled on.
type Forest struct {
	anchorPerm quadset.Permutation
	anchor     *quadset.OrderedSet
	optional   map[quadset.Permutation]*quadset.OrderedSet
}

// New creates an empty Forest whose anchor tree is sorted under OGSP,
// matching the default base-tree order of the structure this package is
// modeled on.
func New() *Forest {
	return NewWithAnchor(quadset.OGSP)
}

// NewWithAnchor creates an empty Forest whose always-live anchor tree is
// sorted under perm.
func NewWithAnchor(perm quadset.Permutation) *Forest {
	return &Forest{
		anchorPerm: perm,
		anchor:     quadset.New(perm),
		optional:   make(map[quadset.Permutation]*quadset.OrderedSet),
	}
}

// Size returns the number of quads held.
func (f *Forest) Size() int {
	return f.anchor.Len()
}

// AnchorPermutation reports which permutation the always-live anchor
// tree is sorted under.
func (f *Forest) AnchorPermutation() quadset.Permutation {
	return f.anchorPerm
}

// All returns every quad held, in anchor sort order.
func (f *Forest) All() []quadset.Quad {
	return f.anchor.All()
}

// MaterializedCount returns how many optional (non-anchor) trees are
// currently built. The forest's DeleteMatches heuristic uses this count
// directly, the way the original's delete_matches ratio threshold does.
func (f *Forest) MaterializedCount() int {
	return len(f.optional)
}

// Insert adds q to the anchor and to every currently materialized
// optional tree, keeping them all consistent.
func (f *Forest) Insert(q quadset.Quad) bool {
	added := f.anchor.Insert(q)
	for _, tree := range f.optional {
		tree.Insert(q)
	}
	return added
}

// Remove deletes q from the anchor and from every materialized optional
// tree.
func (f *Forest) Remove(q quadset.Quad) bool {
	removed := f.anchor.Remove(q)
	for _, tree := range f.optional {
		tree.Remove(q)
	}
	return removed
}

// Contains reports whether q is present.
func (f *Forest) Contains(q quadset.Quad) bool {
	return f.anchor.Contains(q)
}

// EnsureIndex materializes (if needed) and returns the OrderedSet sorted
// under perm. Calling it repeatedly with the same permutation is cheap:
// the tree is built once and kept in sync by Insert/Remove thereafter.
func (f *Forest) EnsureIndex(perm quadset.Permutation) *quadset.OrderedSet {
	if perm == f.anchorPerm {
		return f.anchor
	}
	if tree, ok := f.optional[perm]; ok {
		return tree
	}
	tree := quadset.NewFrom(perm, f.anchor.All())
	f.optional[perm] = tree
	return tree
}

// bestTreeFor picks the tree (anchor or a materialized optional one) that
// gives the longest usable range-scan prefix for pattern, without
// materializing a new tree. Ties prefer the anchor, then whichever
// optional tree happens to be materialized first in iteration order,
// which is acceptable since Go's map order is already non-deterministic
// and all materialized candidates with an equal prefix length perform
// identically.
func (f *Forest) bestTreeFor(pattern quadset.Pattern) *quadset.OrderedSet {
	best := f.anchor
	bestLen := quadset.BoundPrefixLen(f.anchorPerm, pattern)

	for perm, tree := range f.optional {
		if l := quadset.BoundPrefixLen(perm, pattern); l > bestLen {
			best, bestLen = tree, l
		}
	}
	return best
}

// bestPermutationIgnoringMaterialization picks the permutation with the
// longest usable prefix for pattern regardless of whether it is already
// materialized, for callers (EnsureIndexFor) that are willing to pay to
// build a new tree for a pattern that recurs often.
func bestPermutationIgnoringMaterialization(pattern quadset.Pattern) quadset.Permutation {
	best := quadset.SPOG
	bestLen := -1
	for _, perm := range quadset.AllPermutations() {
		if l := quadset.BoundPrefixLen(perm, pattern); l > bestLen {
			best, bestLen = perm, l
		}
	}
	return best
}

// EnsureIndexFor materializes whichever permutation would best answer
// pattern, even if no tree currently covers it, and returns it. Use this
// when a pattern shape is known to recur (e.g. a hot query path); use
// Match/MatchCount/DeleteMatches directly otherwise, since they are
// already happy to use a partial prefix or a full scan without
// materializing anything new.
func (f *Forest) EnsureIndexFor(pattern quadset.Pattern) *quadset.OrderedSet {
	return f.EnsureIndex(bestPermutationIgnoringMaterialization(pattern))
}

// Match calls yield for every quad satisfying pattern, routed through
// whichever already-materialized tree gives the narrowest scan, without
// materializing a new one.
func (f *Forest) Match(pattern quadset.Pattern, yield func(quadset.Quad) bool) {
	f.bestTreeFor(pattern).Match(pattern, yield)
}

// MatchCount returns the number of quads satisfying pattern.
func (f *Forest) MatchCount(pattern quadset.Pattern) int {
	return f.bestTreeFor(pattern).MatchCount(pattern)
}

// Has reports whether any quad satisfies pattern. A pattern with no
// satisfiable bound terms (caller-level unsatisfiability, e.g. a bound
// term the interner never assigned an id to) should never reach here;
// by the time a Pattern exists, PatternUnsatisfiable has already been
// absorbed by the caller.
func (f *Forest) Has(pattern quadset.Pattern) bool {
	found := false
	f.Match(pattern, func(quadset.Quad) bool {
		found = true
		return false
	})
	return found
}

// DeleteMatches removes every quad satisfying pattern, choosing between
// deleting matches individually and rebuilding the anchor wholesale from
// a single filtering pass, following the same ratio heuristic as the
// structure this package is modeled on: rebuild once the match set is no
// longer small relative to the forest's size and materialized-tree count.
// Rebuilding also drops every materialized optional tree, letting them
// re-materialize lazily (and more cheaply, from the smaller anchor) on
// the next query that needs them.
func (f *Forest) DeleteMatches(pattern quadset.Pattern) {
	matchCount := f.MatchCount(pattern)
	if matchCount == 0 {
		return
	}

	ratioThreshold := 2 + f.MaterializedCount()
	if matchCount < f.Size()/ratioThreshold {
		var toDelete []quadset.Quad
		f.Match(pattern, func(q quadset.Quad) bool {
			toDelete = append(toDelete, q)
			return true
		})
		for _, q := range toDelete {
			f.Remove(q)
		}
		return
	}

	f.optional = make(map[quadset.Permutation]*quadset.OrderedSet)
	f.anchor = f.anchor.RebuildFiltered(func(q quadset.Quad) bool {
		return !matchesPattern(pattern, q)
	})
}

// matchesPattern reports whether q satisfies pattern.
func matchesPattern(pattern quadset.Pattern, q quadset.Quad) bool {
	for pos := 0; pos < 4; pos++ {
		if pattern.Bound[pos] && q[pos] != pattern.Values[pos] {
			return false
		}
	}
	return true
}
