package forest

import "github.com/rdfkit/quadforest/internal/quadset"

// TriviallyMergeable reports whether a and b's anchor trees share the
// same permutation, which is the precondition for the fast path below:
// a single sorted-merge pass for Union/Intersection/Difference, and a
// direct anchor-to-anchor membership check for Contains.
func TriviallyMergeable(a, b *Forest) bool {
	return a.anchorPerm == b.anchorPerm
}

// Union returns a new Forest holding every quad in a or b. When a and b
// are trivially mergeable this is a single sorted-merge pass over their
// anchors; otherwise it falls back to copying a and then probing b's
// quads one at a time against a.
func Union(a, b *Forest) *Forest {
	out := NewWithAnchor(a.anchorPerm)
	if TriviallyMergeable(a, b) {
		out.anchor = quadset.MergeUnion(a.anchor, b.anchor)
		return out
	}
	for _, q := range a.anchor.All() {
		out.Insert(q)
	}
	for _, q := range b.anchor.All() {
		out.Insert(q)
	}
	return out
}

// Intersection returns a new Forest holding every quad present in both a
// and b.
func Intersection(a, b *Forest) *Forest {
	out := NewWithAnchor(a.anchorPerm)
	if TriviallyMergeable(a, b) {
		out.anchor = quadset.MergeIntersection(a.anchor, b.anchor)
		return out
	}
	for _, q := range a.anchor.All() {
		if b.Contains(q) {
			out.Insert(q)
		}
	}
	return out
}

// Difference returns a new Forest holding every quad in a that is not in
// b.
func Difference(a, b *Forest) *Forest {
	out := NewWithAnchor(a.anchorPerm)
	if TriviallyMergeable(a, b) {
		out.anchor = quadset.MergeDifference(a.anchor, b.anchor)
		return out
	}
	for _, q := range a.anchor.All() {
		if !b.Contains(q) {
			out.Insert(q)
		}
	}
	return out
}

// Contains reports whether every quad in other is also in f.
func Contains(f, other *Forest) bool {
	if TriviallyMergeable(f, other) {
		return isSuperset(f.anchor, other.anchor)
	}
	for _, q := range other.anchor.All() {
		if !f.Contains(q) {
			return false
		}
	}
	return true
}

func isSuperset(a, b *quadset.OrderedSet) bool {
	for _, q := range b.All() {
		if !a.Contains(q) {
			return false
		}
	}
	return true
}

// Equals reports whether f and other hold exactly the same quads.
func Equals(f, other *Forest) bool {
	return quadset.Equal(f.anchor, other.anchor)
}
