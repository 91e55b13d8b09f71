package forest

import (
	"testing"

	"github.com/rdfkit/quadforest/internal/quadset"
)

func pat(s, p, o, g uint32, bs, bp, bo, bg bool) quadset.Pattern {
	return quadset.Pattern{
		Values: [4]uint32{s, p, o, g},
		Bound:  [4]bool{bs, bp, bo, bg},
	}
}

func TestForest_InsertContainsRemove(t *testing.T) {
	f := New()
	q := quadset.Quad{1, 2, 3, 4}

	if f.Contains(q) {
		t.Fatal("unexpected contains on empty forest")
	}
	f.Insert(q)
	if !f.Contains(q) {
		t.Error("expected forest to contain inserted quad")
	}
	if f.Size() != 1 {
		t.Errorf("expected size 1, got %d", f.Size())
	}
	f.Remove(q)
	if f.Contains(q) {
		t.Error("expected quad gone after remove")
	}
}

func TestForest_EnsureIndexKeptInSync(t *testing.T) {
	f := New()
	f.Insert(quadset.Quad{1, 2, 3, 4})

	spog := f.EnsureIndex(quadset.SPOG)
	if spog.Len() != 1 {
		t.Fatalf("expected materialized tree to carry existing quads, got %d", spog.Len())
	}

	f.Insert(quadset.Quad{5, 6, 7, 8})
	if spog.Len() != 2 {
		t.Errorf("expected materialized tree to stay in sync on insert, got %d", spog.Len())
	}

	f.Remove(quadset.Quad{1, 2, 3, 4})
	if spog.Len() != 1 {
		t.Errorf("expected materialized tree to stay in sync on remove, got %d", spog.Len())
	}
	if f.MaterializedCount() != 1 {
		t.Errorf("expected 1 materialized optional tree, got %d", f.MaterializedCount())
	}
}

func TestForest_Match(t *testing.T) {
	f := New()
	f.Insert(quadset.Quad{1, 10, 100, 1000})
	f.Insert(quadset.Quad{1, 11, 101, 1001})
	f.Insert(quadset.Quad{2, 10, 100, 1000})

	count := f.MatchCount(pat(1, 0, 0, 0, true, false, false, false))
	if count != 2 {
		t.Errorf("expected 2 matches for subject=1, got %d", count)
	}
}

func TestForest_Has(t *testing.T) {
	f := New()
	f.Insert(quadset.Quad{1, 2, 3, 4})

	if !f.Has(pat(1, 0, 0, 0, true, false, false, false)) {
		t.Error("expected Has to find subject=1")
	}
	if f.Has(pat(999, 0, 0, 0, true, false, false, false)) {
		t.Error("expected Has to report false for absent subject")
	}
}

func TestForest_DeleteMatches_SmallSetDeletesIndividually(t *testing.T) {
	f := New()
	for i := uint32(0); i < 20; i++ {
		f.Insert(quadset.Quad{i, 0, 0, 0})
	}
	f.EnsureIndex(quadset.SPOG)

	f.DeleteMatches(pat(5, 0, 0, 0, true, false, false, false))

	if f.Contains(quadset.Quad{5, 0, 0, 0}) {
		t.Error("expected quad removed")
	}
	if f.Size() != 19 {
		t.Errorf("expected size 19, got %d", f.Size())
	}
	if f.MaterializedCount() != 1 {
		t.Errorf("expected optional tree to survive a small individual delete, got %d", f.MaterializedCount())
	}
}

func TestForest_DeleteMatches_LargeSetRebuilds(t *testing.T) {
	f := New()
	for i := uint32(0); i < 10; i++ {
		f.Insert(quadset.Quad{i, 0, 0, 0})
	}
	f.EnsureIndex(quadset.SPOG)

	// Unbound pattern matches everything: far above the ratio threshold,
	// must trigger the rebuild path and drop optional trees.
	f.DeleteMatches(quadset.Pattern{})

	if f.Size() != 0 {
		t.Errorf("expected empty forest after rebuild-delete-all, got size %d", f.Size())
	}
	if f.MaterializedCount() != 0 {
		t.Errorf("expected optional trees dropped after rebuild, got %d", f.MaterializedCount())
	}
}

func TestForest_DeleteMatches_NoMatchesIsNoop(t *testing.T) {
	f := New()
	f.Insert(quadset.Quad{1, 2, 3, 4})
	f.DeleteMatches(pat(999, 0, 0, 0, true, false, false, false))
	if f.Size() != 1 {
		t.Errorf("expected size unchanged, got %d", f.Size())
	}
}

func TestForest_EnsureIndexFor_PicksLongestPrefix(t *testing.T) {
	f := New()
	f.Insert(quadset.Quad{1, 2, 3, 4})

	tree := f.EnsureIndexFor(pat(0, 2, 0, 0, false, true, false, false))
	if tree.Permutation() != quadset.POGS {
		t.Errorf("expected POGS for predicate-bound pattern, got %s", tree.Permutation())
	}
}
