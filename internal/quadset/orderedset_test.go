package quadset

import "testing"

func TestOrderedSet_InsertContainsRemove(t *testing.T) {
	s := New(SPOG)
	q := Quad{1, 2, 3, 4}

	if s.Contains(q) {
		t.Fatal("unexpected contains on empty set")
	}
	if !s.Insert(q) {
		t.Fatal("expected fresh insert to report true")
	}
	if s.Insert(q) {
		t.Error("expected duplicate insert to report false")
	}
	if !s.Contains(q) {
		t.Error("expected set to contain inserted quad")
	}
	if !s.Remove(q) {
		t.Fatal("expected remove of present quad to report true")
	}
	if s.Remove(q) {
		t.Error("expected remove of absent quad to report false")
	}
	if s.Contains(q) {
		t.Error("expected quad gone after remove")
	}
}

func TestOrderedSet_SortedOrder(t *testing.T) {
	s := NewFrom(SPOG, []Quad{
		{3, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 0, 0, 0},
	})
	all := s.All()
	for i := 1; i < len(all); i++ {
		if all[i-1][0] > all[i][0] {
			t.Errorf("not sorted: %v", all)
		}
	}
}

func TestOrderedSet_MatchPrefixRange(t *testing.T) {
	s := NewFrom(SPOG, []Quad{
		{1, 10, 100, 1000},
		{1, 11, 101, 1001},
		{2, 10, 100, 1000},
	})

	pattern := Pattern{Values: [4]uint32{1, 0, 0, 0}, Bound: [4]bool{true, false, false, false}}
	var got []Quad
	s.Match(pattern, func(q Quad) bool {
		got = append(got, q)
		return true
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for subject=1, got %d: %v", len(got), got)
	}
}

func TestOrderedSet_MatchEmptyPatternReturnsAll(t *testing.T) {
	s := NewFrom(SPOG, []Quad{{1, 2, 3, 4}, {5, 6, 7, 8}})
	count := s.MatchCount(Pattern{})
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}

func TestOrderedSet_MatchNonPrefixBoundPosition(t *testing.T) {
	s := NewFrom(SPOG, []Quad{
		{1, 10, 100, 1000},
		{1, 11, 100, 1000},
		{2, 10, 100, 1000},
	})
	// object bound but subject/predicate are not: no usable prefix under
	// SPOG, falls back to a full scan with a post-filter.
	pattern := Pattern{Values: [4]uint32{0, 0, 100, 0}, Bound: [4]bool{false, false, true, false}}
	count := s.MatchCount(pattern)
	if count != 3 {
		t.Errorf("expected 3 matches, got %d", count)
	}
}

func TestOrderedSet_RebuildFiltered(t *testing.T) {
	s := NewFrom(SPOG, []Quad{{1, 0, 0, 0}, {2, 0, 0, 0}, {3, 0, 0, 0}})
	out := s.RebuildFiltered(func(q Quad) bool { return q[0] != 2 })
	if out.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", out.Len())
	}
	if out.Contains(Quad{2, 0, 0, 0}) {
		t.Error("expected filtered quad to be gone")
	}
}

func TestOrderedSet_Clone_Independent(t *testing.T) {
	s := NewFrom(SPOG, []Quad{{1, 0, 0, 0}})
	clone := s.Clone()
	clone.Insert(Quad{2, 0, 0, 0})
	if s.Len() != 1 {
		t.Errorf("expected original unaffected by clone mutation, got len %d", s.Len())
	}
}
