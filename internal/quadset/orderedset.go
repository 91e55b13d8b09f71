package quadset

import "sort"

// Pattern is a partially-bound quad to match against an OrderedSet:
// Bound[pos] is false for an unbound ("any") position.
type Pattern struct {
	Values [4]uint32
	Bound  [4]bool
}

// OrderedSet is a single index: a set of identifier quads sorted under
// one Permutation, held as a flat sorted slice with binary-search lookup.
// No third-party ordered-set or B-tree library appears anywhere in this
// module's reference material, so this plays the role the original
// quad-forest's BTreeSet<Block<u32>> played, using the idiomatic Go
// substitute of a sorted slice plus sort.Search.
type OrderedSet struct {
	perm Permutation
	keys [][4]uint32
}

// New creates an empty OrderedSet sorted under perm.
func New(perm Permutation) *OrderedSet {
	return &OrderedSet{perm: perm}
}

// NewFrom creates an OrderedSet sorted under perm and populated with
// quads, which need not be pre-sorted or de-duplicated.
func NewFrom(perm Permutation, quads []Quad) *OrderedSet {
	s := New(perm)
	for _, q := range quads {
		s.Insert(q)
	}
	return s
}

// Permutation reports which ordering this set is sorted under.
func (s *OrderedSet) Permutation() Permutation {
	return s.perm
}

// Len reports the number of quads held.
func (s *OrderedSet) Len() int {
	return len(s.keys)
}

func compareKeys(a, b [4]uint32) int {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (s *OrderedSet) search(key [4]uint32) (int, bool) {
	lo, hi := 0, len(s.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		switch compareKeys(s.keys[mid], key) {
		case -1:
			lo = mid + 1
		case 1:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// Contains reports whether q is present.
func (s *OrderedSet) Contains(q Quad) bool {
	_, found := s.search(s.perm.key(q))
	return found
}

// Insert adds q, returning true if it was newly added (false if it was
// already present).
func (s *OrderedSet) Insert(q Quad) bool {
	key := s.perm.key(q)
	idx, found := s.search(key)
	if found {
		return false
	}
	s.keys = append(s.keys, [4]uint32{})
	copy(s.keys[idx+1:], s.keys[idx:])
	s.keys[idx] = key
	return true
}

// Remove deletes q, returning true if it was present.
func (s *OrderedSet) Remove(q Quad) bool {
	idx, found := s.search(s.perm.key(q))
	if !found {
		return false
	}
	copy(s.keys[idx:], s.keys[idx+1:])
	s.keys = s.keys[:len(s.keys)-1]
	return true
}

// BoundPrefixLen returns how many leading positions of perm's order are
// bound in pattern. A pattern's bound positions form a usable prefix only
// while they match the permutation's order without gaps; it stops at the
// first unbound position. The forest's permutation selection uses this to
// pick the materialized (or cheapest to materialize) tree whose order
// gives the longest usable range-scan prefix for a given pattern.
func BoundPrefixLen(perm Permutation, pattern Pattern) int {
	order := perm.Order()
	n := 0
	for _, pos := range order {
		if !pattern.Bound[pos] {
			break
		}
		n++
	}
	return n
}

func (s *OrderedSet) boundPrefixLen(pattern Pattern) int {
	return BoundPrefixLen(s.perm, pattern)
}

// prefixRange builds the inclusive low/high key bounds of the contiguous
// range that contains every quad matching the bound prefix of pattern.
func (s *OrderedSet) prefixRange(pattern Pattern, prefixLen int) (lo, hi [4]uint32) {
	order := s.perm.Order()
	for i := 0; i < prefixLen; i++ {
		lo[i] = pattern.Values[order[i]]
		hi[i] = pattern.Values[order[i]]
	}
	for i := prefixLen; i < 4; i++ {
		hi[i] = ^uint32(0)
	}
	return lo, hi
}

// Range returns the half-open index bounds [start, end) of the
// contiguous slice of s.keys that can possibly match pattern, by
// restricting to the longest usable bound prefix. Positions of pattern
// beyond the usable prefix must still be checked by the caller against
// each candidate (see Match).
func (s *OrderedSet) Range(pattern Pattern) (start, end int) {
	prefixLen := s.boundPrefixLen(pattern)
	if prefixLen == 0 {
		return 0, len(s.keys)
	}
	lo, hi := s.prefixRange(pattern, prefixLen)
	start, _ = s.search(lo)
	end = sort.Search(len(s.keys), func(i int) bool {
		return compareKeys(s.keys[i], hi) > 0
	})
	return start, end
}

// Match calls yield for every quad satisfying pattern, in this set's sort
// order, stopping early if yield returns false.
func (s *OrderedSet) Match(pattern Pattern, yield func(Quad) bool) {
	start, end := s.Range(pattern)
	for i := start; i < end; i++ {
		q := s.perm.unkey(s.keys[i])
		if !matches(q, pattern) {
			continue
		}
		if !yield(q) {
			return
		}
	}
}

// MatchCount returns the number of quads satisfying pattern, without
// allocating a slice of results.
func (s *OrderedSet) MatchCount(pattern Pattern) int {
	count := 0
	s.Match(pattern, func(Quad) bool {
		count++
		return true
	})
	return count
}

func matches(q Quad, pattern Pattern) bool {
	for pos := 0; pos < 4; pos++ {
		if pattern.Bound[pos] && q[pos] != pattern.Values[pos] {
			return false
		}
	}
	return true
}

// All returns every quad in this set's sort order.
func (s *OrderedSet) All() []Quad {
	out := make([]Quad, len(s.keys))
	for i, key := range s.keys {
		out[i] = s.perm.unkey(key)
	}
	return out
}

// Clone returns a deep copy of this set.
func (s *OrderedSet) Clone() *OrderedSet {
	out := &OrderedSet{perm: s.perm, keys: make([][4]uint32, len(s.keys))}
	copy(out.keys, s.keys)
	return out
}

// RebuildFiltered returns a new OrderedSet under the same permutation,
// containing every quad in s for which keep returns true. Used by the
// forest's rebuild strategy for DeleteMatches when deleting individually
// would touch a large fraction of the set.
func (s *OrderedSet) RebuildFiltered(keep func(Quad) bool) *OrderedSet {
	out := New(s.perm)
	out.keys = make([][4]uint32, 0, len(s.keys))
	for _, key := range s.keys {
		q := s.perm.unkey(key)
		if keep(q) {
			out.keys = append(out.keys, key)
		}
	}
	return out
}
