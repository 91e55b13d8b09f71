package quadset

// MergeUnion returns the union of a and b as a single sorted merge pass.
// a and b must share the same Permutation; callers (the forest's fast
// path) are responsible for checking that before calling.
func MergeUnion(a, b *OrderedSet) *OrderedSet {
	out := New(a.perm)
	out.keys = make([][4]uint32, 0, len(a.keys)+len(b.keys))
	i, j := 0, 0
	for i < len(a.keys) && j < len(b.keys) {
		switch compareKeys(a.keys[i], b.keys[j]) {
		case -1:
			out.keys = append(out.keys, a.keys[i])
			i++
		case 1:
			out.keys = append(out.keys, b.keys[j])
			j++
		default:
			out.keys = append(out.keys, a.keys[i])
			i++
			j++
		}
	}
	out.keys = append(out.keys, a.keys[i:]...)
	out.keys = append(out.keys, b.keys[j:]...)
	return out
}

// MergeIntersection returns the intersection of a and b. Same permutation
// requirement as MergeUnion.
func MergeIntersection(a, b *OrderedSet) *OrderedSet {
	out := New(a.perm)
	i, j := 0, 0
	for i < len(a.keys) && j < len(b.keys) {
		switch compareKeys(a.keys[i], b.keys[j]) {
		case -1:
			i++
		case 1:
			j++
		default:
			out.keys = append(out.keys, a.keys[i])
			i++
			j++
		}
	}
	return out
}

// MergeDifference returns a minus b. Same permutation requirement as
// MergeUnion.
func MergeDifference(a, b *OrderedSet) *OrderedSet {
	out := New(a.perm)
	i, j := 0, 0
	for i < len(a.keys) {
		if j >= len(b.keys) {
			out.keys = append(out.keys, a.keys[i:]...)
			break
		}
		switch compareKeys(a.keys[i], b.keys[j]) {
		case -1:
			out.keys = append(out.keys, a.keys[i])
			i++
		case 1:
			j++
		default:
			i++
			j++
		}
	}
	return out
}

// Equal reports whether a and b hold the same quads, regardless of
// permutation (it compares decoded contents, not raw key bytes).
func Equal(a, b *OrderedSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.perm == b.perm {
		for i := range a.keys {
			if compareKeys(a.keys[i], b.keys[i]) != 0 {
				return false
			}
		}
		return true
	}
	for _, q := range a.All() {
		if !b.Contains(q) {
			return false
		}
	}
	return true
}
