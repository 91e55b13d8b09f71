package dataset

// Variant captures the two independent construction-time choices a
// Dataset facade can be built with: whether deriving a new dataset from
// this one (Match, Filter, Map) clones a private subset of the
// interner or keeps sharing the parent's, and whether a freshly derived
// dataset starts as a lightweight cached identifier sequence or builds
// its forest immediately. Both choices are fixed at construction time,
// not branched on at call time, so a single facade type can implement
// every combination without runtime type switches.
type Variant struct {
	Isolated     bool
	PreferIDList bool
}

// Shared datasets derive views that keep referencing the parent's
// interner: cheap to derive, but the parent and its derived views must
// not be used from different goroutines without synchronization, and
// freeing the parent's interner is not possible while a shared view
// still references it.
var (
	// SharedIDList derives cheaply: it keeps the parent interner and
	// starts as a cached identifier sequence, deferring forest
	// construction until a pattern operation actually needs one.
	SharedIDList = Variant{Isolated: false, PreferIDList: true}

	// SharedForest keeps the parent interner but builds its forest
	// immediately, trading derive-time cost for faster first query.
	SharedForest = Variant{Isolated: false, PreferIDList: false}

	// IsolatedIDList clones a private subset of the parent's interner
	// (via Interner.CloneSubset) so the derived dataset can outlive or
	// diverge from its parent, and starts as a cached identifier
	// sequence.
	IsolatedIDList = Variant{Isolated: true, PreferIDList: true}

	// IsolatedForest clones a private interner subset and builds its
	// forest immediately.
	IsolatedForest = Variant{Isolated: true, PreferIDList: false}
)
