package rdf

// Factory produces and normalizes terms and quads at the boundary between
// application code and the interned identifier space used internally by
// the interner, forest and facade packages. It is the single place that
// decides what a term's canonical dictionary key is.
type Factory interface {
	// DefaultGraph returns the term used for the unnamed graph.
	DefaultGraph() Term

	// NamedNode constructs a named node term for the given IRI.
	NamedNode(iri string) Term

	// FromTerm returns a Factory-owned representation of an externally
	// constructed term, normalizing it if necessary. Implementations that
	// don't need normalization may return the term unchanged.
	FromTerm(term Term) Term

	// Quad builds a quad from four terms, defaulting a nil graph to
	// DefaultGraph().
	Quad(subject, predicate, object, graph Term) *Quad

	// Key returns the canonical dictionary key for a term. Two terms that
	// are Equals() must produce the same key, and two terms that produce
	// the same key must be Equals().
	Key(term Term) string
}

// StandardFactory is the default Factory: it performs no normalization
// beyond what the term constructors already guarantee, and uses each
// term's String() form as its dictionary key, mirroring the
// string-keyed dictionary strategy used throughout the RDF/JS style
// tooling this package's term model was adapted from.
type StandardFactory struct{}

// NewStandardFactory returns the default Factory implementation.
func NewStandardFactory() *StandardFactory {
	return &StandardFactory{}
}

func (f *StandardFactory) DefaultGraph() Term {
	return NewDefaultGraph()
}

func (f *StandardFactory) NamedNode(iri string) Term {
	return NewNamedNode(iri)
}

func (f *StandardFactory) FromTerm(term Term) Term {
	return term
}

func (f *StandardFactory) Quad(subject, predicate, object, graph Term) *Quad {
	if graph == nil {
		graph = f.DefaultGraph()
	}
	return NewQuad(subject, predicate, object, graph)
}

func (f *StandardFactory) Key(term Term) string {
	if term == nil {
		return ""
	}
	return term.String()
}
