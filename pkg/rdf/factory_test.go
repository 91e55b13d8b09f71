package rdf

import "testing"

func TestStandardFactory_KeyStability(t *testing.T) {
	f := NewStandardFactory()

	a := f.NamedNode("http://example.org/s")
	b := f.NamedNode("http://example.org/s")
	c := f.NamedNode("http://example.org/other")

	if f.Key(a) != f.Key(b) {
		t.Errorf("expected equal terms to produce equal keys: %q vs %q", f.Key(a), f.Key(b))
	}
	if f.Key(a) == f.Key(c) {
		t.Errorf("expected different terms to produce different keys")
	}
	if !a.Equals(b) {
		t.Error("expected a and b to be Equals()")
	}
}

func TestStandardFactory_DefaultGraphKey(t *testing.T) {
	f := NewStandardFactory()
	if f.Key(f.DefaultGraph()) != "DEFAULT" {
		t.Errorf("expected DEFAULT key, got %q", f.Key(f.DefaultGraph()))
	}
}

func TestStandardFactory_Quad_NilGraphDefaults(t *testing.T) {
	f := NewStandardFactory()
	s := f.NamedNode("http://example.org/s")
	p := f.NamedNode("http://example.org/p")
	o := f.NamedNode("http://example.org/o")

	q := f.Quad(s, p, o, nil)
	if !q.Graph.Equals(f.DefaultGraph()) {
		t.Errorf("expected nil graph to default to DefaultGraph, got %v", q.Graph)
	}
}

func TestStandardFactory_DistinctKeyShapesAcrossTermKinds(t *testing.T) {
	f := NewStandardFactory()
	named := f.NamedNode("x")
	blank := NewBlankNode("x")
	lit := NewLiteral("x")

	keys := map[string]bool{
		f.Key(named): true,
		f.Key(blank): true,
		f.Key(lit):   true,
	}
	if len(keys) != 3 {
		t.Errorf("expected distinct keys across term kinds sharing value %q, got %v", "x", keys)
	}
}
