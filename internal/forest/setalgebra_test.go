package forest

import (
	"testing"

	"github.com/rdfkit/quadforest/internal/quadset"
)

func TestUnion_TriviallyMergeable(t *testing.T) {
	a := New()
	a.Insert(quadset.Quad{1, 0, 0, 0})
	b := New()
	b.Insert(quadset.Quad{2, 0, 0, 0})

	out := Union(a, b)
	if out.Size() != 2 {
		t.Fatalf("expected 2, got %d", out.Size())
	}
}

func TestUnion_SlowPath(t *testing.T) {
	a := NewWithAnchor(quadset.SPOG)
	a.Insert(quadset.Quad{1, 0, 0, 0})
	b := NewWithAnchor(quadset.GSPO)
	b.Insert(quadset.Quad{2, 0, 0, 0})

	out := Union(a, b)
	if out.Size() != 2 {
		t.Fatalf("expected 2, got %d", out.Size())
	}
}

func TestIntersection(t *testing.T) {
	a := New()
	a.Insert(quadset.Quad{1, 0, 0, 0})
	a.Insert(quadset.Quad{2, 0, 0, 0})
	b := New()
	b.Insert(quadset.Quad{2, 0, 0, 0})
	b.Insert(quadset.Quad{3, 0, 0, 0})

	out := Intersection(a, b)
	if out.Size() != 1 || !out.Contains(quadset.Quad{2, 0, 0, 0}) {
		t.Errorf("expected {2}, got %v", out.anchor.All())
	}
}

func TestDifference(t *testing.T) {
	a := New()
	a.Insert(quadset.Quad{1, 0, 0, 0})
	a.Insert(quadset.Quad{2, 0, 0, 0})
	b := New()
	b.Insert(quadset.Quad{2, 0, 0, 0})

	out := Difference(a, b)
	if out.Size() != 1 || !out.Contains(quadset.Quad{1, 0, 0, 0}) {
		t.Errorf("expected {1}, got %v", out.anchor.All())
	}
}

func TestContains(t *testing.T) {
	a := New()
	a.Insert(quadset.Quad{1, 0, 0, 0})
	a.Insert(quadset.Quad{2, 0, 0, 0})
	b := New()
	b.Insert(quadset.Quad{1, 0, 0, 0})

	if !Contains(a, b) {
		t.Error("expected a to contain b")
	}
	if Contains(b, a) {
		t.Error("expected b to not contain a")
	}
}

func TestEquals(t *testing.T) {
	a := New()
	a.Insert(quadset.Quad{1, 0, 0, 0})
	b := NewWithAnchor(quadset.SPOG)
	b.Insert(quadset.Quad{1, 0, 0, 0})

	if !Equals(a, b) {
		t.Error("expected forests with same quads to be equal regardless of anchor permutation")
	}
}
