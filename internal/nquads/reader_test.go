package nquads

import (
	"strings"
	"testing"
)

func TestReader_Quads(t *testing.T) {
	input := `# a comment
<http://example.org/s1> <http://example.org/p1> "literal1" .
PREFIX ex: <http://example.org/>
ex:s2 ex:p2 ex:o2 .
<http://example.org/s3> <http://example.org/p3> "hello"@en <http://example.org/g> .
`
	r := NewReader(strings.NewReader(input))

	var got []string
	for q := range r.Quads() {
		got = append(got, q.String())
	}

	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 quads, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[1], "http://example.org/s2") {
		t.Errorf("expected prefix expansion in %q", got[1])
	}
}

func TestReader_ErrPropagates(t *testing.T) {
	input := `<http://example.org/s> <http://example.org/p> not-a-valid-term .
`
	r := NewReader(strings.NewReader(input))

	count := 0
	for range r.Quads() {
		count++
	}

	if count != 0 {
		t.Errorf("expected no quads before error, got %d", count)
	}
	if r.Err() == nil {
		t.Error("expected error for malformed statement")
	}
}

func TestReader_SkipsBlankLinesAndComments(t *testing.T) {
	input := "\n# comment only\n\n<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"
	r := NewReader(strings.NewReader(input))

	var got []string
	for q := range r.Quads() {
		got = append(got, q.String())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(got))
	}
}

func TestReader_BlankNodesAndNumericLiterals(t *testing.T) {
	input := `_:b1 <http://example.org/p> 42 .
<http://example.org/s> <http://example.org/p> _:b2 _:graph .
<http://example.org/s2> <http://example.org/p2> 3.14 .
`
	r := NewReader(strings.NewReader(input))

	var got []string
	for q := range r.Quads() {
		got = append(got, q.String())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 quads, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], `"42"`) {
		t.Errorf("expected integer literal in %q", got[0])
	}
	if !strings.Contains(got[1], "_:b2") || !strings.Contains(got[1], "_:graph") {
		t.Errorf("expected blank node object and graph in %q", got[1])
	}
	if !strings.Contains(got[2], `"3.14"`) {
		t.Errorf("expected decimal literal in %q", got[2])
	}
}

func TestReader_BaseDirective(t *testing.T) {
	input := `BASE <http://example.org/>
<http://example.org/s> <http://example.org/p> <http://example.org/o> .
`
	r := NewReader(strings.NewReader(input))

	var got []string
	for q := range r.Quads() {
		got = append(got, q.String())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(got))
	}
}
