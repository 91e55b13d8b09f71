package nquads

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rdfkit/quadforest/pkg/rdf"
)

// Reader adapts an io.Reader of N-Quads text into a store.Stream: it scans
// one statement per line and pushes parsed quads on a channel, closing the
// channel when the underlying reader is exhausted or a parse error occurs.
// Prefix/base directives accumulate across lines: every per-line Parser
// shares the Reader's prefix map and starts from its current base IRI.
type Reader struct {
	scanner  *bufio.Scanner
	prefixes map[string]string
	baseIRI  string
	quads    chan *rdf.Quad
	err      error
}

// NewReader wraps r as a line-at-a-time N-Quads stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner:  bufio.NewScanner(r),
		prefixes: make(map[string]string),
		quads:    make(chan *rdf.Quad, 64),
	}
}

// Quads implements store.Stream.
func (r *Reader) Quads() <-chan *rdf.Quad {
	go r.run()
	return r.quads
}

// Err implements store.Stream. Valid only after the channel returned by
// Quads has been drained and closed.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) run() {
	defer close(r.quads)

	lineNo := 0
	for r.scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := &Parser{
			input:    line,
			pos:      0,
			length:   len(line),
			prefixes: r.prefixes,
			baseIRI:  r.baseIRI,
		}

		if p.matchKeyword("@prefix") || p.matchKeyword("PREFIX") {
			if err := p.parsePrefix(); err != nil {
				r.err = fmt.Errorf("line %d: %w", lineNo, err)
				return
			}
			continue
		}
		if p.matchKeyword("@base") || p.matchKeyword("BASE") {
			if err := p.parseBase(); err != nil {
				r.err = fmt.Errorf("line %d: %w", lineNo, err)
				return
			}
			r.baseIRI = p.baseIRI
			continue
		}

		quad, err := p.parseQuad()
		if err != nil {
			r.err = fmt.Errorf("line %d: %w", lineNo, err)
			return
		}
		r.baseIRI = p.baseIRI
		if quad != nil {
			r.quads <- quad
		}
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("reading input: %w", err)
	}
}
