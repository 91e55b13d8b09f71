package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rdfkit/quadforest/internal/nquads"
	"github.com/rdfkit/quadforest/pkg/dataset"
	"github.com/rdfkit/quadforest/pkg/rdf"
	"github.com/rdfkit/quadforest/pkg/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: quadforest <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  demo          - Run a demo with sample data")
		fmt.Println("  load <file>   - Bulk-load an N-Quads file and print its size")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		runDemo()
	case "load":
		if len(os.Args) < 3 {
			fmt.Println("Usage: quadforest load <file.nq>")
			os.Exit(1)
		}
		runLoad(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runDemo() {
	fmt.Println("=== quadforest demo ===")
	fmt.Println()

	factory := rdf.NewStandardFactory()
	s := store.New(factory, dataset.SharedForest)

	alice := rdf.NewNamedNode("http://example.org/alice")
	bob := rdf.NewNamedNode("http://example.org/bob")
	carol := rdf.NewNamedNode("http://example.org/carol")

	knows := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/knows")
	name := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/name")
	age := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/age")

	quads := []*rdf.Quad{
		factory.Quad(alice, name, rdf.NewLiteral("Alice"), nil),
		factory.Quad(alice, age, rdf.NewIntegerLiteral(30), nil),
		factory.Quad(alice, knows, bob, nil),
		factory.Quad(bob, name, rdf.NewLiteral("Bob"), nil),
		factory.Quad(bob, age, rdf.NewIntegerLiteral(25), nil),
		factory.Quad(bob, knows, carol, nil),
		factory.Quad(carol, name, rdf.NewLiteral("Carol"), nil),
		factory.Quad(carol, age, rdf.NewIntegerLiteral(28), nil),
	}

	fmt.Println("Inserting sample quads...")
	if err := s.ImportStream(store.NewSliceStream(quads)); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	fmt.Printf("  total quads: %d\n", s.Data().Size())
	fmt.Println()

	fmt.Println("Who does alice know?")
	for _, q := range s.Data().Match(alice, knows, nil, nil).Quads() {
		fmt.Printf("  alice knows %s\n", q.Object)
	}
	fmt.Println()

	fmt.Println("Removing everything about bob...")
	obs := s.RemoveMatches(bob, nil, nil, nil)
	<-obs.Done()
	if err := obs.Err(); err != nil {
		log.Fatalf("remove failed: %v", err)
	}
	fmt.Printf("  remaining quads: %d\n", s.Data().Size())
}

func runLoad(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	factory := rdf.NewStandardFactory()
	s := store.New(factory, dataset.SharedForest)

	reader := nquads.NewReader(f)
	if err := s.ImportStream(reader); err != nil {
		log.Fatalf("loading %s: %v", path, err)
	}

	fmt.Printf("loaded %d quads from %s\n", s.Data().Size(), path)
}
