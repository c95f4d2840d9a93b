// Package pkg provides the core libraries for Object Playground graph inspection.
//
// # Overview
//
// Object Playground loads declarative object models, materializes them into a
// prototype-based runtime object graph, and walks that graph from a root
// object to produce an inspectable reference graph. The pkg directory is
// organized into four main areas:
//
//  1. [dyn] - Runtime object model (values, records, callables, realms)
//  2. [inspect] - Display semantics (names, type labels, fields, sub-nodes)
//  3. [fixture] + [graph] - Model loading and graph construction
//  4. [pipeline] - Orchestration (load → materialize → walk)
//
// # Architecture
//
// The typical data flow through Object Playground:
//
//	Model file (TOML/YAML/JSON)
//	         ↓
//	    [fixture] package (parse + validate + materialize)
//	         ↓
//	    [dyn] package (runtime objects, prototype links)
//	         ↓
//	    [inspect] package (per-value display semantics)
//	         ↓
//	    [graph] package (identity-aware walk)
//	         ↓
//	    JSON / DOT / text output
//
// # Quick Start
//
// Build the reference graph for a model file:
//
//	import (
//	    "context"
//	    "github.com/davispeixoto/object-playground/pkg/pipeline"
//	)
//
//	result, err := pipeline.Run(context.Background(), pipeline.Options{
//	    Path: "model.toml",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d nodes, %d edges\n", result.Stats.NodeCount, result.Stats.EdgeCount)
//
// # Main Packages
//
// [dyn] - The runtime object model. Values are undefined, null, booleans,
// numbers, strings, or references to records; records hold ordered own
// fields, an optional supertype link, and (for callables) a link target.
// Realms wire the built-in Object/Function callables and their prototype
// records.
//
// [inspect] - The display layer. A Node wraps one value together with the
// name it was reached under and resolves its display name, type label,
// field list, supertype entry, and enumerable sub-nodes. Conversion of
// arbitrary values to display strings lives here too.
//
// [fixture] - Declarative model files. Loaders parse TOML, YAML, and JSON
// models, Validate checks names and references, and Materialize builds the
// dyn object graph a model describes.
//
// [graph] - Reference graphs. The Builder walks a root node depth-first,
// de-duplicating by value identity so cycles and shared targets become
// single nodes, and the Graph serializes to a JSON document, Graphviz DOT
// text, or a plain text listing.
//
// [pipeline] - The complete load → materialize → walk pipeline used by both
// the CLI and the HTTP API. Ensures consistent limits, logging, and
// observability hooks across all entry points.
//
// [errors] - Structured errors with stable codes. User-facing failures
// carry a Code (INVALID_INPUT, UNKNOWN_REF, ...) that the API maps to HTTP
// status codes and UserMessage renders without internal detail.
//
// [observability] - Load and build hook interfaces with no-op defaults and
// a package-level registry, fired by the pipeline and the graph builder.
//
// [buildinfo] - Version metadata injected via ldflags.
//
// # Common Workflows
//
// Run the stages manually instead of through the pipeline:
//
//	model, _ := fixture.Load("model.toml")
//	_, values, _ := fixture.Materialize(model)
//	name, root, _ := fixture.RootValue(model, values)
//
//	b := graph.NewBuilder(graph.Options{})
//	g, _ := b.Build(context.Background(), inspect.New(name, root))
//
// Inspect a single value without building a graph:
//
//	node := inspect.New("origin", values["origin"])
//	fmt.Println(node.Name(), node.Type(), node.Fields())
//
// Export DOT for Graphviz:
//
//	dot := graph.ToDOT(g, graph.DOTOptions{RankDir: "LR"})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/inspect/...   # Specific package
//	go test -run Example        # Examples only
//
// [dyn]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/dyn
// [inspect]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/inspect
// [fixture]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/fixture
// [graph]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/errors
// [observability]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/davispeixoto/object-playground/pkg/buildinfo
package pkg
