// Package graph builds and serializes object-reference graphs.
//
// This package turns the per-value descriptions produced by pkg/inspect into
// a whole-graph view: the Builder walks every value reachable from a root,
// and the serialization layer exports the result as JSON, Graphviz DOT, or a
// plain text listing.
//
// # Architecture
//
// The package sits between inspection and output:
//
//   - pkg/inspect.Node: per-value description (name, type, fields)
//   - [Graph], [Node], [Edge]: the assembled reference graph (this package)
//   - [Document]: canonical JSON wire format for files and API responses
//
// # Building
//
// A Builder walks sub-nodes recursively, collapsing revisited values onto
// the node created at first visit. Object graphs routinely contain cycles
// (a constructor references its prototype, which references the constructor
// back), so deduplication is by underlying value identity:
//
//	b := graph.NewBuilder(graph.Options{MaxDepth: 10})
//	g, err := b.Build(ctx, inspect.New("playground", root))
//
// # Serialization
//
// Graphs use a node-link JSON format:
//
//	{
//	  "nodes": [{"id": "...", "name": "origin", "type": "Point", ...}],
//	  "edges": [{"from": "...", "to": "...", "field_id": "f0", ...}]
//	}
//
// Common operations:
//
//	data, _ := graph.Marshal(g)                  // Graph → []byte
//	graph.Write(g, os.Stdout)                    // Graph → JSON stream
//	graph.WriteDOT(g, f, graph.DOTOptions{})     // Graph → Graphviz DOT
//	graph.WriteText(g, os.Stdout)                // Graph → text listing
//
// # Concurrency
//
// Graph values are safe for concurrent reads but not concurrent writes.
package graph
