package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Document is the canonical serialization format for object graphs.
// Used for API responses, file output, and cross-tool compatibility.
// Nodes and edges keep insertion (walk) order.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FromGraph converts a Graph to its serialization document.
func FromGraph(g *Graph) Document {
	out := Document{
		Nodes: make([]Node, len(g.nodes)),
		Edges: g.Edges(),
	}
	for i, n := range g.nodes {
		out.Nodes[i] = *n
	}
	return out
}

// Marshal converts a Graph to JSON bytes.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a Graph as JSON to an io.Writer.
// Use Marshal for in-memory serialization.
func Write(g *Graph, w io.Writer) error {
	return writeTo(g, w)
}

func writeTo(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// =============================================================================
// Text Listing
// =============================================================================

// WriteText writes a plain indented description listing, one block per node
// in walk order: the display name and type label on a header line, then one
// line per field and the supertype entry, each with its id.
func WriteText(g *Graph, w io.Writer) error {
	for i, n := range g.Nodes() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("%s [%s]", n.Name, n.Type)
		if n.Root {
			header += " (root)"
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, f := range n.Fields {
			if _, err := fmt.Fprintf(w, "  %-5s %s = %s\n", f.ID, f.Name, f.Value); err != nil {
				return err
			}
		}
		if n.Supertype != nil {
			if _, err := fmt.Fprintf(w, "  %-5s %s = %s\n", n.Supertype.ID, n.Supertype.Name, n.Supertype.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
