package graph

import (
	"errors"
	"slices"

	"github.com/davispeixoto/object-playground/pkg/inspect"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// EdgeKind distinguishes ordinary field references from supertype links.
type EdgeKind string

const (
	// EdgeKindField marks an edge created by an own field holding a record
	// or callable.
	EdgeKindField EdgeKind = "field"

	// EdgeKindSupertype marks the edge from a node to its supertype.
	EdgeKindSupertype EdgeKind = "supertype"
)

// Node is a description snapshot of one inspected value: its resolved display
// name and type label, the converted field list, and the supertype entry when
// one exists. Nodes carry no reference back to the underlying value.
type Node struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Root      bool            `json:"root,omitempty"` // entry point of the walk
	Fields    []inspect.Field `json:"fields,omitempty"`
	Supertype *inspect.Field  `json:"supertype,omitempty"`
}

// Edge is a directed reference between two nodes. FieldID is the positional
// id the field list assigns ("f0", "f1", ... or "proto"), Label the field
// name under which the target was reached.
type Edge struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	FieldID string   `json:"field_id"`
	Label   string   `json:"label"`
	Kind    EdgeKind `json:"kind"`
}

// Graph is an object-reference graph: nodes are inspected values, edges the
// fields and supertype links between them. Unlike a dependency tree it may
// contain cycles and shared targets; nodes and edges keep insertion order,
// which for built graphs is the walk order starting at the root.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    []*Node
	index    map[string]*Node
	edges    []Edge
	outgoing map[string][]string // nodeID -> referenced node IDs
	incoming map[string][]string // nodeID -> referencing node IDs
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		index:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph. Returns ErrInvalidNodeID if the node ID
// is empty, or ErrDuplicateNodeID if a node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.index[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := &n
	g.nodes = append(g.nodes, node)
	g.index[node.ID] = node
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist. Multiple edges between
// the same nodes are allowed: two fields of one record may reference the
// same target.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.index[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Nodes returns all nodes in insertion order. The returned slice contains
// pointers to the actual node structs, so modifications affect the graph.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns a copy of all edges in insertion order. Modifications to the
// returned slice do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Node returns the node with the given ID and true, or nil and false if not found.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// Root returns the entry-point node of the walk and true, or nil and false
// for a graph without one (e.g. a hand-assembled graph).
func (g *Graph) Root() (*Node, bool) {
	for _, n := range g.nodes {
		if n.Root {
			return n, true
		}
	}
	return nil, false
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// FieldCount returns the total number of fields across all nodes, not
// counting supertype entries.
func (g *Graph) FieldCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.Fields)
	}
	return total
}

// Children returns the IDs of nodes this node references (fields and
// supertype). Returns nil if the node has no outgoing edges or doesn't
// exist. The returned slice should not be modified - use it as a read-only
// view. A target referenced by several fields appears once per edge.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of nodes that reference this node. Returns nil if
// the node has no incoming edges or doesn't exist. The returned slice should
// not be modified - use it as a read-only view.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }
