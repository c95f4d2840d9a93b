package graph

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davispeixoto/object-playground/pkg/dyn"
	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/inspect"
	"github.com/davispeixoto/object-playground/pkg/observability"
)

// Options configures graph construction.
type Options struct {
	// MaxDepth stops the walk from descending below this depth. The root is
	// at depth 0. Zero means no depth limit; the visited set already bounds
	// the walk on cyclic inputs.
	MaxDepth int

	// MaxNodes caps the number of nodes in the graph. Exceeding the cap
	// aborts the build with a LIMIT_EXCEEDED error. Zero means no cap.
	MaxNodes int

	// Logger receives per-node debug output (optional).
	Logger *log.Logger
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return opts
}

// Builder constructs object graphs by walking sub-nodes outward from a root.
//
// The Builder is stateless apart from its options - every Build call starts
// a fresh walk. Multiple goroutines can safely share one Builder as long as
// they do not walk the same mutable values concurrently.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts.WithDefaults()}
}

// Build walks every value reachable from root and returns the resulting
// graph. Each distinct underlying value becomes exactly one node: revisited
// values (shared targets, cycles) reuse the node created at first visit, so
// the walk terminates on any input. Node order is walk order with the root
// first; edges carry the field id and name under which the target was
// reached.
func (b *Builder) Build(ctx context.Context, root *inspect.Node) (*Graph, error) {
	start := time.Now()
	observability.Build().OnBuildStart(ctx, root.Name())

	w := &walker{
		opts:    b.opts,
		g:       New(),
		visited: make(map[*dyn.Object]string),
	}
	_, err := w.visit(ctx, root, 0)

	observability.Build().OnBuildComplete(ctx, w.g.NodeCount(), w.g.EdgeCount(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return w.g, nil
}

type walker struct {
	opts    Options
	g       *Graph
	visited map[*dyn.Object]string // underlying value -> assigned node ID
}

// visit returns the graph node ID assigned to the node's value, creating it
// and descending into sub-nodes on first visit. Primitive values have no
// underlying reference and are never deduplicated; only the root can be one,
// since sub-nodes are records and callables by construction.
func (w *walker) visit(ctx context.Context, node *inspect.Node, depth int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := node.Value().Ref()
	if ref != nil {
		if id, ok := w.visited[ref]; ok {
			return id, nil
		}
	}

	if w.opts.MaxNodes > 0 && w.g.NodeCount() >= w.opts.MaxNodes {
		return "", errors.New(errors.ErrCodeLimitExceeded, "graph exceeds %d nodes", w.opts.MaxNodes)
	}

	n := Node{
		ID:     node.ID(),
		Name:   node.Name(),
		Type:   node.Type(),
		Root:   depth == 0,
		Fields: node.Fields(),
	}
	if link, ok := node.SupertypeLink(); ok {
		n.Supertype = &link
	}
	if err := w.g.AddNode(n); err != nil {
		return "", err
	}
	if ref != nil {
		w.visited[ref] = n.ID
	}

	w.opts.Logger.Debug("visited node", "name", n.Name, "type", n.Type, "depth", depth)
	observability.Build().OnNodeVisited(ctx, n.Type, depth)

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return n.ID, nil
	}

	var walkErr error
	node.EachSubNode(func(child *inspect.Node, id, name string) {
		if walkErr != nil {
			return
		}
		childID, err := w.visit(ctx, child, depth+1)
		if err != nil {
			walkErr = err
			return
		}
		kind := EdgeKindField
		if id == inspect.SupertypeID {
			kind = EdgeKindSupertype
		}
		walkErr = w.g.AddEdge(Edge{From: n.ID, To: childID, FieldID: id, Label: name, Kind: kind})
	})
	return n.ID, walkErr
}
