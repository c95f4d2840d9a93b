package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/pipeline"
)

// Output formats supported by the graph command.
const (
	formatJSON = "json"
	formatDOT  = "dot"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path (stdout if empty)
	format   string // output format: json or dot
	root     string // override the model's declared root
	rankDir  string // dot layout direction
	maxDepth int    // maximum walk depth
	maxNodes int    // maximum nodes to visit
}

// newGraphCmd creates the graph command.
// It loads a model file, walks the reference graph from the root object, and
// writes the result as JSON (the canonical document) or Graphviz DOT text.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{
		format:   formatJSON,
		rankDir:  "TB",
		maxDepth: pipeline.DefaultMaxDepth,
		maxNodes: pipeline.DefaultMaxNodes,
	}

	cmd := &cobra.Command{
		Use:   "graph <model-file>",
		Short: "Build the reference graph for a model file",
		Long: `Build the reference graph for a model file.

The model's declared root (or the definition named by --root) is walked
depth-first across fields and supertype links, and the resulting graph is
written as a JSON document or as Graphviz DOT text.

Examples:
  object-playground graph model.toml
  object-playground graph model.toml -o graph.json
  object-playground graph model.toml --root Point
  object-playground graph model.toml -f dot | dot -Tsvg > graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if opts.format != formatJSON && opts.format != formatDOT {
				return errors.New(errors.ErrCodeUnsupportedFormat, "unknown output format %q (available: json, dot)", opts.format)
			}
			return runGraph(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), dot")
	cmd.Flags().StringVar(&opts.root, "root", "", "start the walk at this definition instead of the model's root")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", opts.rankDir, "dot layout direction: TB (default), LR")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum walk depth")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", opts.maxNodes, "maximum nodes to visit")

	return cmd
}

// runGraph builds the graph and writes it to opts.output (or stdout).
func runGraph(ctx context.Context, opts *graphOpts, path string) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Building graph from %s", path)

	prog := newProgress(logger)
	result, err := pipeline.Run(ctx, pipeline.Options{
		Path:     path,
		Root:     opts.root,
		MaxDepth: opts.maxDepth,
		MaxNodes: opts.maxNodes,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %d nodes with %d edges", result.Stats.NodeCount, result.Stats.EdgeCount))

	if err := writeGraph(result.Graph, opts); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Graph written")
		printFile(opts.output)
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.FieldCount)
		printNewline()
		printNextStep("Describe", "object-playground describe "+path)
	}
	return nil
}

// writeGraph serializes g in the requested format to opts.output (or stdout
// if empty).
func writeGraph(g *graph.Graph, opts *graphOpts) error {
	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.format == formatDOT {
		return graph.WriteDOT(g, out, graph.DOTOptions{RankDir: opts.rankDir})
	}
	return graph.Write(g, out)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
