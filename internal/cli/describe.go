package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/inspect"
	"github.com/davispeixoto/object-playground/pkg/pipeline"
)

// describeOpts holds the command-line flags for the describe command.
type describeOpts struct {
	root     string // override the model's declared root
	maxDepth int    // maximum walk depth
	maxNodes int    // maximum nodes to visit
	noColor  bool   // disable styled output
}

// newDescribeCmd creates the describe command.
// It walks the model like graph does, but prints a human-readable listing of
// every object instead of a machine format: display name, type label, fields
// with their converted values, and the supertype entry.
func newDescribeCmd() *cobra.Command {
	opts := describeOpts{
		maxDepth: pipeline.DefaultMaxDepth,
		maxNodes: pipeline.DefaultMaxNodes,
	}

	cmd := &cobra.Command{
		Use:   "describe <model-file>",
		Short: "Print the description listing for every object in a model",
		Long: `Print the description listing for every object in a model.

Each object the walk reaches gets one block in walk order: the display name
and type label on a header line, then one line per field and the supertype
entry, each with its positional id.

Examples:
  object-playground describe model.toml
  object-playground describe model.toml --root Point
  object-playground describe model.toml --no-color`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return runDescribe(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "start the walk at this definition instead of the model's root")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum walk depth")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", opts.maxNodes, "maximum nodes to visit")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

// runDescribe builds the graph and prints the styled listing to stdout.
func runDescribe(ctx context.Context, opts *describeOpts, path string) error {
	result, err := pipeline.Run(ctx, pipeline.Options{
		Path:     path,
		Root:     opts.root,
		MaxDepth: opts.maxDepth,
		MaxNodes: opts.maxNodes,
		Logger:   loggerFromContext(ctx),
	})
	if err != nil {
		return err
	}

	printListing(os.Stdout, result.Graph)
	printNewline()
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.FieldCount)
	return nil
}

// printListing writes one styled block per node in walk order. It mirrors
// graph.WriteText with terminal styling on top.
func printListing(w io.Writer, g *graph.Graph) {
	for i, n := range g.Nodes() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := StyleTitle.Render(n.Name) + " " + StyleHighlight.Render("["+n.Type+"]")
		if n.Root {
			header += " " + StyleDim.Render("(root)")
		}
		fmt.Fprintln(w, header)
		for _, f := range n.Fields {
			printEntry(w, f)
		}
		if n.Supertype != nil {
			printEntry(w, *n.Supertype)
		}
	}
}

// printEntry writes one field or supertype line of a node block.
func printEntry(w io.Writer, f inspect.Field) {
	id := StyleDim.Render(fmt.Sprintf("%-5s", f.ID))
	fmt.Fprintf(w, "  %s %s %s %s\n", id, f.Name, StyleDim.Render("="), StyleValue.Render(f.Value))
}
