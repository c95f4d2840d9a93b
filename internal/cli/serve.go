package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/davispeixoto/object-playground/internal/api"
	"github.com/davispeixoto/object-playground/pkg/pipeline"
)

// addrEnvVar names the environment variable consulted when --addr is not set.
const addrEnvVar = "OBJECT_PLAYGROUND_ADDR"

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	opts := api.Options{
		MaxDepth: pipeline.DefaultMaxDepth,
		MaxNodes: pipeline.DefaultMaxNodes,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

The server exposes the graph pipeline over HTTP:

  POST /v1/graph    build the reference graph for a model
  POST /v1/inspect  describe a single object from a model
  GET  /healthz     liveness check

The listen address comes from --addr, falling back to the
OBJECT_PLAYGROUND_ADDR environment variable. The server shuts down
gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if opts.Addr == "" {
				opts.Addr = envOr(addrEnvVar, api.DefaultAddr)
			}
			opts.Logger = loggerFromContext(c.Context())

			printInfo("Serving HTTP API on %s", opts.Addr)
			printDetail("POST /v1/graph")
			printDetail("POST /v1/inspect")
			printDetail("GET  /healthz")

			return api.New(opts).ListenAndServe(c.Context())
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (default $OBJECT_PLAYGROUND_ADDR or "+api.DefaultAddr+")")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", opts.MaxDepth, "maximum walk depth per request")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", opts.MaxNodes, "maximum nodes per request")

	return cmd
}

// envOr returns the value of the environment variable name, or fallback when
// it is unset or empty.
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
