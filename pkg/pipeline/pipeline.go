// Package pipeline provides the shared load → materialize → build flow.
//
// This package implements the complete pipeline that turns a model document
// into a built object-reference graph. Both the CLI and the HTTP API run
// through it, so validation, limits, logging, and hook events behave the
// same at every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: detect the model format and parse the document
//  2. Materialize: validate the model and create its records in a realm
//  3. Build: walk the root value's references into a graph
//
// # Usage
//
// Run the pipeline against a model file:
//
//	result, err := pipeline.Run(ctx, pipeline.Options{Path: "shapes.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	graph.Write(result.Graph, os.Stdout)
//
// Or against an in-memory document:
//
//	result, err := pipeline.Run(ctx, pipeline.Options{
//	    Source: body,
//	    Format: "json",
//	    Root:   "origin",
//	})
//
// Stats on the result summarize the run:
//
//	fmt.Println(result.Stats.NodeCount, result.Stats.Duration)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxDepth bounds the walk depth for pipeline runs. Supertype
	// chains are short, but field references can nest arbitrarily deep.
	// Library callers wanting an unbounded walk use graph.Builder directly.
	DefaultMaxDepth = 16

	// DefaultMaxNodes caps the number of records visited in one run.
	DefaultMaxNodes = 1000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Path is the model file to load. The format is detected from the
	// filename unless Format is set.
	Path string `json:"path,omitempty"`

	// Source is an in-memory model document. When set, Path is ignored and
	// Format is required.
	Source []byte `json:"source,omitempty"`

	// Format names the model format ("toml", "yaml", "json").
	Format string `json:"format,omitempty"`

	// Root overrides the model's declared walk root.
	Root string `json:"root,omitempty"`

	// MaxDepth and MaxNodes bound the walk. Zero or negative values take
	// the package defaults.
	MaxDepth int `json:"max_depth,omitempty"`
	MaxNodes int `json:"max_nodes,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return opts
}

// Validate checks that the options name a model source.
func (o *Options) Validate() error {
	if len(o.Source) > 0 {
		if o.Format == "" {
			return errors.New(errors.ErrCodeInvalidInput, "format is required with an in-memory source")
		}
		return nil
	}
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "a model path or source document is required")
	}
	return nil
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the built object-reference graph.
	Graph *graph.Graph

	// Stats contains size and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	FieldCount int
	Duration   time.Duration
}
