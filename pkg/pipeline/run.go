package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/fixture"
	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/inspect"
	"github.com/davispeixoto/object-playground/pkg/observability"
)

// Run executes the complete load → materialize → build pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	start := time.Now()

	// Stage 1: Load
	loader, err := detect(opts)
	if err != nil {
		return nil, err
	}
	loadStart := time.Now()
	observability.Load().OnLoadStart(ctx, loader.Format(), opts.Path)
	model, err := parse(loader, opts)
	defCount := 0
	if model != nil {
		defCount = len(model.Functions) + len(model.Objects)
	}
	observability.Load().OnLoadComplete(ctx, loader.Format(), opts.Path, defCount, time.Since(loadStart), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("model loaded",
		"format", loader.Format(),
		"functions", len(model.Functions),
		"objects", len(model.Objects),
		"duration", time.Since(loadStart))

	if opts.Root != "" {
		model.Root = opts.Root
	}

	// Stage 2: Materialize
	matStart := time.Now()
	_, values, err := fixture.Materialize(model)
	if err != nil {
		return nil, err
	}
	rootName, rootValue, err := fixture.RootValue(model, values)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("model materialized",
		"definitions", defCount,
		"root", rootName,
		"duration", time.Since(matStart))

	// Stage 3: Build
	builder := graph.NewBuilder(graph.Options{
		MaxDepth: opts.MaxDepth,
		MaxNodes: opts.MaxNodes,
		Logger:   opts.Logger,
	})
	g, err := builder.Build(ctx, inspect.New(rootName, rootValue))
	if err != nil {
		return nil, err
	}

	result := &Result{
		Graph: g,
		Stats: Stats{
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			FieldCount: g.FieldCount(),
			Duration:   time.Since(start),
		},
	}
	opts.Logger.Debug("graph built",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"fields", result.Stats.FieldCount,
		"duration", result.Stats.Duration)

	return result, nil
}

// detect picks the loader for the run: by explicit format when given, by
// filename otherwise.
func detect(opts Options) (fixture.Loader, error) {
	if opts.Format != "" {
		return fixture.ByFormat(opts.Format, fixture.Loaders()...)
	}
	return fixture.Detect(opts.Path, fixture.Loaders()...)
}

// parse reads and parses the model document.
func parse(loader fixture.Loader, opts Options) (*fixture.Model, error) {
	data := opts.Source
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read model %s", opts.Path)
		}
	}
	return loader.Parse(data)
}
