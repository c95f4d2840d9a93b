package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/pipeline"
)

const testModel = `{
  "root": "origin",
  "functions": [{"name": "Point"}],
  "objects": [
    {"name": "origin", "class": "Point", "fields": [{"name": "x", "number": 0.0}]}
  ]
}`

// buildTestGraph walks the shared test model and returns its graph.
func buildTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	result, err := pipeline.Run(context.Background(), pipeline.Options{
		Source: []byte(testModel),
		Format: "json",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result.Graph
}

func TestWriteGraphJSON(t *testing.T) {
	g := buildTestGraph(t)
	path := filepath.Join(t.TempDir(), "graph.json")

	opts := &graphOpts{format: formatJSON, output: path}
	if err := writeGraph(g, opts); err != nil {
		t.Fatalf("writeGraph() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc graph.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Nodes) != 7 {
		t.Errorf("nodes = %d, want 7", len(doc.Nodes))
	}
}

func TestWriteGraphDOT(t *testing.T) {
	g := buildTestGraph(t)
	path := filepath.Join(t.TempDir(), "graph.dot")

	opts := &graphOpts{format: formatDOT, rankDir: "LR", output: path}
	if err := writeGraph(g, opts); err != nil {
		t.Fatalf("writeGraph() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "digraph objects {") {
		t.Errorf("output does not start with a digraph header:\n%s", out)
	}
	if !strings.Contains(out, "rankdir=LR;") {
		t.Error("output should honor the rankdir option")
	}
}

func TestRunGraphWritesFile(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	if err := os.WriteFile(modelPath, []byte(testModel), 0644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	outPath := filepath.Join(dir, "graph.json")

	ctx := withLogger(context.Background(), newLogger(io.Discard, log.InfoLevel))
	opts := &graphOpts{
		format:   formatJSON,
		output:   outPath,
		maxDepth: pipeline.DefaultMaxDepth,
		maxNodes: pipeline.DefaultMaxNodes,
	}
	if err := runGraph(ctx, opts, modelPath); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc graph.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Nodes) != 7 || len(doc.Edges) != 9 {
		t.Errorf("graph = %d nodes, %d edges, want 7 nodes, 9 edges", len(doc.Nodes), len(doc.Edges))
	}
	if !doc.Nodes[0].Root || doc.Nodes[0].Name != "origin" {
		t.Errorf("first node = %+v, want the origin root", doc.Nodes[0])
	}
}

func TestGraphCmdRejectsUnknownFormat(t *testing.T) {
	cmd := newGraphCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--format", "xml", "model.toml"})

	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("Execute() error = %v, want code %s", err, errors.ErrCodeUnsupportedFormat)
	}
}

func TestOpenOutput(t *testing.T) {
	t.Run("stdout when empty", func(t *testing.T) {
		out, err := openOutput("")
		if err != nil {
			t.Fatalf("openOutput(\"\") error = %v", err)
		}
		if _, ok := out.(nopCloser); !ok {
			t.Errorf("openOutput(\"\") = %T, want nopCloser", out)
		}
		if err := out.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		out, err := openOutput(path)
		if err != nil {
			t.Fatalf("openOutput(%q) error = %v", path, err)
		}
		if err := out.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file not created: %v", err)
		}
	})
}
