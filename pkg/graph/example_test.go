package graph_test

import (
	"context"
	"fmt"
	"os"

	"github.com/davispeixoto/object-playground/pkg/dyn"
	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/inspect"
)

func ExampleWrite() {
	// Assemble a small object graph by hand
	g := graph.New()
	_ = g.AddNode(graph.Node{
		ID: "n0", Name: "origin", Type: "Point", Root: true,
		Fields: []inspect.Field{
			{Name: "x", Value: "0", ID: "f0"},
		},
		Supertype: &inspect.Field{Name: "__proto__", Value: "Point.prototype", ID: "proto"},
	})
	_ = g.AddNode(graph.Node{ID: "n1", Name: "Point.prototype", Type: "Object"})
	_ = g.AddEdge(graph.Edge{
		From: "n0", To: "n1",
		FieldID: "proto", Label: "__proto__", Kind: graph.EdgeKindSupertype,
	})

	// Write to stdout (or any io.Writer)
	if err := graph.Write(g, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "n0",
	//       "name": "origin",
	//       "type": "Point",
	//       "root": true,
	//       "fields": [
	//         {
	//           "name": "x",
	//           "value": "0",
	//           "id": "f0"
	//         }
	//       ],
	//       "supertype": {
	//         "name": "__proto__",
	//         "value": "Point.prototype",
	//         "id": "proto"
	//       }
	//     },
	//     {
	//       "id": "n1",
	//       "name": "Point.prototype",
	//       "type": "Object"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": "n0",
	//       "to": "n1",
	//       "field_id": "proto",
	//       "label": "__proto__",
	//       "kind": "supertype"
	//     }
	//   ]
	// }
}

func ExampleWriteText() {
	g := graph.New()
	_ = g.AddNode(graph.Node{
		ID: "n0", Name: "origin", Type: "Point", Root: true,
		Fields: []inspect.Field{
			{Name: "x", Value: "0", ID: "f0"},
			{Name: "y", Value: "0", ID: "f1"},
		},
		Supertype: &inspect.Field{Name: "__proto__", Value: "Point.prototype", ID: "proto"},
	})
	_ = g.AddNode(graph.Node{
		ID: "n1", Name: "Point.prototype", Type: "Object",
		Fields: []inspect.Field{
			{Name: "constructor", Value: "Point()", ID: "f0"},
		},
	})
	_ = g.AddEdge(graph.Edge{
		From: "n0", To: "n1",
		FieldID: "proto", Label: "__proto__", Kind: graph.EdgeKindSupertype,
	})

	_ = graph.WriteText(g, os.Stdout)
	// Output:
	// origin [Point] (root)
	//   f0    x = 0
	//   f1    y = 0
	//   proto __proto__ = Point.prototype
	//
	// Point.prototype [Object]
	//   f0    constructor = Point()
}

func ExampleToDOT() {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "n0", Name: "origin", Type: "Point", Root: true})
	_ = g.AddNode(graph.Node{ID: "n1", Name: "Point.prototype", Type: "Object"})
	_ = g.AddEdge(graph.Edge{
		From: "n0", To: "n1",
		FieldID: "proto", Label: "__proto__", Kind: graph.EdgeKindSupertype,
	})

	fmt.Print(graph.ToDOT(g, graph.DOTOptions{}))
	// Output:
	// digraph objects {
	//   rankdir=TB;
	//   node [shape=box, style=rounded];
	//
	//   "n0" [label="origin\nPoint", style="rounded,bold"];
	//   "n1" [label="Point.prototype\nObject"];
	//
	//   "n0" -> "n1" [style=dashed];
	// }
}

func ExampleBuilder_Build() {
	// A constructed instance drags its whole prototype chain into the graph
	realm := dyn.NewRealm()
	pt := realm.NewFunction("Point")
	origin := realm.NewInstance(pt)
	origin.Set("x", dyn.Number(0))
	origin.Set("y", dyn.Number(0))

	b := graph.NewBuilder(graph.Options{})
	g, err := b.Build(context.Background(), inspect.New("origin", origin.Value()))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	root, _ := g.Root()
	fmt.Printf("Root: %s [%s]\n", root.Name, root.Type)
	// Output:
	// Nodes: 7
	// Edges: 9
	// Root: origin [Point]
}
