package fixture_test

import (
	"fmt"

	"github.com/davispeixoto/object-playground/pkg/dyn"
	"github.com/davispeixoto/object-playground/pkg/fixture"
)

func ExampleTOML_Parse() {
	doc := `root = "origin"

[[function]]
name = "Point"

[[object]]
name = "origin"
class = "Point"
`
	model, err := (&fixture.TOML{}).Parse([]byte(doc))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%d function(s), %d object(s), root %s\n",
		len(model.Functions), len(model.Objects), model.Root)
	// Output:
	// 1 function(s), 1 object(s), root origin
}

func ExampleMaterialize() {
	model := &fixture.Model{
		Root:      "origin",
		Functions: []fixture.FunctionDef{{Name: "Point"}},
		Objects:   []fixture.ObjectDef{{Name: "origin", Class: "Point"}},
	}

	_, values, err := fixture.Materialize(model)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	name, root, _ := fixture.RootValue(model, values)
	ctor, _ := root.Ref().Proto().Own(dyn.ConstructorField)
	fmt.Println("root:", name)
	fmt.Printf("constructor: %#v\n", ctor)
	// Output:
	// root: origin
	// constructor: dyn.Callable(Point)
}
