// Package fixture loads declarative object-model definitions and
// materializes them into live realms.
//
// # Overview
//
// A fixture is a small document describing the functions and objects of a
// playground: their names, fields, and how they hang together through
// classes, prototypes, and explicit supertype links. The package parses
// fixtures from TOML, YAML, or JSON, validates them, and builds the
// described records in a fresh [dyn.Realm].
//
// # Formats
//
// Each format has a [Loader]; [Detect] picks one by filename and [Load]
// combines detection, reading, and parsing:
//
//	model, err := fixture.Load("shapes.toml")
//
// The same model in TOML:
//
//	root = "origin"
//
//	[[function]]
//	name = "Point"
//
//	[[object]]
//	name = "origin"
//	class = "Point"
//
//	[[object.field]]
//	name = "x"
//	number = 0
//
// Definitions and fields are arrays, not maps, so declaration order is
// preserved across every format.
//
// # References
//
// Fields and supertype forms refer to other definitions by name. Two
// built-ins, Object and Function, are always in scope, and "Name.prototype"
// refers to a callable's link target. [Validate] rejects references that
// cannot resolve.
//
// # Materialization
//
// [Materialize] builds the records in two passes (create, then wire), so
// definitions may reference each other in any order, cycles included.
// [RootValue] then selects the value the graph walk starts from.
//
// [dyn.Realm]: github.com/davispeixoto/object-playground/pkg/dyn.Realm
package fixture
