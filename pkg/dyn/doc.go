// Package dyn models a dynamically-typed, prototype-style object system.
//
// Values come in seven kinds: undefined, null, booleans, numbers, strings,
// callables, and plain objects. Callables and objects are records with an
// optional supertype link and an ordered list of own fields; callables
// additionally carry a declared name and a link target, the record their
// constructed instances use as supertype.
//
// # Realms
//
// Every record belongs to a [Realm], which owns the built-in roots and wires
// them the way the emulated object system expects:
//
//	Object.prototype            plain record, no supertype
//	Function.prototype          plain record, supertype Object.prototype
//	Object(), Function()        built-in callables, supertype Function.prototype
//
// Each built-in prototype carries an own "constructor" field pointing back at
// its callable, and each callable's link target points at its prototype.
//
// # Identity
//
// Records have reference identity: two empty records created by separate calls
// are never the same value. [Value.Same] compares identity for records and
// exact payload equality for primitives.
//
// # Example
//
//	r := dyn.NewRealm()
//	point := r.NewFunction("Point")
//	p := r.NewInstance(point)
//	p.Set("x", dyn.Number(1))
//	p.Set("y", dyn.Number(2))
package dyn
