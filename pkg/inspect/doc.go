// Package inspect wraps dynamic values in identity-aware nodes that describe
// themselves: a display name, a type label, converted field entries, and the
// supertype link, plus an enumeration of the child values a graph traversal
// should descend into.
//
// # Overview
//
// A [Node] is created per (name, value) pair a traversal encounters. It never
// mutates the wrapped value and computes everything on demand:
//
//	n := inspect.New("root", value)
//	n.Name()          // display name: "Point()", "Point.prototype", "root", ...
//	n.Type()          // type label: "Point", "<anon>", "<null>"
//	n.Fields()        // own fields as display entries, ids f0, f1, ...
//	n.SupertypeLink() // the __proto__ entry, when a supertype exists
//	n.EachSubNode(fn) // children worth becoming nodes themselves
//
// Node identity is split in two: [Node.ID] is unique per node instance and is
// only a bookkeeping key, while [Node.Equals] compares the wrapped values by
// identity and is the only valid de-duplication signal during traversal.
//
// # Labels
//
// Naming degrades to well-defined fallbacks instead of failing: anonymous
// callables render as "<anon>()", values without a supertype get type label
// "<null>", and records with no distinguishing name of their own convert to
// "{TypeLabel}". Malformed shapes (a non-callable or null constructor field, a
// retargeted link target) silently fall back; they are expected inputs, not
// errors.
package inspect
