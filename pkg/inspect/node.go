package inspect

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/davispeixoto/object-playground/pkg/dyn"
)

// Reserved labels used when a value gives the inspector nothing better.
const (
	// AnonLabel names anonymous callables and unresolvable types.
	AnonLabel = "<anon>"

	// NoSupertypeLabel is the type label for values with no supertype at all.
	NoSupertypeLabel = "<null>"

	// FunctionProtoLabel names the root callable's link-target singleton.
	FunctionProtoLabel = "Function.prototype"
)

// Reserved name and id for the supertype-link entry. They are the same for
// every node regardless of what the supertype actually is.
const (
	SupertypeName = "__proto__"
	SupertypeID   = "proto"
)

// Field is one display entry of a node: an ordinary own field or the
// supertype link. Value always holds the converted display string, never the
// raw value.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	ID    string `json:"id"`
}

// Node wraps one runtime value together with the name under which it was
// reached. Nodes are immutable and cheap; a traversal creates one per value
// it visits and discards it afterwards.
type Node struct {
	id    string
	name  string
	value dyn.Value
}

// New creates a node for value as reached via name. Every call returns a
// distinct instance with a fresh id, even for identical arguments.
func New(name string, value dyn.Value) *Node {
	return &Node{
		id:    uuid.NewString(),
		name:  name,
		value: value,
	}
}

// ID returns the node's instance token. It is opaque, unique per instance,
// and independent of the wrapped value: use it as a map key for per-instance
// bookkeeping, never for de-duplication.
func (n *Node) ID() string { return n.id }

// SuppliedName returns the name the node was constructed with.
func (n *Node) SuppliedName() string { return n.name }

// Value returns the wrapped value.
func (n *Node) Value() dyn.Value { return n.value }

// Equals reports whether both nodes wrap the exact same underlying value.
// The comparison is by identity, never structural, and ignores supplied
// names: two nodes over distinct empty records are not equal.
func (n *Node) Equals(other *Node) bool {
	if other == nil {
		return false
	}
	return n.value.Same(other.value)
}

// Name resolves the display name. Precedence, first match wins:
//
//  1. Callables render as "name()" ("<anon>()" when unnamed).
//  2. The realm's Function.prototype singleton gets its reserved label.
//  3. A record whose own constructor field is a callable whose link target
//     points back at this exact record renders as "name.prototype". An
//     inherited constructor field or a retargeted link never triggers this.
//  4. Anything else keeps the supplied name.
func (n *Node) Name() string {
	if n.value.IsCallable() {
		return callableLabel(n.value.Ref())
	}
	if ref := n.value.Ref(); ref != nil {
		if label, ok := structuralName(ref); ok {
			return label
		}
	}
	return n.name
}

// Type resolves the type label from the supertype chain. Values with no
// supertype report NoSupertypeLabel. Otherwise the immediate supertype and
// its own chain are scanned for the first own constructor field: a missing,
// null, or non-callable one resolves to AnonLabel, a callable one to its
// declared name (AnonLabel when empty). The constructor field may sit
// several levels up the chain.
func (n *Node) Type() string {
	return typeLabelOf(n.value)
}

// Fields returns the node's own fields in enumeration order, each value
// converted to its display string and ids assigned f0, f1, f2, ...
// The supertype link is not part of the field list; see SupertypeLink.
func (n *Node) Fields() []Field {
	ref := n.value.Ref()
	if ref == nil {
		return nil
	}
	fields := make([]Field, 0, ref.Len())
	i := 0
	ref.Each(func(name string, v dyn.Value) {
		fields = append(fields, Field{Name: name, Value: DisplayString(v), ID: fieldID(i)})
		i++
	})
	return fields
}

// SupertypeLink returns the supertype entry and true when the wrapped value
// has a supertype: the reserved marker name, the converted supertype value,
// and the reserved id. Without a supertype there is no entry.
func (n *Node) SupertypeLink() (Field, bool) {
	ref := n.value.Ref()
	if ref == nil || ref.Proto() == nil {
		return Field{}, false
	}
	return Field{
		Name:  SupertypeName,
		Value: DisplayString(ref.Proto().Value()),
		ID:    SupertypeID,
	}, true
}

// EachSubNode calls fn for every child value that should become a node
// itself: own fields holding callables or records, in enumeration order and
// with the exact id/name that Fields assigns them, then the supertype (under
// the reserved id and marker name) last. Primitive, null, and undefined
// fields are skipped entirely; skipped fields still consume their positional
// id. A value with no supertype and no qualifying fields produces zero calls.
func (n *Node) EachSubNode(fn func(child *Node, id, name string)) {
	ref := n.value.Ref()
	if ref == nil {
		return
	}
	i := 0
	ref.Each(func(name string, v dyn.Value) {
		id := fieldID(i)
		i++
		if v.IsRef() {
			fn(New(name, v), id, name)
		}
	})
	if p := ref.Proto(); p != nil {
		fn(New(SupertypeName, p.Value()), SupertypeID, SupertypeName)
	}
}

func fieldID(i int) string {
	return "f" + strconv.Itoa(i)
}
