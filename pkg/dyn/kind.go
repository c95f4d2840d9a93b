package dyn

import "fmt"

// Kind identifies the variant a Value holds.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindCallable
	KindObject
)

// String returns the lowercase kind name (e.g., "callable").
func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindUndefined: "undefined",
		KindNull:      "null",
		KindBool:      "bool",
		KindNumber:    "number",
		KindString:    "string",
		KindCallable:  "callable",
		KindObject:    "object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"undefined": KindUndefined,
		"null":      KindNull,
		"bool":      KindBool,
		"number":    KindNumber,
		"string":    KindString,
		"callable":  KindCallable,
		"object":    KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsRef reports whether the kind is backed by a record (callable or object).
func (k Kind) IsRef() bool {
	return k == KindCallable || k == KindObject
}
