package dyn

import "strconv"

// Value is an immutable handle to one runtime value. The zero value is
// undefined. Values are cheap to copy; record-backed values share the
// underlying *Object.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	obj  *Object
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{kind: KindUndefined} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsCallable reports whether the value is a callable record.
func (v Value) IsCallable() bool { return v.kind == KindCallable }

// IsObject reports whether the value is a plain (non-callable) record.
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsRef reports whether the value is backed by a record.
func (v Value) IsRef() bool { return v.obj != nil }

// Ref returns the backing record for callables and objects, or nil for
// primitives. The returned pointer is the value's identity.
func (v Value) Ref() *Object { return v.obj }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Num returns the numeric payload. Valid only for KindNumber.
func (v Value) Num() float64 { return v.num }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Same reports whether two values are the exact same underlying value.
// Records compare by reference identity; primitives compare by kind and
// payload. NaN is never Same as anything, including itself.
func (v Value) Same(o Value) bool {
	if v.obj != nil || o.obj != nil {
		return v.obj == o.obj
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	default:
		return true
	}
}

// GoString returns a debug representation, e.g. dyn.Number(42).
func (v Value) GoString() string {
	switch v.kind {
	case KindUndefined:
		return "dyn.Undefined()"
	case KindNull:
		return "dyn.Null()"
	case KindBool:
		return "dyn.Bool(" + strconv.FormatBool(v.b) + ")"
	case KindNumber:
		return "dyn.Number(" + strconv.FormatFloat(v.num, 'g', -1, 64) + ")"
	case KindString:
		return "dyn.String(" + strconv.Quote(v.str) + ")"
	case KindCallable:
		return "dyn.Callable(" + v.obj.Name() + ")"
	default:
		return "dyn.Object"
	}
}
