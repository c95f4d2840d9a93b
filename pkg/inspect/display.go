package inspect

import (
	"math"
	"strconv"

	"github.com/davispeixoto/object-playground/pkg/dyn"
)

// DisplayString converts a value to its display form. The conversion is
// value-driven and needs no node: primitives render literally, strings are
// wrapped in double quotes, callables use the callable naming rule, and
// records reuse the structural name heuristic, falling back to the
// "{TypeLabel}" curly form when the record has no distinguishing name of
// its own.
func DisplayString(v dyn.Value) string {
	switch v.Kind() {
	case dyn.KindUndefined:
		return "undefined"
	case dyn.KindNull:
		return "null"
	case dyn.KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case dyn.KindNumber:
		return formatNumber(v.Num())
	case dyn.KindString:
		return `"` + v.Str() + `"`
	case dyn.KindCallable:
		return callableLabel(v.Ref())
	default:
		if label, ok := structuralName(v.Ref()); ok {
			return label
		}
		return "{" + typeLabelOf(v) + "}"
	}
}

// callableName returns the callable's declared name, or AnonLabel when the
// declaration is anonymous.
func callableName(o *dyn.Object) string {
	if name := o.Name(); name != "" {
		return name
	}
	return AnonLabel
}

// callableLabel renders a callable for display: "name()" or "<anon>()".
func callableLabel(o *dyn.Object) string {
	return callableName(o) + "()"
}

// structuralName resolves the record-shape naming cases: the
// Function.prototype singleton, and prototype records whose own constructor
// field is a callable pointing back at them. Returns ok=false when neither
// shape matches so the caller can fall back (to the supplied name or the
// curly form). A constructor whose link target was retargeted elsewhere
// falls through silently.
func structuralName(o *dyn.Object) (string, bool) {
	if r := o.Realm(); r != nil && r.IsFunctionProto(o.Value()) {
		return FunctionProtoLabel, true
	}
	ctor, ok := o.Own(dyn.ConstructorField)
	if !ok || !ctor.IsCallable() {
		return "", false
	}
	if ctor.Ref().LinkTarget().Ref() != o {
		return "", false
	}
	return callableName(ctor.Ref()) + ".prototype", true
}

// typeLabelOf resolves the type label for any value. See Node.Type for the
// rules.
func typeLabelOf(v dyn.Value) string {
	ref := v.Ref()
	if ref == nil || ref.Proto() == nil {
		return NoSupertypeLabel
	}
	for p := ref.Proto(); p != nil; p = p.Proto() {
		ctor, ok := p.Own(dyn.ConstructorField)
		if !ok {
			continue
		}
		if !ctor.IsCallable() {
			return AnonLabel
		}
		return callableName(ctor.Ref())
	}
	return AnonLabel
}

// formatNumber renders a number the way the inspected object model prints
// them: integral values without a decimal point, very large magnitudes in
// exponent form, and the NaN/Infinity specials by name.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
