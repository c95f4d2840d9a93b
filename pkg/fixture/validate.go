package fixture

import (
	"strings"

	"github.com/davispeixoto/object-playground/pkg/errors"
)

// builtinNames are reference targets available in every realm without being
// declared by the model.
var builtinNames = map[string]bool{
	"Object":   true,
	"Function": true,
}

// Validate checks a model for structural problems before materialization:
// duplicate or reserved definition names, conflicting supertype forms,
// ambiguous field values, and references that cannot resolve.
//
// Returns nil if the model is valid, or an error describing the first
// problem found.
func Validate(m *Model) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidInput, "model is nil")
	}
	if len(m.Functions) == 0 && len(m.Objects) == 0 {
		return errors.New(errors.ErrCodeInvalidModel, "model defines no functions or objects")
	}

	defs := make(map[string]bool, len(m.Functions)+len(m.Objects))
	fns := make(map[string]bool, len(m.Functions))
	for _, fn := range m.Functions {
		if err := checkDefName(fn.Name, defs); err != nil {
			return err
		}
		defs[fn.Name] = true
		fns[fn.Name] = true
	}
	for _, obj := range m.Objects {
		if err := checkDefName(obj.Name, defs); err != nil {
			return err
		}
		defs[obj.Name] = true
	}

	for _, fn := range m.Functions {
		if fn.Prototype != "" {
			if err := errors.ValidateRef(fn.Prototype); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "function %q", fn.Name)
			}
			if !refResolves(fn.Prototype, defs, fns) {
				return errors.New(errors.ErrCodeUnknownRef, "function %q: unknown reference %q", fn.Name, fn.Prototype)
			}
		}
		if err := validateFields("function", fn.Name, fn.Fields, defs, fns); err != nil {
			return err
		}
	}

	for _, obj := range m.Objects {
		forms := 0
		if obj.Class != "" {
			forms++
		}
		if obj.Proto != "" {
			forms++
		}
		if obj.Orphan {
			forms++
		}
		if forms > 1 {
			return errors.New(errors.ErrCodeInvalidModel, "object %q: class, proto, and orphan are mutually exclusive", obj.Name)
		}
		if obj.Class != "" && !fns[obj.Class] && !builtinNames[obj.Class] {
			if defs[obj.Class] {
				return errors.New(errors.ErrCodeInvalidModel, "object %q: class %q is not a function", obj.Name, obj.Class)
			}
			return errors.New(errors.ErrCodeUnknownRef, "object %q: unknown class %q", obj.Name, obj.Class)
		}
		if obj.Proto != "" {
			if err := errors.ValidateRef(obj.Proto); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "object %q", obj.Name)
			}
			if !refResolves(obj.Proto, defs, fns) {
				return errors.New(errors.ErrCodeUnknownRef, "object %q: unknown reference %q", obj.Name, obj.Proto)
			}
		}
		if err := validateFields("object", obj.Name, obj.Fields, defs, fns); err != nil {
			return err
		}
	}

	if m.Root != "" && !defs[m.Root] {
		return errors.New(errors.ErrCodeUnknownRef, "unknown root %q", m.Root)
	}

	return nil
}

// checkDefName validates one definition name against the naming rules, the
// reserved built-in names, and the definitions seen so far.
func checkDefName(name string, defs map[string]bool) error {
	if err := errors.ValidateDefName(name); err != nil {
		return err
	}
	if builtinNames[name] {
		return errors.New(errors.ErrCodeInvalidModel, "definition name %q is reserved", name)
	}
	if defs[name] {
		return errors.New(errors.ErrCodeDuplicateDef, "duplicate definition %q", name)
	}
	return nil
}

// validateFields checks one definition's field list. kind and owner identify
// the definition in error messages.
func validateFields(kind, owner string, fields []FieldDef, defs, fns map[string]bool) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := errors.ValidateFieldName(f.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidModel, err, "%s %q", kind, owner)
		}
		if seen[f.Name] {
			return errors.New(errors.ErrCodeInvalidModel, "%s %q: duplicate field %q", kind, owner, f.Name)
		}
		seen[f.Name] = true
		if n := f.valueForms(); n != 1 {
			return errors.New(errors.ErrCodeInvalidModel, "%s %q: field %q must set exactly one value form, got %d", kind, owner, f.Name, n)
		}
		if f.Ref != "" {
			if err := errors.ValidateRef(f.Ref); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "%s %q: field %q", kind, owner, f.Name)
			}
			if !refResolves(f.Ref, defs, fns) {
				return errors.New(errors.ErrCodeUnknownRef, "%s %q: field %q: unknown reference %q", kind, owner, f.Name, f.Ref)
			}
		}
	}
	return nil
}

// refResolves reports whether a syntactically valid reference has a target:
// a definition name, a built-in, or a prototype reference to a callable.
func refResolves(ref string, defs, fns map[string]bool) bool {
	if base, ok := strings.CutSuffix(ref, ".prototype"); ok {
		return fns[base] || builtinNames[base]
	}
	return defs[ref] || builtinNames[ref]
}
