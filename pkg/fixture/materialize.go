package fixture

import (
	"strings"

	"github.com/davispeixoto/object-playground/pkg/dyn"
	"github.com/davispeixoto/object-playground/pkg/errors"
)

// Materialize validates the model and builds its records in a fresh realm.
// It returns the realm and a map from definition name to the created value.
//
// Records are created in two passes so that definitions may reference each
// other regardless of declaration order, cycles included. The wiring order
// within the second pass is fixed: function prototypes are retargeted first
// (in declaration order), then object supertypes, then fields. A prototype
// reference like "Point.prototype" therefore resolves to the callable's link
// target as of its own position in that order.
func Materialize(m *Model) (*dyn.Realm, map[string]dyn.Value, error) {
	if err := Validate(m); err != nil {
		return nil, nil, err
	}

	realm := dyn.NewRealm()
	fns := make(map[string]*dyn.Object, len(m.Functions))
	objs := make(map[string]*dyn.Object, len(m.Objects))
	values := make(map[string]dyn.Value, len(m.Functions)+len(m.Objects))

	// First pass: create every record.
	for _, def := range m.Functions {
		name := def.Name
		if def.Anonymous {
			name = ""
		}
		fn := realm.NewFunction(name)
		fns[def.Name] = fn
		values[def.Name] = fn.Value()
	}
	for _, def := range m.Objects {
		var obj *dyn.Object
		if def.Orphan {
			obj = realm.NewOrphan()
		} else {
			obj = realm.NewObject()
		}
		objs[def.Name] = obj
		values[def.Name] = obj.Value()
	}

	// Second pass: retarget function prototypes.
	for _, def := range m.Functions {
		if def.Prototype == "" {
			continue
		}
		target, err := resolve(realm, def.Prototype, fns, objs)
		if err != nil {
			return nil, nil, err
		}
		fns[def.Name].SetLinkTarget(target)
	}

	// Wire object supertypes. Class follows the same fallback as instance
	// construction: a non-record link target leaves the default supertype.
	for _, def := range m.Objects {
		switch {
		case def.Class != "":
			fn := callableFor(realm, def.Class, fns)
			if target := fn.LinkTarget().Ref(); target != nil {
				objs[def.Name].SetProto(target)
			}
		case def.Proto != "":
			target, err := resolve(realm, def.Proto, fns, objs)
			if err != nil {
				return nil, nil, err
			}
			objs[def.Name].SetProto(target.Ref())
		}
	}

	// Assign fields, functions first, each in declaration order.
	for _, def := range m.Functions {
		if err := setFields(realm, fns[def.Name], def.Fields, fns, objs); err != nil {
			return nil, nil, err
		}
	}
	for _, def := range m.Objects {
		if err := setFields(realm, objs[def.Name], def.Fields, fns, objs); err != nil {
			return nil, nil, err
		}
	}

	return realm, values, nil
}

// RootValue selects the walk root for a materialized model: the named Root
// definition when set, otherwise the first object definition, otherwise the
// first function definition. The returned name is the definition name, for
// use as the root's supplied display name.
func RootValue(m *Model, values map[string]dyn.Value) (string, dyn.Value, error) {
	if m.Root != "" {
		if v, ok := values[m.Root]; ok {
			return m.Root, v, nil
		}
		return "", dyn.Undefined(), errors.New(errors.ErrCodeUnknownRef, "unknown root %q", m.Root)
	}
	if len(m.Objects) > 0 {
		name := m.Objects[0].Name
		return name, values[name], nil
	}
	if len(m.Functions) > 0 {
		name := m.Functions[0].Name
		return name, values[name], nil
	}
	return "", dyn.Undefined(), errors.New(errors.ErrCodeInvalidModel, "model defines no functions or objects")
}

// setFields assigns a definition's fields to its record.
func setFields(realm *dyn.Realm, obj *dyn.Object, fields []FieldDef, fns, objs map[string]*dyn.Object) error {
	for _, f := range fields {
		v, err := fieldValue(realm, f, fns, objs)
		if err != nil {
			return err
		}
		obj.Set(f.Name, v)
	}
	return nil
}

// fieldValue converts one field definition to a value.
func fieldValue(realm *dyn.Realm, f FieldDef, fns, objs map[string]*dyn.Object) (dyn.Value, error) {
	switch {
	case f.String != nil:
		return dyn.String(*f.String), nil
	case f.Number != nil:
		return dyn.Number(*f.Number), nil
	case f.Bool != nil:
		return dyn.Bool(*f.Bool), nil
	case f.Null:
		return dyn.Null(), nil
	case f.Undefined:
		return dyn.Undefined(), nil
	case f.Ref != "":
		return resolve(realm, f.Ref, fns, objs)
	}
	return dyn.Undefined(), errors.New(errors.ErrCodeInvalidModel, "field %q sets no value form", f.Name)
}

// resolve maps a reference to its value: a declared definition, a built-in
// callable, or a prototype reference to either.
func resolve(realm *dyn.Realm, ref string, fns, objs map[string]*dyn.Object) (dyn.Value, error) {
	if base, ok := strings.CutSuffix(ref, ".prototype"); ok {
		switch base {
		case "Object":
			return realm.ObjectProto().Value(), nil
		case "Function":
			return realm.FunctionProto().Value(), nil
		}
		if fn, ok := fns[base]; ok {
			return fn.LinkTarget(), nil
		}
		return dyn.Undefined(), errors.New(errors.ErrCodeUnknownRef, "unknown reference %q", ref)
	}
	switch ref {
	case "Object":
		return realm.ObjectFunc().Value(), nil
	case "Function":
		return realm.FunctionFunc().Value(), nil
	}
	if fn, ok := fns[ref]; ok {
		return fn.Value(), nil
	}
	if obj, ok := objs[ref]; ok {
		return obj.Value(), nil
	}
	return dyn.Undefined(), errors.New(errors.ErrCodeUnknownRef, "unknown reference %q", ref)
}

// callableFor returns the record backing a class reference, which Validate
// guarantees is a declared function or a built-in callable.
func callableFor(realm *dyn.Realm, class string, fns map[string]*dyn.Object) *dyn.Object {
	switch class {
	case "Object":
		return realm.ObjectFunc()
	case "Function":
		return realm.FunctionFunc()
	}
	return fns[class]
}
