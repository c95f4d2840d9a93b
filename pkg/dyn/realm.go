package dyn

// Realm owns one self-contained instance of the object system's built-in
// roots. Records from different realms never share built-ins, so the
// Function.prototype singleton check stays realm-local.
//
// A Realm is not safe for concurrent use while records are being created or
// mutated.
type Realm struct {
	objectProto  *Object
	funcProto    *Object
	objectFunc   *Object
	functionFunc *Object
}

// NewRealm creates a realm with its built-in roots wired:
// Object.prototype has no supertype, Function.prototype descends from it,
// the Object and Function callables descend from Function.prototype, and
// each prototype's own constructor field points back at its callable.
func NewRealm() *Realm {
	r := &Realm{}

	r.objectProto = &Object{realm: r}
	r.funcProto = &Object{realm: r, proto: r.objectProto}

	r.objectFunc = &Object{
		realm:    r,
		proto:    r.funcProto,
		callable: true,
		name:     "Object",
		link:     r.objectProto.Value(),
	}
	r.functionFunc = &Object{
		realm:    r,
		proto:    r.funcProto,
		callable: true,
		name:     "Function",
		link:     r.funcProto.Value(),
	}

	r.objectProto.Set(ConstructorField, r.objectFunc.Value())
	r.funcProto.Set(ConstructorField, r.functionFunc.Value())

	return r
}

// ObjectProto returns the default supertype record (Object.prototype).
func (r *Realm) ObjectProto() *Object { return r.objectProto }

// FunctionProto returns the root callable's link target (Function.prototype).
func (r *Realm) FunctionProto() *Object { return r.funcProto }

// ObjectFunc returns the built-in Object callable.
func (r *Realm) ObjectFunc() *Object { return r.objectFunc }

// FunctionFunc returns the built-in Function callable, the platform's
// root callable.
func (r *Realm) FunctionFunc() *Object { return r.functionFunc }

// IsFunctionProto reports whether v is this realm's Function.prototype
// singleton.
func (r *Realm) IsFunctionProto(v Value) bool {
	return v.Ref() != nil && v.Ref() == r.funcProto
}

// NewObject creates a plain record with the default supertype.
func (r *Realm) NewObject() *Object {
	return &Object{realm: r, proto: r.objectProto}
}

// NewOrphan creates a plain record with no supertype at all.
func (r *Realm) NewOrphan() *Object {
	return &Object{realm: r}
}

// NewFunction creates a callable with the given declared name (empty for
// anonymous). Its supertype is Function.prototype and it receives a fresh
// link-target record whose own constructor field points back at the callable.
func (r *Realm) NewFunction(name string) *Object {
	fn := &Object{
		realm:    r,
		proto:    r.funcProto,
		callable: true,
		name:     name,
	}
	proto := r.NewObject()
	proto.Set(ConstructorField, fn.Value())
	fn.link = proto.Value()
	return fn
}

// NewInstance creates a record as if constructed by fn: its supertype is fn's
// link target. When the link target has been retargeted to a non-record, the
// instance falls back to the default supertype.
func (r *Realm) NewInstance(fn *Object) *Object {
	obj := &Object{realm: r, proto: r.objectProto}
	if fn != nil {
		if target := fn.LinkTarget().Ref(); target != nil {
			obj.proto = target
		}
	}
	return obj
}
