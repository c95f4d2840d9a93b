package dyn

// ConstructorField is the name of the back-pointing own field a prototype
// record carries to identify the callable that produces its instances.
const ConstructorField = "constructor"

// field is one own property. Fields keep their insertion position for the
// lifetime of the record, even when re-assigned.
type field struct {
	name  string
	value Value
}

// Object is a record: an ordered set of own fields plus an optional supertype
// link. Callable records additionally carry a declared name and a link target.
// Objects are created through a [Realm] and are not safe for concurrent
// mutation.
type Object struct {
	realm    *Realm
	proto    *Object
	fields   []field
	index    map[string]int
	callable bool
	name     string
	link     Value
}

// Value wraps the record as a Value of the appropriate kind.
func (o *Object) Value() Value {
	if o == nil {
		return Undefined()
	}
	k := KindObject
	if o.callable {
		k = KindCallable
	}
	return Value{kind: k, obj: o}
}

// Realm returns the realm this record belongs to.
func (o *Object) Realm() *Realm { return o.realm }

// Proto returns the supertype record, or nil when the record has none.
func (o *Object) Proto() *Object { return o.proto }

// SetProto replaces the supertype link. A nil proto detaches the record from
// any supertype.
func (o *Object) SetProto(p *Object) { o.proto = p }

// IsCallable reports whether the record is a callable.
func (o *Object) IsCallable() bool { return o.callable }

// Name returns the callable's declared name. Empty for anonymous callables
// and for plain records.
func (o *Object) Name() string { return o.name }

// LinkTarget returns the callable's link target: the value its constructed
// instances use as supertype. Undefined for plain records.
func (o *Object) LinkTarget() Value { return o.link }

// SetLinkTarget retargets the callable's link. Any value is accepted,
// including non-records; instance construction falls back to the realm
// default when the target is not a record.
func (o *Object) SetLinkTarget(v Value) { o.link = v }

// Set assigns an own field. New names append in enumeration order;
// re-assigned names keep their original position.
func (o *Object) Set(name string, v Value) {
	if i, ok := o.index[name]; ok {
		o.fields[i].value = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[name] = len(o.fields)
	o.fields = append(o.fields, field{name: name, value: v})
}

// Delete removes an own field if present. Later fields shift up one position.
func (o *Object) Delete(name string) {
	i, ok := o.index[name]
	if !ok {
		return
	}
	o.fields = append(o.fields[:i], o.fields[i+1:]...)
	delete(o.index, name)
	for j := i; j < len(o.fields); j++ {
		o.index[o.fields[j].name] = j
	}
}

// Own returns the named own field. Inherited fields are not consulted.
func (o *Object) Own(name string) (Value, bool) {
	if i, ok := o.index[name]; ok {
		return o.fields[i].value, true
	}
	return Undefined(), false
}

// HasOwn reports whether the record carries the named own field.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.index[name]
	return ok
}

// Lookup resolves the named field through the supertype chain, nearest
// record first.
func (o *Object) Lookup(name string) (Value, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.Own(name); ok {
			return v, true
		}
	}
	return Undefined(), false
}

// Len returns the number of own fields.
func (o *Object) Len() int { return len(o.fields) }

// Each calls fn for every own field in enumeration order.
func (o *Object) Each(fn func(name string, v Value)) {
	for _, f := range o.fields {
		fn(f.name, f.value)
	}
}

// Names returns the own field names in enumeration order.
func (o *Object) Names() []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.name
	}
	return names
}
