package dyn

import (
	"math"
	"slices"
	"testing"
)

func TestValue_Same(t *testing.T) {
	r := NewRealm()
	shared := r.NewObject()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same record", shared.Value(), shared.Value(), true},
		{"distinct empty records", r.NewObject().Value(), r.NewObject().Value(), false},
		{"record vs primitive", shared.Value(), Number(1), false},
		{"equal numbers", Number(42), Number(42), true},
		{"different numbers", Number(1), Number(2), false},
		{"nan is never same", Number(math.NaN()), Number(math.NaN()), false},
		{"equal strings", String("a"), String("a"), true},
		{"equal bools", Bool(true), Bool(true), true},
		{"bool vs number", Bool(true), Number(1), false},
		{"undefined", Undefined(), Undefined(), true},
		{"null", Null(), Null(), true},
		{"null vs undefined", Null(), Undefined(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Same(tt.b); got != tt.want {
				t.Errorf("Same() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindUndefined, KindNull, KindBool, KindNumber, KindString, KindCallable, KindObject} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != k {
			t.Errorf("round trip = %v, want %v", back, k)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) = nil, want error")
	}
}

func TestObject_FieldOrder(t *testing.T) {
	r := NewRealm()
	o := r.NewObject()
	o.Set("a", Number(1))
	o.Set("b", Number(2))
	o.Set("c", Number(3))
	o.Set("a", Number(10)) // re-assignment keeps position

	want := []string{"a", "b", "c"}
	if got := o.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	v, ok := o.Own("a")
	if !ok || v.Num() != 10 {
		t.Errorf("Own(a) = %v, %v, want 10, true", v, ok)
	}
}

func TestObject_Delete(t *testing.T) {
	r := NewRealm()
	o := r.NewObject()
	o.Set("a", Number(1))
	o.Set("b", Number(2))
	o.Set("c", Number(3))

	o.Delete("b")

	want := []string{"a", "c"}
	if got := o.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if o.HasOwn("b") {
		t.Error("HasOwn(b) = true after Delete, want false")
	}
	if v, ok := o.Own("c"); !ok || v.Num() != 3 {
		t.Errorf("Own(c) = %v, %v, want 3, true", v, ok)
	}
}

func TestObject_Lookup(t *testing.T) {
	r := NewRealm()
	parent := r.NewObject()
	parent.Set("inherited", String("up"))
	child := r.NewObject()
	child.SetProto(parent)
	child.Set("own", String("down"))

	if v, ok := child.Lookup("own"); !ok || v.Str() != "down" {
		t.Errorf("Lookup(own) = %v, %v, want down, true", v, ok)
	}
	if v, ok := child.Lookup("inherited"); !ok || v.Str() != "up" {
		t.Errorf("Lookup(inherited) = %v, %v, want up, true", v, ok)
	}
	if child.HasOwn("inherited") {
		t.Error("HasOwn(inherited) = true, want false")
	}
	if _, ok := child.Lookup("missing"); ok {
		t.Error("Lookup(missing) = true, want false")
	}
}

func TestRealm_BuiltinWiring(t *testing.T) {
	r := NewRealm()

	if r.ObjectProto().Proto() != nil {
		t.Error("Object.prototype has a supertype, want none")
	}
	if r.FunctionProto().Proto() != r.ObjectProto() {
		t.Error("Function.prototype supertype != Object.prototype")
	}
	if r.FunctionProto().IsCallable() {
		t.Error("Function.prototype is callable, want plain record")
	}

	ctor, ok := r.ObjectProto().Own(ConstructorField)
	if !ok || ctor.Ref() != r.ObjectFunc() {
		t.Error("Object.prototype.constructor does not point at Object")
	}
	ctor, ok = r.FunctionProto().Own(ConstructorField)
	if !ok || ctor.Ref() != r.FunctionFunc() {
		t.Error("Function.prototype.constructor does not point at Function")
	}

	if got := r.FunctionFunc().LinkTarget().Ref(); got != r.FunctionProto() {
		t.Error("Function's link target != Function.prototype")
	}
	if got := r.ObjectFunc().LinkTarget().Ref(); got != r.ObjectProto() {
		t.Error("Object's link target != Object.prototype")
	}
	if !r.IsFunctionProto(r.FunctionProto().Value()) {
		t.Error("IsFunctionProto(Function.prototype) = false, want true")
	}
	if r.IsFunctionProto(r.ObjectProto().Value()) {
		t.Error("IsFunctionProto(Object.prototype) = true, want false")
	}
}

func TestRealm_NewFunction(t *testing.T) {
	r := NewRealm()
	fn := r.NewFunction("Point")

	if fn.Name() != "Point" {
		t.Errorf("Name() = %q, want %q", fn.Name(), "Point")
	}
	if fn.Proto() != r.FunctionProto() {
		t.Error("callable supertype != Function.prototype")
	}

	proto := fn.LinkTarget().Ref()
	if proto == nil {
		t.Fatal("link target is not a record")
	}
	if proto.Proto() != r.ObjectProto() {
		t.Error("fresh prototype's supertype != Object.prototype")
	}
	ctor, ok := proto.Own(ConstructorField)
	if !ok || ctor.Ref() != fn {
		t.Error("fresh prototype's constructor does not point back at the callable")
	}
}

func TestRealm_NewInstance(t *testing.T) {
	r := NewRealm()
	fn := r.NewFunction("Point")

	inst := r.NewInstance(fn)
	if inst.Proto() != fn.LinkTarget().Ref() {
		t.Error("instance supertype != callable's link target")
	}

	// Retargeted to a non-record: instances fall back to the default supertype.
	fn.SetLinkTarget(Number(5))
	inst2 := r.NewInstance(fn)
	if inst2.Proto() != r.ObjectProto() {
		t.Error("instance of retargeted callable != default supertype")
	}
}

func TestRealm_NewOrphan(t *testing.T) {
	r := NewRealm()
	o := r.NewOrphan()
	if o.Proto() != nil {
		t.Error("orphan has a supertype, want none")
	}
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
}
