package fixture

// Model is the declarative description of an object playground: the
// functions and objects to create, their fields, and which definition the
// graph walk starts from. Definitions are arrays rather than maps so that
// declaration order survives every format round-trip; field order in
// particular is visible in the output.
type Model struct {
	// Root names the definition the walk starts from. Empty selects the
	// first object definition, falling back to the first function.
	Root string `toml:"root" yaml:"root" json:"root,omitempty"`

	Functions []FunctionDef `toml:"function" yaml:"functions" json:"functions,omitempty"`
	Objects   []ObjectDef   `toml:"object" yaml:"objects" json:"objects,omitempty"`
}

// FunctionDef declares a callable. The definition name is how other
// definitions reference it; unless Anonymous is set it doubles as the
// callable's declared name.
type FunctionDef struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// Anonymous creates the callable with an empty declared name. The
	// definition name still works as a reference target.
	Anonymous bool `toml:"anonymous,omitempty" yaml:"anonymous,omitempty" json:"anonymous,omitempty"`

	// Prototype retargets the callable's link target to the referenced
	// value, replacing the fresh record it is created with.
	Prototype string `toml:"prototype,omitempty" yaml:"prototype,omitempty" json:"prototype,omitempty"`

	Fields []FieldDef `toml:"field" yaml:"fields" json:"fields,omitempty"`
}

// ObjectDef declares a record. At most one of Class, Proto, and Orphan may
// be set; with none set the record gets the default supertype.
type ObjectDef struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// Class constructs the record as an instance of the named function: its
	// supertype becomes that function's link target.
	Class string `toml:"class,omitempty" yaml:"class,omitempty" json:"class,omitempty"`

	// Proto sets the supertype to the referenced value directly.
	Proto string `toml:"proto,omitempty" yaml:"proto,omitempty" json:"proto,omitempty"`

	// Orphan creates the record with no supertype at all.
	Orphan bool `toml:"orphan,omitempty" yaml:"orphan,omitempty" json:"orphan,omitempty"`

	Fields []FieldDef `toml:"field" yaml:"fields" json:"fields,omitempty"`
}

// FieldDef declares one own field. Exactly one value form must be set:
// String, Number, Bool, Null, Undefined, or Ref.
type FieldDef struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	String    *string  `toml:"string,omitempty" yaml:"string,omitempty" json:"string,omitempty"`
	Number    *float64 `toml:"number,omitempty" yaml:"number,omitempty" json:"number,omitempty"`
	Bool      *bool    `toml:"bool,omitempty" yaml:"bool,omitempty" json:"bool,omitempty"`
	Null      bool     `toml:"null,omitempty" yaml:"null,omitempty" json:"null,omitempty"`
	Undefined bool     `toml:"undefined,omitempty" yaml:"undefined,omitempty" json:"undefined,omitempty"`
	Ref       string   `toml:"ref,omitempty" yaml:"ref,omitempty" json:"ref,omitempty"`
}

// valueForms counts how many value forms the field sets.
func (f FieldDef) valueForms() int {
	n := 0
	if f.String != nil {
		n++
	}
	if f.Number != nil {
		n++
	}
	if f.Bool != nil {
		n++
	}
	if f.Null {
		n++
	}
	if f.Undefined {
		n++
	}
	if f.Ref != "" {
		n++
	}
	return n
}
