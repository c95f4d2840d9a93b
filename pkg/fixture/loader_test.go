package fixture

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/davispeixoto/object-playground/pkg/errors"
)

const tomlModel = `root = "origin"

[[function]]
name = "Point"

[[function.field]]
name = "dims"
number = 2.0

[[object]]
name = "origin"
class = "Point"

[[object.field]]
name = "x"
number = 0.0

[[object.field]]
name = "y"
number = 0.0

[[object.field]]
name = "label"
string = "origin"
`

const yamlModel = `root: origin
functions:
  - name: Point
    fields:
      - name: dims
        number: 2.0
objects:
  - name: origin
    class: Point
    fields:
      - name: x
        number: 0.0
      - name: y
        number: 0.0
      - name: label
        string: origin
`

const jsonModel = `{
  "root": "origin",
  "functions": [
    {
      "name": "Point",
      "fields": [{"name": "dims", "number": 2.0}]
    }
  ],
  "objects": [
    {
      "name": "origin",
      "class": "Point",
      "fields": [
        {"name": "x", "number": 0.0},
        {"name": "y", "number": 0.0},
        {"name": "label", "string": "origin"}
      ]
    }
  ]
}
`

// checkPointModel asserts the model every format fixture above describes,
// field order included.
func checkPointModel(t *testing.T, m *Model) {
	t.Helper()

	if m.Root != "origin" {
		t.Errorf("Root = %q, want %q", m.Root, "origin")
	}
	if len(m.Functions) != 1 || len(m.Objects) != 1 {
		t.Fatalf("got %d functions and %d objects, want 1 and 1", len(m.Functions), len(m.Objects))
	}

	fn := m.Functions[0]
	if fn.Name != "Point" {
		t.Errorf("function name = %q, want %q", fn.Name, "Point")
	}
	if len(fn.Fields) != 1 || fn.Fields[0].Name != "dims" {
		t.Fatalf("function fields = %+v, want a single dims field", fn.Fields)
	}
	if fn.Fields[0].Number == nil || *fn.Fields[0].Number != 2 {
		t.Errorf("dims = %v, want 2", fn.Fields[0].Number)
	}

	obj := m.Objects[0]
	if obj.Name != "origin" || obj.Class != "Point" {
		t.Errorf("object = %q class %q, want %q class %q", obj.Name, obj.Class, "origin", "Point")
	}
	names := make([]string, len(obj.Fields))
	for i, f := range obj.Fields {
		names[i] = f.Name
	}
	if want := []string{"x", "y", "label"}; !slices.Equal(names, want) {
		t.Errorf("field order = %v, want %v", names, want)
	}
	if obj.Fields[2].String == nil || *obj.Fields[2].String != "origin" {
		t.Errorf("label = %v, want %q", obj.Fields[2].String, "origin")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		loader Loader
		doc    string
	}{
		{"toml", &TOML{}, tomlModel},
		{"yaml", &YAML{}, yamlModel},
		{"json", &JSON{}, jsonModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.loader.Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			checkPointModel(t, m)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		loader Loader
		doc    string
	}{
		{"toml", &TOML{}, "root = [unclosed"},
		{"yaml", &YAML{}, "root: [unclosed"},
		{"json", &JSON{}, "{unquoted}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"shapes.toml", "toml"},
		{"shapes.yaml", "yaml"},
		{"shapes.yml", "yaml"},
		{"shapes.json", "json"},
		{"shapes.txt", ""},
		{"toml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := ""
			for _, l := range Loaders() {
				if l.Supports(tt.filename) {
					got = l.Format()
					break
				}
			}
			if got != tt.want {
				t.Errorf("supported by %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path       string
		wantFormat string
		wantErr    bool
	}{
		{"shapes.toml", "toml", false},
		{"/some/dir/shapes.yaml", "yaml", false},
		{"model.yml", "yaml", false},
		{"playground.json", "json", false},
		{"model.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := Detect(tt.path, Loaders()...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Detect() expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
					t.Errorf("error code = %v, want UNSUPPORTED_FORMAT", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() unexpected error: %v", err)
			}
			if l.Format() != tt.wantFormat {
				t.Errorf("Format() = %q, want %q", l.Format(), tt.wantFormat)
			}
		})
	}
}

func TestByFormat(t *testing.T) {
	l, err := ByFormat("yaml", Loaders()...)
	if err != nil {
		t.Fatalf("ByFormat() unexpected error: %v", err)
	}
	if l.Format() != "yaml" {
		t.Errorf("Format() = %q, want %q", l.Format(), "yaml")
	}

	if _, err := ByFormat("xml", Loaders()...); !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("ByFormat(xml) error code = %v, want UNSUPPORTED_FORMAT", errors.GetCode(err))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.toml")
	if err := os.WriteFile(path, []byte(tomlModel), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	checkPointModel(t, m)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}
