package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/davispeixoto/object-playground/pkg/errors"
)

// Loader parses model definitions from a serialized format.
type Loader interface {
	// Parse decodes a model from raw bytes.
	Parse(data []byte) (*Model, error)
	// Supports reports whether this loader handles the given filename.
	Supports(filename string) bool
	// Format returns the format identifier (e.g., "toml").
	Format() string
}

// Loaders returns the default loader set in detection order.
func Loaders() []Loader {
	return []Loader{&TOML{}, &YAML{}, &JSON{}}
}

// Detect finds a loader that supports the given file path.
// Returns an UNSUPPORTED_FORMAT error if no loader matches.
func Detect(path string, loaders ...Loader) (Loader, error) {
	name := filepath.Base(path)
	for _, l := range loaders {
		if l.Supports(name) {
			return l, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported model format: %s", name)
}

// ByFormat finds a loader by its format identifier.
// Returns an UNSUPPORTED_FORMAT error if no loader matches.
func ByFormat(format string, loaders ...Loader) (Loader, error) {
	for _, l := range loaders {
		if l.Format() == format {
			return l, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported model format: %s", format)
}

// Load reads the model file at path, detecting the format from the filename.
func Load(path string) (*Model, error) {
	loader, err := Detect(path, Loaders()...)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read model %s", path)
	}
	return loader.Parse(data)
}

// TOML loads models from TOML files.
type TOML struct{}

func (l *TOML) Format() string { return "toml" }

func (l *TOML) Supports(name string) bool { return strings.HasSuffix(name, ".toml") }

func (l *TOML) Parse(data []byte) (*Model, error) {
	var m Model
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse toml model")
	}
	return &m, nil
}

// YAML loads models from YAML files.
type YAML struct{}

func (l *YAML) Format() string { return "yaml" }

func (l *YAML) Supports(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func (l *YAML) Parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse yaml model")
	}
	return &m, nil
}

// JSON loads models from JSON files.
type JSON struct{}

func (l *JSON) Format() string { return "json" }

func (l *JSON) Supports(name string) bool { return strings.HasSuffix(name, ".json") }

func (l *JSON) Parse(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse json model")
	}
	return &m, nil
}
