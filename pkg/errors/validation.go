package errors

import (
	"strings"
	"unicode"
)

// ValidateDefName validates the name of a model definition (a function or an
// object). Definition names become reference targets, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No dots (reserved for prototype references like "Point.prototype")
//   - Maximum length of 128 characters
func ValidateDefName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidModel, "definition name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidModel, "definition name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidModel, "definition name contains control characters")
		}
	}

	if strings.Contains(name, ".") {
		return New(ErrCodeInvalidModel, "definition name cannot contain dots: %q", name)
	}

	return nil
}

// ValidateFieldName validates a field name within a definition. Field names
// are display labels rather than reference targets, so dots are allowed, but
// empty names and control characters are still rejected.
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidModel, "field name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidModel, "field name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidModel, "field name contains control characters")
		}
	}

	return nil
}

// ValidateRef validates the syntax of a reference to another definition or
// built-in. A reference is either a plain definition name or a prototype
// reference of the form "Name.prototype". Resolution against the model is
// done separately by the fixture package.
func ValidateRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidModel, "reference cannot be empty")
	}

	for _, r := range ref {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidModel, "reference contains control characters")
		}
	}

	if i := strings.IndexByte(ref, '.'); i >= 0 {
		if ref[i+1:] != "prototype" {
			return New(ErrCodeInvalidModel, "invalid reference %q (dotted references must end in .prototype)", ref)
		}
		if i == 0 {
			return New(ErrCodeInvalidModel, "invalid reference %q (missing name before .prototype)", ref)
		}
	}

	return nil
}
