// Package jsonpointer provides JSONPointer an implementation of RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
// evaluated against wire values.
package jsonpointer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/values"
)

const (
	// ErrNotFound is returned when the target is not found.
	ErrNotFound = errors.Error("not found")
	// ErrInvalidPath is returned when the path does not match the shape of the source.
	ErrInvalidPath = errors.Error("invalid path")
	// ErrValidation is returned when the jsonpointer is invalid.
	ErrValidation = errors.Error("validation error")
)

// JSONPointer represents a JSON Pointer value as defined by RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
type JSONPointer string

// Root points at the whole document.
const Root JSONPointer = "/"

var tokenRegex = regexp.MustCompile("^(?:[\x00-\x2E\x30-\x7D\x7F-\uffff]|~[01])*$")

// Validate will validate the JSONPointer is valid as per RFC6901.
func (j JSONPointer) Validate() error {
	if _, err := j.Parts(); err != nil {
		return err
	}
	return nil
}

// Parts returns the unescaped reference tokens of the pointer. Both "" and "/"
// address the root and return no parts.
func (j JSONPointer) Parts() ([]string, error) {
	if j == "" || j == Root {
		return nil, nil
	}

	if !strings.HasPrefix(string(j), "/") {
		return nil, ErrValidation.Wrapf("jsonpointer must start with /: %s", string(j))
	}

	raw := strings.Split(strings.TrimPrefix(string(j), "/"), "/")
	parts := make([]string, 0, len(raw))

	for _, part := range raw {
		if !tokenRegex.MatchString(part) {
			return nil, ErrValidation.Wrapf("jsonpointer part %q must be a valid token: %s", part, string(j))
		}
		parts = append(parts, Unescape(part))
	}

	return parts, nil
}

// GetTarget will evaluate the JSONPointer against the source and return the target.
func GetTarget(source *values.Value, pointer JSONPointer) (*values.Value, error) {
	parts, err := pointer.Parts()
	if err != nil {
		return nil, err
	}

	current := source
	currentPath := ""

	for _, part := range parts {
		currentPath += "/" + Escape(part)

		switch current.Kind() {
		case values.KindMap:
			next, ok := current.Get(part)
			if !ok {
				return nil, ErrNotFound.Wrapf("key %s not found in map at %s", part, currentPath)
			}
			current = next
		case values.KindSequence:
			index, err := parseIndex(part)
			if err != nil {
				return nil, ErrInvalidPath.Wrapf("expected index, got %s at %s", part, currentPath)
			}
			next, ok := current.Index(index)
			if !ok {
				return nil, ErrNotFound.Wrapf("index %d out of range for array of length %d at %s", index, current.Len(), currentPath)
			}
			current = next
		default:
			return nil, ErrInvalidPath.Wrapf("cannot navigate into %s at %s", current.Kind(), currentPath)
		}
	}

	return current, nil
}

// parseIndex accepts the array-index grammar of RFC6901: "0" or a decimal
// without leading zeros. "-" refers to a nonexistent element and is rejected.
func parseIndex(part string) (int, error) {
	if part == "" || (len(part) > 1 && part[0] == '0') {
		return 0, fmt.Errorf("invalid index %q", part)
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid index %q", part)
		}
	}
	return strconv.Atoi(part)
}

// PartsToJSONPointer will convert the exploded parts of a JSONPointer to a JSONPointer.
func PartsToJSONPointer(parts []string) JSONPointer {
	if len(parts) == 0 {
		return Root
	}

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(Escape(part))
	}
	return JSONPointer(sb.String())
}

// Escape encodes a single reference token.
func Escape(part string) string {
	return strings.ReplaceAll(strings.ReplaceAll(part, "~", "~0"), "/", "~1")
}

// Unescape decodes a single reference token.
func Unescape(part string) string {
	return strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
}
