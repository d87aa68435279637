// Package validation provides the error type reported when a wire document
// does not match the schema of the model it is decoded into.
package validation

import (
	"fmt"

	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/jsonpointer"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTypeMismatch is the cause of errors for values of the wrong wire kind.
	ErrTypeMismatch = errors.Error("type mismatch")
	// ErrMissingField is the cause of errors for absent required fields.
	ErrMissingField = errors.Error("missing field")
	// ErrInvalidValue is the cause of errors for values outside the allowed set.
	ErrInvalidValue = errors.Error("invalid value")
)

// Severity of a validation finding. Lower values sort first.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Error represents a validation error and the location in the document where it occurred.
type Error struct {
	UnderlyingError error
	Severity        Severity
	Rule            string
	// Pointer locates the offending value within the validated document.
	Pointer jsonpointer.JSONPointer
	// Node is the source node of the offending value, nil for in-memory documents.
	Node *yaml.Node
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	msg := "<nil>"
	if e.UnderlyingError != nil {
		msg = e.UnderlyingError.Error()
	}
	if e.Pointer != "" {
		msg = string(e.Pointer) + ": " + msg
	}
	return fmt.Sprintf("[%d:%d] %s", e.GetLineNumber(), e.GetColumnNumber(), msg)
}

func (e *Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the source line of the error or -1 if unknown.
func (e *Error) GetLineNumber() int {
	if e == nil || e.Node == nil {
		return -1
	}
	return e.Node.Line
}

// GetColumnNumber returns the source column of the error or -1 if unknown.
func (e *Error) GetColumnNumber() int {
	if e == nil || e.Node == nil {
		return -1
	}
	return e.Node.Column
}

// NewValidationError creates an error level finding for err at node.
func NewValidationError(rule string, err error, pointer jsonpointer.JSONPointer, node *yaml.Node) *Error {
	return &Error{
		UnderlyingError: err,
		Severity:        SeverityError,
		Rule:            rule,
		Pointer:         pointer,
		Node:            node,
	}
}

func NewTypeMismatchError(pointer jsonpointer.JSONPointer, node *yaml.Node, format string, args ...any) *Error {
	return NewValidationError(RuleValidationTypeMismatch, ErrTypeMismatch.Wrapf(format, args...), pointer, node)
}

func NewMissingFieldError(pointer jsonpointer.JSONPointer, node *yaml.Node, format string, args ...any) *Error {
	return NewValidationError(RuleValidationRequiredField, ErrMissingField.Wrapf(format, args...), pointer, node)
}

func NewValueError(pointer jsonpointer.JSONPointer, node *yaml.Node, format string, args ...any) *Error {
	return NewValidationError(RuleValidationAllowedValues, ErrInvalidValue.Wrapf(format, args...), pointer, node)
}
