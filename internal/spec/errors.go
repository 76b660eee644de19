package spec

import "fmt"

// FormatError reports a malformed spec document: missing required keys,
// bad identifier shape, or duplicate field names.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid entity spec: " + e.Reason
}

// UnsupportedTypeError reports a field whose type is not in the registry.
type UnsupportedTypeError struct {
	Field string
	Type  string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q for field %q", e.Type, e.Field)
}

// RelationshipError reports a relationship whose required sub-fields are
// missing or contradictory.
type RelationshipError struct {
	Name   string
	Reason string
}

func (e *RelationshipError) Error() string {
	return fmt.Sprintf("invalid relationship %q: %s", e.Name, e.Reason)
}
