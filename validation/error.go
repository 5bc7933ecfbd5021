package validation

import "strings"

// Error reports one or more failed field validations.
type Error struct {
	// Message is the joined, human-readable summary.
	Message string
	// Fields lists the individual field failures.
	Fields []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "validation: " + e.Message
}

// newError joins field failures into a single Error value.
func newError(fields []FieldError) *Error {
	messages := make([]string, len(fields))
	for i, f := range fields {
		messages[i] = f.Field + ": " + f.Message
	}
	return &Error{
		Message: strings.Join(messages, "; "),
		Fields:  fields,
	}
}
