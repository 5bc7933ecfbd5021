package codec

import "fmt"

// DeserializationError reports a payload that cannot be decoded into its
// target type: malformed JSON, a missing discriminator, an enum value
// outside the member set, or a shape mismatch on a structured target.
type DeserializationError struct {
	Target  string // rendered target type, when known
	Message string
	Err     error
}

func (e *DeserializationError) Error() string {
	msg := "codec: cannot deserialize"
	if e.Target != "" {
		msg += " into " + e.Target
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func deserializationErrorf(target, format string, args ...any) *DeserializationError {
	return &DeserializationError{Target: target, Message: fmt.Sprintf(format, args...)}
}

// SerializationError reports a value the codec cannot render for the wire,
// such as an unregistered object type or an unsupported Go type.
type SerializationError struct {
	Message string
	Err     error
}

func (e *SerializationError) Error() string {
	msg := "codec: cannot serialize"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func serializationErrorf(format string, args ...any) *SerializationError {
	return &SerializationError{Message: fmt.Sprintf(format, args...)}
}
