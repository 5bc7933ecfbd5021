package schema

import "fmt"

// Kind discriminates the shape of a TypeRef.
type Kind int

const (
	KindInvalid Kind = iota
	KindAny
	KindBool
	KindInt
	KindFloat
	KindString
	KindDate
	KindDateTime
	KindNamed
	KindList
	KindMap
)

// TypeRef is a declared field or target type: a primitive, a named catalog
// type, or a parametrized collection. The zero value means "no type".
type TypeRef struct {
	Kind Kind
	// Name is set for KindNamed.
	Name string
	// Elem is the element type for KindList and the value type for KindMap.
	// Map keys are always strings, as on the wire.
	Elem *TypeRef
}

// Any returns the opaque passthrough type.
func Any() TypeRef { return TypeRef{Kind: KindAny} }

// Bool returns the boolean primitive type.
func Bool() TypeRef { return TypeRef{Kind: KindBool} }

// Int returns the integer primitive type.
func Int() TypeRef { return TypeRef{Kind: KindInt} }

// Float returns the floating-point primitive type.
func Float() TypeRef { return TypeRef{Kind: KindFloat} }

// String returns the string primitive type.
func String() TypeRef { return TypeRef{Kind: KindString} }

// DateOnly returns the calendar-date type (YYYY-MM-DD on the wire).
func DateOnly() TypeRef { return TypeRef{Kind: KindDate} }

// DateTime returns the timestamp type (offset-aware ISO-8601 on the wire).
func DateTime() TypeRef { return TypeRef{Kind: KindDateTime} }

// Named returns a reference to a catalog type.
func Named(name string) TypeRef { return TypeRef{Kind: KindNamed, Name: name} }

// ListOf returns a list type with the given element type.
func ListOf(elem TypeRef) TypeRef { return TypeRef{Kind: KindList, Elem: &elem} }

// MapOf returns a string-keyed map type with the given value type.
func MapOf(value TypeRef) TypeRef { return TypeRef{Kind: KindMap, Elem: &value} }

// IsZero reports whether t is the zero TypeRef.
func (t TypeRef) IsZero() bool { return t.Kind == KindInvalid }

// IsPrimitive reports whether t is one of the primitive scalar kinds.
func (t TypeRef) IsPrimitive() bool {
	switch t.Kind {
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
	return false
}

// String renders the type expression, e.g. "listOf(TaskType)".
func (t TypeRef) String() string {
	switch t.Kind {
	case KindInvalid:
		return "<none>"
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindDateTime:
		return "dateTime"
	case KindNamed:
		return t.Name
	case KindList:
		return fmt.Sprintf("listOf(%s)", t.Elem)
	case KindMap:
		return fmt.Sprintf("mapOf(string, %s)", t.Elem)
	}
	return fmt.Sprintf("<kind %d>", int(t.Kind))
}
