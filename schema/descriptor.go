package schema

import (
	"fmt"
	"time"
)

// Object is implemented by every catalog-registered domain type.
type Object interface {
	// TypeName returns the catalog name of the object's type.
	TypeName() string
}

// Enum is implemented by enumerated types. EnumValue returns the underlying
// scalar that appears on the wire, not the symbolic member name.
type Enum interface {
	EnumValue() any
}

// Descriptor describes one named type in the catalog.
type Descriptor struct {
	// Name is the catalog name, also the discriminator value that selects
	// this type within a polymorphic family.
	Name string
	// Base names the single base type, or is empty.
	Base string
	// Discriminator is the payload key that selects a concrete subtype.
	// Set on the family's base descriptor only.
	Discriminator string
	// New returns a fresh instance. Nil for abstract bases and enums.
	New func() Object
	// Fields lists the type's own fields; base fields are merged by the
	// registry.
	Fields []Field
	// Enum is non-nil for enumerated types.
	Enum *EnumSpec
}

// EnumSpec describes an enumerated type's value set.
type EnumSpec struct {
	// Values lists the allowed underlying scalar values.
	Values []any
	// FromValue returns the member whose underlying value equals raw.
	FromValue func(raw any) (any, bool)
}

// Field describes one serializable field: the in-memory name, the wire key,
// the declared type, and statically written accessors.
type Field struct {
	Name string
	Key  string
	Type TypeRef
	// Get returns the field's value and whether it is set.
	Get func(Object) (any, bool)
	// Set assigns a decoded value to the field.
	Set func(Object, any) error
}

// FieldTypeError reports a decoded value that does not fit a field's
// declared type.
type FieldTypeError struct {
	Field string
	Want  string
	Got   any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: cannot assign %T (want %s)", e.Field, e.Got, e.Want)
}

// EnumOf builds the descriptor for an enumerated type from its members.
func EnumOf[E Enum](name string, members ...E) *Descriptor {
	values := make([]any, len(members))
	for i, m := range members {
		values[i] = m.EnumValue()
	}
	return &Descriptor{
		Name: name,
		Enum: &EnumSpec{
			Values: values,
			FromValue: func(raw any) (any, bool) {
				for _, m := range members {
					if m.EnumValue() == raw {
						return m, true
					}
				}
				return nil, false
			},
		},
	}
}

// StringField binds an optional string field.
func StringField[T Object](name, key string, access func(T) **string) Field {
	return Field{
		Name: name, Key: key, Type: String(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			s, ok := v.(string)
			if !ok {
				return &FieldTypeError{Field: name, Want: "string", Got: v}
			}
			*access(o.(T)) = &s
			return nil
		},
	}
}

// IntField binds an optional integer field.
func IntField[T Object](name, key string, access func(T) **int) Field {
	return Field{
		Name: name, Key: key, Type: Int(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			n, ok := v.(int)
			if !ok {
				return &FieldTypeError{Field: name, Want: "int", Got: v}
			}
			*access(o.(T)) = &n
			return nil
		},
	}
}

// FloatField binds an optional floating-point field.
func FloatField[T Object](name, key string, access func(T) **float64) Field {
	return Field{
		Name: name, Key: key, Type: Float(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			f, ok := v.(float64)
			if !ok {
				return &FieldTypeError{Field: name, Want: "float64", Got: v}
			}
			*access(o.(T)) = &f
			return nil
		},
	}
}

// BoolField binds an optional boolean field.
func BoolField[T Object](name, key string, access func(T) **bool) Field {
	return Field{
		Name: name, Key: key, Type: Bool(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			b, ok := v.(bool)
			if !ok {
				return &FieldTypeError{Field: name, Want: "bool", Got: v}
			}
			*access(o.(T)) = &b
			return nil
		},
	}
}

// TimeField binds an optional offset-aware timestamp field.
func TimeField[T Object](name, key string, access func(T) **time.Time) Field {
	return Field{
		Name: name, Key: key, Type: DateTime(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			ts, ok := v.(time.Time)
			if !ok {
				return &FieldTypeError{Field: name, Want: "time.Time", Got: v}
			}
			*access(o.(T)) = &ts
			return nil
		},
	}
}

// DateField binds an optional calendar-date field.
func DateField[T Object](name, key string, access func(T) **Date) Field {
	return Field{
		Name: name, Key: key, Type: DateOnly(),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			d, ok := v.(Date)
			if !ok {
				return &FieldTypeError{Field: name, Want: "schema.Date", Got: v}
			}
			*access(o.(T)) = &d
			return nil
		},
	}
}

// EnumField binds an optional enumerated field declared as the named enum
// type.
func EnumField[T Object, E Enum](name, key, enumName string, access func(T) **E) Field {
	return Field{
		Name: name, Key: key, Type: Named(enumName),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		Set: func(o Object, v any) error {
			e, ok := v.(E)
			if !ok {
				return &FieldTypeError{Field: name, Want: enumName, Got: v}
			}
			*access(o.(T)) = &e
			return nil
		},
	}
}

// ObjectField binds an optional nested object field declared as the named
// catalog type.
func ObjectField[T Object, V any](name, key, typeName string, access func(T) **V) Field {
	return Field{
		Name: name, Key: key, Type: Named(typeName),
		Get: func(o Object) (any, bool) {
			p := access(o.(T))
			if *p == nil {
				return nil, false
			}
			return *p, true
		},
		Set: func(o Object, v any) error {
			pv, ok := v.(*V)
			if !ok {
				return &FieldTypeError{Field: name, Want: typeName, Got: v}
			}
			*access(o.(T)) = pv
			return nil
		},
	}
}

// ObjectListField binds an optional list of nested objects.
func ObjectListField[T Object, V any](name, key, elemName string, access func(T) *[]*V) Field {
	return Field{
		Name: name, Key: key, Type: ListOf(Named(elemName)),
		Get: func(o Object) (any, bool) {
			s := *access(o.(T))
			if s == nil {
				return nil, false
			}
			out := make([]any, len(s))
			for i, e := range s {
				out[i] = e
			}
			return out, true
		},
		Set: func(o Object, v any) error {
			xs, ok := v.([]any)
			if !ok {
				return &FieldTypeError{Field: name, Want: "listOf(" + elemName + ")", Got: v}
			}
			s := make([]*V, len(xs))
			for i, x := range xs {
				e, ok := x.(*V)
				if !ok {
					return &FieldTypeError{Field: name, Want: elemName, Got: x}
				}
				s[i] = e
			}
			*access(o.(T)) = s
			return nil
		},
	}
}

// VariantListField binds an optional list of a polymorphic family. V is the
// interface the family's members implement; baseName is the registered name
// of the family's base type, whose discriminator selects the concrete
// element types.
func VariantListField[T Object, V any](name, key, baseName string, access func(T) *[]V) Field {
	return Field{
		Name: name, Key: key, Type: ListOf(Named(baseName)),
		Get: func(o Object) (any, bool) {
			s := *access(o.(T))
			if s == nil {
				return nil, false
			}
			out := make([]any, len(s))
			for i, e := range s {
				out[i] = e
			}
			return out, true
		},
		Set: func(o Object, v any) error {
			xs, ok := v.([]any)
			if !ok {
				return &FieldTypeError{Field: name, Want: "listOf(" + baseName + ")", Got: v}
			}
			s := make([]V, len(xs))
			for i, x := range xs {
				e, ok := x.(V)
				if !ok {
					return &FieldTypeError{Field: name, Want: baseName, Got: x}
				}
				s[i] = e
			}
			*access(o.(T)) = s
			return nil
		},
	}
}

// StringListField binds an optional list of strings.
func StringListField[T Object](name, key string, access func(T) *[]string) Field {
	return Field{
		Name: name, Key: key, Type: ListOf(String()),
		Get: func(o Object) (any, bool) {
			s := *access(o.(T))
			if s == nil {
				return nil, false
			}
			out := make([]any, len(s))
			for i, e := range s {
				out[i] = e
			}
			return out, true
		},
		Set: func(o Object, v any) error {
			xs, ok := v.([]any)
			if !ok {
				return &FieldTypeError{Field: name, Want: "listOf(string)", Got: v}
			}
			s := make([]string, len(xs))
			for i, x := range xs {
				e, ok := x.(string)
				if !ok {
					return &FieldTypeError{Field: name, Want: "string", Got: x}
				}
				s[i] = e
			}
			*access(o.(T)) = s
			return nil
		},
	}
}

// MapField binds an optional string-keyed map field with the given value
// type.
func MapField[T Object](name, key string, value TypeRef, access func(T) *map[string]any) Field {
	return Field{
		Name: name, Key: key, Type: MapOf(value),
		Get: func(o Object) (any, bool) {
			m := *access(o.(T))
			if m == nil {
				return nil, false
			}
			return m, true
		},
		Set: func(o Object, v any) error {
			m, ok := v.(map[string]any)
			if !ok {
				return &FieldTypeError{Field: name, Want: "mapOf(string, " + value.String() + ")", Got: v}
			}
			*access(o.(T)) = m
			return nil
		},
	}
}
