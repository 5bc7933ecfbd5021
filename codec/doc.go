// Package codec converts between wire JSON and typed domain objects,
// driven entirely by the schema registry's static field maps.
//
// Serialization walks a value by the rules of the wire format: nil stays
// nil, primitives pass through, dates render as ISO-8601, enums render as
// their underlying scalar, and objects emit only their set fields keyed by
// wire key. Absent fields are omitted, never null.
//
// Deserialization is target-driven: the caller names a schema.TypeRef and
// the codec decodes into it, resolving named types through the registry.
// Polymorphic families dispatch on the discriminator key in the payload.
// Primitive targets are lenient: a payload that does not fit a primitive
// slot comes back unchanged instead of failing, which tolerates the
// loosely-typed fields some endpoints still return.
//
// JSON bytes are produced and parsed with goccy/go-json.
package codec
