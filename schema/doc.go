// Package schema holds the static type catalog the codec is driven by.
//
// Every wire-mapped type is described by a Descriptor: its name, its single
// base type (if any), and an ordered field map binding in-memory field names
// to wire keys and declared types. Descriptors are plain data built from
// statically written accessor functions, so neither the registry nor the
// codec ever touches reflection.
//
// A Registry is assembled once from a descriptor set, validated (duplicate
// names, dangling base references, inheritance cycles), and is read-only
// afterwards; concurrent lookups need no locking.
//
// Field types are expressed as TypeRef values:
//
//	schema.String()                          // primitive
//	schema.Named("TaskType")                 // another catalog type
//	schema.ListOf(schema.Named("LinkType"))  // listOf(T)
//	schema.MapOf(schema.Any())               // mapOf(string, V)
//
// Polymorphic families register a base descriptor with a Discriminator key;
// the codec reads that key from the payload and resolves the concrete type
// by its value.
package schema
