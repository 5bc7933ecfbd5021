package codec

import (
	"github.com/kbukum/vcd/schema"
)

// Codec serializes and deserializes values against a schema registry.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	registry *schema.Registry
}

// New returns a Codec backed by the given registry.
func New(registry *schema.Registry) *Codec {
	return &Codec{registry: registry}
}

// Registry returns the schema registry the codec resolves named types against.
func (c *Codec) Registry() *schema.Registry {
	return c.registry
}
