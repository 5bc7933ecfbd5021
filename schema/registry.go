package schema

import (
	"fmt"
	"sort"
)

// UnknownTypeError reports a type name with no registered descriptor, or a
// discriminator value naming no concrete type.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

// Registry is the read-only type catalog. Build it once with NewRegistry;
// lookups after that need no synchronization.
type Registry struct {
	byName map[string]*Descriptor
	merged map[string][]Field
}

// NewRegistry builds a registry from a descriptor set. It rejects duplicate
// names, dangling base references, inheritance cycles, and enums that
// declare fields, and precomputes every type's merged field list.
func NewRegistry(descriptors ...*Descriptor) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Descriptor, len(descriptors)),
		merged: make(map[string][]Field, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("schema: descriptor with empty name")
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate descriptor %q", d.Name)
		}
		if d.Enum != nil && (len(d.Fields) > 0 || d.Base != "" || d.New != nil) {
			return nil, fmt.Errorf("schema: enum %q cannot declare fields, a base, or a constructor", d.Name)
		}
		r.byName[d.Name] = d
	}
	for _, d := range r.byName {
		fields, err := r.buildFields(d)
		if err != nil {
			return nil, err
		}
		r.merged[d.Name] = fields
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for statically declared catalogs, where a
// construction error is a programming mistake.
func MustNewRegistry(descriptors ...*Descriptor) *Registry {
	r, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the descriptor registered under name.
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return d, nil
}

// FieldsOf returns d's full field list: base fields first, derived
// definitions overriding base definitions of the same name in place.
// The descriptor must come from this registry.
func (r *Registry) FieldsOf(d *Descriptor) []Field {
	return r.merged[d.Name]
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) buildFields(d *Descriptor) ([]Field, error) {
	chain := []*Descriptor{}
	seen := map[string]bool{}
	for cur := d; cur != nil; {
		if seen[cur.Name] {
			return nil, fmt.Errorf("schema: inheritance cycle through %q", cur.Name)
		}
		seen[cur.Name] = true
		chain = append(chain, cur)
		if cur.Base == "" {
			break
		}
		base, ok := r.byName[cur.Base]
		if !ok {
			return nil, fmt.Errorf("schema: type %q has unknown base %q", cur.Name, cur.Base)
		}
		if base.Enum != nil {
			return nil, fmt.Errorf("schema: type %q cannot extend enum %q", cur.Name, cur.Base)
		}
		cur = base
	}

	var fields []Field
	index := map[string]int{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Fields {
			if at, ok := index[f.Name]; ok {
				fields[at] = f
			} else {
				index[f.Name] = len(fields)
				fields = append(fields, f)
			}
		}
	}
	return fields, nil
}
