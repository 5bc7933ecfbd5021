package codec

import (
	"bytes"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/kbukum/vcd/schema"
)

// Deserialize decodes a wire value (maps, slices, scalars as produced by a
// JSON parser) into the target type. Named types resolve through the
// registry; polymorphic families dispatch on their discriminator key.
func (c *Codec) Deserialize(wire any, target schema.TypeRef) (any, error) {
	if wire == nil {
		return nil, nil
	}
	switch target.Kind {
	case schema.KindAny:
		return wire, nil
	case schema.KindBool, schema.KindInt, schema.KindFloat, schema.KindString:
		return deserializePrimitive(wire, target), nil
	case schema.KindDate:
		s, ok := wire.(string)
		if !ok {
			return nil, deserializationErrorf(target.String(), "expected string, got %T", wire)
		}
		d, err := schema.ParseDate(s)
		if err != nil {
			return nil, &DeserializationError{Target: target.String(), Err: err}
		}
		return d, nil
	case schema.KindDateTime:
		s, ok := wire.(string)
		if !ok {
			return nil, deserializationErrorf(target.String(), "expected string, got %T", wire)
		}
		t, err := ParseDateTime(s)
		if err != nil {
			return nil, &DeserializationError{Target: target.String(), Err: err}
		}
		return t, nil
	case schema.KindList:
		xs, ok := wire.([]any)
		if !ok {
			return nil, deserializationErrorf(target.String(), "expected array, got %T", wire)
		}
		out := make([]any, len(xs))
		for i, elem := range xs {
			v, err := c.Deserialize(elem, *target.Elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case schema.KindMap:
		m, ok := wire.(map[string]any)
		if !ok {
			return nil, deserializationErrorf(target.String(), "expected object, got %T", wire)
		}
		out := make(map[string]any, len(m))
		for k, elem := range m {
			v, err := c.Deserialize(elem, *target.Elem)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case schema.KindNamed:
		desc, err := c.registry.Resolve(target.Name)
		if err != nil {
			return nil, err
		}
		if desc.Enum != nil {
			return deserializeEnum(wire, desc)
		}
		return c.deserializeObject(wire, desc)
	}
	return nil, deserializationErrorf(target.String(), "no target type")
}

// DecodeBytes parses JSON and deserializes the result into the target type.
// Empty input decodes to nil.
func (c *Codec) DecodeBytes(data []byte, target schema.TypeRef) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var wire any
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &DeserializationError{Target: target.String(), Message: "invalid JSON", Err: err}
	}
	return c.Deserialize(wire, target)
}

// deserializePrimitive coerces a wire value into a primitive slot. It never
// fails: cross-coercions apply only where lossless, and anything else comes
// back unchanged so loosely-typed legacy payloads survive decoding.
func deserializePrimitive(wire any, target schema.TypeRef) any {
	switch target.Kind {
	case schema.KindBool:
		switch x := wire.(type) {
		case bool:
			return x
		case string:
			if b, err := strconv.ParseBool(x); err == nil {
				return b
			}
		}
	case schema.KindInt:
		switch x := wire.(type) {
		case int:
			return x
		case float64:
			if x == math.Trunc(x) && !math.IsInf(x, 0) {
				return int(x)
			}
		case string:
			if n, err := strconv.Atoi(x); err == nil {
				return n
			}
		}
	case schema.KindFloat:
		switch x := wire.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		case string:
			if f, err := strconv.ParseFloat(x, 64); err == nil {
				return f
			}
		}
	case schema.KindString:
		switch x := wire.(type) {
		case string:
			return x
		case bool:
			return strconv.FormatBool(x)
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64)
		case int:
			return strconv.Itoa(x)
		}
	}
	return wire
}

func deserializeEnum(wire any, desc *schema.Descriptor) (any, error) {
	v, ok := desc.Enum.FromValue(wire)
	if !ok {
		// JSON numbers arrive as float64; retry integral values as int so
		// numeric enums match their declared member values.
		if f, isFloat := wire.(float64); isFloat && f == math.Trunc(f) {
			v, ok = desc.Enum.FromValue(int(f))
		}
	}
	if !ok {
		return nil, deserializationErrorf(desc.Name, "value %v is not a member", wire)
	}
	return v, nil
}

func (c *Codec) deserializeObject(wire any, desc *schema.Descriptor) (any, error) {
	fields := c.registry.FieldsOf(desc)
	if desc.Discriminator == "" && len(fields) == 0 {
		// Opaque type: the payload passes through unchanged.
		return wire, nil
	}
	m, ok := wire.(map[string]any)
	if !ok {
		return nil, deserializationErrorf(desc.Name, "expected object, got %T", wire)
	}
	if desc.Discriminator != "" {
		concrete, err := c.concreteType(m, desc)
		if err != nil {
			return nil, err
		}
		if concrete != desc {
			return c.deserializeObject(wire, concrete)
		}
	}
	if desc.New == nil {
		return nil, deserializationErrorf(desc.Name, "abstract type cannot be constructed")
	}
	obj := desc.New()
	for _, f := range fields {
		raw, present := m[f.Key]
		if !present || raw == nil {
			continue
		}
		v, err := c.Deserialize(raw, f.Type)
		if err != nil {
			return nil, &DeserializationError{Target: desc.Name, Message: "field " + f.Name, Err: err}
		}
		if v == nil {
			continue
		}
		if err := f.Set(obj, v); err != nil {
			if f.Type.IsPrimitive() {
				// Lenient slot: the raw payload did not fit and stays unset.
				continue
			}
			return nil, &DeserializationError{Target: desc.Name, Message: "field " + f.Name, Err: err}
		}
	}
	return obj, nil
}

// concreteType reads the discriminator out of a polymorphic payload and
// resolves the concrete descriptor it names.
func (c *Codec) concreteType(m map[string]any, desc *schema.Descriptor) (*schema.Descriptor, error) {
	raw, present := m[desc.Discriminator]
	if !present {
		return nil, deserializationErrorf(desc.Name, "missing discriminator %q", desc.Discriminator)
	}
	tag, ok := raw.(string)
	if !ok {
		return nil, deserializationErrorf(desc.Name, "discriminator %q must be a string, got %T", desc.Discriminator, raw)
	}
	return c.registry.Resolve(tag)
}
