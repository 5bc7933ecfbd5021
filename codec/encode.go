package codec

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kbukum/vcd/schema"
)

// Serialize converts a typed value into the wire shape: nested maps,
// slices, and scalars ready for JSON encoding. Objects emit only their set
// fields, keyed by wire key, so absent fields never appear as null.
func (c *Codec) Serialize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case bool, string, int, int32, int64, float32, float64:
		return x, nil
	case *bool:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	case *string:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	case *int:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	case *float64:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	case time.Time:
		return FormatDateTime(x), nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return FormatDateTime(*x), nil
	case schema.Date:
		return x.String(), nil
	case *schema.Date:
		if x == nil {
			return nil, nil
		}
		return x.String(), nil
	case []any:
		return c.serializeSlice(x)
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, nil
	case map[string]any:
		return c.serializeMap(x)
	case map[string]string:
		out := make(map[string]any, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out, nil
	case json.RawMessage:
		var raw any
		if err := json.Unmarshal(x, &raw); err != nil {
			return nil, &SerializationError{Message: "invalid raw JSON", Err: err}
		}
		return raw, nil
	}
	if e, ok := v.(schema.Enum); ok {
		return e.EnumValue(), nil
	}
	if o, ok := v.(schema.Object); ok {
		return c.serializeObject(o)
	}
	return nil, serializationErrorf("unsupported type %T", v)
}

func (c *Codec) serializeSlice(xs []any) ([]any, error) {
	out := make([]any, len(xs))
	for i, elem := range xs {
		wire, err := c.Serialize(elem)
		if err != nil {
			return nil, err
		}
		out[i] = wire
	}
	return out, nil
}

func (c *Codec) serializeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, elem := range m {
		wire, err := c.Serialize(elem)
		if err != nil {
			return nil, err
		}
		out[k] = wire
	}
	return out, nil
}

func (c *Codec) serializeObject(o schema.Object) (map[string]any, error) {
	desc, err := c.registry.Resolve(o.TypeName())
	if err != nil {
		return nil, &SerializationError{Message: "unregistered type " + o.TypeName(), Err: err}
	}
	fields := c.registry.FieldsOf(desc)
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, ok := f.Get(o)
		if !ok {
			continue
		}
		wire, err := c.Serialize(v)
		if err != nil {
			return nil, err
		}
		out[f.Key] = wire
	}
	return out, nil
}

// EncodeBytes serializes a value and renders it as JSON.
func (c *Codec) EncodeBytes(v any) ([]byte, error) {
	wire, err := c.Serialize(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, &SerializationError{Message: "JSON encoding failed", Err: err}
	}
	return data, nil
}

// SerializeParam renders a value as a query or header parameter. Only
// scalar-producing values are accepted; callers expand lists into repeated
// parameters themselves.
func (c *Codec) SerializeParam(v any) (string, error) {
	wire, err := c.Serialize(v)
	if err != nil {
		return "", err
	}
	switch x := wire.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", serializationErrorf("cannot render %T as a parameter", v)
}
