package pure

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingValues = errors.New("typed array has no $values array")

// TypedArray is a Json.NET typed collection ({"$type": ..., "$values": [...]})
// with its type kept beside the values. It marshals back to a plain array.
type TypedArray struct {
	Type   string
	Values []any
}

func (ta TypedArray) MarshalJSON() ([]byte, error) {
	if ta.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ta.Values)
}

// NormalizeTypedArray converts a single {"$type", "$values"} object.
func NormalizeTypedArray(obj map[string]any) (TypedArray, error) {
	raw, ok := obj["$values"]
	if !ok {
		return TypedArray{}, ErrMissingValues
	}
	v, err := normalizeTypedArray(obj, raw)
	if err != nil {
		return TypedArray{}, err
	}
	return v, nil
}

// NormalizeJSONDotNetTypedArrays walks a decoded JSON tree and replaces every
// object holding a "$values" key with a TypedArray. Other values are copied.
func NormalizeJSONDotNetTypedArrays(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		if raw, ok := v["$values"]; ok {
			return normalizeTypedArray(v, raw)
		}
		out := make(map[string]any, len(v))
		for k, e := range v {
			n, err := NormalizeJSONDotNetTypedArrays(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			n, err := NormalizeJSONDotNetTypedArrays(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

func normalizeTypedArray(obj map[string]any, raw any) (TypedArray, error) {
	values, ok := raw.([]any)
	if !ok {
		return TypedArray{}, fmt.Errorf("%w: got %T", ErrMissingValues, raw)
	}
	typeName, _ := obj["$type"].(string)
	out := TypedArray{Type: typeName, Values: make([]any, len(values))}
	for i, e := range values {
		n, err := NormalizeJSONDotNetTypedArrays(e)
		if err != nil {
			return TypedArray{}, fmt.Errorf("[%d]: %w", i, err)
		}
		out.Values[i] = n
	}
	return out, nil
}
