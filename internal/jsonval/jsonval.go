package jsonval

import (
	"encoding/json"
	"fmt"
	"time"
)

// TypeName returns the JSON vocabulary name for a decoded value:
// null, boolean, number, string, array or object.
// Values outside the JSON model fall back to their Go type.
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// ToFloat64 converts supported numeric values to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Normalize converts a decoded value into the canonical JSON value model:
// nil, bool, float64, string, []any and map[string]any. YAML decoders hand
// back integer types, non-string map keys and time.Time values; all of them
// are folded into the JSON shapes so the query engine sees one model.
func Normalize(value any) any {
	switch current := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(current))
		for key, item := range current {
			out[key] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(current))
		for key, item := range current {
			out[fmt.Sprint(key)] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(current))
		for _, item := range current {
			out = append(out, Normalize(item))
		}
		return out
	case string, bool, nil, float64:
		return current
	case time.Time:
		return current.Format(time.RFC3339)
	default:
		if number, ok := ToFloat64(current); ok {
			return number
		}
		return current
	}
}
