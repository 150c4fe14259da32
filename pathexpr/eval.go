package pathexpr

import (
	"github.com/miniapps/jsonquery/internal/jsonval"
)

// Result is the outcome of evaluating a path expression: a single value, or
// a sequence of values produced by a terminal iteration.
type Result struct {
	Value      any
	Sequence   []any
	IsSequence bool
}

// Eval walks segments left to right from root. Iteration followed by a
// property segment projects that property over every element, consuming the
// property segment and flattening nested arrays one level. An iteration with
// nothing left to consume yields a sequence result.
func Eval(root any, segments []Segment) (Result, error) {
	current := root

	for i := 0; i < len(segments); i++ {
		switch seg := segments[i].(type) {
		case Property:
			v, err := property(current, seg.Name)
			if err != nil {
				return Result{}, err
			}
			current = v

		case Index:
			arr, ok := current.([]any)
			if !ok {
				return Result{}, typeErrorf(jsonval.TypeName(current), "cannot access index of non-array type %s", jsonval.TypeName(current))
			}
			if seg.N < 0 || seg.N >= len(arr) {
				return Result{}, &IndexError{Index: seg.N, Length: len(arr)}
			}
			current = arr[seg.N]

		case Iterate:
			arr, ok := current.([]any)
			if !ok {
				return Result{}, typeErrorf(jsonval.TypeName(current), "expected array but got %s", jsonval.TypeName(current))
			}
			if i == len(segments)-1 {
				return Result{Sequence: arr, IsSequence: true}, nil
			}
			next, isProperty := segments[i+1].(Property)
			if !isProperty {
				// nested iterate or index consumes this same array on a
				// later pass
				continue
			}
			projected, err := projectProperty(arr, next.Name)
			if err != nil {
				return Result{}, err
			}
			i++
			if i == len(segments)-1 {
				return Result{Sequence: projected, IsSequence: true}, nil
			}
			current = projected
		}
	}

	return Result{Value: current}, nil
}

// property resolves one named member. Objects descend with absent keys
// becoming null, arrays miss to null, anything else cannot hold properties.
func property(value any, name string) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v[name], nil
	case []any:
		return nil, nil
	default:
		return nil, typeErrorf(jsonval.TypeName(value), "cannot access property '%s' of %s", name, jsonval.TypeName(value))
	}
}

// projectProperty maps property access over every element of arr, then
// flattens nested arrays one level.
func projectProperty(arr []any, name string) ([]any, error) {
	projected := make([]any, 0, len(arr))
	for _, element := range arr {
		v, err := property(element, name)
		if err != nil {
			return nil, err
		}
		projected = append(projected, v)
	}
	return flattenOnce(projected), nil
}

func flattenOnce(values []any) []any {
	flat := make([]any, 0, len(values))
	for _, v := range values {
		if nested, ok := v.([]any); ok {
			flat = append(flat, nested...)
			continue
		}
		flat = append(flat, v)
	}
	return flat
}
