package pathexpr

import (
	"reflect"
	"testing"
)

func TestExtractPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document any
		want     []string
	}{
		{
			name:     "scalar_root",
			document: float64(5),
			want:     []string{"."},
		},
		{
			name:     "empty_object_root",
			document: map[string]any{},
			want:     []string{"."},
		},
		{
			name:     "empty_array_root",
			document: []any{},
			want:     []string{"[]"},
		},
		{
			name:     "flat_object",
			document: map[string]any{"b": float64(1), "a": "x"},
			want:     []string{".a", ".b"},
		},
		{
			name: "nested_object_and_array",
			document: map[string]any{
				"a": map[string]any{"b": float64(1)},
				"c": []any{true, map[string]any{"d": nil}},
			},
			want: []string{".a.b", ".c[0]", ".c[1].d"},
		},
		{
			name: "empty_containers",
			document: map[string]any{
				"list": []any{},
				"obj":  map[string]any{},
			},
			want: []string{".list[]", ".obj"},
		},
		{
			name:     "root_array",
			document: []any{"x", "y"},
			want:     []string{"[0]", "[1]"},
		},
		{
			name:     "bracket_quoted_key",
			document: map[string]any{"content-type": "json"},
			want:     []string{`["content-type"]`},
		},
		{
			name: "mixed_key_styles",
			document: map[string]any{
				"plain":    float64(1),
				"with key": float64(2),
			},
			want: []string{".plain", `["with key"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPaths(tt.document)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractPaths() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtractPathsEvaluable(t *testing.T) {
	t.Parallel()

	document := map[string]any{
		"a": map[string]any{"b": float64(1)},
		"c": []any{true, map[string]any{"content-type": "json"}},
	}

	for _, path := range ExtractPaths(document) {
		segments, err := Tokenize(path)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", path, err)
		}
		if _, err := Eval(document, segments); err != nil {
			t.Fatalf("Eval(%q) error = %v", path, err)
		}
	}
}
