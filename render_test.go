package jsonquery

import (
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		opts  Options
		want  string
	}{
		{
			name:  "pretty_object_sorted_keys",
			value: map[string]any{"b": float64(1), "a": "x"},
			opts:  Options{},
			want:  "{\n  \"a\": \"x\",\n  \"b\": 1\n}",
		},
		{
			name:  "custom_indent",
			value: map[string]any{"a": float64(1)},
			opts:  Options{IndentSize: 4},
			want:  "{\n    \"a\": 1\n}",
		},
		{
			name:  "minified",
			value: map[string]any{"a": float64(1)},
			opts:  Options{Minified: true},
			want:  `{"a":1}`,
		},
		{
			name:  "minified_ignores_indent",
			value: map[string]any{"a": float64(1)},
			opts:  Options{Minified: true, IndentSize: 8},
			want:  `{"a":1}`,
		},
		{
			name:  "null",
			value: nil,
			opts:  Options{},
			want:  "null",
		},
		{
			name:  "raw_string",
			value: "text",
			opts:  Options{Raw: true},
			want:  "text",
		},
		{
			name:  "raw_object_falls_back",
			value: map[string]any{"a": float64(1)},
			opts:  Options{Raw: true, Minified: true},
			want:  `{"a":1}`,
		},
		{
			name:  "html_not_escaped",
			value: "<a>&",
			opts:  Options{},
			want:  `"<a>&"`,
		},
		{
			name:  "yaml_scalar",
			value: float64(1.5),
			opts:  Options{YAML: true},
			want:  "1.5",
		},
		{
			name:  "yaml_string",
			value: "x",
			opts:  Options{YAML: true},
			want:  "x",
		},
		{
			name:  "yaml_mapping",
			value: map[string]any{"a": "x"},
			opts:  Options{YAML: true},
			want:  "a: x",
		},
		{
			name:  "yaml_sequence_value",
			value: []any{float64(1.5), "x"},
			opts:  Options{YAML: true},
			want:  "- 1.5\n- x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatValue(tt.value, tt.opts)
			if err != nil {
				t.Fatalf("formatValue() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("formatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elements []any
		opts     Options
		want     string
	}{
		{
			name:     "json_one_blob_per_line",
			elements: []any{float64(1), "x"},
			opts:     Options{Minified: true},
			want:     "1\n\"x\"",
		},
		{
			name:     "raw_unquotes_strings_only",
			elements: []any{"x", float64(2)},
			opts:     Options{Raw: true, Minified: true},
			want:     "x\n2",
		},
		{
			name:     "yaml_separate_documents",
			elements: []any{"x", "z"},
			opts:     Options{YAML: true},
			want:     "x\n---\nz",
		},
		{
			name:     "empty_sequence",
			elements: []any{},
			opts:     Options{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatSequence(tt.elements, tt.opts)
			if err != nil {
				t.Fatalf("formatSequence() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("formatSequence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeJSONUnsupportedValue(t *testing.T) {
	t.Parallel()

	if _, err := encodeJSON(math.NaN(), Options{}); err == nil {
		t.Fatal("encodeJSON() error = nil, want error")
	}
}
