package jsonquery

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
)

// Options control result rendering.
type Options struct {
	IndentSize int  // spaces per indent level for pretty JSON, default 2
	Minified   bool // compact JSON with no whitespace
	Raw        bool // emit string results bare instead of JSON-quoted
	YAML       bool // render YAML instead of JSON, overrides Minified
}

func (o Options) indent() string {
	size := o.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size)
}

// formatValue renders one value per the active output mode.
func formatValue(value any, opts Options) (string, error) {
	if opts.YAML {
		return yamlString(value)
	}
	if opts.Raw {
		if s, ok := value.(string); ok {
			return s, nil
		}
	}
	return encodeJSON(value, opts)
}

// formatSequence renders every element independently and joins them, one
// blob per line for JSON and separate documents for YAML.
func formatSequence(elements []any, opts Options) (string, error) {
	parts := make([]string, 0, len(elements))
	for _, element := range elements {
		s, err := formatValue(element, opts)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	separator := "\n"
	if opts.YAML {
		separator = "\n---\n"
	}
	return strings.Join(parts, separator), nil
}

func encodeJSON(value any, opts Options) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !opts.Minified {
		enc.SetIndent("", opts.indent())
	}
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func yamlString(value any) (string, error) {
	out, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
