package document

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/miniapps/jsonquery/internal/jsonval"
)

// ParseYAML decodes one or more ---separated YAML documents into the JSON
// value model. Decoding stops at the first malformed document.
func ParseYAML(input string) (Result, error) {
	decoder := yaml.NewDecoder(strings.NewReader(input))

	var docs []Document
	for {
		var v any
		err := decoder.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: failed to decode YAML: %v", ErrParse, err)
		}
		docs = append(docs, newDocument(jsonval.Normalize(v), 0))
	}

	return newResult(docs, nil), nil
}
