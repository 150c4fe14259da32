package jsonpathq

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

// ErrQuery indicates a JSONPath expression that could not be compiled.
var ErrQuery = errors.New("jsonpathq: invalid query")

// Query selects every node matched by the $-rooted expression.
func Query(document any, expression string) ([]any, error) {
	path, err := jsonpath.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return path.Select(document), nil
}
