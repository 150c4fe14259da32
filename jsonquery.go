// Package jsonquery evaluates jq-like path expressions against decoded JSON
// documents and renders the results as display strings.
//
// The core dialect covers property access (.name, ["name"]), numeric
// indexing ([0]) and array iteration ([]), with iteration output rendered
// one element per line. Expressions opening with $ are treated as RFC 9535
// JSONPath. Evaluate never fails: tokenize, evaluation and encoding errors
// all come back as "Error: <message>" strings, so callers always have
// something to display.
package jsonquery

import (
	"strings"

	"github.com/miniapps/jsonquery/document"
	"github.com/miniapps/jsonquery/internal/jsonpathq"
	"github.com/miniapps/jsonquery/internal/jsonval"
	"github.com/miniapps/jsonquery/pathexpr"
)

// Evaluate applies a path expression to a document and renders the result
// per opts. The empty expression and "." select the whole document, which
// is never raw-unwrapped.
func Evaluate(doc any, path string, opts Options) string {
	expr := strings.TrimSpace(path)

	if strings.HasPrefix(expr, "$") {
		return evaluateJSONPath(doc, expr, opts)
	}

	if expr == "" || expr == "." {
		opts.Raw = false
		out, err := formatValue(doc, opts)
		if err != nil {
			return errorString(err)
		}
		return out
	}

	segments, err := pathexpr.Tokenize(expr)
	if err != nil {
		return errorString(err)
	}

	result, err := pathexpr.Eval(doc, segments)
	if err != nil {
		return errorString(err)
	}

	var out string
	if result.IsSequence {
		out, err = formatSequence(result.Sequence, opts)
	} else {
		out, err = formatValue(result.Value, opts)
	}
	if err != nil {
		return errorString(err)
	}
	return out
}

// EvaluateDocuments applies one path expression to every document
// independently and joins the per-document outputs with newlines.
func EvaluateDocuments(docs []document.Document, path string, opts Options) string {
	outputs := make([]string, 0, len(docs))
	for _, doc := range docs {
		outputs = append(outputs, Evaluate(doc.Value, path, opts))
	}
	return strings.Join(outputs, "\n")
}

// Tokenize splits a path expression into its navigation segments.
func Tokenize(path string) ([]pathexpr.Segment, error) {
	return pathexpr.Tokenize(strings.TrimSpace(path))
}

// ExtractPaths lists every leaf-reachable path of a document in
// dot-and-bracket notation, sorted lexicographically.
func ExtractPaths(doc any) []string {
	return pathexpr.ExtractPaths(doc)
}

// TypeName names a decoded JSON value in the display vocabulary: null,
// boolean, number, string, array or object.
func TypeName(value any) string {
	return jsonval.TypeName(value)
}

// ParseDocuments recovers JSON documents from raw pasted text.
func ParseDocuments(input string) document.Result {
	return document.Parse(input)
}

// ParseYAMLDocuments decodes ---separated YAML input into the JSON value
// model.
func ParseYAMLDocuments(input string) (document.Result, error) {
	return document.ParseYAML(input)
}

func evaluateJSONPath(doc any, expr string, opts Options) string {
	matches, err := jsonpathq.Query(doc, expr)
	if err != nil {
		return errorString(err)
	}
	if len(matches) == 0 {
		return ""
	}

	out, err := formatSequence(matches, opts)
	if err != nil {
		return errorString(err)
	}
	return out
}

// errorString renders an engine failure in the display convention.
func errorString(err error) string {
	return "Error: " + err.Error()
}
