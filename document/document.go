// Package document parses raw pasted text into zero or more JSON documents
// with per-line diagnostics.
//
// Parsing tries three strategies in order: the whole text as one JSON
// document, then newline-delimited JSON for lines opening with '{' or '[',
// then a balanced-delimiter scan that recovers JSON values embedded in
// surrounding prose.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrParse indicates input text that could not be parsed as JSON.
var ErrParse = errors.New("document: parse error")

// Document is one parsed JSON value recovered from the input text.
type Document struct {
	ID    string // stable identifier for callers keying per-document output
	Value any
	Line  int // 1-based input line the document started on, 0 when unknown
}

// LineError describes one piece of input that failed to parse.
type LineError struct {
	Line    int
	Content string
	Err     error
}

// Result is the outcome of parsing raw input text. Success means at least
// one document parsed and nothing failed; PartialSuccess means documents
// and failures were both present.
type Result struct {
	Documents      []Document
	Success        bool
	PartialSuccess bool
	Errors         []LineError
}

// Parse recovers JSON documents from input. The whole text is tried first,
// then each line opening with '{' or '[' independently, and only when no
// line looks like JSON at all, a balanced-delimiter scan of the full text.
func Parse(input string) Result {
	var whole any
	if err := json.Unmarshal([]byte(input), &whole); err == nil {
		return Result{
			Documents: []Document{newDocument(whole, 1)},
			Success:   true,
		}
	}

	if result, ok := parseLines(input); ok {
		return result
	}

	return parseEmbedded(input)
}

// parseLines applies the newline-delimited strategy. The boolean reports
// whether any line looked like JSON; when false the caller falls through to
// the embedded scan.
func parseLines(input string) (Result, bool) {
	var (
		docs      []Document
		lineErrs  []LineError
		candidate bool
	)

	for i, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
			continue
		}
		candidate = true

		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
			lineErrs = append(lineErrs, LineError{
				Line:    i + 1,
				Content: line,
				Err:     fmt.Errorf("%w: %v", ErrParse, err),
			})
			continue
		}
		docs = append(docs, newDocument(v, i+1))
	}

	if !candidate {
		return Result{}, false
	}
	return newResult(docs, lineErrs), true
}

// parseEmbedded recovers balanced JSON spans out of surrounding prose.
func parseEmbedded(input string) Result {
	var (
		docs     []Document
		lineErrs []LineError
	)

	for _, span := range scanBalanced(input) {
		line := strings.Count(input[:span.start], "\n") + 1

		var v any
		if err := json.Unmarshal([]byte(span.text), &v); err != nil {
			lineErrs = append(lineErrs, LineError{
				Line:    line,
				Content: span.text,
				Err:     fmt.Errorf("%w: %v", ErrParse, err),
			})
			continue
		}
		docs = append(docs, newDocument(v, line))
	}

	return newResult(docs, lineErrs)
}

func newDocument(value any, line int) Document {
	return Document{ID: uuid.New().String(), Value: value, Line: line}
}

func newResult(docs []Document, lineErrs []LineError) Result {
	return Result{
		Documents:      docs,
		Success:        len(docs) > 0 && len(lineErrs) == 0,
		PartialSuccess: len(docs) > 0 && len(lineErrs) > 0,
		Errors:         lineErrs,
	}
}
