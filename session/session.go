// Package session drives an interactive parse-and-query loop: the caller
// feeds raw input on every edit and re-runs the active query, while the
// session skips redundant reparses and throttles evaluation bursts.
package session

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/miniapps/jsonquery"
	"github.com/miniapps/jsonquery/document"
	"golang.org/x/time/rate"
)

type inputKind int

const (
	kindNone inputKind = iota
	kindJSON
	kindYAML
)

// Session caches parsed documents between evaluations of a changing input.
// It is not safe for concurrent use; each caller owns one session.
type Session struct {
	limiter  *rate.Limiter
	parsed   document.Result
	inputSum uint64
	kind     inputKind
}

// New returns an empty session. evalsPerSecond bounds Allow and Wait, with
// zero or negative meaning unlimited.
func New(evalsPerSecond float64) *Session {
	limit := rate.Inf
	if evalsPerSecond > 0 {
		limit = rate.Limit(evalsPerSecond)
	}
	return &Session{limiter: rate.NewLimiter(limit, 1)}
}

// SetInput replaces the session input with JSON text, reparsing only when
// the input actually changed. It reports whether a reparse happened.
func (s *Session) SetInput(input string) bool {
	sum := xxhash.Sum64String(input)
	if s.kind == kindJSON && sum == s.inputSum {
		return false
	}

	s.inputSum = sum
	s.kind = kindJSON
	s.parsed = document.Parse(input)
	return true
}

// SetYAMLInput replaces the session input with ---separated YAML text. The
// cached documents are left untouched when decoding fails.
func (s *Session) SetYAMLInput(input string) (bool, error) {
	sum := xxhash.Sum64String(input)
	if s.kind == kindYAML && sum == s.inputSum {
		return false, nil
	}

	parsed, err := document.ParseYAML(input)
	if err != nil {
		return false, err
	}

	s.inputSum = sum
	s.kind = kindYAML
	s.parsed = parsed
	return true, nil
}

// Result returns the documents and diagnostics of the current input.
func (s *Session) Result() document.Result {
	return s.parsed
}

// Evaluate applies the path expression to every current document and joins
// the per-document outputs with newlines.
func (s *Session) Evaluate(path string, opts jsonquery.Options) string {
	return jsonquery.EvaluateDocuments(s.parsed.Documents, path, opts)
}

// Allow reports whether an evaluation may run now without exceeding the
// throttle.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// Wait blocks until the throttle admits another evaluation or ctx ends.
func (s *Session) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}
