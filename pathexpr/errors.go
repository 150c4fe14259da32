package pathexpr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a path expression the tokenizer cannot classify.
	ErrSyntax = errors.New("path: syntax error")

	// ErrType indicates a navigation step applied to a value of the wrong type.
	ErrType = errors.New("path: type error")

	// ErrIndex indicates a numeric index past the end of an array.
	ErrIndex = errors.New("path: index out of bounds")
)

// SyntaxError reports bracket content that is not an index, a quoted key or
// empty, or a bracket left unterminated. Raised at tokenize time so malformed
// expressions never reach the evaluator.
type SyntaxError struct {
	Content string // offending bracket content, or the unterminated remainder
	msg     string
}

func (e *SyntaxError) Error() string { return e.msg }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// TypeError reports property, index or iteration access applied to a value
// whose runtime type does not support it. The message names the attempted
// operation and the actual type encountered.
type TypeError struct {
	TypeName string // runtime type of the offending value
	msg      string
}

func (e *TypeError) Error() string { return e.msg }

func (e *TypeError) Unwrap() error { return ErrType }

// IndexError reports an index at or past the end of an array. The message
// includes both the index and the array length.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for array of length %d", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

func syntaxErrorf(content string, format string, args ...any) error {
	return &SyntaxError{Content: content, msg: fmt.Sprintf(format, args...)}
}

func typeErrorf(typeName string, format string, args ...any) error {
	return &TypeError{TypeName: typeName, msg: fmt.Sprintf(format, args...)}
}
