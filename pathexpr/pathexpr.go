// Package pathexpr tokenizes and evaluates dot-and-bracket path expressions
// against decoded JSON values.
//
// A path expression is a sequence of navigation segments: property access
// (.name or ["name"]), numeric index ([0]) and array iteration ([]). The
// empty expression and "." both denote the root value.
package pathexpr

import (
	"strconv"
	"strings"
)

// Segment is a single navigation step of a tokenized path expression.
type Segment interface {
	String() string
	segment()
}

// Property selects a named member of an object.
type Property struct {
	Name string
}

func (p Property) String() string {
	if isBareKey(p.Name) {
		return "." + p.Name
	}
	return `["` + p.Name + `"]`
}

func (Property) segment() {}

// Index selects the element at a zero-based array position.
type Index struct {
	N int
}

func (i Index) String() string { return "[" + strconv.Itoa(i.N) + "]" }

func (Index) segment() {}

// Iterate visits every element of an array.
type Iterate struct{}

func (Iterate) String() string { return "[]" }

func (Iterate) segment() {}

// Tokenize splits a path expression into segments in a single left-to-right
// pass. A leading dot is ignored, consecutive dots collapse, and bracket
// content is classified as iteration (empty), index (all digits) or
// double-quoted property. Any other bracket content is a syntax error, as is
// a bracket left unterminated.
func Tokenize(expr string) ([]Segment, error) {
	expr = strings.TrimPrefix(expr, ".")

	var (
		segments  []Segment
		ident     strings.Builder
		bracket   strings.Builder
		inBracket bool
	)

	flushIdent := func() {
		if ident.Len() > 0 {
			segments = append(segments, Property{Name: ident.String()})
			ident.Reset()
		}
	}

	for i := 0; i < len(expr); i++ {
		c := expr[i]

		if inBracket {
			if c == ']' {
				seg, err := classifyBracket(bracket.String())
				if err != nil {
					return nil, err
				}
				segments = append(segments, seg)
				bracket.Reset()
				inBracket = false
				continue
			}
			bracket.WriteByte(c)
			continue
		}

		switch c {
		case '.':
			flushIdent()
		case '[':
			flushIdent()
			inBracket = true
		default:
			ident.WriteByte(c)
		}
	}

	if inBracket {
		return nil, syntaxErrorf(bracket.String(), "unterminated bracket segment")
	}
	flushIdent()

	return segments, nil
}

// classifyBracket maps raw bracket content to a segment. Content is taken
// verbatim: no trimming, no escape processing inside quoted keys.
func classifyBracket(content string) (Segment, error) {
	if content == "" {
		return Iterate{}, nil
	}

	if len(content) >= 2 && content[0] == '"' && content[len(content)-1] == '"' {
		return Property{Name: content[1 : len(content)-1]}, nil
	}

	if allDigits(content) {
		n, err := strconv.Atoi(content)
		if err != nil {
			return nil, syntaxErrorf(content, "invalid array index %q", content)
		}
		return Index{N: n}, nil
	}

	return nil, syntaxErrorf(content, "invalid bracket segment %q", content)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isBareKey reports whether name round-trips through dot notation without
// bracket quoting.
func isBareKey(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
