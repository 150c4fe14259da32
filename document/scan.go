package document

// jsonSpan is one balanced object or array located in surrounding text.
type jsonSpan struct {
	start int // byte offset of the opening delimiter
	text  string
}

// scanBalanced locates top-level JSON-looking objects and arrays embedded in
// arbitrary text. Delimiters inside string literals are ignored and nesting
// is tracked with an opener stack, so only complete balanced spans come
// back. A mismatched closer abandons the current candidate and scanning
// resumes after it.
func scanBalanced(input string) []jsonSpan {
	var (
		spans    []jsonSpan
		openers  []byte
		inString bool
		escaped  bool
	)
	start := -1

	for i := 0; i < len(input); i++ {
		c := input[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			// quote tracking only matters inside a candidate span
			if start >= 0 {
				inString = true
			}
		case '{', '[':
			if start < 0 {
				start = i
			}
			openers = append(openers, c)
		case '}', ']':
			if len(openers) == 0 {
				continue
			}
			open := openers[len(openers)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				openers = openers[:0]
				start = -1
				continue
			}
			openers = openers[:len(openers)-1]
			if len(openers) == 0 {
				spans = append(spans, jsonSpan{start: start, text: input[start : i+1]})
				start = -1
			}
		}
	}

	return spans
}
